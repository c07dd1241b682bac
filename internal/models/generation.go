package models

import (
	"time"
	"unicode/utf8"
)

// maxErrorLen совпадает с размером колонки error
const maxErrorLen = 1000

// GenerationStatus статус генерации табеля
type GenerationStatus string

const (
	StatusCompleted GenerationStatus = "completed"
	StatusFailed    GenerationStatus = "failed"
)

// Generation хранит метаданные одной генерации. Сам файл не сохраняется.
type Generation struct {
	ID         string           `json:"id" gorm:"primarykey;size:36"`
	CreatedAt  time.Time        `json:"created_at" gorm:"index"`
	OfficeName string           `json:"office_name" gorm:"size:255"`
	DateFrom   string           `json:"date_from" gorm:"size:64"`
	DateTo     string           `json:"date_to" gorm:"size:64"`
	Items      int              `json:"items"`
	Status     GenerationStatus `json:"status" gorm:"size:50;not null"`
	Error      string           `json:"error,omitempty" gorm:"size:1000"`
	Bytes      int64            `json:"bytes"`
	DurationMs int64            `json:"duration_ms"`
}

// TableName specifies the table name for the Generation model
func (Generation) TableName() string {
	return "generations"
}

// IsCompleted returns true if the generation succeeded
func (g *Generation) IsCompleted() bool {
	return g.Status == StatusCompleted
}

// IsFailed returns true if the generation failed
func (g *Generation) IsFailed() bool {
	return g.Status == StatusFailed
}

// Fail переводит запись в статус failed с текстом ошибки
func (g *Generation) Fail(err error) {
	g.Status = StatusFailed
	if err != nil {
		msg := err.Error()
		if len(msg) > maxErrorLen {
			// режем по границе руны, иначе postgres отклонит строку
			cut := maxErrorLen
			for cut > 0 && !utf8.RuneStart(msg[cut]) {
				cut--
			}
			msg = msg[:cut]
		}
		g.Error = msg
	}
}
