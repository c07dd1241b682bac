package sql

import (
	"context"

	"attendance_srv/internal/models"

	"gorm.io/gorm"
)

// GenerationRepository хранит журнал генераций в БД.
type GenerationRepository struct {
	DB *gorm.DB
}

// NewGenerationRepository создает репозиторий журнала.
func NewGenerationRepository(db *gorm.DB) *GenerationRepository {
	return &GenerationRepository{DB: db}
}

// Record сохраняет запись о генерации.
func (r *GenerationRepository) Record(ctx context.Context, g *models.Generation) error {
	return r.DB.WithContext(ctx).Create(g).Error
}

// Recent возвращает последние limit записей, новые первыми.
func (r *GenerationRepository) Recent(ctx context.Context, limit int) ([]models.Generation, error) {
	var out []models.Generation
	err := r.DB.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&out).Error
	return out, err
}
