package repository

import (
	"context"
	"io"
)

// RowStyle описывает оформление строки данных.
type RowStyle struct {
	Height float64
	Shaded bool
}

// Sheet - изменяемый лист шаблона. Номера строк и колонок 1-based.
type Sheet interface {
	// InsertRow вставляет строку перед row, сдвигая row и ниже на одну вниз.
	// values[i] пишется в колонку i+1, nil пропускается.
	InsertRow(row int, values []any) error
	StyleRow(row int, style RowStyle) error
	SetCell(row, col int, value any) error
	SetColWidth(col int, width float64) error
}

// Workbook - документ, загруженный из шаблона.
type Workbook interface {
	// Sheet возвращает лист по имени или ошибку, если его нет.
	Sheet(name string) (Sheet, error)
	// WriteTo кодирует документ в формат xlsx.
	WriteTo(w io.Writer) (int64, error)
	Close() error
}

// TemplateSource загружает свежий экземпляр шаблона на каждый запрос.
type TemplateSource interface {
	Load(ctx context.Context, name string) (Workbook, error)
}
