package template

import (
	"fmt"
	"io"

	"attendance_srv/internal/usecase/repository"

	"github.com/xuri/excelize/v2"
)

const (
	// ContentType - MIME тип xlsx документа
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	shadeColor    = "#C0D0F8"
	lightGrayFill = 4
)

// XLSXWorkbook реализует repository.Workbook поверх excelize.
type XLSXWorkbook struct {
	file   *excelize.File
	styles map[bool]int
}

// NewXLSXWorkbook оборачивает уже открытый документ.
func NewXLSXWorkbook(f *excelize.File) *XLSXWorkbook {
	return &XLSXWorkbook{file: f, styles: make(map[bool]int)}
}

// File возвращает исходный документ excelize.
func (w *XLSXWorkbook) File() *excelize.File {
	return w.file
}

// Sheet возвращает лист по имени.
func (w *XLSXWorkbook) Sheet(name string) (repository.Sheet, error) {
	idx, err := w.file.GetSheetIndex(name)
	if err != nil {
		return nil, err
	}
	if idx == -1 {
		return nil, fmt.Errorf("sheet %s does not exist", name)
	}
	return &xlsxSheet{wb: w, name: name}, nil
}

// WriteTo кодирует документ.
func (w *XLSXWorkbook) WriteTo(out io.Writer) (int64, error) {
	return w.file.WriteTo(out)
}

// Close освобождает временные файлы excelize.
func (w *XLSXWorkbook) Close() error {
	return w.file.Close()
}

// rowStyle возвращает стиль строки данных: тонкие границы, выравнивание влево по центру,
// заливка lightGray для затененных строк. Стили создаются один раз на документ.
func (w *XLSXWorkbook) rowStyle(shaded bool) (int, error) {
	if id, ok := w.styles[shaded]; ok {
		return id, nil
	}

	style := &excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "top", Color: "000000", Style: 1},
			{Type: "left", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	}
	if shaded {
		style.Fill = excelize.Fill{Type: "pattern", Pattern: lightGrayFill, Color: []string{shadeColor}}
	}

	id, err := w.file.NewStyle(style)
	if err != nil {
		return 0, err
	}
	w.styles[shaded] = id
	return id, nil
}

type xlsxSheet struct {
	wb   *XLSXWorkbook
	name string
}

func (s *xlsxSheet) InsertRow(row int, values []any) error {
	f := s.wb.file
	if err := f.InsertRows(s.name, row, 1); err != nil {
		return fmt.Errorf("insert rows: %w", err)
	}
	for i, v := range values {
		if v == nil {
			continue
		}
		if err := s.SetCell(row, i+1, v); err != nil {
			return err
		}
	}
	return nil
}

func (s *xlsxSheet) StyleRow(row int, style repository.RowStyle) error {
	f := s.wb.file
	if style.Height > 0 {
		if err := f.SetRowHeight(s.name, row, style.Height); err != nil {
			return fmt.Errorf("set row height: %w", err)
		}
	}
	id, err := s.wb.rowStyle(style.Shaded)
	if err != nil {
		return fmt.Errorf("new style: %w", err)
	}
	if err := f.SetRowStyle(s.name, row, row, id); err != nil {
		return fmt.Errorf("set row style: %w", err)
	}
	return nil
}

func (s *xlsxSheet) SetCell(row, col int, value any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return s.wb.file.SetCellValue(s.name, cell, value)
}

func (s *xlsxSheet) SetColWidth(col int, width float64) error {
	name, err := excelize.ColumnNumberToName(col)
	if err != nil {
		return err
	}
	return s.wb.file.SetColWidth(s.name, name, name, width)
}
