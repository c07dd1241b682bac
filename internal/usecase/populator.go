package usecase

import (
	"fmt"

	"attendance_srv/internal/domain/timesheet"
	"attendance_srv/internal/usecase/repository"
)

// Populator заполняет лист табеля в загруженном шаблоне.
type Populator struct {
	SheetName string
}

// NewPopulator возвращает заполнитель для листа EG7.
func NewPopulator() Populator {
	return Populator{SheetName: timesheet.SheetName}
}

// Populate находит лист в документе и заполняет его данными запроса.
func (p Populator) Populate(wb repository.Workbook, req timesheet.ReportRequest, period timesheet.DateRange) error {
	name := p.SheetName
	if name == "" {
		name = timesheet.SheetName
	}
	sheet, err := wb.Sheet(name)
	if err != nil {
		return fmt.Errorf("%w: sheet %q: %v", timesheet.ErrTemplateStructure, name, err)
	}
	return PopulateSheet(sheet, req, period)
}

// PopulateSheet изменяет лист на месте: строки сотрудников, шапка и ширина колонок.
func PopulateSheet(sheet repository.Sheet, req timesheet.ReportRequest, period timesheet.DateRange) error {
	if err := insertRows(sheet, req.Items); err != nil {
		return err
	}
	if err := writeHeader(sheet, req, period); err != nil {
		return err
	}
	if err := writeDayHeader(sheet, period.DaysInMonth()); err != nil {
		return err
	}
	return sizeColumns(sheet)
}

// insertRows обходит записи с конца и каждый раз вставляет строку в AnchorRow,
// так что итоговый порядок строк совпадает с порядком items.
// Заливка зависит от индекса в обратном обходе, а не от итоговой позиции строки.
func insertRows(sheet repository.Sheet, items []timesheet.EmployeeRecord) error {
	n := len(items)
	for i := 0; i < n; i++ {
		rec := items[n-1-i]
		if err := sheet.InsertRow(timesheet.AnchorRow, RowValues(rec)); err != nil {
			return fmt.Errorf("insert row for uid %s: %w", rec.UID, err)
		}
		style := repository.RowStyle{
			Height: timesheet.DataRowHeight,
			Shaded: i%2 == 1,
		}
		if err := sheet.StyleRow(timesheet.AnchorRow, style); err != nil {
			return fmt.Errorf("style row for uid %s: %w", rec.UID, err)
		}
	}
	return nil
}

// RowValues строит буфер строки: 0 - uid, 1 - имя, 1+d - код дня d.
func RowValues(rec timesheet.EmployeeRecord) []any {
	days := rec.TimeOffs.Days()
	size := timesheet.NameCol
	if len(days) > 0 {
		size = days[len(days)-1] + 2
	}

	row := make([]any, size)
	row[0] = rec.UID.CellValue()
	row[1] = rec.Name
	for _, d := range days {
		row[1+d] = rec.TimeOffs[d]
	}
	return row
}

func writeHeader(sheet repository.Sheet, req timesheet.ReportRequest, period timesheet.DateRange) error {
	cells := []struct {
		row, col int
		value    any
	}{
		{timesheet.OfficeRow, timesheet.OfficeCol, req.OfficeName},
		{timesheet.MonthRow, timesheet.MonthCol, timesheet.MonthName(period.MonthIndex())},
		{timesheet.DateRangeRow, timesheet.DateRangeCol, timesheet.FormatDateRange(req.DateFrom, req.DateTo)},
	}
	for _, c := range cells {
		if err := sheet.SetCell(c.row, c.col, c.value); err != nil {
			return fmt.Errorf("set header cell (%d,%d): %w", c.row, c.col, err)
		}
	}
	return nil
}

// writeDayHeader всегда пишет все 31 колонку, дни за пределами периода очищаются.
func writeDayHeader(sheet repository.Sheet, daysInMonth int) error {
	for d := 1; d <= timesheet.MaxDays; d++ {
		var value any = ""
		if d <= daysInMonth {
			value = d
		}
		if err := sheet.SetCell(timesheet.DayHeaderRow, timesheet.DayColumn(d), value); err != nil {
			return fmt.Errorf("set day header %d: %w", d, err)
		}
	}
	return nil
}

func sizeColumns(sheet repository.Sheet) error {
	if err := sheet.SetColWidth(timesheet.UIDCol, timesheet.UIDColWidth); err != nil {
		return fmt.Errorf("set uid column width: %w", err)
	}
	if err := sheet.SetColWidth(timesheet.NameCol, timesheet.NameColWidth); err != nil {
		return fmt.Errorf("set name column width: %w", err)
	}
	return nil
}
