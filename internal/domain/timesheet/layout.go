package timesheet

// Фиксированная разметка шаблона visma.xlsx. Номера строк и колонок 1-based.
const (
	SheetName = "EG7"

	OfficeRow    = 5
	OfficeCol    = 3
	MonthRow     = 6
	MonthCol     = 3
	DateRangeRow = 8
	DateRangeCol = 3

	// DayHeaderRow содержит номера дней 1..31 в колонках DayColumnOffset+1 .. DayColumnOffset+MaxDays.
	DayHeaderRow    = 10
	DayColumnOffset = 2
	MaxDays         = 31

	// AnchorRow - каждая новая строка вставляется сюда, сдвигая предыдущие вниз.
	AnchorRow = 11

	UIDCol  = 1
	NameCol = 2

	UIDColWidth  = 5.0
	NameColWidth = 30.0

	DataRowHeight = 20.0
)

// DayColumn возвращает колонку, в которой лежит день day.
func DayColumn(day int) int {
	return DayColumnOffset + day
}

// monthNames - шведские названия месяцев, январь под индексом 0.
var monthNames = [12]string{
	"Januari", "Februari", "Mars", "April", "Maj", "Juni",
	"Juli", "Augusti", "September", "Oktober", "November", "December",
}

// MonthName возвращает название месяца по индексу 0..11.
func MonthName(index int) string {
	if index < 0 || index >= len(monthNames) {
		return ""
	}
	return monthNames[index]
}
