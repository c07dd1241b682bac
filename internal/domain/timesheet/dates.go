package timesheet

import (
	"fmt"
	"strings"
	"time"
)

// dateLayouts перечисляет поддерживаемые форматы дат. Все разбираются в UTC.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

const oneDay = 24 * time.Hour

// ParseDate разбирает дату запроса.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: cannot parse date %q", ErrInvalidDateRange, value)
}

// DateRange - разобранная пара dateFrom/dateTo.
type DateRange struct {
	From time.Time
	To   time.Time
}

// ParseDateRange разбирает обе границы и проверяет, что To не раньше From.
func ParseDateRange(from, to string) (DateRange, error) {
	f, err := ParseDate(from)
	if err != nil {
		return DateRange{}, fmt.Errorf("dateFrom: %w", err)
	}
	t, err := ParseDate(to)
	if err != nil {
		return DateRange{}, fmt.Errorf("dateTo: %w", err)
	}
	if t.Before(f) {
		return DateRange{}, fmt.Errorf("%w: dateTo %s precedes dateFrom %s", ErrInvalidDateRange, to, from)
	}
	return DateRange{From: f, To: t}, nil
}

// DaysInMonth возвращает количество дней между границами включительно.
func (r DateRange) DaysInMonth() int {
	return int(r.To.Sub(r.From)/oneDay) + 1
}

// MonthIndex возвращает месяц dateFrom в виде индекса 0..11.
func (r DateRange) MonthIndex() int {
	return int(r.From.Month()) - 1
}

// FormatDateRange склеивает первые 10 символов обеих дат через " - ".
func FormatDateRange(from, to string) string {
	return prefix(from, 10) + " - " + prefix(to, 10)
}

func prefix(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
