package timesheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		from, to string
		want     int
	}{
		{"2023-05-01", "2023-05-31", 31},
		{"2023-02-01", "2023-02-28", 28},
		{"2024-02-01", "2024-02-29", 29},
		{"2023-04-01T00:00:00Z", "2023-04-30T00:00:00Z", 30},
		{"2023-05-10", "2023-05-10", 1},
		{"2023-05-01T00:00:00Z", "2023-05-31T12:00:00Z", 31},
	}

	for _, tt := range tests {
		t.Run(tt.from+"_"+tt.to, func(t *testing.T) {
			r, err := ParseDateRange(tt.from, tt.to)
			require.NoError(t, err)
			assert.Equal(t, tt.want, r.DaysInMonth())
		})
	}
}

func TestParseDateRangeInvalid(t *testing.T) {
	_, err := ParseDateRange("not a date", "2023-05-31")
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	_, err = ParseDateRange("2023-05-01", "31/05/2023")
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	_, err = ParseDateRange("2023-05-31", "2023-05-01")
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestMonthName(t *testing.T) {
	r, err := ParseDateRange("2023-05-10", "2023-05-31")
	require.NoError(t, err)
	assert.Equal(t, 4, r.MonthIndex())
	assert.Equal(t, "Maj", MonthName(r.MonthIndex()))

	assert.Equal(t, "Januari", MonthName(0))
	assert.Equal(t, "December", MonthName(11))
	assert.Equal(t, "", MonthName(12))
}

func TestFormatDateRange(t *testing.T) {
	assert.Equal(t, "2023-05-01 - 2023-05-31", FormatDateRange("2023-05-01T00:00:00Z", "2023-05-31T00:00:00Z"))
	assert.Equal(t, "2023-05-01 - 2023-05-31", FormatDateRange("2023-05-01", "2023-05-31"))
	assert.Equal(t, "May - 2023", FormatDateRange("May", "2023"))
}

func TestDayColumn(t *testing.T) {
	assert.Equal(t, 3, DayColumn(1))
	assert.Equal(t, 33, DayColumn(MaxDays))
}
