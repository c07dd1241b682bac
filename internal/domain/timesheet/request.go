package timesheet

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// ReportRequest - тело запроса POST /generate.
type ReportRequest struct {
	OfficeName string           `json:"officeName"`
	DateFrom   string           `json:"dateFrom"`
	DateTo     string           `json:"dateTo"`
	Items      []EmployeeRecord `json:"items"`
}

// EmployeeRecord - одна строка табеля.
type EmployeeRecord struct {
	UID      UID      `json:"uid"`
	Name     string   `json:"name"`
	TimeOffs TimeOffs `json:"time_offs"`
}

// DecodeRequest читает JSON запроса и проверяет обязательные поля.
func DecodeRequest(r io.Reader) (ReportRequest, error) {
	var req ReportRequest
	if err := json.NewDecoder(r).Decode(&req); err != nil {
		return ReportRequest{}, fmt.Errorf("%w: %v", ErrRequestDecode, err)
	}
	if err := req.Validate(); err != nil {
		return ReportRequest{}, err
	}
	return req, nil
}

// Validate проверяет наличие обязательных полей.
func (r ReportRequest) Validate() error {
	var missing []string
	if r.DateFrom == "" {
		missing = append(missing, "dateFrom")
	}
	if r.DateTo == "" {
		missing = append(missing, "dateTo")
	}
	if r.Items == nil {
		missing = append(missing, "items")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing required fields: %s", ErrRequestDecode, strings.Join(missing, ", "))
	}
	return nil
}

// Range разбирает период запроса.
func (r ReportRequest) Range() (DateRange, error) {
	return ParseDateRange(r.DateFrom, r.DateTo)
}

// UID хранит идентификатор сотрудника, числовой или строковый.
type UID struct {
	number json.Number
	text   string
	set    bool
}

// NumberUID создает числовой идентификатор.
func NumberUID(n int64) UID {
	return UID{number: json.Number(strconv.FormatInt(n, 10)), set: true}
}

// StringUID создает строковый идентификатор.
func StringUID(s string) UID {
	return UID{text: s, set: true}
}

// UnmarshalJSON принимает число, строку или null.
func (u *UID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*u = UID{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*u = StringUID(s)
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var n json.Number
	if err := dec.Decode(&n); err != nil {
		return fmt.Errorf("uid must be a number or a string: %w", err)
	}
	*u = UID{number: n, set: true}
	return nil
}

// MarshalJSON пишет идентификатор в исходном виде.
func (u UID) MarshalJSON() ([]byte, error) {
	switch {
	case !u.set:
		return []byte("null"), nil
	case u.number != "":
		return []byte(u.number), nil
	default:
		return json.Marshal(u.text)
	}
}

// CellValue возвращает значение для ячейки: int64, float64, string или nil.
func (u UID) CellValue() any {
	if !u.set {
		return nil
	}
	if u.number == "" {
		return u.text
	}
	if i, err := u.number.Int64(); err == nil {
		return i
	}
	if f, err := u.number.Float64(); err == nil {
		return f
	}
	return u.number.String()
}

// String нужен для логов.
func (u UID) String() string {
	if u.number != "" {
		return u.number.String()
	}
	return u.text
}

// TimeOffs - разреженное отображение дня месяца (1..31) в код отсутствия.
type TimeOffs map[int]string

// UnmarshalJSON принимает объект с ключами-днями. null в значении дает пустой код.
func (t *TimeOffs) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		*t = nil
		return nil
	}

	out := make(TimeOffs, len(raw))
	for key, value := range raw {
		d, err := strconv.Atoi(strings.TrimSpace(key))
		if err != nil || d < 1 || d > MaxDays {
			return fmt.Errorf("time_offs: day %q is not in 1..%d", key, MaxDays)
		}
		code, err := decodeCode(value)
		if err != nil {
			return fmt.Errorf("time_offs[%s]: %w", key, err)
		}
		out[d] = code
	}
	*t = out
	return nil
}

func decodeCode(value json.RawMessage) (string, error) {
	value = bytes.TrimSpace(value)
	switch {
	case bytes.Equal(value, []byte("null")):
		return "", nil
	case len(value) > 0 && value[0] == '"':
		var s string
		err := json.Unmarshal(value, &s)
		return s, err
	default:
		var n json.Number
		dec := json.NewDecoder(bytes.NewReader(value))
		dec.UseNumber()
		if err := dec.Decode(&n); err != nil {
			return "", fmt.Errorf("code must be a string: %w", err)
		}
		return n.String(), nil
	}
}

// Days возвращает дни с записями по возрастанию.
func (t TimeOffs) Days() []int {
	days := make([]int, 0, len(t))
	for d := range t {
		days = append(days, d)
	}
	sort.Ints(days)
	return days
}
