package timesheet

import "errors"

// Ошибки домена. Все они на границе запроса превращаются в HTTP 500 с JSON телом.
var (
	// ErrRequestDecode - тело запроса не разбирается или не содержит обязательных полей.
	ErrRequestDecode = errors.New("request decode error")

	// ErrTemplateStructure - шаблон не читается или в нем нет нужного листа.
	ErrTemplateStructure = errors.New("template structure error")

	// ErrInvalidDateRange - даты не разбираются или dateTo раньше dateFrom.
	ErrInvalidDateRange = errors.New("invalid date range")

	// ErrRouteNotFound - запрос к неизвестному пути.
	ErrRouteNotFound = errors.New("route not found")
)
