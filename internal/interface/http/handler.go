package http

import (
	"context"
	"net/http"

	"attendance_srv/internal/domain/timesheet"
	"attendance_srv/internal/infrastructure/template"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// Generator - то, что умеет собрать табель по запросу.
type Generator interface {
	Generate(ctx context.Context, req timesheet.ReportRequest) ([]byte, error)
}

// ReportHandler обрабатывает HTTP-запросы к сервису табелей.
type ReportHandler struct {
	Service Generator
	Logger  *logrus.Logger
}

// NewHandler создает обработчик.
func NewHandler(svc Generator, log *logrus.Logger) *ReportHandler {
	return &ReportHandler{Service: svc, Logger: log}
}

// Register добавляет маршруты обработчика.
// Маршрут не фильтрует метод: запрос без JSON тела завершится ошибкой разбора (500).
func (h *ReportHandler) Register(e *echo.Echo) {
	e.Any("/generate", h.Generate)
}

// Generate разбирает JSON, собирает табель и отдает xlsx.
// Любая ошибка отдается как 500 с JSON {"error": "..."}.
func (h *ReportHandler) Generate(c echo.Context) error {
	req, err := timesheet.DecodeRequest(c.Request().Body)
	if err != nil {
		return h.fail(c, err)
	}

	data, err := h.Service.Generate(c.Request().Context(), req)
	if err != nil {
		return h.fail(c, err)
	}

	return c.Blob(http.StatusOK, template.ContentType, data)
}

func (h *ReportHandler) fail(c echo.Context, err error) error {
	h.Logger.WithError(err).WithField("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
		Error("Ошибка обработки запроса")
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
}

// ErrorResponse - тело ответа с ошибкой.
type ErrorResponse struct {
	Error string `json:"error"`
}
