package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"attendance_srv/internal/config"
	"attendance_srv/internal/domain/timesheet"
	httpapi "attendance_srv/internal/interface/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

const defaultBodyLimit = "10M"

// HTTPServer - то, чем управляет жизненный цикл приложения.
type HTTPServer interface {
	Start(address string) error
	Shutdown(ctx context.Context) error
}

// Server represents the HTTP server
type Server struct {
	echo    *echo.Echo
	handler *httpapi.ReportHandler
	logger  *logrus.Logger
}

// NewServer creates a new HTTP server
func NewServer(cfg config.Config, handler *httpapi.ReportHandler, logger *logrus.Logger) *Server {
	e := echo.New()
	e.Debug = cfg.Server.Debug
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	bodyLimit := cfg.Server.BodyLimit
	if bodyLimit == "" {
		bodyLimit = defaultBodyLimit
	}
	e.Use(middleware.BodyLimit(bodyLimit))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.WithFields(logrus.Fields{
				"method":     v.Method,
				"uri":        v.URI,
				"status":     v.Status,
				"latency":    v.Latency,
				"remote_ip":  v.RemoteIP,
				"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
			}).Info("HTTP запрос")
			return nil
		},
	}))

	server := &Server{
		echo:    e,
		handler: handler,
		logger:  logger,
	}

	e.HTTPErrorHandler = server.handleError
	server.setupRoutes()
	return server
}

// Handler возвращает http.Handler, удобно для тестов
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start starts the HTTP server
func (s *Server) Start(address string) error {
	s.logger.WithField("address", address).Info("Starting HTTP server")
	if err := s.echo.Start(address); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.echo.Shutdown(ctx)
}

// setupRoutes configures the server routes
func (s *Server) setupRoutes() {
	s.echo.GET("/health", s.healthCheck)
	s.handler.Register(s.echo)
}

// healthCheck handles health check requests
func (s *Server) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "attendance-service",
	})
}

// handleError: неизвестный путь - 404 text/plain, любая другая ошибка - 500 с JSON.
// /generate принимает любой метод, поэтому 405 возможен только на служебных путях
// и тоже отдается как 404.
func (s *Server) handleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	message := err.Error()
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if he.Code == http.StatusNotFound || he.Code == http.StatusMethodNotAllowed {
			s.logger.WithField("uri", c.Request().RequestURI).Debug(timesheet.ErrRouteNotFound.Error())
			if rerr := c.String(http.StatusNotFound, "Not Found"); rerr != nil {
				s.logger.WithError(rerr).Error("Ошибка отправки ответа")
			}
			return
		}
		message = fmt.Sprint(he.Message)
	}

	s.logger.WithError(err).Error("Ошибка обработки запроса")
	if rerr := c.JSON(http.StatusInternalServerError, httpapi.ErrorResponse{Error: message}); rerr != nil {
		s.logger.WithError(rerr).Error("Ошибка отправки ответа")
	}
}
