package di

import (
	"context"
	"os"

	"attendance_srv/internal/config"
	"attendance_srv/internal/database"
	sqlinfra "attendance_srv/internal/infrastructure/sql"
	"attendance_srv/internal/infrastructure/template"
	httpapi "attendance_srv/internal/interface/http"
	"attendance_srv/internal/logging"
	"attendance_srv/internal/server"
	"attendance_srv/internal/storage"
	"attendance_srv/internal/usecase"
	"attendance_srv/internal/usecase/repository"

	"github.com/sirupsen/logrus"
	"go.uber.org/fx"
)

// Module собирает все зависимости HTTP-сервиса.
var Module = fx.Options(
	fx.Provide(
		NewLogger,
		storage.NewStorageFromConfig,
		NewTemplateSource,
		provideGenerationLog,
		NewReportService,
		newHandler,
		fx.Annotate(server.NewServer, fx.As(new(server.HTTPServer))),
	),
)

// NewLogger создает логгер по конфигурации.
func NewLogger(cfg config.Config) *logrus.Logger {
	logger := logging.New(cfg.Logging, os.Stdout)
	logger.WithField("config", cfg.String()).Info("Конфигурация загружена")
	return logger
}

// NewTemplateSource создает источник шаблонов поверх хранилища.
func NewTemplateSource(st storage.Storage, cfg config.Config, logger *logrus.Logger) repository.TemplateSource {
	return template.NewStorageSource(st, cfg.Template.Cache, logger)
}

// NewGenerationLog открывает журнал генераций, если он включен.
// Возвращает nil журнал и пустой closer, когда БД выключена.
func NewGenerationLog(cfg config.Config) (repository.GenerationLog, func() error, error) {
	if !cfg.DB.Enabled {
		return nil, func() error { return nil }, nil
	}

	db, err := database.NewDatabase(database.FromConfig(cfg))
	if err != nil {
		return nil, nil, err
	}
	if err := database.AutoMigrate(db); err != nil {
		return nil, nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, err
	}
	return sqlinfra.NewGenerationRepository(db), sqlDB.Close, nil
}

func provideGenerationLog(cfg config.Config, lc fx.Lifecycle) (repository.GenerationLog, error) {
	log, closeFn, err := NewGenerationLog(cfg)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error { return closeFn() },
	})
	return log, nil
}

// NewReportService собирает сервис генерации.
func NewReportService(cfg config.Config, templates repository.TemplateSource, log repository.GenerationLog, logger *logrus.Logger) *usecase.ReportService {
	svc := usecase.NewReportService(templates, log, cfg.Template.Name, logger)
	svc.Populator.SheetName = cfg.Template.Sheet
	return svc
}

func newHandler(svc *usecase.ReportService, logger *logrus.Logger) *httpapi.ReportHandler {
	return httpapi.NewHandler(svc, logger)
}
