package main

import (
	"fmt"
	"os"

	"attendance_srv/internal/config"
	"attendance_srv/internal/di"
	"attendance_srv/internal/logging"
	"attendance_srv/internal/storage"
	"attendance_srv/internal/usecase"

	"github.com/sirupsen/logrus"
)

// app набор зависимостей для одной команды CLI
type app struct {
	cfg     config.Config
	logger  *logrus.Logger
	storage storage.Storage
	service *usecase.ReportService
	close   func() error
}

func newApp() (*app, error) {
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return nil, err
	}

	// stdout занят результатом команды
	logger := logging.New(cfg.Logging, os.Stderr)

	st, err := storage.NewStorageFromConfig(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to init storage: %w", err)
	}

	genLog, closeFn, err := di.NewGenerationLog(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open generation log: %w", err)
	}

	svc := di.NewReportService(cfg, di.NewTemplateSource(st, cfg, logger), genLog, logger)

	return &app{
		cfg:     cfg,
		logger:  logger,
		storage: st,
		service: svc,
		close:   closeFn,
	}, nil
}
