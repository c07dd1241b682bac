package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"attendance_srv/internal/domain/timesheet"
	"attendance_srv/internal/models"
	"attendance_srv/internal/usecase/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ErrHistoryDisabled возвращается, когда журнал генераций не настроен.
var ErrHistoryDisabled = errors.New("generation log is disabled")

// ReportService генерирует табель: загрузка шаблона, заполнение, кодирование.
type ReportService struct {
	Templates    repository.TemplateSource
	Populator    Populator
	Log          repository.GenerationLog
	TemplateName string
	logger       *logrus.Logger
}

// NewReportService собирает сервис из зависимостей. log может быть nil.
func NewReportService(templates repository.TemplateSource, log repository.GenerationLog, templateName string, logger *logrus.Logger) *ReportService {
	return &ReportService{
		Templates:    templates,
		Populator:    NewPopulator(),
		Log:          log,
		TemplateName: templateName,
		logger:       logger,
	}
}

// Generate возвращает готовый xlsx документ.
// Документ целиком кодируется в память, поэтому ошибка кодирования не приводит к обрезанному ответу.
func (s *ReportService) Generate(ctx context.Context, req timesheet.ReportRequest) ([]byte, error) {
	start := time.Now()
	logger := s.logger.WithFields(logrus.Fields{
		"office":    req.OfficeName,
		"items":     len(req.Items),
		"date_from": req.DateFrom,
		"date_to":   req.DateTo,
	})

	data, err := s.generate(ctx, req)
	s.record(ctx, req, start, int64(len(data)), err)

	if err != nil {
		logger.WithError(err).WithField("duration", time.Since(start)).Error("Ошибка генерации табеля")
		return nil, err
	}

	logger.WithFields(logrus.Fields{
		"bytes":    len(data),
		"duration": time.Since(start),
	}).Info("Табель сгенерирован")
	return data, nil
}

func (s *ReportService) generate(ctx context.Context, req timesheet.ReportRequest) ([]byte, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	period, err := req.Range()
	if err != nil {
		return nil, err
	}

	wb, err := s.Templates.Load(ctx, s.TemplateName)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := wb.Close(); cerr != nil {
			s.logger.WithError(cerr).Warn("Ошибка закрытия документа")
		}
	}()

	if err := s.Populator.Populate(wb, req, period); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if _, err := wb.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	return buf.Bytes(), nil
}

// record пишет метаданные в журнал. Ошибка журнала не влияет на ответ.
func (s *ReportService) record(ctx context.Context, req timesheet.ReportRequest, start time.Time, size int64, genErr error) {
	if s.Log == nil {
		return
	}

	g := &models.Generation{
		ID:         uuid.NewString(),
		CreatedAt:  start.UTC(),
		OfficeName: req.OfficeName,
		DateFrom:   req.DateFrom,
		DateTo:     req.DateTo,
		Items:      len(req.Items),
		Status:     models.StatusCompleted,
		Bytes:      size,
		DurationMs: time.Since(start).Milliseconds(),
	}
	if genErr != nil {
		g.Fail(genErr)
		g.Bytes = 0
	}

	if err := s.Log.Record(ctx, g); err != nil {
		s.logger.WithError(err).WithField("generation_id", g.ID).Warn("Не удалось записать генерацию в журнал")
	}
}

// History возвращает последние генерации.
func (s *ReportService) History(ctx context.Context, limit int) ([]models.Generation, error) {
	if s.Log == nil {
		return nil, ErrHistoryDisabled
	}
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	return s.Log.Recent(ctx, limit)
}
