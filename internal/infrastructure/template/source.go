package template

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"

	"attendance_srv/internal/domain/timesheet"
	"attendance_srv/internal/storage"
	"attendance_srv/internal/usecase/repository"

	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

// StorageSource загружает шаблон из хранилища и открывает новый документ на каждый вызов.
// При включенном кэше байты файла читаются из хранилища один раз, документ все равно
// открывается заново, поэтому запросы не делят изменяемое состояние.
type StorageSource struct {
	storage storage.Storage
	cache   bool
	logger  *logrus.Logger

	mu     sync.RWMutex
	cached map[string][]byte
}

// NewStorageSource создает источник шаблонов.
func NewStorageSource(st storage.Storage, cache bool, logger *logrus.Logger) *StorageSource {
	return &StorageSource{
		storage: st,
		cache:   cache,
		logger:  logger,
		cached:  make(map[string][]byte),
	}
}

// Load возвращает свежий экземпляр документа.
func (s *StorageSource) Load(ctx context.Context, name string) (repository.Workbook, error) {
	data, err := s.read(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("%w: read template %s: %v", timesheet.ErrTemplateStructure, name, err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: open template %s: %v", timesheet.ErrTemplateStructure, name, err)
	}
	return NewXLSXWorkbook(f), nil
}

func (s *StorageSource) read(ctx context.Context, name string) ([]byte, error) {
	if s.cache {
		s.mu.RLock()
		data, ok := s.cached[name]
		s.mu.RUnlock()
		if ok {
			return data, nil
		}
	}

	rc, err := s.storage.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, err
	}

	if s.cache {
		s.mu.Lock()
		s.cached[name] = data
		s.mu.Unlock()
		s.logger.WithFields(logrus.Fields{
			"template": name,
			"bytes":    len(data),
		}).Info("Шаблон закэширован")
	}
	return data, nil
}
