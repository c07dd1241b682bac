package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"attendance_srv/internal/config"

	"github.com/sirupsen/logrus"
)

const (
	// Типы хранилищ
	StorageTypeLocal = "local"
	StorageTypeS3    = "s3"

	// Настройки retry
	DefaultMaxRetries = 3
	DefaultRetryDelay = 200 * time.Millisecond
)

// Storage интерфейс для работы с хранилищем шаблонов
type Storage interface {
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	Save(ctx context.Context, key string, reader io.Reader) error
	Exists(ctx context.Context, key string) (bool, error)
	List(ctx context.Context, prefix string) ([]FileInfo, error)
	ValidateKey(key string) error
}

// FileInfo информация о файле
type FileInfo struct {
	Key          string    `json:"key"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"last_modified"`
}

// S3Config конфигурация S3 хранилища
type S3Config struct {
	Region         string
	Bucket         string
	Endpoint       string
	AccessKey      string
	SecretKey      string
	ForcePathStyle bool
}

// LocalConfig конфигурация локального хранилища
type LocalConfig struct {
	BasePath string
}

// StorageBuilder строитель для конфигурации хранилища
type StorageBuilder struct {
	config     config.Storage
	logger     *logrus.Logger
	maxRetries int
	retryDelay time.Duration
}

// NewStorageBuilder создает новый строитель хранилища
func NewStorageBuilder(cfg config.Storage, logger *logrus.Logger) *StorageBuilder {
	return &StorageBuilder{
		config:     cfg,
		logger:     logger,
		maxRetries: DefaultMaxRetries,
		retryDelay: DefaultRetryDelay,
	}
}

// Build создает хранилище на основе конфигурации
func (b *StorageBuilder) Build() (Storage, error) {
	var (
		storage Storage
		err     error
	)

	switch b.config.Type {
	case StorageTypeS3:
		storage, err = NewS3Storage(context.Background(), b.buildS3Config())
		if err != nil {
			return nil, fmt.Errorf("ошибка создания S3 хранилища: %w", err)
		}

	case StorageTypeLocal:
		localConfig, cerr := b.buildLocalConfig()
		if cerr != nil {
			return nil, cerr
		}
		storage, err = NewLocalStorage(localConfig)
		if err != nil {
			return nil, fmt.Errorf("ошибка создания локального хранилища: %w", err)
		}

	default:
		return nil, fmt.Errorf("неподдерживаемый тип хранилища: %s", b.config.Type)
	}

	return b.wrapWithMiddleware(storage), nil
}

func (b *StorageBuilder) buildS3Config() S3Config {
	return S3Config{
		Region:         b.config.S3.Region,
		Bucket:         b.config.S3.Bucket,
		Endpoint:       b.config.S3.Endpoint,
		AccessKey:      b.config.S3.AccessKey,
		SecretKey:      b.config.S3.SecretKey,
		ForcePathStyle: b.config.S3.Endpoint != "",
	}
}

func (b *StorageBuilder) buildLocalConfig() (LocalConfig, error) {
	base, err := filepath.Abs(b.config.BasePath)
	if err != nil {
		return LocalConfig{}, fmt.Errorf("ошибка определения базового пути: %w", err)
	}
	return LocalConfig{BasePath: base}, nil
}

// wrapWithMiddleware оборачивает хранилище в middleware
func (b *StorageBuilder) wrapWithMiddleware(storage Storage) Storage {
	if b.logger != nil {
		storage = NewLoggingMiddleware(storage, b.logger)
		storage = NewRetryMiddleware(storage, b.maxRetries, b.retryDelay, b.logger)
	}
	return NewValidationMiddleware(storage)
}

// NewStorageFromConfig создает хранилище из конфигурации
func NewStorageFromConfig(cfg config.Config, logger *logrus.Logger) (Storage, error) {
	return NewStorageBuilder(cfg.Storage, logger).Build()
}
