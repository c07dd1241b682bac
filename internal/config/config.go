package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Server содержит настройки HTTP-сервера.
type Server struct {
	Host  string `mapstructure:"host"`
	Port  int    `mapstructure:"port"`
	Debug bool   `mapstructure:"debug"`

	// BodyLimit - максимальный размер тела запроса в формате echo ("10M", "512K")
	BodyLimit string `mapstructure:"body_limit"`
}

// Address возвращает адрес для прослушивания.
func (s Server) Address() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// Template описывает шаблон табеля.
type Template struct {
	Name  string `mapstructure:"name"`
	Sheet string `mapstructure:"sheet"`
	Cache bool   `mapstructure:"cache"`
}

// DB содержит параметры подключения к БД журнала генераций.
type DB struct {
	Enabled bool   `mapstructure:"enabled"`
	Driver  string `mapstructure:"driver"`
	DSN     string `mapstructure:"dsn"`
}

// Storage описывает, откуда берется шаблон.
type Storage struct {
	Type     string `mapstructure:"type"`
	BasePath string `mapstructure:"basepath"`
	S3       S3     `mapstructure:"s3"`
}

// S3 содержит настройки для S3-совместимого хранилища.
type S3 struct {
	Region    string `mapstructure:"region"`
	Bucket    string `mapstructure:"bucket"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
}

// Logging содержит настройки логирования.
type Logging struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Config объединяет все разделы конфигурации.
type Config struct {
	Server   Server   `mapstructure:"server"`
	Template Template `mapstructure:"template"`
	DB       DB       `mapstructure:"database"`
	Storage  Storage  `mapstructure:"storage"`
	Logging  Logging  `mapstructure:"logging"`
}

// Load читает конфигурацию из config.yaml (если есть), окружения и значений по умолчанию.
func Load() (Config, error) {
	return LoadFrom("")
}

// LoadFrom делает то же, что Load, но с явным путем к файлу конфигурации.
func LoadFrom(path string) (Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/attendance-service")
	}

	// Настройка для environment variables
	v.SetEnvPrefix("APP")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)
	bindEnvironmentVariables(v)

	// Чтение файла конфигурации (опционально)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return Config{}, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// setDefaults устанавливает значения по умолчанию
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 4999)
	v.SetDefault("server.debug", false)
	v.SetDefault("server.body_limit", "10M")

	v.SetDefault("template.name", "visma.xlsx")
	v.SetDefault("template.sheet", "EG7")
	v.SetDefault("template.cache", false)

	v.SetDefault("database.enabled", false)
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.dsn", "attendance.db")

	v.SetDefault("storage.type", "local")
	v.SetDefault("storage.basepath", ".")
	v.SetDefault("storage.s3.region", "us-east-1")
	v.SetDefault("storage.s3.bucket", "attendance-templates")
	v.SetDefault("storage.s3.endpoint", "")
	v.SetDefault("storage.s3.access_key", "")
	v.SetDefault("storage.s3.secret_key", "")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}

// bindEnvironmentVariables привязывает переменные окружения к конфигурации
func bindEnvironmentVariables(v *viper.Viper) {
	// PORT оставлен для совместимости со старыми развертываниями
	v.BindEnv("server.port", "APP_SERVER_PORT", "PORT")
	v.BindEnv("server.host", "APP_SERVER_HOST")
	v.BindEnv("server.debug", "APP_SERVER_DEBUG")
	v.BindEnv("server.body_limit", "APP_SERVER_BODY_LIMIT")

	v.BindEnv("template.name", "APP_TEMPLATE_NAME")
	v.BindEnv("template.sheet", "APP_TEMPLATE_SHEET")
	v.BindEnv("template.cache", "APP_TEMPLATE_CACHE")

	v.BindEnv("database.enabled", "APP_DATABASE_ENABLED")
	v.BindEnv("database.driver", "APP_DATABASE_DRIVER")
	v.BindEnv("database.dsn", "APP_DATABASE_DSN")

	v.BindEnv("storage.type", "APP_STORAGE_TYPE")
	v.BindEnv("storage.basepath", "APP_STORAGE_BASEPATH")
	v.BindEnv("storage.s3.region", "APP_STORAGE_S3_REGION")
	v.BindEnv("storage.s3.bucket", "APP_STORAGE_S3_BUCKET")
	v.BindEnv("storage.s3.endpoint", "APP_STORAGE_S3_ENDPOINT")
	v.BindEnv("storage.s3.access_key", "APP_STORAGE_S3_ACCESS_KEY")
	v.BindEnv("storage.s3.secret_key", "APP_STORAGE_S3_SECRET_KEY")

	v.BindEnv("logging.level", "APP_LOGGING_LEVEL")
	v.BindEnv("logging.format", "APP_LOGGING_FORMAT")
}

var (
	validLogLevels = []string{"trace", "debug", "info", "warn", "error", "fatal", "panic"}
	validDrivers   = []string{"postgres", "pq", "sqlite"}
)

// validateConfig проверяет корректность конфигурации
func validateConfig(cfg Config) error {
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return fmt.Errorf("server port out of range: %d", cfg.Server.Port)
	}

	if cfg.Template.Name == "" {
		return fmt.Errorf("template name cannot be empty")
	}
	if cfg.Template.Sheet == "" {
		return fmt.Errorf("template sheet cannot be empty")
	}

	if cfg.DB.Enabled {
		if !contains(validDrivers, cfg.DB.Driver) {
			return fmt.Errorf("invalid database driver: %s. Valid drivers: %v", cfg.DB.Driver, validDrivers)
		}
		if cfg.DB.DSN == "" {
			return fmt.Errorf("database DSN cannot be empty")
		}
	}

	if cfg.Storage.Type != "local" && cfg.Storage.Type != "s3" {
		return fmt.Errorf("storage type must be 'local' or 's3', got: %s", cfg.Storage.Type)
	}
	if cfg.Storage.Type == "local" && cfg.Storage.BasePath == "" {
		return fmt.Errorf("storage basepath cannot be empty for local storage")
	}
	if cfg.Storage.Type == "s3" {
		if cfg.Storage.S3.Region == "" {
			return fmt.Errorf("S3 region cannot be empty")
		}
		if cfg.Storage.S3.Bucket == "" {
			return fmt.Errorf("S3 bucket cannot be empty")
		}
	}

	if !contains(validLogLevels, strings.ToLower(cfg.Logging.Level)) {
		return fmt.Errorf("invalid logging level: %s. Valid levels: %v", cfg.Logging.Level, validLogLevels)
	}

	return nil
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

// IsDevelopment возвращает true, если приложение запущено в режиме разработки
func (c Config) IsDevelopment() bool {
	return c.Server.Debug
}

// String возвращает строковое представление конфигурации (без чувствительных данных)
func (c Config) String() string {
	s3 := c.Storage.S3
	s3.AccessKey, s3.SecretKey = "[HIDDEN]", "[HIDDEN]"
	return fmt.Sprintf("Config{Server: %+v, Template: %+v, DB: {Enabled: %t, Driver: %s, DSN: [HIDDEN]}, Storage: {Type: %s, BasePath: %s, S3: %+v}, Logging: %+v}",
		c.Server, c.Template, c.DB.Enabled, c.DB.Driver, c.Storage.Type, c.Storage.BasePath, s3, c.Logging)
}
