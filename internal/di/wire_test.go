package di

import (
	"testing"

	"attendance_srv/internal/config"
	"attendance_srv/internal/server"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

func TestModuleResolves(t *testing.T) {
	cfg := config.Config{
		Server:   config.Server{Host: "127.0.0.1", Port: 4999},
		Template: config.Template{Name: "visma.xlsx", Sheet: "EG7"},
		Storage:  config.Storage{Type: "local", BasePath: t.TempDir()},
		Logging:  config.Logging{Level: "error", Format: "text"},
	}

	var srv server.HTTPServer
	app := fx.New(
		fx.NopLogger,
		fx.Supply(cfg),
		Module,
		fx.Populate(&srv),
	)
	require.NoError(t, app.Err())
	assert.NotNil(t, srv)
}

func TestNewGenerationLogDisabled(t *testing.T) {
	log, closeFn, err := NewGenerationLog(config.Config{})
	require.NoError(t, err)
	assert.Nil(t, log)
	assert.NoError(t, closeFn())
}

func TestNewGenerationLogSQLite(t *testing.T) {
	log, closeFn, err := NewGenerationLog(config.Config{DB: config.DB{Enabled: true, Driver: "sqlite", DSN: ":memory:"}})
	require.NoError(t, err)
	assert.NotNil(t, log)
	assert.NoError(t, closeFn())
}
