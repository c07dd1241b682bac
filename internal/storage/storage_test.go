package storage

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"attendance_srv/internal/config"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestLocalStorage(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	st, err := NewStorageBuilder(config.Storage{Type: StorageTypeLocal, BasePath: dir}, setupTestLogger()).Build()
	require.NoError(t, err)

	require.NoError(t, st.Save(ctx, "templates/visma.xlsx", strings.NewReader("payload")))

	exists, err := st.Exists(ctx, "templates/visma.xlsx")
	require.NoError(t, err)
	assert.True(t, exists)

	rc, err := st.Get(ctx, "templates/visma.xlsx")
	require.NoError(t, err)
	data, err := io.ReadAll(rc)
	require.NoError(t, rc.Close())
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))

	files, err := st.List(ctx, "templates/")
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "templates/visma.xlsx", files[0].Key)
	assert.Equal(t, int64(7), files[0].Size)

	_, err = os.Stat(filepath.Join(dir, "templates", "visma.xlsx"))
	assert.NoError(t, err)
}

func TestLocalStorageNotFound(t *testing.T) {
	st, err := NewLocalStorage(LocalConfig{BasePath: t.TempDir()})
	require.NoError(t, err)

	_, err = st.Get(context.Background(), "missing.xlsx")
	assert.ErrorIs(t, err, ErrNotFound)

	exists, err := st.Exists(context.Background(), "missing.xlsx")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestValidationMiddlewareRejectsTraversal(t *testing.T) {
	st, err := NewStorageBuilder(config.Storage{Type: StorageTypeLocal, BasePath: t.TempDir()}, nil).Build()
	require.NoError(t, err)

	_, err = st.Get(context.Background(), "../etc/passwd")
	assert.Error(t, err)
	_, err = st.Get(context.Background(), "")
	assert.Error(t, err)
}

func TestLocalConfigRequiresAbsolutePath(t *testing.T) {
	_, err := NewLocalStorage(LocalConfig{BasePath: "relative"})
	assert.Error(t, err)
}

func TestBuildUnsupportedType(t *testing.T) {
	_, err := NewStorageBuilder(config.Storage{Type: "ftp"}, nil).Build()
	assert.Error(t, err)
}

// MockStorage is a mock implementation of the Storage interface
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	args := m.Called(ctx, key)
	rc, _ := args.Get(0).(io.ReadCloser)
	return rc, args.Error(1)
}

func (m *MockStorage) Save(ctx context.Context, key string, reader io.Reader) error {
	args := m.Called(ctx, key, reader)
	return args.Error(0)
}

func (m *MockStorage) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *MockStorage) List(ctx context.Context, prefix string) ([]FileInfo, error) {
	args := m.Called(ctx, prefix)
	return args.Get(0).([]FileInfo), args.Error(1)
}

func (m *MockStorage) ValidateKey(key string) error {
	args := m.Called(key)
	return args.Error(0)
}

func TestRetryMiddlewareRetriesTransientErrors(t *testing.T) {
	inner := new(MockStorage)
	inner.On("Get", mock.Anything, "visma.xlsx").Return(nil, errors.New("connection reset")).Twice()
	inner.On("Get", mock.Anything, "visma.xlsx").Return(io.NopCloser(bytes.NewReader([]byte("ok"))), nil).Once()

	st := NewRetryMiddleware(inner, 3, time.Millisecond, setupTestLogger())
	rc, err := st.Get(context.Background(), "visma.xlsx")
	require.NoError(t, err)
	require.NotNil(t, rc)
	inner.AssertNumberOfCalls(t, "Get", 3)
}

func TestRetryMiddlewareDoesNotRetryNotFound(t *testing.T) {
	inner := new(MockStorage)
	inner.On("Get", mock.Anything, "visma.xlsx").Return(nil, ErrNotFound)

	st := NewRetryMiddleware(inner, 3, time.Millisecond, setupTestLogger())
	_, err := st.Get(context.Background(), "visma.xlsx")
	assert.ErrorIs(t, err, ErrNotFound)
	inner.AssertNumberOfCalls(t, "Get", 1)
}
