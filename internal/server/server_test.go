package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"attendance_srv/internal/config"
	"attendance_srv/internal/domain/timesheet"
	"attendance_srv/internal/infrastructure/template"
	httpapi "attendance_srv/internal/interface/http"
	"attendance_srv/internal/storage"
	"attendance_srv/internal/usecase"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// MockGenerator is a mock implementation of the Generator interface
type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) Generate(ctx context.Context, req timesheet.ReportRequest) ([]byte, error) {
	args := m.Called(ctx, req)
	data, _ := args.Get(0).([]byte)
	return data, args.Error(1)
}

func setupTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newTestServer(gen httpapi.Generator) *Server {
	logger := setupTestLogger()
	return NewServer(config.Config{}, httpapi.NewHandler(gen, logger), logger)
}

func do(t *testing.T, srv *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

const validBody = `{"officeName": "Lund", "dateFrom": "2023-05-01", "dateTo": "2023-05-31",
	"items": [{"uid": 7, "name": "Alice", "time_offs": {"1": "V"}}]}`

func TestGenerateSuccess(t *testing.T) {
	gen := new(MockGenerator)
	gen.On("Generate", mock.Anything, mock.MatchedBy(func(r timesheet.ReportRequest) bool {
		return r.OfficeName == "Lund" && len(r.Items) == 1
	})).Return([]byte("PK-xlsx"), nil)

	rec := do(t, newTestServer(gen), http.MethodPost, "/generate", validBody)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, template.ContentType, rec.Header().Get("Content-Type"))
	assert.Equal(t, "PK-xlsx", rec.Body.String())
	gen.AssertExpectations(t)
}

func TestGenerateMalformedJSON(t *testing.T) {
	gen := new(MockGenerator)
	rec := do(t, newTestServer(gen), http.MethodPost, "/generate", `{"officeName": `)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body["error"])
	gen.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
}

func TestGenerateServiceError(t *testing.T) {
	gen := new(MockGenerator)
	gen.On("Generate", mock.Anything, mock.Anything).Return(nil, errors.New("template structure error: sheet \"EG7\""))

	rec := do(t, newTestServer(gen), http.MethodPost, "/generate", validBody)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error": "template structure error: sheet \"EG7\""}`, rec.Body.String())
}

func TestUnknownRoute(t *testing.T) {
	srv := newTestServer(new(MockGenerator))

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/"},
		{http.MethodPost, "/reports"},
		{http.MethodPost, "/health"},
	} {
		rec := do(t, srv, tc.method, tc.path, "")
		assert.Equal(t, http.StatusNotFound, rec.Code, tc.path)
		assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
		assert.Equal(t, "Not Found", rec.Body.String())
	}
}

func TestGenerateOtherMethods(t *testing.T) {
	gen := new(MockGenerator)
	srv := newTestServer(gen)

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete, http.MethodPatch} {
		rec := do(t, srv, method, "/generate", "")
		assert.Equal(t, http.StatusInternalServerError, rec.Code, method)
		assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.NotEmpty(t, body["error"], method)
	}
	gen.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
}

func TestGenerateBodyTooLarge(t *testing.T) {
	gen := new(MockGenerator)
	logger := setupTestLogger()
	cfg := config.Config{Server: config.Server{BodyLimit: "1K"}}
	srv := NewServer(cfg, httpapi.NewHandler(gen, logger), logger)

	body := `{"officeName": "` + strings.Repeat("a", 4096) + `"}`
	rec := do(t, srv, http.MethodPost, "/generate", body)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error": "Request Entity Too Large"}`, rec.Body.String())
	gen.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
}

func TestHealthCheck(t *testing.T) {
	rec := do(t, newTestServer(new(MockGenerator)), http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestGenerateEndToEnd(t *testing.T) {
	logger := setupTestLogger()

	wb := excelize.NewFile()
	require.NoError(t, wb.SetSheetName("Sheet1", timesheet.SheetName))
	tmpl, err := wb.WriteToBuffer()
	require.NoError(t, err)

	st, err := storage.NewLocalStorage(storage.LocalConfig{BasePath: t.TempDir()})
	require.NoError(t, err)
	require.NoError(t, st.Save(context.Background(), "visma.xlsx", tmpl))

	svc := usecase.NewReportService(template.NewStorageSource(st, false, logger), nil, "visma.xlsx", logger)
	srv := NewServer(config.Config{}, httpapi.NewHandler(svc, logger), logger)

	rec := do(t, srv, http.MethodPost, "/generate", validBody)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	out, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	defer out.Close()

	name, err := out.GetCellValue(timesheet.SheetName, "B11")
	require.NoError(t, err)
	assert.Equal(t, "Alice", name)

	month, err := out.GetCellValue(timesheet.SheetName, "C6")
	require.NoError(t, err)
	assert.Equal(t, "Maj", month)

	rec = do(t, srv, http.MethodPost, "/generate", `{"dateFrom": "bad", "dateTo": "2023-05-31", "items": []}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid date range")
}
