package errors

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError(t *testing.T) {
	cause := io.ErrUnexpectedEOF
	err := NewParsingError("failed to open workbook", cause).WithContext("path", "a.xlsx")

	assert.Equal(t, "[PARSING] failed to open workbook: unexpected EOF", err.Error())
	assert.Equal(t, "a.xlsx", err.Context["path"])
	assert.True(t, Is(err, io.ErrUnexpectedEOF))

	wrapped := fmt.Errorf("extract invoices: %w", err)
	assert.True(t, IsType(wrapped, ErrTypeParsing))
	assert.False(t, IsType(wrapped, ErrTypeNotFound))
	assert.False(t, IsType(io.EOF, ErrTypeParsing))

	assert.Equal(t, "[NOT_FOUND] sheet \"x\" not found", NewNotFoundError(`sheet "x"`).Error())
}

func TestProblemDetailsMarshal(t *testing.T) {
	problem := NewProblemDetails(http.StatusNotFound, TypeNotFound, "Not Found", "", "/api/x").
		WithExtension("trace_id", "abc").
		WithExtension("status", 200)

	data, err := json.Marshal(problem)
	require.NoError(t, err)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "abc", got["trace_id"])
	assert.Equal(t, float64(404), got["status"], "extensions never override standard fields")
	assert.Equal(t, "/api/x", got["instance"])
	assert.NotContains(t, got, "detail")
}

func TestErrorHandler_HandleError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantType   string
	}{
		{"app not found", NewNotFoundError("dataset orders"), http.StatusNotFound, TypeDataNotFound},
		{"app validation", NewAppValidationError("bad facet"), http.StatusBadRequest, TypeValidation},
		{"app parsing", fmt.Errorf("load: %w", NewParsingError("bad json", io.EOF)), http.StatusInternalServerError, TypeDataCorrupt},
		{"app storage", NewStorageError("disk", nil), http.StatusInternalServerError, TypeInternal},
		{"api validation", ErrValidation("type", "required"), http.StatusBadRequest, TypeValidation},
		{"api not found", NotFoundError("dimension"), http.StatusNotFound, TypeNotFound},
		{"plain error", io.EOF, http.StatusInternalServerError, TypeInternal},
	}

	h := NewErrorHandler(slog.New(slog.NewJSONHandler(io.Discard, nil)), false)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/invoices/stats", nil)

			h.HandleError(rec, req, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantType, body["type"])
			assert.Equal(t, float64(tt.wantStatus), body["status"])
			assert.Equal(t, "/api/invoices/stats", body["instance"])
		})
	}
}

func TestErrorHandler_NilError(t *testing.T) {
	h := NewErrorHandler(slog.New(slog.NewJSONHandler(io.Discard, nil)), false)
	rec := httptest.NewRecorder()

	h.HandleError(rec, httptest.NewRequest(http.MethodGet, "/", nil), nil)

	assert.Equal(t, 0, rec.Body.Len())
}

func TestRecoveryMiddleware(t *testing.T) {
	h := NewErrorHandler(slog.New(slog.NewJSONHandler(io.Discard, nil)), true)
	panicking := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic("boom") })

	rec := httptest.NewRecorder()
	RecoveryMiddleware(h)(panicking).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "boom", body["panic"])
}
