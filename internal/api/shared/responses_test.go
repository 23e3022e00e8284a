package shared

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/savori/savory-api/internal/store"
)

func TestRespondWithData(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()

	RespondWithData(rec, req, http.StatusCreated, map[string]string{"name": "x"}, "created")

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var env Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.False(t, env.Error)
	assert.Equal(t, "created", env.Message)
	assert.Nil(t, env.Pagination)
}

func TestRespondWithPage(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/api/todos/get", nil)
	rec := httptest.NewRecorder()

	RespondWithPage(rec, req, []string{"a", "b"}, store.NewPagination(12, 5, 2))

	var env Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.False(t, env.Error)
	require.NotNil(t, env.Pagination)
	assert.Equal(t, int64(12), env.Pagination.TotalItems)
	assert.Equal(t, int64(3), env.Pagination.TotalPages)
	assert.Equal(t, 2, env.Pagination.CurrentPage)
}

func TestRespondWithError_IncludesTraceID(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/api/todos", nil)
	ctx := context.WithValue(req.Context(), TraceIDKey, "trace-123")
	req = req.WithContext(ctx)
	rec := httptest.NewRecorder()

	RespondWithError(rec, req, http.StatusNotFound, "Todo not found")

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var env Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.True(t, env.Error)
	assert.Equal(t, "Todo not found", env.Message)
	assert.Equal(t, "trace-123", env.TraceID)
}

func TestTraceIDContext(t *testing.T) {
	t.Parallel()

	assert.Empty(t, GetTraceID(context.Background()))

	ctx := SetTraceID(context.Background())
	traceID := GetTraceID(ctx)
	assert.Len(t, traceID, TraceIDLength*2)
}
