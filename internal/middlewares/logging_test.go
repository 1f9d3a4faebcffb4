package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// the request ID must already be in the context by the time the
		// handler runs
		assert.NotNil(t, r.Context().Value(requestIDKey{}))

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"message":"Skill created"}`))
	})

	req := httptest.NewRequest(http.MethodPost, "/api/skills", nil)
	rec := httptest.NewRecorder()

	LoggingMiddleware(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"message":"Skill created"}`, rec.Body.String())

	reqID := rec.Header().Get("X-Request-ID")
	require.NotEmpty(t, reqID)
	_, err := uuid.Parse(reqID)
	assert.NoError(t, err)
}

func TestLoggingMiddleware_UniqueRequestIDs(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	ids := make(map[string]struct{})
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		LoggingMiddleware(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/skills", nil))
		ids[rec.Header().Get("X-Request-ID")] = struct{}{}
	}

	assert.Len(t, ids, 3)
}

func TestResponseWriterCapturesStatusAndSize(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rec, statusCode: http.StatusOK}

	rw.WriteHeader(http.StatusNotFound)
	n, err := rw.Write([]byte("not found"))

	require.NoError(t, err)
	assert.Equal(t, 9, n)
	assert.Equal(t, http.StatusNotFound, rw.statusCode)
	assert.Equal(t, 9, rw.size)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
