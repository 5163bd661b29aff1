package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/taskpost-api/internal/api/shared"
	"github.com/phrazzld/taskpost-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecoverer(t *testing.T) {
	t.Run("panic becomes a 500 envelope", func(t *testing.T) {
		log, buf := logger.GetTestLogger(t)
		h := Recoverer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			panic("nil map write in postgres://admin:hunter2@db:5432/app")
		}))

		req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
		ctx := shared.WithTraceID(logger.WithLogger(req.Context(), log), "trace-123")
		rec := httptest.NewRecorder()
		require.NotPanics(t, func() { h.ServeHTTP(rec, req.WithContext(ctx)) })

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"message":"An unexpected error occurred","trace_id":"trace-123"}`, rec.Body.String())
		assert.NotContains(t, rec.Body.String(), "hunter2")

		entries, err := buf.GetLogEntries()
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, slog.LevelError.String(), entries[0]["level"])
		assert.Contains(t, entries[0]["error"], "panic: nil map write")
		assert.NotContains(t, buf.String(), "hunter2")
	})

	t.Run("no panic passes through", func(t *testing.T) {
		h := Recoverer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		}))

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusTeapot, rec.Code)
	})

	t.Run("abort handler panic is re-raised", func(t *testing.T) {
		h := Recoverer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			panic(http.ErrAbortHandler)
		}))

		assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
			h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		})
	})
}
