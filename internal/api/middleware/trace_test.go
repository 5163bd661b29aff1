package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/taskpost-api/internal/api/shared"
	"github.com/phrazzld/taskpost-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestTraceMiddleware_GeneratesTraceID(t *testing.T) {
	log, buf := logger.GetTestLogger(t)

	var seen string
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(TraceMiddleware(log))
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		seen = shared.GetTraceID(r.Context())
		w.WriteHeader(http.StatusTeapot)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Len(t, seen, 32)
	assert.Equal(t, seen, rec.Header().Get(TraceIDHeader))

	entries, err := buf.GetLogEntries()
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	last := entries[len(entries)-1]
	assert.Equal(t, "request completed", last["msg"])
	assert.Equal(t, seen, last["trace_id"])
	assert.Equal(t, float64(http.StatusTeapot), last["status"])
	assert.NotEmpty(t, last["request_id"])
}

func TestTraceMiddleware_ReusesSpanTraceID(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	log, _ := logger.GetTestLogger(t)

	var seen string
	r := chi.NewRouter()
	r.Use(Tracing(tp))
	r.Use(TraceMiddleware(log))
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		seen = shared.GetTraceID(r.Context())
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, spans[0].SpanContext.TraceID().String(), seen)
	assert.Equal(t, seen, rec.Header().Get(TraceIDHeader))
}
