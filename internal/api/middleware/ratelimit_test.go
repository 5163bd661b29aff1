package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/phrazzld/taskpost-api/internal/api/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFixedClockLimiter(rps float64, burst int, now *time.Time) *RateLimiter {
	l := NewRateLimiter(rps, burst)
	l.now = func() time.Time { return *now }
	return l
}

func hit(h http.Handler, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRateLimiter_Middleware(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	l := newFixedClockLimiter(1, 2, &now)
	h := l.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	assert.Equal(t, http.StatusOK, hit(h, "10.0.0.1:1234").Code)
	assert.Equal(t, http.StatusOK, hit(h, "10.0.0.1:1235").Code)

	rec := hit(h, "10.0.0.1:1236")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))
	var body shared.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "Too Many Attempts.", body.Message)

	// Other clients have their own bucket.
	assert.Equal(t, http.StatusOK, hit(h, "10.0.0.2:1234").Code)

	// A rejected request does not consume a token.
	now = now.Add(time.Second)
	assert.Equal(t, http.StatusOK, hit(h, "10.0.0.1:1234").Code)
}

func TestRateLimiter_Cleanup(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	l := newFixedClockLimiter(5, 5, &now)
	h := l.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	hit(h, "10.0.0.1:1")
	now = now.Add(30 * time.Second)
	hit(h, "10.0.0.2:1")
	now = now.Add(45 * time.Second)

	assert.Equal(t, 1, l.Cleanup())
	assert.Equal(t, 0, l.Cleanup())
}
