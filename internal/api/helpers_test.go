package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// newTaskPostRouter mounts the resource routes the way the server does.
func newTaskPostRouter(tasks *TaskHandler, posts *PostHandler) http.Handler {
	r := chi.NewRouter()
	if tasks != nil {
		r.Route("/api/tasks", func(r chi.Router) {
			r.Get("/", tasks.ListTasks)
			r.Post("/", tasks.CreateTask)
			r.Get("/{id}", tasks.GetTask)
			r.Put("/{id}", tasks.UpdateTask)
			r.Patch("/{id}", tasks.UpdateTask)
			r.Delete("/{id}", tasks.DeleteTask)
		})
	}
	if posts != nil {
		r.Route("/api/posts", func(r chi.Router) {
			r.Get("/", posts.ListPosts)
			r.Post("/", posts.CreatePost)
			r.Get("/{id}", posts.GetPost)
			r.Put("/{id}", posts.UpdatePost)
			r.Patch("/{id}", posts.UpdatePost)
			r.Delete("/{id}", posts.DeletePost)
		})
	}
	return r
}

func doRequest(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func doJSON(t *testing.T, h http.Handler, method, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(payload))
	return doRequest(t, h, method, path, buf.String())
}

// envelope is a loose view of every response shape.
type envelope struct {
	Data      json.RawMessage     `json:"data"`
	Message   string              `json:"message"`
	Errors    map[string][]string `json:"errors"`
	DeletedID int64               `json:"deleted_id"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return env
}

func stringsReader(s string) io.Reader {
	return strings.NewReader(s)
}
