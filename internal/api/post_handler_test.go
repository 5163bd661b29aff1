package api

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/phrazzld/taskpost-api/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPostTestServer(t *testing.T) http.Handler {
	t.Helper()
	return newTaskPostRouter(nil, NewPostHandler(mocks.NewMockPostService(), discardLogger()))
}

func decodePost(t *testing.T, env envelope) PostResponse {
	t.Helper()
	var post PostResponse
	require.NoError(t, json.Unmarshal(env.Data, &post))
	return post
}

const validPostBody = `{"title":"Test Post Title","content":"This is test content for the post","status":"published"}`

func TestPostHandler_Create(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		h := newPostTestServer(t)

		rec := doRequest(t, h, http.MethodPost, "/api/posts", validPostBody)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		post := decodePost(t, decodeEnvelope(t, rec))
		assert.Equal(t, int64(1), post.ID)
		assert.Equal(t, "published", post.Status)
		assert.False(t, post.Featured)
		assert.Nil(t, post.Excerpt)
		assert.Nil(t, post.PublishedAt, "publishing does not fill published_at")
	})

	t.Run("all fields", func(t *testing.T) {
		h := newPostTestServer(t)

		rec := doRequest(t, h, http.MethodPost, "/api/posts", `{
			"title":"T","content":"C","excerpt":"E","status":"draft",
			"featured":true,"published_at":"2025-01-15T10:30:00+02:00"}`)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		post := decodePost(t, decodeEnvelope(t, rec))
		require.NotNil(t, post.Excerpt)
		assert.Equal(t, "E", *post.Excerpt)
		assert.True(t, post.Featured)
		require.NotNil(t, post.PublishedAt)
		assert.True(t, post.PublishedAt.Equal(time.Date(2025, 1, 15, 8, 30, 0, 0, time.UTC)))
	})

	t.Run("empty published_at is null", func(t *testing.T) {
		h := newPostTestServer(t)
		rec := doRequest(t, h, http.MethodPost, "/api/posts",
			`{"title":"T","content":"C","status":"draft","published_at":""}`)
		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Nil(t, decodePost(t, decodeEnvelope(t, rec)).PublishedAt)
	})

	t.Run("validation failures", func(t *testing.T) {
		tests := []struct {
			name      string
			body      string
			wantField string
			wantMsg   string
		}{
			{"missing title", `{"content":"C","status":"draft"}`, "title", "The title field is required."},
			{"missing content", `{"title":"T","status":"draft"}`, "content", "The content field is required."},
			{"missing status", `{"title":"T","content":"C"}`, "status", "The status field is required."},
			{"invalid status", `{"title":"T","content":"C","status":"invalid_status"}`, "status",
				"The selected status is invalid."},
			{"bad published_at", `{"title":"T","content":"C","status":"draft","published_at":"yesterday"}`,
				"published_at", "The published at field must be a valid date."},
			{"featured wrong type", `{"title":"T","content":"C","status":"draft","featured":"yes"}`,
				"featured", "The featured field must be true or false."},
			{"NUL in content", `{"title":"T","content":"C\u0000","status":"draft"}`,
				"content", "The content field is invalid."},
			{"NUL in excerpt", `{"title":"T","content":"C","excerpt":"\u0000","status":"draft"}`,
				"excerpt", "The excerpt field is invalid."},
		}

		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				rec := doRequest(t, newPostTestServer(t), http.MethodPost, "/api/posts", tc.body)
				require.Equal(t, http.StatusUnprocessableEntity, rec.Code, rec.Body.String())
				assert.Equal(t, []string{tc.wantMsg}, decodeEnvelope(t, rec).Errors[tc.wantField])
			})
		}
	})
}

func TestPostHandler_ListShowUpdateDelete(t *testing.T) {
	h := newPostTestServer(t)

	rec := doRequest(t, h, http.MethodGet, "/api/posts", "")
	assert.JSONEq(t, `{"data":[]}`, rec.Body.String())

	require.Equal(t, http.StatusCreated, doRequest(t, h, http.MethodPost, "/api/posts", validPostBody).Code)
	require.Equal(t, http.StatusCreated, doRequest(t, h, http.MethodPost, "/api/posts", validPostBody).Code)

	var posts []PostResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, doRequest(t, h, http.MethodGet, "/api/posts", "")).Data, &posts))
	assert.Len(t, posts, 2)

	rec = doRequest(t, h, http.MethodPatch, "/api/posts/1", `{"status":"draft","excerpt":"short"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decodePost(t, decodeEnvelope(t, rec))
	assert.Equal(t, "draft", updated.Status)
	assert.Equal(t, "Test Post Title", updated.Title)

	rec = doRequest(t, h, http.MethodPut, "/api/posts/1", `{"excerpt":null,"published_at":null}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, decodePost(t, decodeEnvelope(t, rec)).Excerpt)

	rec = doRequest(t, h, http.MethodPut, "/api/posts/1", `{"content":""}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = doRequest(t, h, http.MethodPatch, "/api/posts/1", `{"excerpt":"a\u0000b"}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, []string{"The excerpt field is invalid."}, decodeEnvelope(t, rec).Errors["excerpt"])

	rec = doRequest(t, h, http.MethodPatch, "/api/posts/1", `{"published_at":"2025-01-15T10:30:00.123456789Z"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	publishedAt := decodePost(t, decodeEnvelope(t, rec)).PublishedAt
	require.NotNil(t, publishedAt)
	assert.Equal(t, 123456000, publishedAt.Nanosecond())

	rec = doRequest(t, h, http.MethodDelete, "/api/posts/2", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Post deleted successfully","deleted_id":2}`, rec.Body.String())

	for _, path := range []string{"/api/posts/2", "/api/posts/99999", "/api/posts/abc"} {
		rec := doRequest(t, h, http.MethodGet, path, "")
		assert.Equal(t, http.StatusNotFound, rec.Code, path)
		assert.JSONEq(t, `{"message":"Post not found"}`, rec.Body.String(), path)
	}
	assert.Equal(t, http.StatusNotFound, doRequest(t, h, http.MethodDelete, "/api/posts/2", "").Code)
	assert.Equal(t, http.StatusNotFound, doRequest(t, h, http.MethodPut, "/api/posts/2", `{"title":"x"}`).Code)
}
