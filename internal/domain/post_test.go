package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePostStatus(t *testing.T) {
	for _, s := range []PostStatus{PostStatusDraft, PostStatusPublished} {
		got, err := ParsePostStatus(string(s))
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	for _, raw := range []string{"", "invalid_status", "archived", "Published"} {
		_, err := ParsePostStatus(raw)
		assert.ErrorIs(t, err, ErrInvalidPostStatus, "raw=%q", raw)
	}
}

func TestNewPost(t *testing.T) {
	publishedAt := time.Date(2025, time.June, 2, 10, 30, 0, 0, time.FixedZone("CEST", 2*60*60))

	t.Run("valid post", func(t *testing.T) {
		post, err := NewPost(PostFields{
			Title:       "Test Post Title",
			Content:     "This is test content for the post",
			Excerpt:     strPtr("Test excerpt"),
			Status:      PostStatusPublished,
			Featured:    true,
			PublishedAt: &publishedAt,
		})
		require.NoError(t, err)
		assert.Equal(t, "Test Post Title", post.Title)
		assert.True(t, post.Featured)
		require.NotNil(t, post.PublishedAt)
		assert.Equal(t, time.UTC, post.PublishedAt.Location())
		assert.True(t, publishedAt.Equal(*post.PublishedAt))
	})

	t.Run("published_at is stored at microsecond precision", func(t *testing.T) {
		precise := time.Date(2025, time.June, 2, 10, 30, 0, 123456789, time.FixedZone("CEST", 2*60*60))
		post, err := NewPost(PostFields{Title: "t", Content: "c", Status: PostStatusPublished, PublishedAt: &precise})
		require.NoError(t, err)
		require.NotNil(t, post.PublishedAt)
		assert.Equal(t, 123456000, post.PublishedAt.Nanosecond())
		assert.Equal(t, time.UTC, post.PublishedAt.Location())
		assert.Equal(t, post.CreatedAt, post.CreatedAt.Truncate(time.Microsecond))
	})

	t.Run("nullable excerpt and defaults", func(t *testing.T) {
		post, err := NewPost(PostFields{Title: "t", Content: "c", Status: PostStatusDraft})
		require.NoError(t, err)
		assert.Nil(t, post.Excerpt)
		assert.False(t, post.Featured)
		assert.Nil(t, post.PublishedAt)
	})

	t.Run("missing fields are all reported", func(t *testing.T) {
		_, err := NewPost(PostFields{})
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Contains(t, vErr.Fields, "title")
		assert.Contains(t, vErr.Fields, "content")
		assert.Equal(t, []string{"The status field is required."}, vErr.Fields["status"])
	})

	t.Run("invalid status", func(t *testing.T) {
		_, err := NewPost(PostFields{Title: "t", Content: "c", Status: "invalid_status"})
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, []string{"The selected status is invalid."}, vErr.Fields["status"])
	})
}

func TestPost_Apply(t *testing.T) {
	base := &Post{
		ID:        3,
		Title:     "Original Title",
		Content:   "Original content",
		Excerpt:   strPtr("short"),
		Status:    PostStatusDraft,
		CreatedAt: time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
	}
	now := time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC)

	t.Run("partial update", func(t *testing.T) {
		featured := true
		updated, err := base.Apply(PostPatch{Title: strPtr("Updated Title"), Featured: &featured}, now)
		require.NoError(t, err)
		assert.Equal(t, "Updated Title", updated.Title)
		assert.Equal(t, "Original content", updated.Content)
		assert.Equal(t, "short", *updated.Excerpt)
		assert.True(t, updated.Featured)
		assert.Equal(t, now, updated.UpdatedAt)
	})

	t.Run("clears nullable fields", func(t *testing.T) {
		withDate := *base
		ts := now
		withDate.PublishedAt = &ts
		updated, err := withDate.Apply(PostPatch{Excerpt: Null[string](), PublishedAt: Null[time.Time]()}, now)
		require.NoError(t, err)
		assert.Nil(t, updated.Excerpt)
		assert.Nil(t, updated.PublishedAt)
	})

	t.Run("truncates published_at to microseconds", func(t *testing.T) {
		precise := time.Date(2025, time.March, 4, 5, 6, 7, 999999999, time.UTC)
		updated, err := base.Apply(PostPatch{PublishedAt: Some(precise)}, now)
		require.NoError(t, err)
		require.NotNil(t, updated.PublishedAt)
		assert.Equal(t, precise.Truncate(time.Microsecond), *updated.PublishedAt)
		assert.Equal(t, 999999000, updated.PublishedAt.Nanosecond())
	})

	t.Run("rejects empty content", func(t *testing.T) {
		_, err := base.Apply(PostPatch{Content: strPtr(" ")}, now)
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Contains(t, vErr.Fields, "content")
	})
}
