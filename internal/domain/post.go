package domain

import (
	"strings"
	"time"
)

// PostStatus represents the publication state of a post.
type PostStatus string

// Possible post status values
const (
	PostStatusDraft     PostStatus = "draft"
	PostStatusPublished PostStatus = "published"
)

// Valid reports whether s is one of the declared post statuses.
func (s PostStatus) Valid() bool {
	switch s {
	case PostStatusDraft, PostStatusPublished:
		return true
	default:
		return false
	}
}

// ParsePostStatus converts raw input into a PostStatus.
// Unlike tasks, posts have no default status.
func ParsePostStatus(raw string) (PostStatus, error) {
	status := PostStatus(raw)
	if !status.Valid() {
		return "", ErrInvalidPostStatus
	}
	return status, nil
}

// Post is a blog-style article.
type Post struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	Excerpt     *string    `json:"excerpt"`
	Status      PostStatus `json:"status"`
	Featured    bool       `json:"featured"`
	PublishedAt *time.Time `json:"published_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// PostFields carries the caller-supplied attributes of a new post.
type PostFields struct {
	Title       string
	Content     string
	Excerpt     *string
	Status      PostStatus
	Featured    bool
	PublishedAt *time.Time
}

// PostPatch describes a partial update of a post.
type PostPatch struct {
	Title       *string
	Content     *string
	Excerpt     Optional[string]
	Status      *PostStatus
	Featured    *bool
	PublishedAt Optional[time.Time]
}

// NewPost creates a validated Post from the supplied fields.
func NewPost(f PostFields) (*Post, error) {
	now := time.Now().UTC().Truncate(time.Microsecond)
	post := &Post{
		Title:       strings.TrimSpace(f.Title),
		Content:     strings.TrimSpace(f.Content),
		Excerpt:     f.Excerpt,
		Status:      f.Status,
		Featured:    f.Featured,
		PublishedAt: utcPtr(f.PublishedAt),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := post.Validate(); err != nil {
		return nil, err
	}
	return post, nil
}

// Validate checks the post invariants.
func (p *Post) Validate() error {
	v := NewFieldErrors()

	validateTitle(v, p.Title)

	if strings.TrimSpace(p.Content) == "" {
		v.Add("content", MsgRequired("content"))
	}

	if p.Status == "" {
		v.Add("status", MsgRequired("status"))
	} else if !p.Status.Valid() {
		v.Add("status", MsgInvalidChoice("status"))
	}

	return v.OrNil()
}

// Apply returns a copy of the post with the patch applied.
func (p *Post) Apply(patch PostPatch, now time.Time) (*Post, error) {
	updated := *p

	if patch.Title != nil {
		updated.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Content != nil {
		updated.Content = strings.TrimSpace(*patch.Content)
	}
	if patch.Excerpt.Set {
		updated.Excerpt = patch.Excerpt.Ptr()
	}
	if patch.Status != nil {
		updated.Status = *patch.Status
	}
	if patch.Featured != nil {
		updated.Featured = *patch.Featured
	}
	if patch.PublishedAt.Set {
		updated.PublishedAt = utcPtr(patch.PublishedAt.Ptr())
	}
	updated.UpdatedAt = now.UTC().Truncate(time.Microsecond)

	if err := updated.Validate(); err != nil {
		return nil, err
	}
	return &updated, nil
}

// utcPtr normalizes a timestamp to UTC at the microsecond precision
// Postgres stores, so the stored row and the returned post agree.
func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC().Truncate(time.Microsecond)
	return &u
}
