package api

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/taskpost-api/internal/api/shared"
	"github.com/phrazzld/taskpost-api/internal/domain"
)

// CreateTaskRequest is the payload of POST /api/tasks.
type CreateTaskRequest struct {
	Title       string  `json:"title"       validate:"required,filled,no_nul,max=255"`
	Description *string `json:"description" validate:"omitnil,no_nul"`
	Status      string  `json:"status"      validate:"omitempty,task_status"`
}

// UpdateTaskRequest is the payload of PUT/PATCH /api/tasks/{id}. Only keys
// present in the payload are validated and applied.
type UpdateTaskRequest struct {
	Title       *string                 `json:"title"       validate:"omitnil,filled,no_nul,max=255"`
	Description domain.Optional[string] `json:"description"`
	Status      *string                 `json:"status"      validate:"omitnil,task_status"`
}

// ValidateFields checks description, which struct tags cannot reach.
func (r *UpdateTaskRequest) ValidateFields(v *domain.ValidationError) {
	validateText(v, "description", r.Description)
}

// Patch converts the request into a domain patch.
func (r *UpdateTaskRequest) Patch() domain.TaskPatch {
	patch := domain.TaskPatch{
		Title:       r.Title,
		Description: r.Description,
	}
	if r.Status != nil {
		// Validated already; an unknown value cannot reach this point.
		if status, err := domain.ParseTaskStatus(*r.Status); err == nil {
			patch.Status = &status
		}
	}
	return patch
}

// TaskResponse is the JSON representation of a task.
type TaskResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func taskToResponse(t *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func tasksToResponse(tasks []*domain.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, taskToResponse(t))
	}
	return out
}

// CreatePostRequest is the payload of POST /api/posts.
type CreatePostRequest struct {
	Title       string                  `json:"title"        validate:"required,filled,no_nul,max=255"`
	Content     string                  `json:"content"      validate:"required,filled,no_nul"`
	Excerpt     *string                 `json:"excerpt"      validate:"omitnil,no_nul"`
	Status      string                  `json:"status"       validate:"required,post_status"`
	Featured    *bool                   `json:"featured"`
	PublishedAt domain.Optional[string] `json:"published_at"`
}

// ValidateFields checks published_at, which struct tags cannot express.
func (r *CreatePostRequest) ValidateFields(v *domain.ValidationError) {
	validatePublishedAt(v, r.PublishedAt)
}

// Fields converts the request into domain input. It assumes the request
// passed validation.
func (r *CreatePostRequest) Fields() domain.PostFields {
	fields := domain.PostFields{
		Title:   r.Title,
		Content: r.Content,
		Excerpt: r.Excerpt,
	}
	fields.Status, _ = domain.ParsePostStatus(r.Status)
	if r.Featured != nil {
		fields.Featured = *r.Featured
	}
	fields.PublishedAt, _ = parsePublishedAt(r.PublishedAt)
	return fields
}

// UpdatePostRequest is the payload of PUT/PATCH /api/posts/{id}.
type UpdatePostRequest struct {
	Title       *string                 `json:"title"        validate:"omitnil,filled,no_nul,max=255"`
	Content     *string                 `json:"content"      validate:"omitnil,filled,no_nul"`
	Excerpt     domain.Optional[string] `json:"excerpt"`
	Status      *string                 `json:"status"       validate:"omitnil,post_status"`
	Featured    *bool                   `json:"featured"`
	PublishedAt domain.Optional[string] `json:"published_at"`
}

// ValidateFields checks excerpt and published_at, which struct tags
// cannot reach.
func (r *UpdatePostRequest) ValidateFields(v *domain.ValidationError) {
	validateText(v, "excerpt", r.Excerpt)
	validatePublishedAt(v, r.PublishedAt)
}

// Patch converts the request into a domain patch. It assumes the request
// passed validation.
func (r *UpdatePostRequest) Patch() domain.PostPatch {
	patch := domain.PostPatch{
		Title:    r.Title,
		Content:  r.Content,
		Excerpt:  r.Excerpt,
		Featured: r.Featured,
	}
	if r.Status != nil {
		if status, err := domain.ParsePostStatus(*r.Status); err == nil {
			patch.Status = &status
		}
	}
	if r.PublishedAt.Set {
		if t, _ := parsePublishedAt(r.PublishedAt); t != nil {
			patch.PublishedAt = domain.Some(*t)
		} else {
			patch.PublishedAt = domain.Null[time.Time]()
		}
	}
	return patch
}

// parsePublishedAt treats absent, null and empty values as no timestamp.
func parsePublishedAt(raw domain.Optional[string]) (*time.Time, error) {
	if !raw.Present() || strings.TrimSpace(raw.Value) == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, strings.TrimSpace(raw.Value))
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func validateText(v *domain.ValidationError, field string, raw domain.Optional[string]) {
	if raw.Present() && shared.ContainsNUL(raw.Value) {
		v.Add(field, domain.MsgInvalid(field))
	}
}

func validatePublishedAt(v *domain.ValidationError, raw domain.Optional[string]) {
	if _, err := parsePublishedAt(raw); err != nil {
		v.Add("published_at", domain.MsgInvalidDate("published_at"))
	}
}

// PostResponse is the JSON representation of a post.
type PostResponse struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	Excerpt     *string    `json:"excerpt"`
	Status      string     `json:"status"`
	Featured    bool       `json:"featured"`
	PublishedAt *time.Time `json:"published_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func postToResponse(p *domain.Post) PostResponse {
	return PostResponse{
		ID:          p.ID,
		Title:       p.Title,
		Content:     p.Content,
		Excerpt:     p.Excerpt,
		Status:      string(p.Status),
		Featured:    p.Featured,
		PublishedAt: p.PublishedAt,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func postsToResponse(posts []*domain.Post) []PostResponse {
	out := make([]PostResponse, 0, len(posts))
	for _, p := range posts {
		out = append(out, postToResponse(p))
	}
	return out
}

// DeleteResponse confirms a hard delete.
type DeleteResponse struct {
	Message   string `json:"message"`
	DeletedID int64  `json:"deleted_id"`
}

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Name     string `json:"name"     validate:"required,filled,no_nul,max=255"`
	Email    string `json:"email"    validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse is the public view of an account.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func userToResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// AuthResponse defines the successful response for authentication endpoints.
type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`

	// ExpiresAt is the RFC 3339 timestamp when the token expires
	ExpiresAt string `json:"expires_at"`
}
