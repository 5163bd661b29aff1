package domain

import (
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// TaskStatus represents the progress state of a task.
type TaskStatus string

// Possible task status values
const (
	TaskStatusPending    TaskStatus = "pendiente"
	TaskStatusInProgress TaskStatus = "en progreso"
	TaskStatusCompleted  TaskStatus = "completada"
)

// DefaultTaskStatus is applied when a task is created without a status.
const DefaultTaskStatus = TaskStatusPending

// MaxTitleLength is the maximum number of characters allowed in a title.
const MaxTitleLength = 255

// Valid reports whether s is one of the declared task statuses.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted:
		return true
	default:
		return false
	}
}

// ParseTaskStatus converts raw input into a TaskStatus.
// An empty string yields DefaultTaskStatus.
func ParseTaskStatus(raw string) (TaskStatus, error) {
	if raw == "" {
		return DefaultTaskStatus, nil
	}
	status := TaskStatus(raw)
	if !status.Valid() {
		return "", ErrInvalidTaskStatus
	}
	return status, nil
}

// Task is a unit of work tracked by the API.
type Task struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Status      TaskStatus `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// TaskPatch describes a partial update. Nil pointers and unset optionals
// leave the corresponding field untouched.
type TaskPatch struct {
	Title       *string
	Description Optional[string]
	Status      *TaskStatus
}

// Empty reports whether the patch changes nothing.
func (p TaskPatch) Empty() bool {
	return p.Title == nil && !p.Description.Set && p.Status == nil
}

// NewTask creates a validated Task. The ID is left at zero; the store
// assigns it on insert. An empty status falls back to DefaultTaskStatus.
// Timestamps are truncated to the microsecond precision Postgres stores.
func NewTask(title string, description *string, status TaskStatus) (*Task, error) {
	if status == "" {
		status = DefaultTaskStatus
	}

	now := time.Now().UTC().Truncate(time.Microsecond)
	task := &Task{
		Title:       strings.TrimSpace(title),
		Description: description,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks the task invariants and returns a *ValidationError keyed
// by JSON field name when any of them is broken.
func (t *Task) Validate() error {
	v := NewFieldErrors()

	validateTitle(v, t.Title)

	if !t.Status.Valid() {
		v.Add("status", MsgInvalidChoice("status"))
	}

	return v.OrNil()
}

// Apply returns a copy of the task with the patch applied and UpdatedAt set
// to now. The receiver is never modified. The result is validated.
func (t *Task) Apply(p TaskPatch, now time.Time) (*Task, error) {
	updated := *t

	if p.Title != nil {
		updated.Title = strings.TrimSpace(*p.Title)
	}
	if p.Description.Set {
		updated.Description = p.Description.Ptr()
	}
	if p.Status != nil {
		updated.Status = *p.Status
	}
	updated.UpdatedAt = now.UTC().Truncate(time.Microsecond)

	if err := updated.Validate(); err != nil {
		return nil, err
	}
	return &updated, nil
}

func validateTitle(v *ValidationError, title string) {
	switch {
	case strings.TrimSpace(title) == "":
		v.Add("title", MsgRequired("title"))
	case utf8.RuneCountInString(title) > MaxTitleLength:
		v.Add("title", MsgMaxLength("title", strconv.Itoa(MaxTitleLength)))
	}
}
