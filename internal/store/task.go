package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/taskpost-api/internal/domain"
)

// TaskStore defines the interface for task persistence.
type TaskStore interface {
	// Create inserts the task with the timestamps it already carries and
	// sets its ID from the inserted row.
	Create(ctx context.Context, task *domain.Task) error

	// List returns every task ordered by ID. It never returns a nil slice.
	List(ctx context.Context) ([]*domain.Task, error)

	// GetByID returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Task, error)

	// Update writes all mutable columns of the task.
	// Returns ErrTaskNotFound if no row has the task's ID.
	Update(ctx context.Context, task *domain.Task) error

	// Delete permanently removes the task.
	// Returns ErrTaskNotFound if the task does not exist.
	Delete(ctx context.Context, id int64) error

	// WithTx returns a TaskStore bound to the given transaction.
	WithTx(tx *sql.Tx) TaskStore
}
