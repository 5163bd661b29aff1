package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/taskpost-api/internal/domain"
)

// PostStore defines the interface for post persistence. Its contract
// mirrors TaskStore, returning ErrPostNotFound for missing rows.
type PostStore interface {
	Create(ctx context.Context, post *domain.Post) error
	List(ctx context.Context) ([]*domain.Post, error)
	GetByID(ctx context.Context, id int64) (*domain.Post, error)
	Update(ctx context.Context, post *domain.Post) error
	Delete(ctx context.Context, id int64) error
	WithTx(tx *sql.Tx) PostStore
}
