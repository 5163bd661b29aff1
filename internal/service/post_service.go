package service

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/phrazzld/taskpost-api/internal/domain"
	"github.com/phrazzld/taskpost-api/internal/platform/logger"
	"github.com/phrazzld/taskpost-api/internal/store"
)

// PostService provides the post use cases. Its semantics mirror TaskService.
type PostService interface {
	CreatePost(ctx context.Context, fields domain.PostFields) (*domain.Post, error)
	ListPosts(ctx context.Context) ([]*domain.Post, error)
	GetPost(ctx context.Context, id int64) (*domain.Post, error)
	UpdatePost(ctx context.Context, id int64, patch domain.PostPatch) (*domain.Post, error)
	DeletePost(ctx context.Context, id int64) error
}

type postServiceImpl struct {
	posts    store.PostStore
	db       *sql.DB
	logger   *slog.Logger
	timeFunc func() time.Time
}

// NewPostService creates a PostService.
func NewPostService(posts store.PostStore, db *sql.DB, logger *slog.Logger) (PostService, error) {
	if posts == nil {
		return nil, domain.NewValidationError("posts", "cannot be nil", domain.ErrValidation)
	}
	if db == nil {
		return nil, domain.NewValidationError("db", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &postServiceImpl{
		posts:    posts,
		db:       db,
		logger:   logger.With(slog.String("component", "post_service")),
		timeFunc: time.Now,
	}, nil
}

func (s *postServiceImpl) CreatePost(ctx context.Context, fields domain.PostFields) (*domain.Post, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	post, err := domain.NewPost(fields)
	if err != nil {
		log.Debug("invalid post", slog.String("error", err.Error()))
		return nil, err
	}

	if err := s.posts.Create(ctx, post); err != nil {
		log.Error("failed to save post", slog.String("error", err.Error()))
		return nil, NewServiceError("post", "create", "failed to save post", err)
	}

	log.Info("post created",
		slog.Int64("post_id", post.ID),
		slog.String("status", string(post.Status)),
		slog.Bool("featured", post.Featured))
	return post, nil
}

func (s *postServiceImpl) ListPosts(ctx context.Context) ([]*domain.Post, error) {
	posts, err := s.posts.List(ctx)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).
			Error("failed to list posts", slog.String("error", err.Error()))
		return nil, NewServiceError("post", "list", "failed to list posts", err)
	}
	return posts, nil
}

func (s *postServiceImpl) GetPost(ctx context.Context, id int64) (*domain.Post, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, wrapEntityError(logger.FromContextOrDefault(ctx, s.logger), "post", "get", id, err)
	}
	return post, nil
}

func (s *postServiceImpl) UpdatePost(ctx context.Context, id int64, patch domain.PostPatch) (*domain.Post, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var updated *domain.Post
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txPosts := s.posts.WithTx(tx)

		current, err := txPosts.GetByID(ctx, id)
		if err != nil {
			return err
		}

		next, err := current.Apply(patch, s.timeFunc())
		if err != nil {
			return err
		}

		if err := txPosts.Update(ctx, next); err != nil {
			return err
		}
		updated = next
		return nil
	})
	if err != nil {
		return nil, wrapEntityError(log, "post", "update", id, err)
	}

	log.Info("post updated", slog.Int64("post_id", id))
	return updated, nil
}

func (s *postServiceImpl) DeletePost(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.posts.Delete(ctx, id); err != nil {
		return wrapEntityError(log, "post", "delete", id, err)
	}
	log.Info("post deleted", slog.Int64("post_id", id))
	return nil
}
