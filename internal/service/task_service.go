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

// TaskService provides the task use cases.
type TaskService interface {
	CreateTask(ctx context.Context, title string, description *string, status domain.TaskStatus) (*domain.Task, error)
	ListTasks(ctx context.Context) ([]*domain.Task, error)
	GetTask(ctx context.Context, id int64) (*domain.Task, error)
	// UpdateTask applies patch to the stored task inside a transaction and
	// returns the stored result. Concurrent updates are last-writer-wins.
	UpdateTask(ctx context.Context, id int64, patch domain.TaskPatch) (*domain.Task, error)
	DeleteTask(ctx context.Context, id int64) error
}

type taskServiceImpl struct {
	tasks    store.TaskStore
	db       *sql.DB
	logger   *slog.Logger
	timeFunc func() time.Time
}

// NewTaskService creates a TaskService. db is used only to open
// transactions for updates.
func NewTaskService(tasks store.TaskStore, db *sql.DB, logger *slog.Logger) (TaskService, error) {
	if tasks == nil {
		return nil, domain.NewValidationError("tasks", "cannot be nil", domain.ErrValidation)
	}
	if db == nil {
		return nil, domain.NewValidationError("db", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &taskServiceImpl{
		tasks:    tasks,
		db:       db,
		logger:   logger.With(slog.String("component", "task_service")),
		timeFunc: time.Now,
	}, nil
}

func (s *taskServiceImpl) CreateTask(
	ctx context.Context,
	title string,
	description *string,
	status domain.TaskStatus,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := domain.NewTask(title, description, status)
	if err != nil {
		log.Debug("invalid task", slog.String("error", err.Error()))
		return nil, err
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		log.Error("failed to save task", slog.String("error", err.Error()))
		return nil, NewServiceError("task", "create", "failed to save task", err)
	}

	log.Info("task created", slog.Int64("task_id", task.ID), slog.String("status", string(task.Status)))
	return task, nil
}

func (s *taskServiceImpl) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	tasks, err := s.tasks.List(ctx)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).
			Error("failed to list tasks", slog.String("error", err.Error()))
		return nil, NewServiceError("task", "list", "failed to list tasks", err)
	}
	return tasks, nil
}

func (s *taskServiceImpl) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, s.wrap(ctx, "get", id, err)
	}
	return task, nil
}

func (s *taskServiceImpl) UpdateTask(ctx context.Context, id int64, patch domain.TaskPatch) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var updated *domain.Task
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txTasks := s.tasks.WithTx(tx)

		current, err := txTasks.GetByID(ctx, id)
		if err != nil {
			return err
		}

		next, err := current.Apply(patch, s.timeFunc())
		if err != nil {
			return err
		}

		if err := txTasks.Update(ctx, next); err != nil {
			return err
		}
		updated = next
		return nil
	})
	if err != nil {
		return nil, s.wrap(ctx, "update", id, err)
	}

	log.Info("task updated", slog.Int64("task_id", id))
	return updated, nil
}

func (s *taskServiceImpl) DeleteTask(ctx context.Context, id int64) error {
	if err := s.tasks.Delete(ctx, id); err != nil {
		return s.wrap(ctx, "delete", id, err)
	}
	logger.FromContextOrDefault(ctx, s.logger).Info("task deleted", slog.Int64("task_id", id))
	return nil
}

// wrap logs err at a level matching its kind and wraps it for the caller.
// Validation errors pass through untouched.
func (s *taskServiceImpl) wrap(ctx context.Context, op string, id int64, err error) error {
	return wrapEntityError(logger.FromContextOrDefault(ctx, s.logger), "task", op, id, err)
}
