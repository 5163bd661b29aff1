package service

import (
	"errors"
	"log/slog"

	"github.com/phrazzld/taskpost-api/internal/domain"
	"github.com/phrazzld/taskpost-api/internal/store"
)

func wrapEntityError(log *slog.Logger, entity, op string, id int64, err error) error {
	attrs := []any{slog.Int64(entity+"_id", id), slog.String("error", err.Error())}

	switch {
	case errors.Is(err, domain.ErrValidation):
		log.Debug(entity+" "+op+" rejected", attrs...)
		return err
	case store.IsNotFoundError(err):
		log.Debug(entity+" not found", attrs...)
		return NewServiceError(entity, op, entity+" not found", err)
	default:
		log.Error("failed to "+op+" "+entity, attrs...)
		return NewServiceError(entity, op, "failed to "+op+" "+entity, err)
	}
}
