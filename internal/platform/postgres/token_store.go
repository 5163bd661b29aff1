package postgres

import (
	"context"
	"log/slog"
	"time"

	"github.com/phrazzld/taskpost-api/internal/platform/logger"
	"github.com/phrazzld/taskpost-api/internal/store"
)

// PostgresTokenStore implements store.TokenStore on the revoked_tokens table.
type PostgresTokenStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresTokenStore creates a token store over db.
func NewPostgresTokenStore(db store.DBTX, logger *slog.Logger) *PostgresTokenStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresTokenStore{
		db:     db,
		logger: logger.With(slog.String("component", "token_store")),
	}
}

var _ store.TokenStore = (*PostgresTokenStore)(nil)

func (s *PostgresTokenStore) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO revoked_tokens (jti, expires_at)
		VALUES ($1, $2)
		ON CONFLICT (jti) DO NOTHING
	`
	if _, err := s.db.ExecContext(ctx, query, tokenID, expiresAt.UTC()); err != nil {
		log.Error("failed to revoke token", slog.String("error", err.Error()))
		return MapError(err)
	}
	return nil
}

func (s *PostgresTokenStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	var revoked bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM revoked_tokens WHERE jti = $1)`, tokenID,
	).Scan(&revoked)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).
			Error("failed to check token revocation", slog.String("error", err.Error()))
		return false, MapError(err)
	}
	return revoked, nil
}

// PurgeExpired deletes revocations whose tokens have expired anyway and
// returns how many rows were removed.
func (s *PostgresTokenStore) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM revoked_tokens WHERE expires_at < $1`, now.UTC())
	if err != nil {
		return 0, MapError(err)
	}
	return result.RowsAffected()
}
