package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dokkaebistudio/kanghwa-server/internal/logger"
)

// SafeRollback rolls back a transaction and logs any error that isn't ErrTxClosed
func SafeRollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
	}
}

// dbtx is the subset of pgx satisfied by both *pgxpool.Pool and pgx.Tx,
// so query helpers can be shared between plain and transactional paths.
type dbtx interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// parsePlayerUUID parses a player ID string to uuid.UUID with a consistent
// error message.
func parsePlayerUUID(playerID string) (uuid.UUID, error) {
	u, err := uuid.Parse(playerID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid player id: %w", err)
	}
	return u, nil
}
