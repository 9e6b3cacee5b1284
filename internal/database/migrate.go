package database

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// Migrate applies all pending goose migrations from the given filesystem.
// Migrations run over a short-lived database/sql connection because goose
// speaks database/sql, while the application itself uses the pgx pool.
func Migrate(ctx context.Context, connString string, migrations fs.FS) error {
	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	cfg, err := pgx.ParseConfig(connString)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToParseConnString, err)
	}

	db := stdlib.OpenDB(*cfg)
	defer db.Close()

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	slog.Default().Info(LogMsgMigrationsApplied)
	return nil
}
