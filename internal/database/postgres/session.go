package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dokkaebistudio/kanghwa-server/internal/domain"
)

// SessionRepository implements the session repository for PostgreSQL
type SessionRepository struct {
	db *pgxpool.Pool
}

// NewSessionRepository creates a new SessionRepository
func NewSessionRepository(db *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{db: db}
}

// CreateSession stores a new session token
func (r *SessionRepository) CreateSession(ctx context.Context, session domain.Session) error {
	query := `INSERT INTO sessions (token, player_id, created_at, expires_at) VALUES ($1, $2, $3, $4)`
	_, err := r.db.Exec(ctx, query, session.Token, session.PlayerID, session.CreatedAt, session.ExpiresAt)
	if err != nil {
		return fmt.Errorf("failed to insert session: %w", err)
	}
	return nil
}

// GetSessionByToken resolves a bearer token to its session
func (r *SessionRepository) GetSessionByToken(ctx context.Context, token string) (*domain.Session, error) {
	query := `SELECT token, player_id, created_at, expires_at FROM sessions WHERE token = $1`
	var s domain.Session
	err := r.db.QueryRow(ctx, query, token).Scan(&s.Token, &s.PlayerID, &s.CreatedAt, &s.ExpiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return &s, nil
}

// DeleteSession removes one session token
func (r *SessionRepository) DeleteSession(ctx context.Context, token string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM sessions WHERE token = $1`, token)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// DeleteExpiredSessions removes all sessions past their expiry and returns
// the number of rows deleted.
func (r *SessionRepository) DeleteExpiredSessions(ctx context.Context) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM sessions WHERE expires_at < NOW()`)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired sessions: %w", err)
	}
	return tag.RowsAffected(), nil
}
