package repository

import (
	"context"

	"github.com/dokkaebistudio/kanghwa-server/internal/domain"
)

// Session defines the interface for session token persistence
type Session interface {
	CreateSession(ctx context.Context, session domain.Session) error
	GetSessionByToken(ctx context.Context, token string) (*domain.Session, error)
	DeleteSession(ctx context.Context, token string) error
	DeleteExpiredSessions(ctx context.Context) (int64, error)
}
