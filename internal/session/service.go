package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dokkaebistudio/kanghwa-server/internal/domain"
	"github.com/dokkaebistudio/kanghwa-server/internal/logger"
	"github.com/dokkaebistudio/kanghwa-server/internal/repository"
)

// Service defines the interface for session token operations
type Service interface {
	// Create issues a fresh bearer token for the player.
	Create(ctx context.Context, playerID string) (*domain.Session, error)

	// Resolve maps a bearer token to the owning player ID. Expired or
	// unknown tokens return domain.ErrUnauthorized.
	Resolve(ctx context.Context, token string) (string, error)

	Revoke(ctx context.Context, token string) error

	// PurgeExpired removes expired sessions and returns the count removed.
	PurgeExpired(ctx context.Context) (int64, error)
}

type service struct {
	repo repository.Session
	now  func() time.Time
}

// NewService creates a new session service
func NewService(repo repository.Session) Service {
	return &service{
		repo: repo,
		now:  time.Now,
	}
}

func (s *service) Create(ctx context.Context, playerID string) (*domain.Session, error) {
	now := s.now()
	session := domain.Session{
		Token:     uuid.NewString(),
		PlayerID:  playerID,
		CreatedAt: now,
		ExpiresAt: now.Add(domain.SessionTTL),
	}
	if err := s.repo.CreateSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return &session, nil
}

func (s *service) Resolve(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", domain.ErrUnauthorized
	}

	session, err := s.repo.GetSessionByToken(ctx, token)
	if err != nil {
		return "", err
	}

	if session.Expired(s.now()) {
		if err := s.repo.DeleteSession(ctx, token); err != nil {
			logger.FromContext(ctx).Warn("Failed to delete expired session", "error", err)
		}
		return "", domain.ErrUnauthorized
	}

	return session.PlayerID, nil
}

func (s *service) Revoke(ctx context.Context, token string) error {
	return s.repo.DeleteSession(ctx, token)
}

func (s *service) PurgeExpired(ctx context.Context) (int64, error) {
	return s.repo.DeleteExpiredSessions(ctx)
}
