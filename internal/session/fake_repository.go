package session

import (
	"context"
	"time"

	"github.com/dokkaebistudio/kanghwa-server/internal/domain"
)

// FakeRepository is a stateful in-memory implementation of
// repository.Session for testing.
type FakeRepository struct {
	sessions map[string]domain.Session
}

// NewFakeRepository creates a new FakeRepository
func NewFakeRepository() *FakeRepository {
	return &FakeRepository{sessions: make(map[string]domain.Session)}
}

func (f *FakeRepository) CreateSession(ctx context.Context, session domain.Session) error {
	f.sessions[session.Token] = session
	return nil
}

func (f *FakeRepository) GetSessionByToken(ctx context.Context, token string) (*domain.Session, error) {
	s, ok := f.sessions[token]
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	return &s, nil
}

func (f *FakeRepository) DeleteSession(ctx context.Context, token string) error {
	delete(f.sessions, token)
	return nil
}

func (f *FakeRepository) DeleteExpiredSessions(ctx context.Context) (int64, error) {
	var removed int64
	now := time.Now()
	for token, s := range f.sessions {
		if s.Expired(now) {
			delete(f.sessions, token)
			removed++
		}
	}
	return removed, nil
}
