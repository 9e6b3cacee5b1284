package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dokkaebistudio/kanghwa-server/internal/domain"
)

func TestCreateAndResolve(t *testing.T) {
	svc := NewService(NewFakeRepository())
	ctx := context.Background()

	session, err := svc.Create(ctx, "player-1")
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, "player-1", session.PlayerID)

	playerID, err := svc.Resolve(ctx, session.Token)
	require.NoError(t, err)
	assert.Equal(t, "player-1", playerID)
}

func TestResolve_UnknownToken(t *testing.T) {
	svc := NewService(NewFakeRepository())

	_, err := svc.Resolve(context.Background(), "nonexistent")

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestResolve_EmptyToken(t *testing.T) {
	svc := NewService(NewFakeRepository())

	_, err := svc.Resolve(context.Background(), "")

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestResolve_ExpiredToken(t *testing.T) {
	repo := NewFakeRepository()
	svc := NewService(repo).(*service)
	ctx := context.Background()

	session, err := svc.Create(ctx, "player-1")
	require.NoError(t, err)

	// Jump past the TTL.
	svc.now = func() time.Time { return time.Now().Add(domain.SessionTTL + time.Hour) }

	_, err = svc.Resolve(ctx, session.Token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	// The expired row is removed eagerly.
	_, getErr := repo.GetSessionByToken(ctx, session.Token)
	assert.ErrorIs(t, getErr, domain.ErrUnauthorized)
}

func TestRevoke(t *testing.T) {
	svc := NewService(NewFakeRepository())
	ctx := context.Background()

	session, err := svc.Create(ctx, "player-1")
	require.NoError(t, err)

	require.NoError(t, svc.Revoke(ctx, session.Token))

	_, err = svc.Resolve(ctx, session.Token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestPurgeExpired(t *testing.T) {
	repo := NewFakeRepository()
	svc := NewService(repo).(*service)
	ctx := context.Background()

	svc.now = func() time.Time { return time.Now().Add(-domain.SessionTTL - time.Hour) }
	_, err := svc.Create(ctx, "player-old")
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.Create(ctx, "player-new")
	require.NoError(t, err)

	removed, err := svc.PurgeExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)
}
