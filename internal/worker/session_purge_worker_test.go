package worker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dokkaebistudio/kanghwa-server/internal/domain"
)

type countingSessions struct {
	purges atomic.Int64
}

func (c *countingSessions) Create(context.Context, string) (*domain.Session, error) {
	return nil, nil
}

func (c *countingSessions) Resolve(context.Context, string) (string, error) {
	return "", domain.ErrUnauthorized
}

func (c *countingSessions) Revoke(context.Context, string) error { return nil }

func (c *countingSessions) PurgeExpired(context.Context) (int64, error) {
	c.purges.Add(1)
	return 3, nil
}

func TestSessionPurgeWorker_PurgesOnTick(t *testing.T) {
	sessions := &countingSessions{}
	w := NewSessionPurgeWorker(sessions, 10*time.Millisecond)

	w.Start()

	assert.Eventually(t, func() bool {
		return sessions.purges.Load() >= 2
	}, time.Second, 5*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, w.Shutdown(ctx))
}

func TestSessionPurgeWorker_ShutdownStopsLoop(t *testing.T) {
	sessions := &countingSessions{}
	w := NewSessionPurgeWorker(sessions, 10*time.Millisecond)
	w.Start()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, w.Shutdown(ctx))

	settled := sessions.purges.Load()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, settled, sessions.purges.Load(), "no purges after shutdown")
}
