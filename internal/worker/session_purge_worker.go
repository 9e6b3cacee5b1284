package worker

import (
	"context"
	"sync"
	"time"

	"github.com/dokkaebistudio/kanghwa-server/internal/logger"
	"github.com/dokkaebistudio/kanghwa-server/internal/session"
)

// SessionPurgeWorker periodically deletes expired sessions so the table
// does not accumulate dead tokens. Expired tokens are already rejected on
// use; this is purely housekeeping.
type SessionPurgeWorker struct {
	sessions session.Service
	interval time.Duration
	shutdown chan struct{}
	wg       sync.WaitGroup
}

// NewSessionPurgeWorker creates a new SessionPurgeWorker
func NewSessionPurgeWorker(sessions session.Service, interval time.Duration) *SessionPurgeWorker {
	if interval <= 0 {
		interval = DefaultPurgeInterval
	}
	return &SessionPurgeWorker{
		sessions: sessions,
		interval: interval,
		shutdown: make(chan struct{}),
	}
}

// Start launches the purge loop in a tracked goroutine
func (w *SessionPurgeWorker) Start() {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()

		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for {
			select {
			case <-w.shutdown:
				return
			case <-ticker.C:
				w.purge()
			}
		}
	}()
}

func (w *SessionPurgeWorker) purge() {
	ctx := context.Background()
	log := logger.FromContext(ctx)

	removed, err := w.sessions.PurgeExpired(ctx)
	if err != nil {
		log.Error(LogMsgSessionPurgeFailed, "error", err)
		return
	}
	if removed > 0 {
		log.Info(LogMsgSessionsPurged, "removed", removed)
	}
}

// Shutdown stops the purge loop and waits for an in-flight purge to finish
func (w *SessionPurgeWorker) Shutdown(ctx context.Context) error {
	close(w.shutdown)

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
