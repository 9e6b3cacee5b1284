package bootstrap

import (
	"context"
	"log/slog"

	"github.com/dokkaebistudio/kanghwa-server/internal/server"
	"github.com/dokkaebistudio/kanghwa-server/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server             *server.Server
	SessionPurgeWorker *worker.SessionPurgeWorker
}

// GracefulShutdown performs graceful shutdown of all application components.
// It shuts down in order:
// 1. HTTP server (stop accepting new requests)
// 2. Background workers (cancel pending timers)
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if err := components.Server.Stop(ctx); err != nil {
		slog.Error(LogMsgServerForcedShutdown, "error", err)
	}

	if components.SessionPurgeWorker != nil {
		if err := components.SessionPurgeWorker.Shutdown(ctx); err != nil {
			slog.Error(LogMsgSessionPurgerFailed, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}
