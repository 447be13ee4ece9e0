package bootstrap

import (
	"context"
	"log/slog"

	"github.com/hollowpine/frontier/internal/event"
	"github.com/hollowpine/frontier/internal/server"
)

// ShutdownComponents holds the components that need graceful shutdown.
type ShutdownComponents struct {
	Server             *server.Server
	ResilientPublisher *event.ResilientPublisher
}

// GracefulShutdown stops the HTTP server first so no new requests arrive,
// then shuts down the resilient publisher last to flush pending events.
// Errors during shutdown are logged but do not stop the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if err := components.Server.Stop(ctx); err != nil {
		slog.Error(LogMsgServerForcedShutdown, "error", err)
	}

	slog.Info(LogMsgShuttingDownEventPublisher)
	if err := components.ResilientPublisher.Shutdown(ctx); err != nil {
		slog.Error(LogMsgResilientPublisherFailed, "error", err)
	}

	slog.Info(LogMsgServerStopped)
}
