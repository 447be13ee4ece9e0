package bootstrap

import "time"

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755
)

// Event system defaults, used when the corresponding config values are unset
const (
	EventDefaultMaxRetries     = 5
	EventDefaultRetryDelay     = 2 * time.Second
	EventDefaultDeadLetterPath = "logs/event_deadletter.jsonl"
)

// Log messages for event system initialization
const (
	LogMsgEventSystemInitialized         = "Event system initialized"
	LogMsgFailedCreateDeadLetterDir      = "failed to create dead-letter directory"
	LogMsgFailedCreateResilientPublisher = "failed to create resilient publisher"
)

// Log messages for config sync
const (
	LogMsgSyncingItems   = "Syncing item catalog from JSON config..."
	LogMsgItemsSynced    = "Item catalog synced successfully"
	LogMsgItemsUnchanged = "Item catalog config unchanged, sync skipped"
)

// Log messages for event handler registration
const (
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	ErrMsgFailedRegisterMetrics      = "failed to register metrics collector"
)

// Shutdown messages
const (
	LogMsgShuttingDownServer         = "Shutting down server..."
	LogMsgShuttingDownEventPublisher = "Shutting down event publisher..."
	LogMsgServerStopped              = "Server stopped"
	LogMsgServerForcedShutdown       = "Server forced to shutdown"
	LogMsgResilientPublisherFailed   = "Resilient publisher shutdown failed"
)
