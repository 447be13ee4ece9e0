package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Business metric names
const (
	MetricNameItemsMoved        = "items_moved_total"
	MetricNameItemsGranted      = "items_granted_total"
	MetricNameItemsConsumed     = "items_consumed_total"
	MetricNameStacksSplit       = "stacks_split_total"
	MetricNameItemsEquipped     = "items_equipped_total"
	MetricNameItemsUnequipped   = "items_unequipped_total"
	MetricNameContainersCreated = "containers_created_total"
	MetricNameContainersDeleted = "containers_deleted_total"
	MetricNameStacksSpilled     = "stacks_spilled_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Business metric help text
const (
	HelpTextItemsMoved        = "Total number of slot transfers"
	HelpTextItemsGranted      = "Total quantity of items granted to players"
	HelpTextItemsConsumed     = "Total quantity of items consumed from players"
	HelpTextStacksSplit       = "Total number of stack splits"
	HelpTextItemsEquipped     = "Total number of equip operations"
	HelpTextItemsUnequipped   = "Total number of unequip operations"
	HelpTextContainersCreated = "Total number of world containers created"
	HelpTextContainersDeleted = "Total number of world containers deleted"
	HelpTextStacksSpilled     = "Total number of stacks spilled by container deletion"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelType      = "type"
	LabelOperation = "operation"
	LabelItem      = "item"
	LabelBodySlot  = "body_slot"
	LabelKind      = "kind"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgUnexpectedPayload = "Event payload has unexpected type"
	LogMsgMetricsRecorded   = "Metrics recorded for event"
)
