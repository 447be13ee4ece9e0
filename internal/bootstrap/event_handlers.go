package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/hollowpine/frontier/internal/event"
	"github.com/hollowpine/frontier/internal/metrics"
)

// RegisterEventHandlers subscribes the metrics collector to every event type
// on the bus so operation counters track the events the services publish.
func RegisterEventHandlers(eventBus event.Bus) error {
	metricsCollector := metrics.NewEventMetricsCollector()
	if err := metricsCollector.Register(eventBus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)
	return nil
}
