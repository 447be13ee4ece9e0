package metrics

import (
	"context"

	"github.com/hollowpine/frontier/internal/event"
	"github.com/hollowpine/frontier/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.ItemMoved,
		event.ItemGranted,
		event.ItemConsumed,
		event.StackSplit,
		event.ItemEquipped,
		event.ItemUnequipped,
		event.ContainerCreated,
		event.ContainerDeleted,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	// Always increment event counter
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	// Record business metrics from the typed payloads
	switch payload := evt.Payload.(type) {
	case event.ItemMovedPayloadV1:
		ItemsMoved.WithLabelValues(payload.Operation).Inc()

	case event.ItemGrantedPayloadV1:
		ItemsGranted.WithLabelValues(payload.ItemName).Add(float64(payload.Quantity))

	case event.ItemConsumedPayloadV1:
		ItemsConsumed.WithLabelValues(payload.ItemName).Add(float64(payload.Quantity))

	case event.StackSplitPayloadV1:
		StacksSplit.Inc()

	case event.EquipmentPayloadV1:
		switch evt.Type {
		case event.ItemEquipped:
			ItemsEquipped.WithLabelValues(payload.BodySlot).Inc()
		case event.ItemUnequipped:
			ItemsUnequipped.WithLabelValues(payload.BodySlot).Inc()
		}

	case event.ContainerPayloadV1:
		switch evt.Type {
		case event.ContainerCreated:
			ContainersCreated.WithLabelValues(payload.Kind).Inc()
		case event.ContainerDeleted:
			ContainersDeleted.WithLabelValues(payload.Kind).Inc()
			StacksSpilled.Add(float64(payload.SpilledStacks))
		}

	default:
		log.Debug(LogMsgUnexpectedPayload, "type", evt.Type)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
