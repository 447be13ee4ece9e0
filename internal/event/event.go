package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/hollowpine/frontier/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// Common event types
const (
	ItemMoved        Type = "item.moved"
	ItemGranted      Type = "item.granted"
	ItemConsumed     Type = "item.consumed"
	StackSplit       Type = "stack.split"
	ItemEquipped     Type = "item.equipped"
	ItemUnequipped   Type = "item.unequipped"
	ContainerCreated Type = "container.created"
	ContainerDeleted Type = "container.deleted"
)

// Typed event payloads for type safety

// ItemMovedPayloadV1 is the typed payload for slot transfer events
type ItemMovedPayloadV1 struct {
	Player     string `json:"player"`
	InstanceID string `json:"instance_id,omitempty"`
	From       string `json:"from"`
	To         string `json:"to"`
	Operation  string `json:"operation"` // move, quick_move
	Timestamp  int64  `json:"timestamp"`
}

// ItemGrantedPayloadV1 is the typed payload for grant events
type ItemGrantedPayloadV1 struct {
	Player    string `json:"player"`
	ItemName  string `json:"item_name"`
	Quantity  int    `json:"quantity"`
	Stacks    int    `json:"stacks"`
	Timestamp int64  `json:"timestamp"`
}

// ItemConsumedPayloadV1 is the typed payload for consume events
type ItemConsumedPayloadV1 struct {
	Player    string `json:"player"`
	ItemName  string `json:"item_name"`
	Quantity  int    `json:"quantity"`
	Timestamp int64  `json:"timestamp"`
}

// StackSplitPayloadV1 is the typed payload for stack split events
type StackSplitPayloadV1 struct {
	Player           string `json:"player"`
	SourceInstanceID string `json:"source_instance_id"`
	NewInstanceID    string `json:"new_instance_id,omitempty"`
	Quantity         int    `json:"quantity"`
	Timestamp        int64  `json:"timestamp"`
}

// EquipmentPayloadV1 is the typed payload for equip and unequip events
type EquipmentPayloadV1 struct {
	Player    string `json:"player"`
	BodySlot  string `json:"body_slot"`
	Timestamp int64  `json:"timestamp"`
}

// ContainerPayloadV1 is the typed payload for container lifecycle events
type ContainerPayloadV1 struct {
	ContainerID   string `json:"container_id"`
	Kind          string `json:"kind"`
	Owner         string `json:"owner,omitempty"`
	SpilledStacks int    `json:"spilled_stacks,omitempty"`
	Timestamp     int64  `json:"timestamp"`
}

// Type-safe event constructors

// NewItemMovedEvent creates a new item moved event
func NewItemMovedEvent(player, instanceID string, from, to domain.Location, operation string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ItemMoved,
		Payload: ItemMovedPayloadV1{
			Player:     player,
			InstanceID: instanceID,
			From:       from.String(),
			To:         to.String(),
			Operation:  operation,
			Timestamp:  time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewItemGrantedEvent creates a new item granted event
func NewItemGrantedEvent(player, itemName string, quantity, stacks int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ItemGranted,
		Payload: ItemGrantedPayloadV1{
			Player:    player,
			ItemName:  itemName,
			Quantity:  quantity,
			Stacks:    stacks,
			Timestamp: time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewItemConsumedEvent creates a new item consumed event
func NewItemConsumedEvent(player, itemName string, quantity int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ItemConsumed,
		Payload: ItemConsumedPayloadV1{
			Player:    player,
			ItemName:  itemName,
			Quantity:  quantity,
			Timestamp: time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewStackSplitEvent creates a new stack split event
func NewStackSplitEvent(player, sourceID, newID string, quantity int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    StackSplit,
		Payload: StackSplitPayloadV1{
			Player:           player,
			SourceInstanceID: sourceID,
			NewInstanceID:    newID,
			Quantity:         quantity,
			Timestamp:        time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewItemEquippedEvent creates a new item equipped event
func NewItemEquippedEvent(player string, body domain.BodySlot) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ItemEquipped,
		Payload: EquipmentPayloadV1{
			Player:    player,
			BodySlot:  string(body),
			Timestamp: time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewItemUnequippedEvent creates a new item unequipped event
func NewItemUnequippedEvent(player string, body domain.BodySlot) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ItemUnequipped,
		Payload: EquipmentPayloadV1{
			Player:    player,
			BodySlot:  string(body),
			Timestamp: time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewContainerCreatedEvent creates a new container created event
func NewContainerCreatedEvent(containerID string, kind domain.ContainerKind, owner string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ContainerCreated,
		Payload: ContainerPayloadV1{
			ContainerID: containerID,
			Kind:        string(kind),
			Owner:       owner,
			Timestamp:   time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewContainerDeletedEvent creates a new container deleted event
func NewContainerDeletedEvent(containerID string, kind domain.ContainerKind, spilledStacks int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ContainerDeleted,
		Payload: ContainerPayloadV1{
			ContainerID:   containerID,
			Kind:          string(kind),
			SpilledStacks: spilledStacks,
			Timestamp:     time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	// Handlers run synchronously. With configuration this could dispatch to a
	// worker pool instead.
	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
