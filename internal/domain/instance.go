package domain

import "fmt"

// BodySlot names an equipment position on a player
type BodySlot string

const (
	BodySlotHead  BodySlot = "head"
	BodySlotChest BodySlot = "chest"
	BodySlotLegs  BodySlot = "legs"
	BodySlotFeet  BodySlot = "feet"
	BodySlotHands BodySlot = "hands"
	BodySlotBack  BodySlot = "back"
	// MainHand is the distinguished held-item slot; it accepts any equippable
	// item regardless of the definition's body slot.
	MainHand BodySlot = "main_hand"
)

// BodySlotOrder fixes the slot index of each body slot within the equipment
// container. MainHand is always the last index.
var BodySlotOrder = []BodySlot{
	BodySlotHead,
	BodySlotChest,
	BodySlotLegs,
	BodySlotFeet,
	BodySlotHands,
	BodySlotBack,
	MainHand,
}

// ValidBodySlots defines the accepted body slots for API input
var ValidBodySlots = map[BodySlot]bool{
	BodySlotHead:  true,
	BodySlotChest: true,
	BodySlotLegs:  true,
	BodySlotFeet:  true,
	BodySlotHands: true,
	BodySlotBack:  true,
	MainHand:      true,
}

// LocationKind tags the variant of a Location
type LocationKind string

const (
	LocationFree      LocationKind = "free" // transient mid-operation only, never persisted
	LocationInventory LocationKind = "inventory"
	LocationHotbar    LocationKind = "hotbar"
	LocationEquipped  LocationKind = "equipped"
	LocationContained LocationKind = "contained"
)

// Location states where an item instance currently lives. Exactly one variant
// applies at a time; the Kind tag selects which of the remaining fields are
// meaningful. Stored as a JSONB column on the instance record.
type Location struct {
	Kind          LocationKind  `json:"kind"`
	Index         int           `json:"index,omitempty"`          // inventory, hotbar, contained
	Body          BodySlot      `json:"body,omitempty"`           // equipped
	ContainerKind ContainerKind `json:"container_kind,omitempty"` // contained
	ContainerID   string        `json:"container_id,omitempty"`   // contained
}

// FreeLocation marks an instance as detached mid-operation
func FreeLocation() Location {
	return Location{Kind: LocationFree}
}

// InventoryLocation places an instance in a player inventory slot
func InventoryLocation(index int) Location {
	return Location{Kind: LocationInventory, Index: index}
}

// HotbarLocation places an instance in a player hotbar slot
func HotbarLocation(index int) Location {
	return Location{Kind: LocationHotbar, Index: index}
}

// EquippedLocation places an instance in a named equipment slot
func EquippedLocation(body BodySlot) Location {
	return Location{Kind: LocationEquipped, Body: body}
}

// ContainedLocation places an instance in a world-container slot
func ContainedLocation(kind ContainerKind, containerID string, index int) Location {
	return Location{Kind: LocationContained, Index: index, ContainerKind: kind, ContainerID: containerID}
}

// IsPlayerSide reports whether the location is a player inventory or hotbar slot
func (l Location) IsPlayerSide() bool {
	return l.Kind == LocationInventory || l.Kind == LocationHotbar
}

// String renders a location for logs and error messages
func (l Location) String() string {
	switch l.Kind {
	case LocationInventory:
		return fmt.Sprintf("inventory[%d]", l.Index)
	case LocationHotbar:
		return fmt.Sprintf("hotbar[%d]", l.Index)
	case LocationEquipped:
		return fmt.Sprintf("equipped[%s]", l.Body)
	case LocationContained:
		return fmt.Sprintf("%s:%s[%d]", l.ContainerKind, l.ContainerID, l.Index)
	default:
		return "free"
	}
}

// ItemInstance is a concrete, ownable, quantity-bearing occurrence of an item
// definition. Quantity is always positive; an instance whose quantity would
// reach zero is deleted, never persisted at zero.
type ItemInstance struct {
	ID           string   `json:"instance_id"`
	Owner        string   `json:"owner"`
	DefinitionID int      `json:"definition_id"`
	Quantity     int      `json:"quantity"`
	Location     Location `json:"location"`
}
