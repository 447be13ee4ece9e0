package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Lookup errors
	ErrMsgItemNotFound      = "item not found"
	ErrMsgInstanceNotFound  = "item instance not found"
	ErrMsgContainerNotFound = "container not found"

	// Ownership errors
	ErrMsgNotOwned = "item is not owned by caller"

	// Addressing errors
	ErrMsgInvalidSlotIndex = "invalid slot index"
	ErrMsgSameSlot         = "source and target slot are the same"
	ErrMsgSlotEmpty        = "slot is empty"
	ErrMsgWrongLocation    = "item is not in a movable location"

	// Merge errors
	ErrMsgNotStackable        = "item is not stackable"
	ErrMsgDifferentDefinition = "items have different definitions"
	ErrMsgTargetFull          = "target stack is full"
	ErrMsgPartialMergeOnly    = "move would only partially merge"

	// Quantity errors
	ErrMsgSourceQuantityInvalid = "split quantity must be positive and below the stack quantity"
	ErrMsgInsufficientQuantity  = "insufficient quantity"

	// Capacity errors
	ErrMsgContainerFull    = "container is full"
	ErrMsgInventoryFull    = "inventory is full"
	ErrMsgContainerInUse   = "container still holds items"

	// Equipment errors
	ErrMsgNotEquippable  = "item is not equippable"
	ErrMsgWrongEquipSlot = "item does not fit that equipment slot"

	// Validation errors
	ErrMsgInvalidInput = "invalid input"

	// Database/System errors
	ErrMsgDatabaseError = "database error"
	ErrMsgTxClosed      = "transaction already closed"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Lookup errors
	ErrItemNotFound      = errors.New(ErrMsgItemNotFound)
	ErrInstanceNotFound  = errors.New(ErrMsgInstanceNotFound)
	ErrContainerNotFound = errors.New(ErrMsgContainerNotFound)

	// Ownership errors
	ErrNotOwned = errors.New(ErrMsgNotOwned)

	// Addressing errors
	ErrInvalidSlotIndex = errors.New(ErrMsgInvalidSlotIndex)
	ErrSameSlot         = errors.New(ErrMsgSameSlot)
	ErrSlotEmpty        = errors.New(ErrMsgSlotEmpty)
	ErrWrongLocation    = errors.New(ErrMsgWrongLocation)

	// Merge errors
	ErrNotStackable        = errors.New(ErrMsgNotStackable)
	ErrDifferentDefinition = errors.New(ErrMsgDifferentDefinition)
	ErrTargetFull          = errors.New(ErrMsgTargetFull)
	ErrPartialMergeOnly    = errors.New(ErrMsgPartialMergeOnly)

	// Quantity errors
	ErrSourceQuantityInvalid = errors.New(ErrMsgSourceQuantityInvalid)
	ErrInsufficientQuantity  = errors.New(ErrMsgInsufficientQuantity)

	// Capacity errors
	ErrContainerFull  = errors.New(ErrMsgContainerFull)
	ErrInventoryFull  = errors.New(ErrMsgInventoryFull)
	ErrContainerInUse = errors.New(ErrMsgContainerInUse)

	// Equipment errors
	ErrNotEquippable  = errors.New(ErrMsgNotEquippable)
	ErrWrongEquipSlot = errors.New(ErrMsgWrongEquipSlot)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)

	// Database/System errors
	ErrDatabaseError = errors.New(ErrMsgDatabaseError)
	ErrTxClosed      = errors.New(ErrMsgTxClosed)
)
