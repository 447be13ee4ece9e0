package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details for security reasons.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"

	// Transfer operation error messages
	ErrMsgMoveItemFailed      = "Failed to move item"
	ErrMsgSplitStackFailed    = "Failed to split stack"
	ErrMsgQuickMoveFailed     = "Failed to quick-move item"
	ErrMsgGetPlayerItemsFail  = "Failed to get player items"
	ErrMsgEquipItemFailed     = "Failed to equip item"
	ErrMsgUnequipItemFailed   = "Failed to unequip item"
	ErrMsgGrantItemFailed     = "Failed to grant item"
	ErrMsgConsumeItemFailed   = "Failed to consume item"
	ErrMsgGetContainerFailed  = "Failed to get container"
	ErrMsgCreateContainerFail = "Failed to create container"
	ErrMsgDeleteContainerFail = "Failed to delete container"

	// Container kind error messages
	ErrMsgInvalidContainerKind = "Invalid container kind"
	ErrMsgEquipmentNotWorld    = "Equipment containers cannot be managed directly"

	// Panel error messages
	ErrMsgInvalidPanel = "Destination panel must be inventory or hotbar"
)

// Success messages for API responses
// These are user-facing success messages returned in JSON responses
const (
	MsgItemMovedSuccess        = "Item moved successfully"
	MsgStackSplitSuccess       = "Stack split successfully"
	MsgItemQuickMovedSuccess   = "Item quick-moved successfully"
	MsgItemEquippedSuccess     = "Item equipped successfully"
	MsgItemUnequippedSuccess   = "Item unequipped successfully"
	MsgItemGrantedSuccess      = "Item granted successfully"
	MsgItemConsumedSuccess     = "Item consumed successfully"
	MsgContainerDeletedSuccess = "Container deleted successfully"
)
