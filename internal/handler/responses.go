package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/hollowpine/frontier/internal/domain"
	"github.com/hollowpine/frontier/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// Helper functions for responding

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Get a buffer from the pool to reduce allocations
	buf := getBuffer()
	defer putBuffer(buf)

	// Encode to the buffer first
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Log the error - we can't write to response at this point since headers are sent
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	// Write the buffer to the response
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed service call and writes the mapped
// user-facing error response
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	log := logger.FromContext(r.Context())
	status, message := mapServiceErrorToUserMessage(err)
	if status >= http.StatusInternalServerError {
		log.Error(opName, "error", err)
	} else {
		log.Warn(opName, "error", err)
	}
	respondError(w, status, message)
}

// User-facing error messages for service errors
// These messages are derived from domain errors and provide helpful guidance to users
const (
	// Generic messages
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidRequestError = "Invalid request. Please check your inputs."

	// Lookup messages
	ErrMsgItemNotFoundError      = "Item not found"
	ErrMsgInstanceNotFoundError  = "Item instance not found"
	ErrMsgContainerNotFoundError = "Container not found"

	// Ownership messages
	ErrMsgNotOwnedError = "You do not hold that item"

	// Slot messages
	ErrMsgInvalidSlotError = "Invalid slot index"
	ErrMsgSameSlotError    = "Source and target slot are the same"
	ErrMsgSlotEmptyError   = "That slot is empty"

	// Merge messages
	ErrMsgNotStackableError     = "Item is not stackable"
	ErrMsgDifferentItemsError   = "Those stacks hold different items"
	ErrMsgTargetFullError       = "Target stack is full"
	ErrMsgPartialMergeOnlyError = "Stack does not fully fit; split it first"

	// Quantity messages
	ErrMsgBadSplitQuantityError = "Split quantity must be positive and below the stack size"
	ErrMsgInsufficientItemsErr  = "Not enough items"

	// Capacity messages
	ErrMsgContainerFullError  = "Container is full"
	ErrMsgInventoryFullError  = "Inventory is full"
	ErrMsgContainerInUseError = "Container still holds items"

	// Equipment messages
	ErrMsgNotEquippableError  = "Item cannot be equipped"
	ErrMsgWrongEquipSlotError = "Item does not fit that equipment slot"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, ErrMsgItemNotFoundError
	case errors.Is(err, domain.ErrInstanceNotFound):
		return http.StatusNotFound, ErrMsgInstanceNotFoundError
	case errors.Is(err, domain.ErrContainerNotFound):
		return http.StatusNotFound, ErrMsgContainerNotFoundError
	case errors.Is(err, domain.ErrNotOwned):
		return http.StatusForbidden, ErrMsgNotOwnedError
	case errors.Is(err, domain.ErrInvalidSlotIndex):
		return http.StatusBadRequest, ErrMsgInvalidSlotError
	case errors.Is(err, domain.ErrSameSlot):
		return http.StatusBadRequest, ErrMsgSameSlotError
	case errors.Is(err, domain.ErrSlotEmpty):
		return http.StatusBadRequest, ErrMsgSlotEmptyError
	case errors.Is(err, domain.ErrNotStackable):
		return http.StatusBadRequest, ErrMsgNotStackableError
	case errors.Is(err, domain.ErrDifferentDefinition):
		return http.StatusBadRequest, ErrMsgDifferentItemsError
	case errors.Is(err, domain.ErrTargetFull):
		return http.StatusConflict, ErrMsgTargetFullError
	case errors.Is(err, domain.ErrPartialMergeOnly):
		return http.StatusConflict, ErrMsgPartialMergeOnlyError
	case errors.Is(err, domain.ErrSourceQuantityInvalid):
		return http.StatusBadRequest, ErrMsgBadSplitQuantityError
	case errors.Is(err, domain.ErrInsufficientQuantity):
		return http.StatusBadRequest, ErrMsgInsufficientItemsErr
	case errors.Is(err, domain.ErrContainerFull):
		return http.StatusConflict, ErrMsgContainerFullError
	case errors.Is(err, domain.ErrInventoryFull):
		return http.StatusConflict, ErrMsgInventoryFullError
	case errors.Is(err, domain.ErrContainerInUse):
		return http.StatusConflict, ErrMsgContainerInUseError
	case errors.Is(err, domain.ErrNotEquippable):
		return http.StatusBadRequest, ErrMsgNotEquippableError
	case errors.Is(err, domain.ErrWrongEquipSlot):
		return http.StatusBadRequest, ErrMsgWrongEquipSlotError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestError
	case errors.Is(err, domain.ErrDatabaseError):
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
