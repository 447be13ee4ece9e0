package handler

import (
	"net/http"

	"github.com/hollowpine/frontier/internal/domain"
	"github.com/hollowpine/frontier/internal/inventory"
	"github.com/hollowpine/frontier/internal/logger"
)

type MoveIntoContainerRequest struct {
	Player      string `json:"player" validate:"required,max=100,excludesall=\x00\n\r\t"`
	InstanceID  string `json:"instance_id" validate:"required,uuid4"`
	Kind        string `json:"kind" validate:"required,containerkind"`
	ContainerID string `json:"container_id" validate:"required,uuid4"`
	Slot        int    `json:"slot" validate:"min=0"`
}

// HandleMoveIntoContainer moves a held stack into a world-container slot
// @Summary Move item into container
// @Description Move a held item instance into a specific container slot, merging or swapping with any occupant
// @Tags transfer
// @Accept json
// @Produce json
// @Param request body MoveIntoContainerRequest true "Move details"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /item/move/in [post]
func HandleMoveIntoContainer(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req MoveIntoContainerRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Move item into container"); err != nil {
			return
		}

		if err := svc.MoveIntoContainer(r.Context(), req.Player, req.InstanceID, domain.ContainerKind(req.Kind), req.ContainerID, req.Slot); err != nil {
			respondServiceError(w, r, ErrMsgMoveItemFailed, err)
			return
		}

		log.Info("Item moved into container",
			"player", req.Player,
			"instance", req.InstanceID,
			"container", req.ContainerID,
			"slot", req.Slot)

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgItemMovedSuccess})
	}
}

type MoveOutOfContainerRequest struct {
	Player      string `json:"player" validate:"required,max=100,excludesall=\x00\n\r\t"`
	Kind        string `json:"kind" validate:"required,containerkind"`
	ContainerID string `json:"container_id" validate:"required,uuid4"`
	Slot        int    `json:"slot" validate:"min=0"`
	ToPanel     string `json:"to_panel" validate:"required,panel"`
	ToIndex     int    `json:"to_index" validate:"min=0"`
}

// HandleMoveOutOfContainer moves a contained stack into a player slot
// @Summary Move item out of container
// @Description Move an item from a container slot into the player's inventory or hotbar, transferring ownership
// @Tags transfer
// @Accept json
// @Produce json
// @Param request body MoveOutOfContainerRequest true "Move details"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /item/move/out [post]
func HandleMoveOutOfContainer(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req MoveOutOfContainerRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Move item out of container"); err != nil {
			return
		}

		dst := panelLocation(req.ToPanel, req.ToIndex)
		if err := svc.MoveOutOfContainer(r.Context(), req.Player, domain.ContainerKind(req.Kind), req.ContainerID, req.Slot, dst); err != nil {
			respondServiceError(w, r, ErrMsgMoveItemFailed, err)
			return
		}

		log.Info("Item moved out of container",
			"player", req.Player,
			"container", req.ContainerID,
			"slot", req.Slot,
			"to", dst.String())

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgItemMovedSuccess})
	}
}

type MoveWithinContainerRequest struct {
	Player      string `json:"player" validate:"required,max=100,excludesall=\x00\n\r\t"`
	Kind        string `json:"kind" validate:"required,containerkind"`
	ContainerID string `json:"container_id" validate:"required,uuid4"`
	FromSlot    int    `json:"from_slot" validate:"min=0"`
	ToSlot      int    `json:"to_slot" validate:"min=0"`
}

// HandleMoveWithinContainer moves a stack between two slots of one container
// @Summary Move item within container
// @Description Relocate, merge or swap an item between two slots of the same container
// @Tags transfer
// @Accept json
// @Produce json
// @Param request body MoveWithinContainerRequest true "Move details"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /item/move/within [post]
func HandleMoveWithinContainer(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req MoveWithinContainerRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Move item within container"); err != nil {
			return
		}

		if err := svc.MoveWithinContainer(r.Context(), req.Player, domain.ContainerKind(req.Kind), req.ContainerID, req.FromSlot, req.ToSlot); err != nil {
			respondServiceError(w, r, ErrMsgMoveItemFailed, err)
			return
		}

		log.Info("Item moved within container",
			"player", req.Player,
			"container", req.ContainerID,
			"from", req.FromSlot,
			"to", req.ToSlot)

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgItemMovedSuccess})
	}
}
