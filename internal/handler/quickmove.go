package handler

import (
	"net/http"

	"github.com/hollowpine/frontier/internal/domain"
	"github.com/hollowpine/frontier/internal/inventory"
	"github.com/hollowpine/frontier/internal/logger"
)

type QuickMoveIntoContainerRequest struct {
	Player      string `json:"player" validate:"required,max=100,excludesall=\x00\n\r\t"`
	InstanceID  string `json:"instance_id" validate:"required,uuid4"`
	Kind        string `json:"kind" validate:"required,containerkind"`
	ContainerID string `json:"container_id" validate:"required,uuid4"`
}

// HandleQuickMoveIntoContainer shift-clicks a held stack into a container
// @Summary Quick-move item into container
// @Description Merge a held stack into matching container stacks, any remainder taking the first empty slot
// @Tags transfer
// @Accept json
// @Produce json
// @Param request body QuickMoveIntoContainerRequest true "Quick-move details"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /item/quickmove/in [post]
func HandleQuickMoveIntoContainer(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req QuickMoveIntoContainerRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Quick-move item into container"); err != nil {
			return
		}

		if err := svc.QuickMoveIntoContainer(r.Context(), req.Player, req.InstanceID, domain.ContainerKind(req.Kind), req.ContainerID); err != nil {
			respondServiceError(w, r, ErrMsgQuickMoveFailed, err)
			return
		}

		log.Info("Item quick-moved into container",
			"player", req.Player,
			"instance", req.InstanceID,
			"container", req.ContainerID)

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgItemQuickMovedSuccess})
	}
}

type QuickMoveOutOfContainerRequest struct {
	Player      string `json:"player" validate:"required,max=100,excludesall=\x00\n\r\t"`
	Kind        string `json:"kind" validate:"required,containerkind"`
	ContainerID string `json:"container_id" validate:"required,uuid4"`
	Slot        int    `json:"slot" validate:"min=0"`
}

// HandleQuickMoveOutOfContainer shift-clicks a contained stack to the player
// @Summary Quick-move item out of container
// @Description Merge a contained stack into the player's matching stacks, any remainder taking the first empty inventory slot
// @Tags transfer
// @Accept json
// @Produce json
// @Param request body QuickMoveOutOfContainerRequest true "Quick-move details"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /item/quickmove/out [post]
func HandleQuickMoveOutOfContainer(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req QuickMoveOutOfContainerRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Quick-move item out of container"); err != nil {
			return
		}

		if err := svc.QuickMoveOutOfContainer(r.Context(), req.Player, domain.ContainerKind(req.Kind), req.ContainerID, req.Slot); err != nil {
			respondServiceError(w, r, ErrMsgQuickMoveFailed, err)
			return
		}

		log.Info("Item quick-moved out of container",
			"player", req.Player,
			"container", req.ContainerID,
			"slot", req.Slot)

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgItemQuickMovedSuccess})
	}
}
