package handler

import (
	"net/http"

	"github.com/hollowpine/frontier/internal/domain"
	"github.com/hollowpine/frontier/internal/inventory"
	"github.com/hollowpine/frontier/internal/logger"
)

type SplitIntoContainerRequest struct {
	Player      string `json:"player" validate:"required,max=100,excludesall=\x00\n\r\t"`
	InstanceID  string `json:"instance_id" validate:"required,uuid4"`
	Quantity    int    `json:"quantity" validate:"min=1,max=10000"`
	Kind        string `json:"kind" validate:"required,containerkind"`
	ContainerID string `json:"container_id" validate:"required,uuid4"`
	Slot        int    `json:"slot" validate:"min=0"`
}

// HandleSplitIntoContainer splits a held stack into a container slot
// @Summary Split stack into container
// @Description Carve a quantity off a held stack and place the new stack into a container slot
// @Tags transfer
// @Accept json
// @Produce json
// @Param request body SplitIntoContainerRequest true "Split details"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /item/split/in [post]
func HandleSplitIntoContainer(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req SplitIntoContainerRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Split stack into container"); err != nil {
			return
		}

		if err := svc.SplitIntoContainer(r.Context(), req.Player, req.InstanceID, req.Quantity, domain.ContainerKind(req.Kind), req.ContainerID, req.Slot); err != nil {
			respondServiceError(w, r, ErrMsgSplitStackFailed, err)
			return
		}

		log.Info("Stack split into container",
			"player", req.Player,
			"instance", req.InstanceID,
			"quantity", req.Quantity,
			"container", req.ContainerID,
			"slot", req.Slot)

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgStackSplitSuccess})
	}
}

type SplitOutOfContainerRequest struct {
	Player      string `json:"player" validate:"required,max=100,excludesall=\x00\n\r\t"`
	Kind        string `json:"kind" validate:"required,containerkind"`
	ContainerID string `json:"container_id" validate:"required,uuid4"`
	Slot        int    `json:"slot" validate:"min=0"`
	Quantity    int    `json:"quantity" validate:"min=1,max=10000"`
	ToPanel     string `json:"to_panel" validate:"required,panel"`
	ToIndex     int    `json:"to_index" validate:"min=0"`
}

// HandleSplitOutOfContainer splits a contained stack into a player slot
// @Summary Split stack out of container
// @Description Carve a quantity off a contained stack and place the new stack into the player's inventory or hotbar
// @Tags transfer
// @Accept json
// @Produce json
// @Param request body SplitOutOfContainerRequest true "Split details"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /item/split/out [post]
func HandleSplitOutOfContainer(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req SplitOutOfContainerRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Split stack out of container"); err != nil {
			return
		}

		dst := panelLocation(req.ToPanel, req.ToIndex)
		if err := svc.SplitOutOfContainer(r.Context(), req.Player, domain.ContainerKind(req.Kind), req.ContainerID, req.Slot, req.Quantity, dst); err != nil {
			respondServiceError(w, r, ErrMsgSplitStackFailed, err)
			return
		}

		log.Info("Stack split out of container",
			"player", req.Player,
			"container", req.ContainerID,
			"slot", req.Slot,
			"quantity", req.Quantity,
			"to", dst.String())

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgStackSplitSuccess})
	}
}

type SplitWithinContainerRequest struct {
	Player      string `json:"player" validate:"required,max=100,excludesall=\x00\n\r\t"`
	Kind        string `json:"kind" validate:"required,containerkind"`
	ContainerID string `json:"container_id" validate:"required,uuid4"`
	FromSlot    int    `json:"from_slot" validate:"min=0"`
	ToSlot      int    `json:"to_slot" validate:"min=0"`
	Quantity    int    `json:"quantity" validate:"min=1,max=10000"`
}

// HandleSplitWithinContainer splits a stack between slots of one container
// @Summary Split stack within container
// @Description Carve a quantity off a contained stack and place the new stack into another slot of the same container
// @Tags transfer
// @Accept json
// @Produce json
// @Param request body SplitWithinContainerRequest true "Split details"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /item/split/within [post]
func HandleSplitWithinContainer(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req SplitWithinContainerRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Split stack within container"); err != nil {
			return
		}

		if err := svc.SplitWithinContainer(r.Context(), req.Player, domain.ContainerKind(req.Kind), req.ContainerID, req.FromSlot, req.ToSlot, req.Quantity); err != nil {
			respondServiceError(w, r, ErrMsgSplitStackFailed, err)
			return
		}

		log.Info("Stack split within container",
			"player", req.Player,
			"container", req.ContainerID,
			"from", req.FromSlot,
			"to", req.ToSlot,
			"quantity", req.Quantity)

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgStackSplitSuccess})
	}
}
