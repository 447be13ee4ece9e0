package handler

import (
	"net/http"

	"github.com/hollowpine/frontier/internal/domain"
	"github.com/hollowpine/frontier/internal/inventory"
	"github.com/hollowpine/frontier/internal/logger"
)

type EquipItemRequest struct {
	Player     string `json:"player" validate:"required,max=100,excludesall=\x00\n\r\t"`
	InstanceID string `json:"instance_id" validate:"required,uuid4"`
	BodySlot   string `json:"body_slot" validate:"required,bodyslot"`
}

// HandleEquipItem equips a held item into a body slot
// @Summary Equip item
// @Description Equip a held item into a body slot, swapping out any currently equipped item
// @Tags equipment
// @Accept json
// @Produce json
// @Param request body EquipItemRequest true "Equip details"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /player/equip [post]
func HandleEquipItem(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req EquipItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Equip item"); err != nil {
			return
		}

		if err := svc.Equip(r.Context(), req.Player, req.InstanceID, domain.BodySlot(req.BodySlot)); err != nil {
			respondServiceError(w, r, ErrMsgEquipItemFailed, err)
			return
		}

		log.Info("Item equipped",
			"player", req.Player,
			"instance", req.InstanceID,
			"body_slot", req.BodySlot)

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgItemEquippedSuccess})
	}
}

type UnequipItemRequest struct {
	Player   string `json:"player" validate:"required,max=100,excludesall=\x00\n\r\t"`
	BodySlot string `json:"body_slot" validate:"required,bodyslot"`
}

// HandleUnequipItem removes an equipped item back to the inventory
// @Summary Unequip item
// @Description Move the item equipped in a body slot back into the first empty inventory slot
// @Tags equipment
// @Accept json
// @Produce json
// @Param request body UnequipItemRequest true "Unequip details"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /player/unequip [post]
func HandleUnequipItem(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req UnequipItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Unequip item"); err != nil {
			return
		}

		if err := svc.Unequip(r.Context(), req.Player, domain.BodySlot(req.BodySlot)); err != nil {
			respondServiceError(w, r, ErrMsgUnequipItemFailed, err)
			return
		}

		log.Info("Item unequipped", "player", req.Player, "body_slot", req.BodySlot)

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgItemUnequippedSuccess})
	}
}
