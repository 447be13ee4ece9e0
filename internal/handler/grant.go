package handler

import (
	"net/http"

	"github.com/hollowpine/frontier/internal/inventory"
	"github.com/hollowpine/frontier/internal/logger"
)

type GrantItemRequest struct {
	Player   string `json:"player" validate:"required,max=100,excludesall=\x00\n\r\t"`
	ItemName string `json:"item_name" validate:"required,max=100"`
	Quantity int    `json:"quantity" validate:"min=1,max=10000"`
}

// HandleGrantItem grants items to a player by definition name
// @Summary Grant item
// @Description Grant a quantity of an item to a player, topping up existing stacks before opening new ones
// @Tags inventory
// @Accept json
// @Produce json
// @Param request body GrantItemRequest true "Grant details"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /player/item/grant [post]
func HandleGrantItem(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req GrantItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Grant item"); err != nil {
			return
		}

		if err := svc.GrantItem(r.Context(), req.Player, req.ItemName, req.Quantity); err != nil {
			respondServiceError(w, r, ErrMsgGrantItemFailed, err)
			return
		}

		log.Info("Item granted",
			"player", req.Player,
			"item", req.ItemName,
			"quantity", req.Quantity)

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgItemGrantedSuccess})
	}
}

type ConsumeItemRequest struct {
	Player   string `json:"player" validate:"required,max=100,excludesall=\x00\n\r\t"`
	ItemName string `json:"item_name" validate:"required,max=100"`
	Quantity int    `json:"quantity" validate:"min=1,max=10000"`
}

// HandleConsumeItem consumes items held by a player
// @Summary Consume item
// @Description Remove a quantity of an item from a player's inventory and hotbar
// @Tags inventory
// @Accept json
// @Produce json
// @Param request body ConsumeItemRequest true "Consume details"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /player/item/consume [post]
func HandleConsumeItem(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req ConsumeItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Consume item"); err != nil {
			return
		}

		if err := svc.ConsumeItem(r.Context(), req.Player, req.ItemName, req.Quantity); err != nil {
			respondServiceError(w, r, ErrMsgConsumeItemFailed, err)
			return
		}

		log.Info("Item consumed",
			"player", req.Player,
			"item", req.ItemName,
			"quantity", req.Quantity)

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgItemConsumedSuccess})
	}
}
