package handler

import (
	"net/http"

	"github.com/hollowpine/frontier/internal/inventory"
	"github.com/hollowpine/frontier/internal/logger"
)

// GetPlayerItemsResponse wraps the full view of a player's held items
type GetPlayerItemsResponse struct {
	Items *inventory.PlayerItems `json:"items"`
}

// HandleGetPlayerItems returns everything a player currently holds
// @Summary Get player items
// @Description Get the player's inventory, hotbar and equipped items
// @Tags inventory
// @Produce json
// @Param player query string true "Player name"
// @Success 200 {object} GetPlayerItemsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /player/items [get]
func HandleGetPlayerItems(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		player, ok := GetQueryParam(r, w, "player")
		if !ok {
			return
		}

		items, err := svc.GetPlayerItems(r.Context(), player)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetPlayerItemsFail, err)
			return
		}

		log.Debug("Player items retrieved", "player", player)

		respondJSON(w, http.StatusOK, GetPlayerItemsResponse{Items: items})
	}
}
