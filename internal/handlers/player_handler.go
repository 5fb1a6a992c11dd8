package handlers

import (
	"net/http"

	"github.com/bernardoaires/ping-pong/internal/services"
	"github.com/bernardoaires/ping-pong/internal/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// PlayerHandler exposes the plain player lookups.
type PlayerHandler struct {
	Players services.PlayerRepository
	Logger  *zap.Logger
}

func NewPlayerHandler(players services.PlayerRepository, logger *zap.Logger) *PlayerHandler {
	return &PlayerHandler{Players: players, Logger: logger}
}

func (h *PlayerHandler) ListPlayersHandler(w http.ResponseWriter, r *http.Request) {
	players, err := h.Players.ListByPoints(r.Context())
	if err != nil {
		h.Logger.Error("list players failed", zap.Error(err))
		utils.JSONError(w, http.StatusInternalServerError, "internal_error", "Failed to fetch players")
		return
	}
	utils.JSON(w, http.StatusOK, players)
}

func (h *PlayerHandler) GetPlayerHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	player, err := h.Players.FindByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	player.PasswordHash = ""
	utils.JSON(w, http.StatusOK, player)
}
