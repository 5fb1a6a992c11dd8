package handlers

import (
	"net/http"

	"github.com/bernardoaires/ping-pong/internal/models"
	"github.com/bernardoaires/ping-pong/internal/services"
	"github.com/bernardoaires/ping-pong/internal/utils"

	"go.uber.org/zap"
)

// RankingHandler serves the leaderboard.
type RankingHandler struct {
	Ranking *services.RankingService
	Logger  *zap.Logger
}

func NewRankingHandler(ranking *services.RankingService, logger *zap.Logger) *RankingHandler {
	return &RankingHandler{Ranking: ranking, Logger: logger}
}

func (h *RankingHandler) ListRankingHandler(w http.ResponseWriter, r *http.Request) {
	players, err := h.Ranking.ListRanking(r.Context())
	if err != nil {
		h.Logger.Error("list ranking failed", zap.Error(err))
		utils.JSONError(w, http.StatusInternalServerError, "internal_error", "Failed to fetch ranking")
		return
	}
	utils.JSON(w, http.StatusOK, models.RankingResponse{Total: len(players), Players: players})
}
