package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/bernardoaires/ping-pong/internal/models"
	"github.com/bernardoaires/ping-pong/internal/services"
	"github.com/bernardoaires/ping-pong/internal/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// MatchHandler exposes match recording and the plain match lookups.
type MatchHandler struct {
	Recorder *services.MatchService
	Matches  services.MatchRepository
	Logger   *zap.Logger
}

func NewMatchHandler(recorder *services.MatchService, matches services.MatchRepository, logger *zap.Logger) *MatchHandler {
	return &MatchHandler{Recorder: recorder, Matches: matches, Logger: logger}
}

func (h *MatchHandler) RecordMatchHandler(w http.ResponseWriter, r *http.Request) {
	var req models.RecordMatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid_request", "Invalid request payload")
		return
	}

	match, err := h.Recorder.RecordMatch(r.Context(), &req)
	if err != nil {
		h.Logger.Error("record match failed", zap.Error(err))
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusCreated, match)
}

func (h *MatchHandler) ListMatchesHandler(w http.ResponseWriter, r *http.Request) {
	matches, err := h.Matches.List(r.Context())
	if err != nil {
		h.Logger.Error("list matches failed", zap.Error(err))
		utils.JSONError(w, http.StatusInternalServerError, "internal_error", "Failed to fetch matches")
		return
	}
	utils.JSON(w, http.StatusOK, matches)
}

func (h *MatchHandler) GetMatchHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	match, err := h.Matches.FindByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, match)
}
