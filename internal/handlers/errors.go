package handlers

import (
	"errors"
	"net/http"

	"github.com/bernardoaires/ping-pong/internal/repositories"
	"github.com/bernardoaires/ping-pong/internal/services"
	"github.com/bernardoaires/ping-pong/internal/utils"
	"github.com/bernardoaires/ping-pong/internal/validation"
)

// writeServiceError maps core errors onto the HTTP taxonomy. Anything
// unrecognized is an internal failure and stays generic to the client;
// the wrapped step context is for the server log only.
func writeServiceError(w http.ResponseWriter, err error) {
	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		utils.JSONError(w, http.StatusBadRequest, "validation_failed", verr.Error())
	case errors.Is(err, repositories.ErrDuplicateAccount):
		utils.JSONError(w, http.StatusConflict, "account_exists", "already registered")
	case errors.Is(err, repositories.ErrPlayerNotFound):
		utils.JSONError(w, http.StatusNotFound, "player_not_found", "player not found")
	case errors.Is(err, repositories.ErrMatchNotFound):
		utils.JSONError(w, http.StatusNotFound, "match_not_found", "match not found")
	case errors.Is(err, services.ErrInvalidCredentials):
		utils.JSONError(w, http.StatusUnauthorized, "unauthorized", "invalid credentials")
	case errors.Is(err, utils.ErrInvalidToken), errors.Is(err, utils.ErrMissingAuthHeader):
		utils.JSONError(w, http.StatusUnauthorized, "unauthorized", "invalid or missing token")
	case errors.Is(err, services.ErrSelfMatch):
		utils.JSONError(w, http.StatusBadRequest, "invalid_match", "winner and loser must be different players")
	default:
		utils.JSONError(w, http.StatusInternalServerError, "internal_error", "internal error")
	}
}
