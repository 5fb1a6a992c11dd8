package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/bernardoaires/ping-pong/internal/models"
	"github.com/bernardoaires/ping-pong/internal/services"
	"github.com/bernardoaires/ping-pong/internal/utils"

	"go.uber.org/zap"
)

type contextKey string

const playerContextKey contextKey = "player"

// AuthHandler manages the authentication endpoints and the session
// gate in front of protected routes.
type AuthHandler struct {
	Auth   *services.AuthService
	Logger *zap.Logger
}

func NewAuthHandler(auth *services.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{Auth: auth, Logger: logger}
}

func (h *AuthHandler) SignUpHandler(w http.ResponseWriter, r *http.Request) {
	var req models.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid_request", "Invalid request payload")
		return
	}

	player, token, err := h.Auth.SignUp(r.Context(), &req)
	if err != nil {
		h.Logger.Warn("signup failed", zap.Error(err))
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusCreated, models.AuthResponse{Token: token, Player: player})
}

func (h *AuthHandler) SignInHandler(w http.ResponseWriter, r *http.Request) {
	var req models.SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid_request", "Invalid request payload")
		return
	}

	player, token, err := h.Auth.SignIn(r.Context(), &req)
	if err != nil {
		h.Logger.Warn("signin failed", zap.Error(err))
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, models.AuthResponse{Token: token, Player: player})
}

func (h *AuthHandler) SignOutHandler(w http.ResponseWriter, r *http.Request) {
	token, err := utils.BearerToken(r)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if err := h.Auth.SignOut(r.Context(), token); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// MeHandler returns the player behind the presented session token.
func (h *AuthHandler) MeHandler(w http.ResponseWriter, r *http.Request) {
	player, ok := PlayerFromContext(r.Context())
	if !ok {
		utils.JSONError(w, http.StatusUnauthorized, "unauthorized", "invalid or missing token")
		return
	}
	utils.JSON(w, http.StatusOK, player)
}

// RequireSession resolves the bearer token ahead of protected handlers
// and stores the player on the request context.
func (h *AuthHandler) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := utils.BearerToken(r)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		player, err := h.Auth.ResolveSession(r.Context(), token)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		ctx := context.WithValue(r.Context(), playerContextKey, player)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// PlayerFromContext retrieves the session player set by RequireSession.
func PlayerFromContext(ctx context.Context) (*models.Player, bool) {
	player, ok := ctx.Value(playerContextKey).(*models.Player)
	return player, ok
}
