package routers

import (
	"github.com/bernardoaires/ping-pong/internal/handlers"

	"github.com/go-chi/chi/v5"
)

func AuthRoutes(r *chi.Mux, authHandler *handlers.AuthHandler) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/signUp", authHandler.SignUpHandler)   // Player registration
		r.Post("/signIn", authHandler.SignInHandler)   // Player login
		r.Post("/signOut", authHandler.SignOutHandler) // Session revocation
	})
	r.With(authHandler.RequireSession).Get("/me", authHandler.MeHandler) // Current player
}
