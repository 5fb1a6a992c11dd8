package routers

import (
	"github.com/bernardoaires/ping-pong/internal/handlers"

	"github.com/go-chi/chi/v5"
)

func PlayerRoutes(r *chi.Mux, playerHandler *handlers.PlayerHandler) {
	r.Route("/players", func(r chi.Router) {
		r.Get("/", playerHandler.ListPlayersHandler)
		r.Get("/{id}", playerHandler.GetPlayerHandler)
	})
}
