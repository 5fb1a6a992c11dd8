package routers

import (
	"github.com/bernardoaires/ping-pong/internal/handlers"

	"github.com/go-chi/chi/v5"
)

func MatchRoutes(r *chi.Mux, authHandler *handlers.AuthHandler, matchHandler *handlers.MatchHandler) {
	r.Route("/matches", func(r chi.Router) {
		r.With(authHandler.RequireSession).Post("/", matchHandler.RecordMatchHandler)
		r.Get("/", matchHandler.ListMatchesHandler)
		r.Get("/{id}", matchHandler.GetMatchHandler)
	})
}
