package routers

import (
	"github.com/bernardoaires/ping-pong/internal/handlers"

	"github.com/go-chi/chi/v5"
)

func RankingRoutes(r *chi.Mux, rankingHandler *handlers.RankingHandler) {
	r.Get("/ranking", rankingHandler.ListRankingHandler)
}
