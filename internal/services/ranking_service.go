package services

import (
	"context"

	"github.com/bernardoaires/ping-pong/internal/models"
)

// RankingService is the read-only leaderboard projection.
type RankingService struct {
	players PlayerRepository
}

func NewRankingService(players PlayerRepository) *RankingService {
	return &RankingService{players: players}
}

// ListRanking returns all players ordered by points descending. The
// repository projects the password hash out before decoding.
func (s *RankingService) ListRanking(ctx context.Context) ([]models.Player, error) {
	return s.players.ListByPoints(ctx)
}
