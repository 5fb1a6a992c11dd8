package services

import (
	"context"
	"time"

	"github.com/bernardoaires/ping-pong/internal/models"
)

// PlayerRepository captures the persistence operations the services need.
type PlayerRepository interface {
	Create(ctx context.Context, player *models.Player) error
	FindByUsername(ctx context.Context, username string) (*models.Player, error)
	FindByID(ctx context.Context, id string) (*models.Player, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
	AdjustPoints(ctx context.Context, id string, delta int) error
	ListByPoints(ctx context.Context) ([]models.Player, error)
}

// MatchRepository captures the match persistence operations.
type MatchRepository interface {
	Insert(ctx context.Context, match *models.Match) error
	MarkPointsApplied(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*models.Match, error)
	List(ctx context.Context) ([]models.Match, error)
}

// SessionRegistry tracks revoked session token ids.
type SessionRegistry interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
