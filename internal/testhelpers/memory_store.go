package testhelpers

import (
	"context"
	"sort"
	"sync"

	"github.com/bernardoaires/ping-pong/internal/models"
	"github.com/bernardoaires/ping-pong/internal/repositories"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PlayerStore is an in-memory stand-in for the Player collection. It
// mirrors the mongo repository's contract, including the sentinel
// errors and the per-call atomicity of AdjustPoints.
type PlayerStore struct {
	mu      sync.Mutex
	players []*models.Player
}

func NewPlayerStore() *PlayerStore {
	return &PlayerStore{}
}

func copyPlayer(p *models.Player) *models.Player {
	cp := *p
	return &cp
}

func (s *PlayerStore) Create(_ context.Context, player *models.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.players {
		if existing.Username == player.Username || existing.Email == player.Email {
			return repositories.ErrDuplicateAccount
		}
	}
	player.ID = primitive.NewObjectID()
	s.players = append(s.players, copyPlayer(player))
	return nil
}

func (s *PlayerStore) FindByUsername(_ context.Context, username string) (*models.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.players {
		if p.Username == username {
			return copyPlayer(p), nil
		}
	}
	return nil, repositories.ErrPlayerNotFound
}

func (s *PlayerStore) FindByID(_ context.Context, id string) (*models.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.players {
		if p.ID.Hex() == id {
			return copyPlayer(p), nil
		}
	}
	return nil, repositories.ErrPlayerNotFound
}

func (s *PlayerStore) ExistsByUsernameOrEmail(_ context.Context, username, email string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.players {
		if p.Username == username || p.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (s *PlayerStore) AdjustPoints(_ context.Context, id string, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.players {
		if p.ID.Hex() == id {
			p.Points += delta
			return nil
		}
	}
	return repositories.ErrPlayerNotFound
}

func (s *PlayerStore) ListByPoints(_ context.Context) ([]models.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Player, 0, len(s.players))
	for _, p := range s.players {
		cp := *p
		cp.PasswordHash = ""
		out = append(out, cp)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Points > out[j].Points })
	return out, nil
}

// MatchStore is the in-memory counterpart for the Match collection.
type MatchStore struct {
	mu      sync.Mutex
	matches []*models.Match

	// InsertErr lets tests inject a store failure on insert.
	InsertErr error
}

func NewMatchStore() *MatchStore {
	return &MatchStore{}
}

func copyMatch(m *models.Match) *models.Match {
	cp := *m
	cp.Result = append([]int(nil), m.Result...)
	return &cp
}

func (s *MatchStore) Insert(_ context.Context, match *models.Match) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.InsertErr != nil {
		return s.InsertErr
	}
	match.ID = primitive.NewObjectID()
	s.matches = append(s.matches, copyMatch(match))
	return nil
}

func (s *MatchStore) MarkPointsApplied(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.matches {
		if m.ID.Hex() == id {
			m.PointsApplied = true
			return nil
		}
	}
	return repositories.ErrMatchNotFound
}

func (s *MatchStore) FindByID(_ context.Context, id string) (*models.Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.matches {
		if m.ID.Hex() == id {
			return copyMatch(m), nil
		}
	}
	return nil, repositories.ErrMatchNotFound
}

func (s *MatchStore) List(_ context.Context) ([]models.Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Match, 0, len(s.matches))
	for i := len(s.matches) - 1; i >= 0; i-- {
		out = append(out, *copyMatch(s.matches[i]))
	}
	return out, nil
}

// Count reports how many matches have been stored.
func (s *MatchStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.matches)
}
