package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bernardoaires/ping-pong/internal/models"
	"github.com/bernardoaires/ping-pong/internal/validation"
)

// MatchPoints is the fixed point delta transferred from loser to winner
// per recorded match.
const MatchPoints = 25

var ErrSelfMatch = errors.New("winner and loser must be different players")

// MatchService records match results and moves ranking points between
// the two involved players.
type MatchService struct {
	players PlayerRepository
	matches MatchRepository
}

func NewMatchService(players PlayerRepository, matches MatchRepository) *MatchService {
	return &MatchService{players: players, matches: matches}
}

// RecordMatch persists the match and applies the paired point
// adjustment. Each adjustment is a single-document atomic increment, so
// concurrent submissions cannot lose updates at the field level. The
// three writes are not wrapped in a cross-document transaction; instead
// the match starts with pointsApplied=false and is marked applied only
// after both increments land, so an interrupted recording is detectable
// and resumable by match id. Errors name the step that failed.
func (s *MatchService) RecordMatch(ctx context.Context, req *models.RecordMatchRequest) (*models.Match, error) {
	if err := validation.RecordMatch(req); err != nil {
		return nil, err
	}
	if req.WinnerID == req.LoserID {
		return nil, ErrSelfMatch
	}

	if _, err := s.players.FindByID(ctx, req.WinnerID); err != nil {
		return nil, fmt.Errorf("winner: %w", err)
	}
	if _, err := s.players.FindByID(ctx, req.LoserID); err != nil {
		return nil, fmt.Errorf("loser: %w", err)
	}

	match := &models.Match{
		Date:      req.Date,
		WinnerID:  req.WinnerID,
		LoserID:   req.LoserID,
		Result:    req.Result,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.matches.Insert(ctx, match); err != nil {
		return nil, fmt.Errorf("insert match: %w", err)
	}

	if err := s.players.AdjustPoints(ctx, req.WinnerID, MatchPoints); err != nil {
		return nil, fmt.Errorf("apply winner points for match %s: %w", match.ID.Hex(), err)
	}
	if err := s.players.AdjustPoints(ctx, req.LoserID, -MatchPoints); err != nil {
		return nil, fmt.Errorf("apply loser points for match %s: %w", match.ID.Hex(), err)
	}
	if err := s.matches.MarkPointsApplied(ctx, match.ID.Hex()); err != nil {
		return nil, fmt.Errorf("mark points applied for match %s: %w", match.ID.Hex(), err)
	}
	match.PointsApplied = true

	return match, nil
}
