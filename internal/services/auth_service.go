package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bernardoaires/ping-pong/internal/models"
	"github.com/bernardoaires/ping-pong/internal/repositories"
	"github.com/bernardoaires/ping-pong/internal/utils"
	"github.com/bernardoaires/ping-pong/internal/validation"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService orchestrates signup, signin and session resolution.
type AuthService struct {
	players   PlayerRepository
	sessions  SessionRegistry
	jwtSecret string
}

func NewAuthService(players PlayerRepository, sessions SessionRegistry, jwtSecret string) *AuthService {
	return &AuthService{players: players, sessions: sessions, jwtSecret: jwtSecret}
}

// SignUp validates the payload, creates the player with a zero point
// balance and returns it alongside a fresh session token. The existence
// check is only a fast path; the store's unique indexes stay
// authoritative when two signups race.
func (s *AuthService) SignUp(ctx context.Context, req *models.SignUpRequest) (*models.Player, string, error) {
	if err := validation.SignUp(req); err != nil {
		return nil, "", err
	}

	taken, err := s.players.ExistsByUsernameOrEmail(ctx, req.Username, req.Email)
	if err != nil {
		return nil, "", fmt.Errorf("check existing account: %w", err)
	}
	if taken {
		return nil, "", repositories.ErrDuplicateAccount
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	player := &models.Player{
		Username:     req.Username,
		PasswordHash: hash,
		Name:         req.Name,
		Email:        req.Email,
		Age:          req.Age,
		Sex:          req.Sex,
		Points:       0,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.players.Create(ctx, player); err != nil {
		return nil, "", err
	}

	token, err := utils.IssueToken(s.jwtSecret, player.ID.Hex())
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}
	player.PasswordHash = ""
	return player, token, nil
}

// SignIn authenticates a player. Unknown usernames surface as
// not-found, a hash mismatch as invalid credentials.
func (s *AuthService) SignIn(ctx context.Context, req *models.SignInRequest) (*models.Player, string, error) {
	if err := validation.SignIn(req); err != nil {
		return nil, "", err
	}

	player, err := s.players.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, "", err
	}
	if !utils.CheckPassword(req.Password, player.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := utils.IssueToken(s.jwtSecret, player.ID.Hex())
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}
	player.PasswordHash = ""
	return player, token, nil
}

// ResolveSession verifies a token and returns the player it identifies,
// with the password hash stripped. Revoked and malformed tokens fail
// identically.
func (s *AuthService) ResolveSession(ctx context.Context, token string) (*models.Player, error) {
	claims, err := utils.ParseToken(s.jwtSecret, token)
	if err != nil {
		return nil, err
	}

	revoked, err := s.sessions.IsRevoked(ctx, claims.TokenID)
	if err != nil {
		return nil, fmt.Errorf("check session revocation: %w", err)
	}
	if revoked {
		return nil, utils.ErrInvalidToken
	}

	player, err := s.players.FindByID(ctx, claims.PlayerID)
	if err != nil {
		return nil, err
	}
	player.PasswordHash = ""
	return player, nil
}

// SignOut revokes the presented token for the rest of its lifetime.
func (s *AuthService) SignOut(ctx context.Context, token string) error {
	claims, err := utils.ParseToken(s.jwtSecret, token)
	if err != nil {
		return err
	}
	return s.sessions.Revoke(ctx, claims.TokenID, time.Until(claims.ExpiresAt))
}
