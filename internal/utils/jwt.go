package utils

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenTTL bounds how long an issued session token stays valid.
const TokenTTL = 24 * time.Hour

var parseJWT = func(tokenStr string, keyFunc jwt.Keyfunc) (*jwt.Token, error) {
	return jwt.Parse(tokenStr, keyFunc)
}

var (
	ErrMissingAuthHeader = errors.New("missing or malformed Authorization header")
	ErrInvalidToken      = errors.New("invalid token")
)

// SessionClaims is the verified content of a session token. Tokens
// always identify a player; the TokenID exists so individual sessions
// can be revoked before they expire.
type SessionClaims struct {
	PlayerID  string
	TokenID   string
	ExpiresAt time.Time
}

// IssueToken signs a session token bound to the given player id.
func IssueToken(secret, playerID string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": playerID,
		"jti": uuid.NewString(),
		"iat": now.Unix(),
		"exp": now.Add(TokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken validates a session token and extracts its claims. Every
// failure mode collapses into ErrInvalidToken so callers cannot be used
// as an oracle for why a token was rejected.
func ParseToken(secret, tokenStr string) (*SessionClaims, error) {
	token, err := parseJWT(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenUnverifiable
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return nil, ErrInvalidToken
	}
	jti, _ := claims["jti"].(string)
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil, ErrInvalidToken
	}

	return &SessionClaims{PlayerID: sub, TokenID: jti, ExpiresAt: exp.Time}, nil
}

// BearerToken fetches the raw token from the Authorization header.
func BearerToken(r *http.Request) (string, error) {
	authz := r.Header.Get("Authorization")
	if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
		return "", ErrMissingAuthHeader
	}
	return strings.TrimPrefix(authz, "Bearer "), nil
}
