package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const revokedKeyPrefix = "revoked_session:"

// SessionRegistry tracks revoked session token ids in redis. Entries
// carry a TTL equal to the token's remaining life, so the registry
// never outgrows the set of tokens that could still be presented.
type SessionRegistry struct {
	rdb *redis.Client
}

func NewSessionRegistry(rdb *redis.Client) *SessionRegistry {
	return &SessionRegistry{rdb: rdb}
}

// Revoke denylists a token id until it would have expired anyway.
func (r *SessionRegistry) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if tokenID == "" || ttl <= 0 {
		return nil
	}
	return r.rdb.Set(ctx, revokedKeyPrefix+tokenID, "1", ttl).Err()
}

// IsRevoked reports whether a token id has been denylisted.
func (r *SessionRegistry) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	if tokenID == "" {
		return false, nil
	}
	err := r.rdb.Get(ctx, revokedKeyPrefix+tokenID).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
