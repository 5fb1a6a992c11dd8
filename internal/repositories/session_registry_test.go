package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRegistry(t *testing.T) (*miniredis.Miniredis, *SessionRegistry) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return mr, NewSessionRegistry(client)
}

func TestSessionRegistry(t *testing.T) {
	_, registry := setupRegistry(t)
	ctx := context.Background()

	revoked, err := registry.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, registry.Revoke(ctx, "jti-1", time.Hour))

	revoked, err = registry.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestSessionRegistryEntryExpires(t *testing.T) {
	mr, registry := setupRegistry(t)
	ctx := context.Background()

	require.NoError(t, registry.Revoke(ctx, "jti-1", time.Minute))
	mr.FastForward(2 * time.Minute)

	revoked, err := registry.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestSessionRegistryNoOps(t *testing.T) {
	_, registry := setupRegistry(t)
	ctx := context.Background()

	// expired tokens need no registry entry
	require.NoError(t, registry.Revoke(ctx, "jti-1", -time.Minute))
	revoked, err := registry.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	// tokens without an id cannot be denylisted, nor looked up
	require.NoError(t, registry.Revoke(ctx, "", time.Hour))
	revoked, err = registry.IsRevoked(ctx, "")
	require.NoError(t, err)
	assert.False(t, revoked)
}
