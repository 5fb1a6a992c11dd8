package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/bernardoaires/ping-pong/internal/testhelpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListRanking(t *testing.T) {
	players := testhelpers.NewPlayerStore()
	svc := NewRankingService(players)
	ctx := context.Background()

	seedPlayer(t, players, "low@example.com", -25)
	seedPlayer(t, players, "high@example.com", 75)
	seedPlayer(t, players, "mid@example.com", 25)

	ranking, err := svc.ListRanking(ctx)
	require.NoError(t, err)
	require.Len(t, ranking, 3)

	assert.Equal(t, "high@example.com", ranking[0].Username)
	assert.Equal(t, "mid@example.com", ranking[1].Username)
	assert.Equal(t, "low@example.com", ranking[2].Username)

	// password hashes must never appear in the projection
	encoded, err := json.Marshal(ranking)
	require.NoError(t, err)
	assert.NotContains(t, string(encoded), "passwordHash")
	assert.NotContains(t, string(encoded), "bcrypt-digest")
}

func TestListRankingEmpty(t *testing.T) {
	svc := NewRankingService(testhelpers.NewPlayerStore())

	ranking, err := svc.ListRanking(context.Background())
	require.NoError(t, err)
	assert.Empty(t, ranking)
}
