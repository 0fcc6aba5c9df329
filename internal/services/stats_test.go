package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/gamercv/gamercv-api/internal/models"
	"github.com/gamercv/gamercv-api/internal/providers"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	data map[string]interface{}
	err  error
	hang bool
}

func (p *stubProvider) Fetch(ctx context.Context, handle string) (map[string]interface{}, error) {
	if p.hang {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if p.err != nil {
		return nil, p.err
	}
	return p.data, nil
}

func newStatsFixture(t *testing.T, provider providers.Provider) (*fakeStore, *StatsService, uuid.UUID, *models.Game) {
	t.Helper()
	store := newFakeStore()
	userID := seedUser(t, store, "alice")
	game, err := NewGameService(store, store).AddGame(userID, GameInput{
		Name: "Valorant", Category: "FPS", Username: "alice#eu",
	})
	require.NoError(t, err)

	registry := providers.NewRegistry()
	if provider != nil {
		registry.Register("FPS", provider)
	}
	svc := NewStatsService(store, registry, store, 50*time.Millisecond)
	return store, svc, userID, game
}

func TestRefreshUpsertsSnapshot(t *testing.T) {
	provider := &stubProvider{data: map[string]interface{}{
		"wins": 10.0, "losses": 5.0, "current_rank": "Gold II",
	}}
	store, svc, userID, game := newStatsFixture(t, provider)

	stats, err := svc.Refresh(context.Background(), userID, game.ID)
	require.NoError(t, err)
	assert.Equal(t, game.ID, stats.GameID)
	assert.WithinDuration(t, time.Now(), stats.LastRefreshed, time.Second)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(stats.StatsData, &payload))
	assert.Equal(t, "Gold II", payload["current_rank"])

	// a second refresh overwrites the single row rather than adding one
	provider.data["wins"] = 11.0
	stats, err = svc.Refresh(context.Background(), userID, game.ID)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(stats.StatsData, &payload))
	assert.Equal(t, 11.0, payload["wins"])
	assert.Len(t, store.stats, 1)
}

func TestRefreshUnsupportedCategory(t *testing.T) {
	store := newFakeStore()
	userID := seedUser(t, store, "alice")
	game, err := NewGameService(store, store).AddGame(userID, GameInput{
		Name: "Age of Empires", Category: "Strategy", Username: "alice",
	})
	require.NoError(t, err)

	svc := NewStatsService(store, providers.NewRegistry(), store, time.Second)
	_, err = svc.Refresh(context.Background(), userID, game.ID)
	assert.ErrorIs(t, err, ErrStatsUnsupported)
}

func TestRefreshNoProviderRegistered(t *testing.T) {
	_, svc, userID, game := newStatsFixture(t, nil)

	_, err := svc.Refresh(context.Background(), userID, game.ID)
	assert.ErrorIs(t, err, ErrStatsUnsupported)
}

func TestRefreshFailureKeepsPreviousSnapshot(t *testing.T) {
	provider := &stubProvider{data: map[string]interface{}{"wins": 10.0}}
	store, svc, userID, game := newStatsFixture(t, provider)

	_, err := svc.Refresh(context.Background(), userID, game.ID)
	require.NoError(t, err)

	provider.hang = true
	_, err = svc.Refresh(context.Background(), userID, game.ID)
	assert.ErrorIs(t, err, ErrUpstream)

	// the earlier snapshot is still served
	snapshot, err := svc.Get(userID, game.ID)
	require.NoError(t, err)
	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(snapshot.Stats.StatsData, &payload))
	assert.Equal(t, 10.0, payload["wins"])
	assert.Len(t, store.stats, 1)
}

func TestRefreshWrongOwner(t *testing.T) {
	store, svc, _, game := newStatsFixture(t, &stubProvider{data: map[string]interface{}{}})
	bobID := seedUser(t, store, "bob")

	_, err := svc.Refresh(context.Background(), bobID, game.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetNeverRefreshed(t *testing.T) {
	_, svc, userID, game := newStatsFixture(t, nil)

	_, err := svc.Get(userID, game.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetStaleness(t *testing.T) {
	store, svc, userID, game := newStatsFixture(t, nil)

	require.NoError(t, store.UpsertGameStats(game.ID, []byte(`{"wins":1}`), time.Now()))
	snapshot, err := svc.Get(userID, game.ID)
	require.NoError(t, err)
	assert.False(t, snapshot.Stale)

	// older than the owner's refresh interval (default 3600s)
	require.NoError(t, store.UpsertGameStats(game.ID, []byte(`{"wins":1}`), time.Now().Add(-2*time.Hour)))
	snapshot, err = svc.Get(userID, game.ID)
	require.NoError(t, err)
	assert.True(t, snapshot.Stale)
}

func TestProfileRollupEmptyOwner(t *testing.T) {
	store := newFakeStore()
	svc := NewStatsService(store, providers.NewRegistry(), store, time.Second)
	userID := seedUser(t, store, "alice")

	rollups, err := svc.ProfileRollup(userID)
	require.NoError(t, err)
	assert.Empty(t, rollups)
}

func TestRefreshLogsActivity(t *testing.T) {
	provider := &stubProvider{data: map[string]interface{}{"wins": 1.0}}
	store, svc, userID, game := newStatsFixture(t, provider)

	_, err := svc.Refresh(context.Background(), userID, game.ID)
	require.NoError(t, err)

	entries, _, err := store.ListUserActivity(userID, 10, 0)
	require.NoError(t, err)
	types := make([]string, 0, len(entries))
	for _, e := range entries {
		types = append(types, e.Type)
	}
	assert.Contains(t, types, models.ActivityStatsUpdated)
}
