package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gamercv/gamercv-api/internal/models"
	"github.com/gamercv/gamercv-api/internal/providers"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"gorm.io/datatypes"
)

// StatsService refreshes and serves per-game stats snapshots plus the profile rollup.
type StatsService struct {
	store    StatsStore
	registry *providers.Registry
	activity ActivityStore
	timeout  time.Duration
}

func NewStatsService(store StatsStore, registry *providers.Registry, activity ActivityStore, timeout time.Duration) *StatsService {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &StatsService{store: store, registry: registry, activity: activity, timeout: timeout}
}

// Refresh fetches fresh stats from the category's provider and upserts the game's
// snapshot. Provider failure or timeout leaves any previous snapshot untouched.
func (s *StatsService) Refresh(ctx context.Context, userID, gameID uuid.UUID) (*models.GameStats, error) {
	game, err := s.store.GetUserGame(userID, gameID)
	if err != nil {
		return nil, translateNotFound(err)
	}
	if !game.Category.SupportedStats {
		return nil, ErrStatsUnsupported
	}

	provider, err := s.registry.For(game.Category.Name)
	if err != nil {
		return nil, ErrStatsUnsupported
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	data, err := provider.Fetch(ctx, game.Username)
	if err != nil {
		log.WithFields(log.Fields{"game_id": gameID, "category": game.Category.Name}).
			WithError(err).Warn("stats provider call failed")
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	payload, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	refreshedAt := time.Now()
	if err := s.store.UpsertGameStats(gameID, datatypes.JSON(payload), refreshedAt); err != nil {
		return nil, err
	}

	s.logActivity(userID, game)

	return s.store.GetGameStats(gameID)
}

// Snapshot holds a stats row together with its staleness signal.
type Snapshot struct {
	Stats *models.GameStats
	Stale bool
}

// Get returns the latest snapshot for an owner's game, or ErrNotFound when the game
// was never refreshed. Staleness is judged against the owner's refresh interval.
func (s *StatsService) Get(userID, gameID uuid.UUID) (*Snapshot, error) {
	if _, err := s.store.GetUserGame(userID, gameID); err != nil {
		return nil, translateNotFound(err)
	}
	stats, err := s.store.GetGameStats(gameID)
	if err != nil {
		return nil, translateNotFound(err)
	}

	interval := 3600
	if settings, err := s.store.GetSettings(userID); err == nil {
		interval = settings.StatsRefreshInterval
	}
	return &Snapshot{
		Stats: stats,
		Stale: stats.Stale(time.Duration(interval) * time.Second),
	}, nil
}

// ProfileRollup aggregates all of the owner's games into per-category rollups.
// An owner with zero games gets an empty slice, never an error.
func (s *StatsService) ProfileRollup(userID uuid.UUID) ([]CategoryRollup, error) {
	games, _, err := s.store.ListUserGames(userID, nil, "", 1000, 0)
	if err != nil {
		return nil, err
	}
	return AggregateByCategory(games), nil
}

func (s *StatsService) logActivity(userID uuid.UUID, game *models.Game) {
	metadata := datatypes.JSON([]byte(`{"game_id":"` + game.ID.String() + `"}`))
	err := s.activity.CreateActivity(&models.Activity{
		UserID:   userID,
		Type:     models.ActivityStatsUpdated,
		Title:    "Refreshed stats for " + game.Name,
		Metadata: metadata,
	})
	if err != nil {
		log.WithError(err).Warn("failed to record activity")
	}
}
