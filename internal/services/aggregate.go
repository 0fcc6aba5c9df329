package services

import (
	"encoding/json"
	"sort"
	"strings"
	"time"

	"github.com/gamercv/gamercv-api/internal/models"
)

// rankTiers orders the common ladder tiers, lowest first. Rank strings are matched
// by substring so "Gold II" and "gold_1" both land on the gold tier.
var rankTiers = []string{
	"iron", "bronze", "silver", "gold", "platinum",
	"emerald", "diamond", "master", "grandmaster", "challenger",
}

// CategoryRollup summarizes one category of an owner's games. Numeric fields merge
// only snapshots of supported categories; TotalGames counts every game regardless.
type CategoryRollup struct {
	Category      string     `json:"category"`
	SupportsStats bool       `json:"supports_stats"`
	TotalGames    int        `json:"total_games"`
	TrackedGames  int        `json:"tracked_games"`
	TotalWins     int        `json:"total_wins"`
	TotalLosses   int        `json:"total_losses"`
	WinRate       float64    `json:"win_rate"`
	BestGame      string     `json:"best_game,omitempty"`
	HighestRank   string     `json:"highest_rank,omitempty"`
	LastUpdated   *time.Time `json:"last_updated,omitempty"`
}

// AggregateByCategory groups games (with Category and Stats preloaded) into
// per-category rollups, ordered by category name.
func AggregateByCategory(games []models.Game) []CategoryRollup {
	byName := make(map[string]*CategoryRollup)

	for _, game := range games {
		rollup, ok := byName[game.Category.Name]
		if !ok {
			rollup = &CategoryRollup{
				Category:      game.Category.Name,
				SupportsStats: game.Category.SupportedStats,
			}
			byName[game.Category.Name] = rollup
		}
		rollup.TotalGames++

		if game.Stats == nil || !game.Category.SupportedStats {
			continue
		}

		var payload map[string]interface{}
		if err := json.Unmarshal(game.Stats.StatsData, &payload); err != nil {
			continue
		}
		rollup.TrackedGames++

		wins := intField(payload, "wins")
		losses := intField(payload, "losses")
		rollup.TotalWins += wins
		rollup.TotalLosses += losses

		if rank := rankField(payload); rank != "" {
			if rollup.HighestRank == "" || rankValue(rank) > rankValue(rollup.HighestRank) {
				rollup.HighestRank = rank
			}
		}
		refreshed := game.Stats.LastRefreshed
		if rollup.LastUpdated == nil || refreshed.After(*rollup.LastUpdated) {
			rollup.LastUpdated = &refreshed
		}
	}

	// second pass for win rate and best game
	for _, rollup := range byName {
		best, bestWins := "", -1
		for _, game := range games {
			if game.Category.Name != rollup.Category || game.Stats == nil || !game.Category.SupportedStats {
				continue
			}
			var payload map[string]interface{}
			if err := json.Unmarshal(game.Stats.StatsData, &payload); err != nil {
				continue
			}
			if wins := intField(payload, "wins"); wins > bestWins {
				best, bestWins = game.Name, wins
			}
		}
		rollup.BestGame = best

		if total := rollup.TotalWins + rollup.TotalLosses; total > 0 {
			rollup.WinRate = float64(rollup.TotalWins) / float64(total) * 100
		}
	}

	rollups := make([]CategoryRollup, 0, len(byName))
	for _, rollup := range byName {
		rollups = append(rollups, *rollup)
	}
	sort.Slice(rollups, func(i, j int) bool { return rollups[i].Category < rollups[j].Category })
	return rollups
}

func intField(payload map[string]interface{}, key string) int {
	if f, ok := payload[key].(float64); ok {
		return int(f)
	}
	return 0
}

// rankField accepts either of the standardized rank keys.
func rankField(payload map[string]interface{}) string {
	if r, ok := payload["current_rank"].(string); ok && r != "" {
		return r
	}
	if r, ok := payload["rank"].(string); ok {
		return r
	}
	return ""
}

func rankValue(rank string) int {
	lower := strings.ToLower(rank)
	for i := len(rankTiers) - 1; i >= 0; i-- {
		if strings.Contains(lower, rankTiers[i]) {
			return i
		}
	}
	return -1
}
