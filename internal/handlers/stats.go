package handlers

import (
	"net/http"

	"github.com/gamercv/gamercv-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type StatsHandler struct {
	stats *services.StatsService
}

func NewStatsHandler(stats *services.StatsService) *StatsHandler {
	return &StatsHandler{stats: stats}
}

// GetGameStats returns the latest cached snapshot for one of the caller's games.
// 404 means the game is unknown to the caller or was never refreshed.
func (h *StatsHandler) GetGameStats(c *gin.Context) {
	gameID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid game id"})
		return
	}

	snapshot, err := h.stats.Get(currentUserID(c), gameID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"game_id":        gameID,
		"stats_data":     snapshot.Stats.StatsData,
		"last_refreshed": snapshot.Stats.LastRefreshed,
		"stale":          snapshot.Stale,
	})
}

// RefreshGameStats pulls fresh stats from the external provider and caches them.
func (h *StatsHandler) RefreshGameStats(c *gin.Context) {
	gameID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid game id"})
		return
	}

	stats, err := h.stats.Refresh(c.Request.Context(), currentUserID(c), gameID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"game_id":        gameID,
		"stats_data":     stats.StatsData,
		"last_refreshed": stats.LastRefreshed,
	})
}

// GetProfileStats returns the caller's per-category rollups.
func (h *StatsHandler) GetProfileStats(c *gin.Context) {
	rollups, err := h.stats.ProfileRollup(currentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to aggregate stats"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": rollups})
}
