package handlers

import (
	"net/http"
	"strconv"

	"github.com/gamercv/gamercv-api/internal/handlers/dto"
	"github.com/gamercv/gamercv-api/internal/models"
	"github.com/gamercv/gamercv-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UserHandler struct {
	accounts *services.AccountService
	activity services.ActivityStore
	stats    *services.StatsService
}

func NewUserHandler(accounts *services.AccountService, activity services.ActivityStore, stats *services.StatsService) *UserHandler {
	return &UserHandler{accounts: accounts, activity: activity, stats: stats}
}

// GetMe returns the caller's own profile.
func (h *UserHandler) GetMe(c *gin.Context) {
	profile, err := h.accounts.GetProfile(currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ProfileResponse(profile))
}

// UpdateMe applies a partial profile update.
func (h *UserHandler) UpdateMe(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.accounts.UpdateProfile(currentUserID(c), services.ProfileUpdate{
		Username:          req.Username,
		Email:             req.Email,
		DisplayName:       req.DisplayName,
		Bio:               req.Bio,
		AvatarURL:         req.AvatarURL,
		Timezone:          req.Timezone,
		PreferredLanguage: req.PreferredLanguage,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ProfileResponse(profile))
}

// DeleteMe removes the account and everything it owns.
func (h *UserHandler) DeleteMe(c *gin.Context) {
	if err := h.accounts.DeleteAccount(currentUserID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "account deleted"})
}

// GetUser returns another user's public profile when they opted in.
func (h *UserHandler) GetUser(c *gin.Context) {
	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	profile, err := h.accounts.GetPublicProfile(targetID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.PublicProfileResponse(profile))
}

func (h *UserHandler) GetSettings(c *gin.Context) {
	settings, err := h.accounts.GetSettings(currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, settingsResponse(settings))
}

// UpdateSettings applies a partial settings update.
func (h *UserHandler) UpdateSettings(c *gin.Context) {
	var req dto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	settings, err := h.accounts.GetSettings(currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	if req.ProfilePublic != nil {
		settings.ProfilePublic = *req.ProfilePublic
	}
	if req.StatsPublic != nil {
		settings.StatsPublic = *req.StatsPublic
	}
	if req.AllowFriendRequests != nil {
		settings.AllowFriendRequests = *req.AllowFriendRequests
	}
	if req.EmailNotifications != nil {
		settings.EmailNotifications = *req.EmailNotifications
	}
	if req.PushNotifications != nil {
		settings.PushNotifications = *req.PushNotifications
	}
	if req.StatsUpdateNotifications != nil {
		settings.StatsUpdateNotifications = *req.StatsUpdateNotifications
	}
	if req.WeeklySummary != nil {
		settings.WeeklySummary = *req.WeeklySummary
	}
	if req.Theme != nil {
		settings.Theme = *req.Theme
	}
	if req.DefaultCategory != nil {
		settings.DefaultCategory = *req.DefaultCategory
	}
	if req.AutoRefreshStats != nil {
		settings.AutoRefreshStats = *req.AutoRefreshStats
	}
	if req.StatsRefreshInterval != nil {
		settings.StatsRefreshInterval = *req.StatsRefreshInterval
	}

	if err := h.accounts.UpdateSettings(settings); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, settingsResponse(settings))
}

// GetActivity lists the caller's activity log, newest first.
func (h *UserHandler) GetActivity(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	activities, total, err := h.activity.ListUserActivity(currentUserID(c), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load activity"})
		return
	}

	items := make([]gin.H, len(activities))
	for i, a := range activities {
		items[i] = gin.H{
			"id":          a.ID,
			"type":        a.Type,
			"title":       a.Title,
			"description": a.Description,
			"metadata":    a.Metadata,
			"created_at":  a.CreatedAt,
		}
	}
	c.JSON(http.StatusOK, gin.H{"activities": items, "total": total})
}

// GetOverview summarizes the caller's account across all categories.
func (h *UserHandler) GetOverview(c *gin.Context) {
	userID := currentUserID(c)

	profile, err := h.accounts.GetProfile(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	rollups, err := h.stats.ProfileRollup(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to aggregate stats"})
		return
	}

	totalGames, totalWins, totalLosses := 0, 0, 0
	favorite := ""
	favoriteCount := 0
	for _, r := range rollups {
		totalGames += r.TotalGames
		totalWins += r.TotalWins
		totalLosses += r.TotalLosses
		if r.TotalGames > favoriteCount {
			favorite, favoriteCount = r.Category, r.TotalGames
		}
	}

	overview := gin.H{
		"total_games":       totalGames,
		"total_categories":  len(rollups),
		"favorite_category": favorite,
		"total_wins":        totalWins,
		"total_losses":      totalLosses,
		"account_created":   profile.CreatedAt,
		"categories":        rollups,
	}
	if total := totalWins + totalLosses; total > 0 {
		overview["overall_win_rate"] = float64(totalWins) / float64(total) * 100
	}
	c.JSON(http.StatusOK, overview)
}

func settingsResponse(s *models.UserSettings) gin.H {
	return gin.H{
		"profile_public":             s.ProfilePublic,
		"stats_public":               s.StatsPublic,
		"allow_friend_requests":      s.AllowFriendRequests,
		"email_notifications":        s.EmailNotifications,
		"push_notifications":         s.PushNotifications,
		"stats_update_notifications": s.StatsUpdateNotifications,
		"weekly_summary":             s.WeeklySummary,
		"theme":                      s.Theme,
		"default_category":           s.DefaultCategory,
		"auto_refresh_stats":         s.AutoRefreshStats,
		"stats_refresh_interval":     s.StatsRefreshInterval,
	}
}
