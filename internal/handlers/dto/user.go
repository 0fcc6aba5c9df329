package dto

import (
	"github.com/gamercv/gamercv-api/internal/models"
	"github.com/gin-gonic/gin"
)

type UpdateProfileRequest struct {
	Username          *string `json:"username"`
	Email             *string `json:"email" binding:"omitempty,email"`
	DisplayName       *string `json:"display_name"`
	Bio               *string `json:"bio"`
	AvatarURL         *string `json:"avatar_url"`
	Timezone          *string `json:"timezone"`
	PreferredLanguage *string `json:"preferred_language"`
}

type UpdateSettingsRequest struct {
	ProfilePublic            *bool   `json:"profile_public"`
	StatsPublic              *bool   `json:"stats_public"`
	AllowFriendRequests      *bool   `json:"allow_friend_requests"`
	EmailNotifications       *bool   `json:"email_notifications"`
	PushNotifications        *bool   `json:"push_notifications"`
	StatsUpdateNotifications *bool   `json:"stats_update_notifications"`
	WeeklySummary            *bool   `json:"weekly_summary"`
	Theme                    *string `json:"theme" binding:"omitempty,oneof=light dark system"`
	DefaultCategory          *string `json:"default_category"`
	AutoRefreshStats         *bool   `json:"auto_refresh_stats"`
	StatsRefreshInterval     *int    `json:"stats_refresh_interval" binding:"omitempty,min=60"`
}

// ProfileResponse formats the caller's own profile.
func ProfileResponse(profile *models.Profile) gin.H {
	return gin.H{
		"id":                 profile.ID,
		"username":           profile.Username,
		"email":              profile.Email,
		"display_name":       profile.DisplayName,
		"bio":                profile.Bio,
		"avatar_url":         profile.AvatarURL,
		"timezone":           profile.Timezone,
		"preferred_language": profile.PreferredLanguage,
		"created_at":         profile.CreatedAt,
		"last_login_at":      profile.LastLoginAt,
	}
}

// PublicProfileResponse omits private fields.
func PublicProfileResponse(profile *models.Profile) gin.H {
	return gin.H{
		"id":           profile.ID,
		"username":     profile.Username,
		"display_name": profile.DisplayName,
		"avatar_url":   profile.AvatarURL,
		"member_since": profile.CreatedAt,
	}
}
