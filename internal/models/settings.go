package models

import (
	"github.com/google/uuid"
)

// UserSettings is created together with its Profile and shares its id.
type UserSettings struct {
	UserID uuid.UUID `gorm:"type:uuid;primaryKey"`

	// Privacy
	ProfilePublic       bool `gorm:"default:false"`
	StatsPublic         bool `gorm:"default:false"`
	AllowFriendRequests bool `gorm:"default:true"`

	// Notifications
	EmailNotifications       bool `gorm:"default:true"`
	PushNotifications        bool `gorm:"default:true"`
	StatsUpdateNotifications bool `gorm:"default:true"`
	WeeklySummary            bool `gorm:"default:true"`

	// App preferences
	Theme                string `gorm:"default:'system'"`
	DefaultCategory      string
	AutoRefreshStats     bool `gorm:"default:true"`
	StatsRefreshInterval int  `gorm:"default:3600"` // seconds
}

// DefaultSettings returns the settings row a freshly provisioned account starts with.
func DefaultSettings(userID uuid.UUID) *UserSettings {
	return &UserSettings{
		UserID:                   userID,
		ProfilePublic:            false,
		StatsPublic:              false,
		AllowFriendRequests:      true,
		EmailNotifications:       true,
		PushNotifications:        true,
		StatsUpdateNotifications: true,
		WeeklySummary:            true,
		Theme:                    "system",
		AutoRefreshStats:         true,
		StatsRefreshInterval:     3600,
	}
}
