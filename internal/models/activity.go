package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	ActivityAccountCreated = "account_created"
	ActivityGameAdded      = "game_added"
	ActivityGameRemoved    = "game_removed"
	ActivityStatsUpdated   = "stats_updated"
	ActivityFriendAdded    = "friend_added"
)

// Activity is an append-only log entry; rows are never updated or deleted by
// normal flows (account deletion cascades them away).
type Activity struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Type        string    `gorm:"not null"`
	Title       string    `gorm:"not null"`
	Description string
	Metadata    datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt   time.Time
}
