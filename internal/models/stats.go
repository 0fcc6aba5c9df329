package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// GameStats holds the latest externally fetched snapshot for one game. A single row
// per game: refreshes upsert on GameID, last writer wins. The payload schema varies
// per category and is not validated at this layer.
type GameStats struct {
	ID            uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	GameID        uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex"`
	StatsData     datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
	LastRefreshed time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Stale reports whether the snapshot is older than the given refresh interval.
func (s *GameStats) Stale(interval time.Duration) bool {
	return time.Since(s.LastRefreshed) > interval
}
