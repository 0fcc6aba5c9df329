package models

import (
	"time"

	"github.com/google/uuid"
)

// GameCategory is a fixed, seeded classification. Categories with SupportedStats=false
// have no standardized stats schema and are excluded from numeric aggregation.
type GameCategory struct {
	ID             uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name           string    `gorm:"uniqueIndex;not null"`
	Description    string
	SupportedStats bool `gorm:"default:false"`
	CreatedAt      time.Time
}

// SeedCategories is the category set shipped with the app.
var SeedCategories = []GameCategory{
	{Name: "MOBA", Description: "Multiplayer Online Battle Arena", SupportedStats: true},
	{Name: "FPS", Description: "First Person Shooter", SupportedStats: true},
	{Name: "RPG", Description: "Role Playing Game", SupportedStats: true},
	{Name: "Strategy", Description: "Strategy Games", SupportedStats: false},
	{Name: "Sports", Description: "Sports Games", SupportedStats: false},
	{Name: "Racing", Description: "Racing Games", SupportedStats: false},
}
