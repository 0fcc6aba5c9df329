package models

import (
	"time"

	"github.com/google/uuid"
)

type Game struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_games_user_name_username"`
	CategoryID uuid.UUID `gorm:"type:uuid;not null"`
	Name       string    `gorm:"not null;uniqueIndex:idx_games_user_name_username"`
	Username   string    `gorm:"not null;uniqueIndex:idx_games_user_name_username"` // in-game handle
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Category GameCategory `gorm:"foreignKey:CategoryID"`
	Stats    *GameStats   `gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE"`
}
