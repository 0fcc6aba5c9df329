package models

import (
	"time"

	"github.com/google/uuid"
)

type Profile struct {
	ID                uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Username          string    `gorm:"uniqueIndex;not null"`
	Email             string    `gorm:"uniqueIndex;not null"`
	PasswordHash      string    `gorm:"not null"`
	DisplayName       string
	Bio               string
	AvatarURL         string
	Timezone          string
	PreferredLanguage string `gorm:"default:'en'"`
	LastLoginAt       *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time

	Settings UserSettings `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Games    []Game       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
