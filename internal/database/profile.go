package database

import (
	"time"

	"github.com/gamercv/gamercv-api/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateAccount provisions a profile together with its settings row in one
// transaction. Either both rows exist afterwards or neither does.
func (d *Database) CreateAccount(profile *models.Profile, settings *models.UserSettings) error {
	return d.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(profile).Error; err != nil {
			return err
		}
		settings.UserID = profile.ID
		return tx.Create(settings).Error
	})
}

func (d *Database) GetProfile(id uuid.UUID) (*models.Profile, error) {
	profile := models.Profile{}
	if err := d.db.First(&profile, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (d *Database) GetProfileByEmail(email string) (*models.Profile, error) {
	profile := models.Profile{}
	if err := d.db.Where("email = ?", email).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (d *Database) GetProfileByUsername(username string) (*models.Profile, error) {
	profile := models.Profile{}
	if err := d.db.Where("username = ?", username).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (d *Database) UpdateProfile(profile *models.Profile) error {
	return d.db.Save(profile).Error
}

func (d *Database) UpdateLastLogin(id uuid.UUID) error {
	now := time.Now()
	return d.db.Model(&models.Profile{}).Where("id = ?", id).Update("last_login_at", now).Error
}

func (d *Database) GetSettings(userID uuid.UUID) (*models.UserSettings, error) {
	settings := models.UserSettings{}
	if err := d.db.First(&settings, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}

func (d *Database) UpdateSettings(settings *models.UserSettings) error {
	return d.db.Save(settings).Error
}

// DeleteAccount removes a profile and everything hanging off it. Ordered child-first
// so a partially applied transaction can never leave orphans even without the FK
// cascades doing the work.
func (d *Database) DeleteAccount(id uuid.UUID) error {
	return d.db.Transaction(func(tx *gorm.DB) error {
		var gameIDs []uuid.UUID
		if err := tx.Model(&models.Game{}).Where("user_id = ?", id).Pluck("id", &gameIDs).Error; err != nil {
			return err
		}
		if len(gameIDs) > 0 {
			if err := tx.Where("game_id IN ?", gameIDs).Delete(&models.GameStats{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.Game{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.Activity{}).Error; err != nil {
			return err
		}
		if err := tx.Where("from_user_id = ? OR to_user_id = ?", id, id).Delete(&models.FriendRequest{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ? OR friend_id = ?", id, id).Delete(&models.Friendship{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.UserSettings{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Profile{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
