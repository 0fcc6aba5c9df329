package database

import (
	"github.com/gamercv/gamercv-api/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func (d *Database) GetCategoryByName(name string) (*models.GameCategory, error) {
	category := models.GameCategory{}
	if err := d.db.Where("name = ?", name).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (d *Database) ListCategories() ([]models.GameCategory, error) {
	var categories []models.GameCategory
	if err := d.db.Order("name").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (d *Database) CreateGame(game *models.Game) error {
	return d.db.Create(game).Error
}

// GetUserGame fetches a game scoped to its owner. A game owned by someone else is
// indistinguishable from a missing one.
func (d *Database) GetUserGame(userID, gameID uuid.UUID) (*models.Game, error) {
	game := models.Game{}
	err := d.db.Preload("Category").Where("id = ? AND user_id = ?", gameID, userID).First(&game).Error
	if err != nil {
		return nil, err
	}
	return &game, nil
}

// ListUserGames returns the owner's games ordered by creation time, with optional
// category/search filters and limit/offset pagination. The total ignores pagination.
func (d *Database) ListUserGames(userID uuid.UUID, categoryID *uuid.UUID, search string, limit, offset int) ([]models.Game, int64, error) {
	query := d.db.Model(&models.Game{}).Where("user_id = ?", userID)
	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}
	if search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var games []models.Game
	err := query.Preload("Category").Preload("Stats").
		Order("created_at, id").Limit(limit).Offset(offset).Find(&games).Error
	if err != nil {
		return nil, 0, err
	}
	return games, total, nil
}

func (d *Database) UpdateGame(game *models.Game) error {
	return d.db.Save(game).Error
}

// DeleteUserGame removes an owner's game and its stats snapshot in one transaction.
func (d *Database) DeleteUserGame(userID, gameID uuid.UUID) error {
	return d.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND user_id = ?", gameID, userID).Delete(&models.Game{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Where("game_id = ?", gameID).Delete(&models.GameStats{}).Error
	})
}
