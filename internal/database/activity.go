package database

import (
	"github.com/gamercv/gamercv-api/internal/models"
	"github.com/google/uuid"
)

func (d *Database) CreateActivity(activity *models.Activity) error {
	return d.db.Create(activity).Error
}

func (d *Database) ListUserActivity(userID uuid.UUID, limit, offset int) ([]models.Activity, int64, error) {
	query := d.db.Model(&models.Activity{}).Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var activities []models.Activity
	err := query.Order("created_at DESC, id").Limit(limit).Offset(offset).Find(&activities).Error
	if err != nil {
		return nil, 0, err
	}
	return activities, total, nil
}
