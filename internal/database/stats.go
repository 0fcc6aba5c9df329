package database

import (
	"time"

	"github.com/gamercv/gamercv-api/internal/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm/clause"
)

// UpsertGameStats stores the latest snapshot for a game, last writer wins.
// Concurrent refreshes of the same game converge on a single row.
func (d *Database) UpsertGameStats(gameID uuid.UUID, payload datatypes.JSON, refreshedAt time.Time) error {
	stats := models.GameStats{
		GameID:        gameID,
		StatsData:     payload,
		LastRefreshed: refreshedAt,
	}
	return d.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "game_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"stats_data", "last_refreshed", "updated_at"}),
	}).Create(&stats).Error
}

func (d *Database) GetGameStats(gameID uuid.UUID) (*models.GameStats, error) {
	stats := models.GameStats{}
	if err := d.db.Where("game_id = ?", gameID).First(&stats).Error; err != nil {
		return nil, err
	}
	return &stats, nil
}
