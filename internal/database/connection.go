package database

import (
	"errors"
	"os"

	"github.com/gamercv/gamercv-api/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func (d *Database) Connect() error {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		return errors.New("DATABASE_URL is not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return err
	}

	err = db.AutoMigrate(
		&models.Profile{},
		&models.UserSettings{},
		&models.GameCategory{},
		&models.Game{},
		&models.GameStats{},
		&models.Activity{},
		&models.FriendRequest{},
		&models.Friendship{},
	)
	if err != nil {
		return err
	}

	d.db = db

	return d.seedCategories()
}

// seedCategories inserts the fixed category set, leaving existing rows untouched.
func (d *Database) seedCategories() error {
	for _, c := range models.SeedCategories {
		var existing models.GameCategory
		err := d.db.Where("name = ?", c.Name).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := d.db.Create(&c).Error; err != nil {
			return err
		}
	}
	return nil
}

// Ping verifies the underlying connection is alive.
func (d *Database) Ping() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
