package config

import (
	"fmt"

	"trivianight/models"

	"gorm.io/gorm"
)

// Migrate creates or updates the schema. Safe to run on every startup.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Game{},
		&models.Team{},
		&models.Answer{},
		&models.QuestionCategory{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	return migrateLegacyPoints(db)
}

// migrateLegacyPoints copies the pre-split points column into chosen_points.
// Older databases stored the team's wager in a single points column before
// host-awarded points became a separate field.
func migrateLegacyPoints(db *gorm.DB) error {
	if !db.Migrator().HasColumn(&models.Answer{}, "points") {
		return nil
	}
	return db.Model(&models.Answer{}).
		Where("chosen_points = 0").
		Update("chosen_points", gorm.Expr("points")).Error
}
