package config

import (
	"fmt"
	"testing"

	"trivianight/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func TestMigrateIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))

	for _, table := range []string{"games", "teams", "answers", "question_categories"} {
		assert.True(t, db.Migrator().HasTable(table), "missing table %s", table)
	}
}

func TestMigrateCopiesLegacyPoints(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Migrate(db))

	// Simulate a database from before the chosen/awarded split.
	require.NoError(t, db.Exec("ALTER TABLE answers ADD COLUMN points real").Error)
	require.NoError(t, db.Exec(
		"INSERT INTO answers (team_id, question_number, chosen_points, awarded_points, points) VALUES (1, 1, 0, 0, 3)").Error)
	require.NoError(t, db.Exec(
		"INSERT INTO answers (team_id, question_number, chosen_points, awarded_points, points) VALUES (1, 2, 5, 0, 3)").Error)

	require.NoError(t, Migrate(db))

	var migrated, untouched models.Answer
	require.NoError(t, db.Where("team_id = 1 AND question_number = 1").First(&migrated).Error)
	require.NoError(t, db.Where("team_id = 1 AND question_number = 2").First(&untouched).Error)

	assert.Equal(t, 3.0, migrated.ChosenPoints)
	assert.Equal(t, 5.0, untouched.ChosenPoints, "non-zero wagers must not be overwritten")
}
