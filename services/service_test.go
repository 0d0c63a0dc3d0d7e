package services

import (
	"testing"

	"github.com/Letitbe098/Fitness-Tracker/config"
	"github.com/Letitbe098/Fitness-Tracker/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens a fresh in-memory database with the full schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "open test database")
	require.NoError(t, config.Migrate(db), "migrate test database")
	return db
}

func createTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	user := &models.User{
		PublicID:        uuid.NewString(),
		Name:            "Test User",
		Email:           uuid.NewString() + "@example.com",
		Password:        "irrelevant",
		Age:             30,
		HeightCm:        175,
		CurrentWeightKg: 70,
		GoalWeightKg:    68,
		ActivityLevel:   models.ActivityModerate,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}
