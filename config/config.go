package config

import (
	"fmt"
	"os"

	"github.com/Letitbe098/Fitness-Tracker/models"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// InitDB loads the environment, connects to Postgres and migrates the
// schema. Fatal on any failure; the server cannot run without a DB.
func InitDB() *gorm.DB {
	if err := godotenv.Load(); err != nil {
		log.Warn("no .env file found, relying on environment")
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := Migrate(db); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	DB = db
	return db
}

// Migrate runs the schema migration for every entity. Shared with tests,
// which run it against in-memory sqlite.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Workout{},
		&models.WorkoutExercise{},
		&models.WorkoutSet{},
		&models.NutritionLog{},
		&models.FoodEntry{},
		&models.HealthMetric{},
		&models.Goal{},
		&models.Exercise{},
		&models.Food{},
	)
}
