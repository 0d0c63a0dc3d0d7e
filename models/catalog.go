package models

import "gorm.io/gorm"

// Exercise is static reference data, seeded at startup and read-only.
type Exercise struct {
	gorm.Model
	ExerciseID   string `gorm:"type:varchar(255);uniqueIndex;not null" json:"id"`
	Name         string `gorm:"not null" json:"name"`
	Category     string `gorm:"type:varchar(16)" json:"category"` // strength|cardio|flexibility|sports
	MuscleGroups string `json:"muscle_groups"`                    // comma-sep
	Description  string `json:"description,omitempty"`
}

// Food is a catalog entry with per-unit nutrients. User logs snapshot
// these values scaled by quantity; the catalog is never re-consulted.
type Food struct {
	gorm.Model
	FoodID          string   `gorm:"type:varchar(255);uniqueIndex;not null" json:"id"`
	Name            string   `gorm:"not null" json:"name"`
	CaloriesPerUnit float64  `json:"calories_per_unit"`
	Protein         float64  `json:"protein"` // grams per unit
	Carbs           float64  `json:"carbs"`
	Fat             float64  `json:"fat"`
	Fiber           *float64 `json:"fiber,omitempty"`
	Sugar           *float64 `json:"sugar,omitempty"`
	Unit            string   `json:"unit"` // e.g. "100g", "1 cup"
}
