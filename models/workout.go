package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

type Workout struct {
	gorm.Model
	UserID         uint      `gorm:"index;not null" json:"user_id"`
	Date           time.Time `gorm:"index;not null" json:"-"` // formatted as YYYY-MM-DD by the API layer
	Name           string    `gorm:"not null" json:"name"`
	Exercises      []WorkoutExercise `json:"exercises"`
	DurationMin    int     `json:"duration"` // minutes
	CaloriesBurned float64 `json:"calories_burned"`
	Notes          string  `json:"notes"`
}

type WorkoutExercise struct {
	gorm.Model
	WorkoutID    uint         `gorm:"index;not null" json:"-"`
	ExerciseID   string       `gorm:"type:varchar(255);not null" json:"exercise_id"`
	ExerciseName string       `gorm:"not null" json:"exercise_name"`
	Position     int          `json:"-"`
	Sets         []WorkoutSet `json:"sets"`
	Notes        string       `json:"notes"`
}

// WorkoutSet records a single set. Weight, duration and distance are
// optional; a nil weight counts as 0 in volume sums.
type WorkoutSet struct {
	gorm.Model
	WorkoutExerciseID uint     `gorm:"index;not null" json:"-"`
	Position          int      `json:"-"`
	Reps              int      `json:"reps"`
	Weight            *float64 `json:"weight,omitempty"`   // kg
	DurationSec       *int     `json:"duration,omitempty"` // seconds
	DistanceKm        *float64 `json:"distance,omitempty"` // km
}

// TotalSets counts sets across all exercises.
func (w *Workout) TotalSets() int {
	n := 0
	for _, ex := range w.Exercises {
		n += len(ex.Sets)
	}
	return n
}

// TotalVolume sums reps*weight over every set, treating a missing
// weight as zero.
func (w *Workout) TotalVolume() float64 {
	var total float64
	for _, ex := range w.Exercises {
		for _, set := range ex.Sets {
			weight := 0.0
			if set.Weight != nil {
				weight = *set.Weight
			}
			total += float64(set.Reps) * weight
		}
	}
	return total
}

// MatchesQuery reports whether the workout name or any exercise name
// contains the query, case-insensitively. An empty query matches.
func (w *Workout) MatchesQuery(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(w.Name), q) {
		return true
	}
	for _, ex := range w.Exercises {
		if strings.Contains(strings.ToLower(ex.ExerciseName), q) {
			return true
		}
	}
	return false
}
