package models

import (
	"math"
	"time"

	"gorm.io/gorm"
)

// Goal types and priorities.
const (
	GoalTypeWeight    = "weight"
	GoalTypeStrength  = "strength"
	GoalTypeEndurance = "endurance"
	GoalTypeNutrition = "nutrition"
	GoalTypeCustom    = "custom"

	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Goal is a user-defined target with a deadline. Completion is a manual
// toggle: reaching Current >= Target does NOT complete the goal on its
// own, and the toggle is reversible.
type Goal struct {
	gorm.Model
	UserID      uint      `gorm:"index;not null" json:"user_id"`
	Type        string    `gorm:"type:varchar(16);not null" json:"type"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `json:"description"`
	Target      float64   `json:"target"` // must be > 0, enforced at create/update
	Current     float64   `json:"current"`
	Unit        string    `json:"unit"`
	Deadline    time.Time `json:"-"`
	Completed   bool      `json:"completed"`
	Priority    string    `gorm:"type:varchar(8);default:medium" json:"priority"`
}

// ProgressPercent is current/target as a percentage, capped at 100.
// Target <= 0 is rejected at creation; rows that predate that guard
// report zero progress instead of dividing by zero.
func (g *Goal) ProgressPercent() float64 {
	if g.Target <= 0 {
		return 0
	}
	p := g.Current / g.Target * 100
	return math.Min(p, 100)
}

// IsOverdue is true only while the goal is incomplete and its deadline
// is strictly in the past. Completing an overdue goal clears it.
func (g *Goal) IsOverdue(now time.Time) bool {
	return !g.Completed && g.Deadline.Before(now)
}

// DaysRemaining is the number of days until the deadline, rounded up.
// Negative once the deadline has passed.
func (g *Goal) DaysRemaining(now time.Time) int {
	return int(math.Ceil(g.Deadline.Sub(now).Hours() / 24))
}

func ValidGoalType(t string) bool {
	switch t {
	case GoalTypeWeight, GoalTypeStrength, GoalTypeEndurance, GoalTypeNutrition, GoalTypeCustom:
		return true
	}
	return false
}

func ValidPriority(p string) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}
