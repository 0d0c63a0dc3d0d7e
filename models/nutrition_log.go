package models

import (
	"time"

	"gorm.io/gorm"
)

// Meal slots a food entry can be logged under.
const (
	SlotBreakfast = "breakfast"
	SlotLunch     = "lunch"
	SlotDinner    = "dinner"
	SlotSnacks    = "snacks"
)

// MealSlots lists the four slots in presentation order.
var MealSlots = []string{SlotBreakfast, SlotLunch, SlotDinner, SlotSnacks}

// ValidMealSlot reports whether s names one of the four meal slots.
func ValidMealSlot(s string) bool {
	for _, slot := range MealSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// NutritionLog holds one day's food entries and water intake for a user.
// At most one log exists per (user, date); the service enforces that by
// lookup, not a DB constraint. The four totals are derived from the
// entries and recomputed on every mutation before persistence - they are
// never trusted as input.
type NutritionLog struct {
	gorm.Model
	UserID        uint        `gorm:"index;not null" json:"user_id"`
	Date          time.Time   `gorm:"index;not null" json:"-"` // formatted as YYYY-MM-DD by the API layer
	Entries       []FoodEntry `json:"-"`
	WaterMl       float64     `json:"water"` // ml, never negative
	TotalCalories float64     `json:"total_calories"`
	TotalProtein  float64     `json:"total_protein"`
	TotalCarbs    float64     `json:"total_carbs"`
	TotalFat      float64     `json:"total_fat"`
}

// FoodEntry stores the nutrition snapshot of one logged food. Macros are
// already scaled by quantity at entry time; they are not recomputed from
// the food catalog later.
type FoodEntry struct {
	gorm.Model
	NutritionLogID uint    `gorm:"index;not null" json:"-"`
	Slot           string  `gorm:"type:varchar(16);not null" json:"slot"` // breakfast|lunch|dinner|snacks
	Position       int     `json:"-"`
	FoodID         string  `gorm:"type:varchar(255);not null" json:"food_id"`
	FoodName       string  `json:"food_name"`
	Quantity       float64 `json:"quantity"`
	Calories       float64 `json:"calories"`
	Protein        float64 `json:"protein"`
	Carbs          float64 `json:"carbs"`
	Fat            float64 `json:"fat"`
}

// RecomputeTotals rebuilds the four cached totals from the raw entries.
// Idempotent; must run after every entry add/remove and before the log
// is persisted.
func (l *NutritionLog) RecomputeTotals() {
	var cals, prot, carbs, fat float64
	for _, e := range l.Entries {
		cals += e.Calories
		prot += e.Protein
		carbs += e.Carbs
		fat += e.Fat
	}
	l.TotalCalories = cals
	l.TotalProtein = prot
	l.TotalCarbs = carbs
	l.TotalFat = fat
}

// SlotEntries returns the entries logged under one meal slot, in order.
func (l *NutritionLog) SlotEntries(slot string) []FoodEntry {
	var out []FoodEntry
	for _, e := range l.Entries {
		if e.Slot == slot {
			out = append(out, e)
		}
	}
	return out
}

// AdjustWater applies a delta in ml, clamping at zero.
func (l *NutritionLog) AdjustWater(deltaMl float64) {
	l.WaterMl += deltaMl
	if l.WaterMl < 0 {
		l.WaterMl = 0
	}
}
