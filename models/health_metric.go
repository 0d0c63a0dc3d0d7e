package models

import (
	"time"

	"gorm.io/gorm"
)

// HealthMetric is one day's body measurements for a user. Everything but
// the date is optional; pointers distinguish "not recorded" from a
// recorded zero.
type HealthMetric struct {
	gorm.Model
	UserID           uint      `gorm:"index;not null" json:"user_id"`
	Date             time.Time `gorm:"index;not null" json:"-"` // formatted as YYYY-MM-DD by the API layer
	WeightKg         *float64  `json:"weight,omitempty"`
	BodyFatPct       *float64  `json:"body_fat,omitempty"`
	MuscleMassKg     *float64  `json:"muscle_mass,omitempty"`
	Systolic         *int      `json:"systolic,omitempty"`
	Diastolic        *int      `json:"diastolic,omitempty"`
	RestingHeartRate *int      `json:"resting_heart_rate,omitempty"`
	SleepHours       *float64  `json:"sleep_hours,omitempty"`
	StressLevel      *int      `json:"stress_level,omitempty"` // 1-10
	Energy           *int      `json:"energy,omitempty"`       // 1-10
	Notes            string    `json:"notes,omitempty"`
}

// HasBloodPressure reports whether both BP readings were recorded.
func (m *HealthMetric) HasBloodPressure() bool {
	return m.Systolic != nil && m.Diastolic != nil
}
