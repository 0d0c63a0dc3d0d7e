package models

import (
	"strings"

	"gorm.io/gorm"
)

// Activity levels accepted for TDEE estimation.
const (
	ActivitySedentary  = "sedentary"
	ActivityLight      = "light"
	ActivityModerate   = "moderate"
	ActivityActive     = "active"
	ActivityVeryActive = "very-active"
)

type User struct {
	gorm.Model
	PublicID        string `gorm:"type:varchar(36);uniqueIndex;not null"`
	Name            string `gorm:"not null"`
	Email           string `gorm:"uniqueIndex;not null"`
	Password        string `gorm:"not null"`
	Age             int
	HeightCm        float64 // cm
	CurrentWeightKg float64 // kg
	GoalWeightKg    float64 // kg
	ActivityLevel   string  `gorm:"default:moderate"`
	Goals           string  // comma-sep free-text labels
}

// GoalLabels splits the stored comma-joined labels back into a list.
func (u *User) GoalLabels() []string {
	if strings.TrimSpace(u.Goals) == "" {
		return []string{}
	}
	parts := strings.Split(u.Goals, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func (u *User) SetGoalLabels(labels []string) {
	u.Goals = strings.Join(labels, ",")
}
