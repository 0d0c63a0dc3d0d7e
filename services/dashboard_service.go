package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/Letitbe098/Fitness-Tracker/models"
	"github.com/Letitbe098/Fitness-Tracker/utils"

	"gorm.io/gorm"
)

// DashboardService composes the per-resource aggregates into the
// summary the dashboard renders.
type DashboardService struct {
	db      *gorm.DB
	users   *UserService
	metrics *HealthMetricService
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{
		db:      db,
		users:   NewUserService(db),
		metrics: NewHealthMetricService(db),
	}
}

type DashboardSummary struct {
	TotalWorkouts  int     `json:"total_workouts"`
	WeeklyWorkouts int     `json:"weekly_workouts"`
	TotalCalories  float64 `json:"total_calories"`
	WeeklyCalories float64 `json:"weekly_calories"`
	CurrentWeight  float64 `json:"current_weight"`
	BMI            float64 `json:"bmi,omitempty"`
	BMICategory    string  `json:"bmi_category,omitempty"`
	CompletedGoals int     `json:"completed_goals"`
	TotalGoals     int     `json:"total_goals"`
}

// Summary builds the dashboard rollup. "Weekly" means dated within the
// last 7 days. Current weight prefers the latest health metric and
// falls back to the profile weight when no metric records one.
func (s *DashboardService) Summary(userID uint, now time.Time) (*DashboardSummary, error) {
	weekAgo := now.AddDate(0, 0, -7)
	out := &DashboardSummary{}

	var workouts []models.Workout
	if err := s.db.Where("user_id = ?", userID).Find(&workouts).Error; err != nil {
		return nil, fmt.Errorf("dashboard workouts: %w", err)
	}
	out.TotalWorkouts = len(workouts)
	for _, w := range workouts {
		if !w.Date.Before(weekAgo) {
			out.WeeklyWorkouts++
		}
	}

	var logs []models.NutritionLog
	if err := s.db.Where("user_id = ?", userID).Find(&logs).Error; err != nil {
		return nil, fmt.Errorf("dashboard nutrition: %w", err)
	}
	for _, l := range logs {
		out.TotalCalories += l.TotalCalories
		if !l.Date.Before(weekAgo) {
			out.WeeklyCalories += l.TotalCalories
		}
	}

	user, err := s.users.Get(userID)
	if err != nil {
		return nil, err
	}

	weight := user.CurrentWeightKg
	latest, err := s.metrics.Latest(userID)
	switch {
	case err == nil:
		if latest.WeightKg != nil {
			weight = *latest.WeightKg
		}
	case !errors.Is(err, ErrHealthMetricNotFound):
		return nil, err
	}
	out.CurrentWeight = weight

	if weight > 0 {
		if bmi, berr := utils.CalculateBMI(weight, user.HeightCm); berr == nil {
			out.BMI = bmi
			out.BMICategory = utils.BMICategory(bmi)
		}
	}

	var goals []models.Goal
	if err := s.db.Where("user_id = ?", userID).Find(&goals).Error; err != nil {
		return nil, fmt.Errorf("dashboard goals: %w", err)
	}
	out.TotalGoals = len(goals)
	for _, g := range goals {
		if g.Completed {
			out.CompletedGoals++
		}
	}

	return out, nil
}
