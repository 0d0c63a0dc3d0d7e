package services

import (
	"errors"
	"fmt"

	"github.com/Letitbe098/Fitness-Tracker/models"
	"github.com/Letitbe098/Fitness-Tracker/utils"

	"gorm.io/gorm"
)

var ErrHealthMetricNotFound = errors.New("health metric not found")

type HealthMetricService struct {
	db *gorm.DB
}

func NewHealthMetricService(db *gorm.DB) *HealthMetricService {
	return &HealthMetricService{db: db}
}

type HealthMetricInput struct {
	Date             string   `json:"date" binding:"required"`
	Weight           *float64 `json:"weight"`
	BodyFat          *float64 `json:"body_fat"`
	MuscleMass       *float64 `json:"muscle_mass"`
	Systolic         *int     `json:"systolic"`
	Diastolic        *int     `json:"diastolic"`
	RestingHeartRate *int     `json:"resting_heart_rate"`
	SleepHours       *float64 `json:"sleep_hours"`
	StressLevel      *int     `json:"stress_level"`
	Energy           *int     `json:"energy"`
	Notes            string   `json:"notes"`
}

type HealthMetricResponse struct {
	models.HealthMetric
	Date string `json:"date"`
}

// Insights classifies the latest recorded metric.
type Insights struct {
	Date                  string   `json:"date"`
	BMI                   *float64 `json:"bmi,omitempty"`
	BMICategory           string   `json:"bmi_category,omitempty"`
	BloodPressure         string   `json:"blood_pressure,omitempty"` // "sys/dia"
	BloodPressureCategory string   `json:"blood_pressure_category,omitempty"`
	SleepHours            *float64 `json:"sleep_hours,omitempty"`
	SleepQuality          string   `json:"sleep_quality,omitempty"`
}

func metricResponse(m *models.HealthMetric) *HealthMetricResponse {
	return &HealthMetricResponse{HealthMetric: *m, Date: utils.FormatDate(m.Date)}
}

// List returns the user's metrics newest-first.
func (s *HealthMetricService) List(userID uint) ([]*HealthMetricResponse, error) {
	metrics, err := s.listRaw(userID)
	if err != nil {
		return nil, err
	}
	out := make([]*HealthMetricResponse, 0, len(metrics))
	for i := range metrics {
		out = append(out, metricResponse(&metrics[i]))
	}
	return out, nil
}

// Upsert records the day's measurements, replacing any metric already
// stored for that date. One metric per (user, date).
func (s *HealthMetricService) Upsert(userID uint, input HealthMetricInput) (*HealthMetricResponse, error) {
	date, err := utils.ParseDate(input.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	var metric models.HealthMetric
	err = s.db.Where("user_id = ? AND date = ?", userID, date).First(&metric).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		metric = models.HealthMetric{UserID: userID, Date: date}
	case err != nil:
		return nil, fmt.Errorf("get health metric: %w", err)
	}

	metric.WeightKg = input.Weight
	metric.BodyFatPct = input.BodyFat
	metric.MuscleMassKg = input.MuscleMass
	metric.Systolic = input.Systolic
	metric.Diastolic = input.Diastolic
	metric.RestingHeartRate = input.RestingHeartRate
	metric.SleepHours = input.SleepHours
	metric.StressLevel = input.StressLevel
	metric.Energy = input.Energy
	metric.Notes = input.Notes

	if err := s.db.Save(&metric).Error; err != nil {
		return nil, fmt.Errorf("save health metric: %w", err)
	}
	return metricResponse(&metric), nil
}

func (s *HealthMetricService) Delete(userID, metricID uint) error {
	var metric models.HealthMetric
	err := s.db.Where("id = ? AND user_id = ?", metricID, userID).First(&metric).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrHealthMetricNotFound
		}
		return fmt.Errorf("get health metric: %w", err)
	}
	if err := s.db.Delete(&metric).Error; err != nil {
		return fmt.Errorf("delete health metric: %w", err)
	}
	return nil
}

// Latest returns the most recent metric, or ErrHealthMetricNotFound
// when none has been recorded.
func (s *HealthMetricService) Latest(userID uint) (*models.HealthMetric, error) {
	var metric models.HealthMetric
	err := s.db.Where("user_id = ?", userID).Order("date DESC").First(&metric).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHealthMetricNotFound
		}
		return nil, fmt.Errorf("latest health metric: %w", err)
	}
	return &metric, nil
}

// LatestInsights classifies the most recent metric: BMI from the
// recorded weight and the user's height, blood pressure staging and
// sleep quality. Fields without a recorded value are left out.
func (s *HealthMetricService) LatestInsights(userID uint, heightCm float64) (*Insights, error) {
	metric, err := s.Latest(userID)
	if err != nil {
		return nil, err
	}

	out := &Insights{Date: utils.FormatDate(metric.Date)}

	if metric.WeightKg != nil {
		if bmi, berr := utils.CalculateBMI(*metric.WeightKg, heightCm); berr == nil {
			out.BMI = &bmi
			out.BMICategory = utils.BMICategory(bmi)
		}
	}
	if metric.HasBloodPressure() {
		out.BloodPressure = fmt.Sprintf("%d/%d", *metric.Systolic, *metric.Diastolic)
		out.BloodPressureCategory = utils.BloodPressureCategory(*metric.Systolic, *metric.Diastolic)
	}
	if metric.SleepHours != nil {
		out.SleepHours = metric.SleepHours
		out.SleepQuality = utils.SleepQuality(*metric.SleepHours)
	}
	return out, nil
}

func (s *HealthMetricService) listRaw(userID uint) ([]models.HealthMetric, error) {
	var metrics []models.HealthMetric
	err := s.db.Where("user_id = ?", userID).Order("date DESC").Find(&metrics).Error
	if err != nil {
		return nil, fmt.Errorf("list health metrics: %w", err)
	}
	return metrics, nil
}
