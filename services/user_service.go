package services

import (
	"errors"
	"fmt"

	"github.com/Letitbe098/Fitness-Tracker/models"
	"github.com/Letitbe098/Fitness-Tracker/utils"

	"gorm.io/gorm"
)

var ErrUserNotFound = errors.New("user not found")

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

type ProfileInput struct {
	Name          string   `json:"name"`
	Age           int      `json:"age"`
	Height        float64  `json:"height"`
	CurrentWeight float64  `json:"currentWeight"`
	GoalWeight    float64  `json:"goalWeight"`
	ActivityLevel string   `json:"activityLevel"`
	Goals         []string `json:"goals"`
}

type ProfileResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	Age           int      `json:"age"`
	Height        float64  `json:"height"`
	CurrentWeight float64  `json:"currentWeight"`
	GoalWeight    float64  `json:"goalWeight"`
	ActivityLevel string   `json:"activityLevel"`
	Goals         []string `json:"goals"`
}

// EnergySummary bundles the derived energy figures for the profile page.
type EnergySummary struct {
	BMI              float64 `json:"bmi"`
	BMICategory      string  `json:"bmi_category"`
	BMR              float64 `json:"bmr"`
	TDEE             float64 `json:"tdee"`
	CaloriesLose     float64 `json:"calories_lose"`
	CaloriesMaintain float64 `json:"calories_maintain"`
	CaloriesGain     float64 `json:"calories_gain"`
}

func ProfileOf(user *models.User) *ProfileResponse {
	return &ProfileResponse{
		ID:            user.PublicID,
		Name:          user.Name,
		Email:         user.Email,
		Age:           user.Age,
		Height:        user.HeightCm,
		CurrentWeight: user.CurrentWeightKg,
		GoalWeight:    user.GoalWeightKg,
		ActivityLevel: user.ActivityLevel,
		Goals:         user.GoalLabels(),
	}
}

func (s *UserService) Get(userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &user, nil
}

// UpdateProfile applies the non-zero fields of the input, matching the
// client's partial-form behavior.
func (s *UserService) UpdateProfile(userID uint, input ProfileInput) (*models.User, error) {
	user, err := s.Get(userID)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	if input.Age > 0 {
		user.Age = input.Age
	}
	if input.Height > 0 {
		user.HeightCm = input.Height
	}
	if input.CurrentWeight > 0 {
		user.CurrentWeightKg = input.CurrentWeight
	}
	if input.GoalWeight > 0 {
		user.GoalWeightKg = input.GoalWeight
	}
	if input.ActivityLevel != "" {
		user.ActivityLevel = input.ActivityLevel
	}
	if input.Goals != nil {
		user.SetGoalLabels(input.Goals)
	}

	if err := s.db.Save(user).Error; err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return user, nil
}

// Energy computes BMI, BMR, TDEE and the three calorie targets from the
// stored profile. The client has no sex field, so BMR uses the male
// constant as the original app did on the profile page.
func (s *UserService) Energy(userID uint) (*EnergySummary, error) {
	user, err := s.Get(userID)
	if err != nil {
		return nil, err
	}

	bmi, err := utils.CalculateBMI(user.CurrentWeightKg, user.HeightCm)
	if err != nil {
		return nil, err
	}

	bmr := utils.CalculateBMR(user.CurrentWeightKg, user.HeightCm, user.Age, "male")
	tdee := utils.CalculateTDEE(bmr, user.ActivityLevel)

	return &EnergySummary{
		BMI:              bmi,
		BMICategory:      utils.BMICategory(bmi),
		BMR:              bmr,
		TDEE:             tdee,
		CaloriesLose:     utils.TargetCalories(tdee, utils.GoalLose),
		CaloriesMaintain: utils.TargetCalories(tdee, utils.GoalMaintain),
		CaloriesGain:     utils.TargetCalories(tdee, utils.GoalGain),
	}, nil
}
