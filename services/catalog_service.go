package services

import (
	"fmt"
	"strings"

	"github.com/Letitbe098/Fitness-Tracker/models"

	"gorm.io/gorm"
)

// CatalogService serves the static exercise and food reference data.
type CatalogService struct {
	db *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

func (s *CatalogService) ListExercises(query string) ([]models.Exercise, error) {
	q := s.db.Order("name ASC")
	if query != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(query)+"%")
	}
	var exercises []models.Exercise
	if err := q.Find(&exercises).Error; err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	return exercises, nil
}

func (s *CatalogService) ListFoods(query string) ([]models.Food, error) {
	q := s.db.Order("name ASC")
	if query != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(query)+"%")
	}
	var foods []models.Food
	if err := q.Find(&foods).Error; err != nil {
		return nil, fmt.Errorf("list foods: %w", err)
	}
	return foods, nil
}

// Seed inserts the built-in catalog if it is not present yet. Safe to
// run on every startup.
func (s *CatalogService) Seed() error {
	var count int64
	if err := s.db.Model(&models.Exercise{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count exercises: %w", err)
	}
	if count == 0 {
		if err := s.db.Create(seedExercises()).Error; err != nil {
			return fmt.Errorf("seed exercises: %w", err)
		}
	}

	if err := s.db.Model(&models.Food{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count foods: %w", err)
	}
	if count == 0 {
		if err := s.db.Create(seedFoods()).Error; err != nil {
			return fmt.Errorf("seed foods: %w", err)
		}
	}
	return nil
}

func seedExercises() []models.Exercise {
	return []models.Exercise{
		{ExerciseID: "bench-press", Name: "Bench Press", Category: "strength", MuscleGroups: "chest,triceps,shoulders", Description: "Classic chest exercise using barbell or dumbbells"},
		{ExerciseID: "push-ups", Name: "Push-ups", Category: "strength", MuscleGroups: "chest,triceps,shoulders", Description: "Bodyweight exercise for upper body strength"},
		{ExerciseID: "pull-ups", Name: "Pull-ups", Category: "strength", MuscleGroups: "back,biceps", Description: "Bodyweight exercise for back and bicep strength"},
		{ExerciseID: "rows", Name: "Barbell Rows", Category: "strength", MuscleGroups: "back,biceps", Description: "Compound pulling exercise for back development"},
		{ExerciseID: "overhead-press", Name: "Overhead Press", Category: "strength", MuscleGroups: "shoulders,triceps", Description: "Standing or seated shoulder press"},
		{ExerciseID: "squats", Name: "Squats", Category: "strength", MuscleGroups: "quadriceps,glutes,hamstrings", Description: "Fundamental lower body compound movement"},
		{ExerciseID: "deadlifts", Name: "Deadlifts", Category: "strength", MuscleGroups: "hamstrings,glutes,back", Description: "Hip hinge movement, great for posterior chain"},
		{ExerciseID: "lunges", Name: "Lunges", Category: "strength", MuscleGroups: "quadriceps,glutes", Description: "Unilateral leg exercise for balance and strength"},
		{ExerciseID: "leg-press", Name: "Leg Press", Category: "strength", MuscleGroups: "quadriceps,glutes", Description: "Machine-based leg exercise"},
		{ExerciseID: "running", Name: "Running", Category: "cardio", MuscleGroups: "legs,cardiovascular", Description: "Outdoor or treadmill running"},
		{ExerciseID: "cycling", Name: "Cycling", Category: "cardio", MuscleGroups: "legs,cardiovascular", Description: "Stationary or outdoor cycling"},
		{ExerciseID: "rowing", Name: "Rowing", Category: "cardio", MuscleGroups: "back,legs,cardiovascular", Description: "Full body cardio on rowing machine"},
		{ExerciseID: "jump-rope", Name: "Jump Rope", Category: "cardio", MuscleGroups: "calves,cardiovascular", Description: "High-intensity cardio exercise"},
		{ExerciseID: "yoga", Name: "Yoga", Category: "flexibility", MuscleGroups: "full-body", Description: "Flexibility and mindfulness practice"},
		{ExerciseID: "stretching", Name: "Static Stretching", Category: "flexibility", MuscleGroups: "full-body", Description: "Hold stretches for flexibility improvement"},
	}
}

func fptr(v float64) *float64 { return &v }

func seedFoods() []models.Food {
	return []models.Food{
		{FoodID: "chicken-breast", Name: "Chicken Breast", CaloriesPerUnit: 165, Protein: 31, Carbs: 0, Fat: 3.6, Unit: "100g"},
		{FoodID: "salmon", Name: "Salmon", CaloriesPerUnit: 208, Protein: 22, Carbs: 0, Fat: 13, Unit: "100g"},
		{FoodID: "eggs", Name: "Eggs", CaloriesPerUnit: 155, Protein: 13, Carbs: 1, Fat: 11, Unit: "2 large"},
		{FoodID: "greek-yogurt", Name: "Greek Yogurt", CaloriesPerUnit: 100, Protein: 17, Carbs: 6, Fat: 0, Unit: "170g"},
		{FoodID: "brown-rice", Name: "Brown Rice", CaloriesPerUnit: 216, Protein: 5, Carbs: 45, Fat: 1.8, Fiber: fptr(4), Unit: "1 cup cooked"},
		{FoodID: "oats", Name: "Oats", CaloriesPerUnit: 154, Protein: 6, Carbs: 28, Fat: 3, Fiber: fptr(4), Unit: "1/2 cup dry"},
		{FoodID: "sweet-potato", Name: "Sweet Potato", CaloriesPerUnit: 112, Protein: 2, Carbs: 26, Fat: 0, Fiber: fptr(4), Unit: "1 medium"},
		{FoodID: "banana", Name: "Banana", CaloriesPerUnit: 105, Protein: 1, Carbs: 27, Fat: 0, Fiber: fptr(3), Sugar: fptr(14), Unit: "1 medium"},
		{FoodID: "broccoli", Name: "Broccoli", CaloriesPerUnit: 25, Protein: 3, Carbs: 5, Fat: 0, Fiber: fptr(3), Unit: "1 cup"},
		{FoodID: "spinach", Name: "Spinach", CaloriesPerUnit: 7, Protein: 1, Carbs: 1, Fat: 0, Fiber: fptr(1), Unit: "1 cup"},
		{FoodID: "avocado", Name: "Avocado", CaloriesPerUnit: 234, Protein: 3, Carbs: 12, Fat: 21, Fiber: fptr(10), Unit: "1 medium"},
		{FoodID: "almonds", Name: "Almonds", CaloriesPerUnit: 161, Protein: 6, Carbs: 6, Fat: 14, Fiber: fptr(4), Unit: "28g (23 nuts)"},
		{FoodID: "peanut-butter", Name: "Peanut Butter", CaloriesPerUnit: 188, Protein: 8, Carbs: 8, Fat: 16, Unit: "2 tbsp"},
	}
}
