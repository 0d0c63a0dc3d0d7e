package services

import (
	"errors"
	"fmt"

	"github.com/Letitbe098/Fitness-Tracker/models"
	"github.com/Letitbe098/Fitness-Tracker/utils"

	"gorm.io/gorm"
)

var ErrWorkoutNotFound = errors.New("workout not found")

type WorkoutService struct {
	db *gorm.DB
}

func NewWorkoutService(db *gorm.DB) *WorkoutService {
	return &WorkoutService{db: db}
}

type WorkoutSetInput struct {
	Reps     int      `json:"reps"`
	Weight   *float64 `json:"weight"`
	Duration *int     `json:"duration"`
	Distance *float64 `json:"distance"`
}

type WorkoutExerciseInput struct {
	ExerciseID   string            `json:"exercise_id"`
	ExerciseName string            `json:"exercise_name"`
	Sets         []WorkoutSetInput `json:"sets"`
	Notes        string            `json:"notes"`
}

type WorkoutInput struct {
	Date           string                 `json:"date" binding:"required"`
	Name           string                 `json:"name" binding:"required"`
	Exercises      []WorkoutExerciseInput `json:"exercises"`
	Duration       int                    `json:"duration"`
	CaloriesBurned float64                `json:"calories_burned"`
	Notes          string                 `json:"notes"`
}

func buildExercises(input []WorkoutExerciseInput) []models.WorkoutExercise {
	exercises := make([]models.WorkoutExercise, 0, len(input))
	for i, ex := range input {
		sets := make([]models.WorkoutSet, 0, len(ex.Sets))
		for j, set := range ex.Sets {
			sets = append(sets, models.WorkoutSet{
				Position:    j,
				Reps:        set.Reps,
				Weight:      set.Weight,
				DurationSec: set.Duration,
				DistanceKm:  set.Distance,
			})
		}
		exercises = append(exercises, models.WorkoutExercise{
			ExerciseID:   ex.ExerciseID,
			ExerciseName: ex.ExerciseName,
			Position:     i,
			Sets:         sets,
			Notes:        ex.Notes,
		})
	}
	return exercises
}

// Create stores a new workout for the user.
func (s *WorkoutService) Create(userID uint, input WorkoutInput) (*models.Workout, error) {
	date, err := utils.ParseDate(input.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	workout := &models.Workout{
		UserID:         userID,
		Date:           date,
		Name:           input.Name,
		Exercises:      buildExercises(input.Exercises),
		DurationMin:    input.Duration,
		CaloriesBurned: input.CaloriesBurned,
		Notes:          input.Notes,
	}
	if err := s.db.Create(workout).Error; err != nil {
		return nil, fmt.Errorf("create workout: %w", err)
	}
	return workout, nil
}

// List returns the user's workouts newest-first, optionally filtered by
// a text query over workout and exercise names.
func (s *WorkoutService) List(userID uint, query string) ([]models.Workout, error) {
	var workouts []models.Workout
	err := s.db.
		Preload("Exercises", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("Exercises.Sets", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&workouts).Error
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}

	if query == "" {
		return workouts, nil
	}
	matched := make([]models.Workout, 0, len(workouts))
	for _, w := range workouts {
		if w.MatchesQuery(query) {
			matched = append(matched, w)
		}
	}
	return matched, nil
}

func (s *WorkoutService) Get(userID, workoutID uint) (*models.Workout, error) {
	var workout models.Workout
	err := s.db.
		Preload("Exercises", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("Exercises.Sets", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Where("id = ? AND user_id = ?", workoutID, userID).
		First(&workout).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, fmt.Errorf("get workout: %w", err)
	}
	return &workout, nil
}

// Update replaces the whole workout record. The workout must already
// exist; there is no upsert by id.
func (s *WorkoutService) Update(userID, workoutID uint, input WorkoutInput) (*models.Workout, error) {
	date, err := utils.ParseDate(input.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	var workout models.Workout
	if err := s.db.
		Where("id = ? AND user_id = ?", workoutID, userID).
		First(&workout).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, fmt.Errorf("update workout: %w", err)
	}

	if err := s.deleteExercises(workout.ID); err != nil {
		return nil, err
	}

	workout.Date = date
	workout.Name = input.Name
	workout.DurationMin = input.Duration
	workout.CaloriesBurned = input.CaloriesBurned
	workout.Notes = input.Notes
	workout.Exercises = buildExercises(input.Exercises)
	if err := s.db.Save(&workout).Error; err != nil {
		return nil, fmt.Errorf("update workout: %w", err)
	}

	return s.Get(userID, workout.ID)
}

func (s *WorkoutService) Delete(userID, workoutID uint) error {
	var workout models.Workout
	if err := s.db.
		Where("id = ? AND user_id = ?", workoutID, userID).
		First(&workout).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrWorkoutNotFound
		}
		return fmt.Errorf("delete workout: %w", err)
	}

	if err := s.deleteExercises(workout.ID); err != nil {
		return err
	}
	if err := s.db.Delete(&workout).Error; err != nil {
		return fmt.Errorf("delete workout: %w", err)
	}
	return nil
}

// deleteExercises removes a workout's exercises and their sets.
func (s *WorkoutService) deleteExercises(workoutID uint) error {
	var exercises []models.WorkoutExercise
	if err := s.db.Where("workout_id = ?", workoutID).Find(&exercises).Error; err != nil {
		return fmt.Errorf("load exercises: %w", err)
	}
	for _, ex := range exercises {
		if err := s.db.Where("workout_exercise_id = ?", ex.ID).Delete(&models.WorkoutSet{}).Error; err != nil {
			return fmt.Errorf("delete sets: %w", err)
		}
	}
	if err := s.db.Where("workout_id = ?", workoutID).Delete(&models.WorkoutExercise{}).Error; err != nil {
		return fmt.Errorf("delete exercises: %w", err)
	}
	return nil
}
