package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/Letitbe098/Fitness-Tracker/models"
	"github.com/Letitbe098/Fitness-Tracker/utils"

	"gorm.io/gorm"
)

var (
	ErrNutritionLogNotFound = errors.New("nutrition log not found")
	ErrFoodEntryNotFound    = errors.New("food entry not found")
	ErrInvalidMealSlot      = errors.New("invalid meal slot")
)

type NutritionService struct {
	db *gorm.DB
}

func NewNutritionService(db *gorm.DB) *NutritionService {
	return &NutritionService{db: db}
}

type FoodEntryInput struct {
	FoodID   string  `json:"food_id" binding:"required"`
	FoodName string  `json:"food_name"`
	Quantity float64 `json:"quantity"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

type MealsInput struct {
	Breakfast []FoodEntryInput `json:"breakfast"`
	Lunch     []FoodEntryInput `json:"lunch"`
	Dinner    []FoodEntryInput `json:"dinner"`
	Snacks    []FoodEntryInput `json:"snacks"`
}

type NutritionLogInput struct {
	Meals MealsInput `json:"meals"`
	Water float64    `json:"water"`
}

// Meals groups a log's entries by slot for the API shape the client
// renders.
type Meals struct {
	Breakfast []models.FoodEntry `json:"breakfast"`
	Lunch     []models.FoodEntry `json:"lunch"`
	Dinner    []models.FoodEntry `json:"dinner"`
	Snacks    []models.FoodEntry `json:"snacks"`
}

type NutritionLogResponse struct {
	ID            uint    `json:"id"`
	Date          string  `json:"date"`
	Meals         Meals   `json:"meals"`
	Water         float64 `json:"water"`
	TotalCalories float64 `json:"total_calories"`
	TotalProtein  float64 `json:"total_protein"`
	TotalCarbs    float64 `json:"total_carbs"`
	TotalFat      float64 `json:"total_fat"`
}

func logResponse(l *models.NutritionLog) *NutritionLogResponse {
	slotOrEmpty := func(slot string) []models.FoodEntry {
		entries := l.SlotEntries(slot)
		if entries == nil {
			entries = []models.FoodEntry{}
		}
		return entries
	}
	return &NutritionLogResponse{
		ID:   l.ID,
		Date: utils.FormatDate(l.Date),
		Meals: Meals{
			Breakfast: slotOrEmpty(models.SlotBreakfast),
			Lunch:     slotOrEmpty(models.SlotLunch),
			Dinner:    slotOrEmpty(models.SlotDinner),
			Snacks:    slotOrEmpty(models.SlotSnacks),
		},
		Water:         l.WaterMl,
		TotalCalories: l.TotalCalories,
		TotalProtein:  l.TotalProtein,
		TotalCarbs:    l.TotalCarbs,
		TotalFat:      l.TotalFat,
	}
}

// List returns all of the user's daily logs, newest first.
func (s *NutritionService) List(userID uint) ([]*NutritionLogResponse, error) {
	var logs []models.NutritionLog
	err := s.db.
		Preload("Entries", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&logs).Error
	if err != nil {
		return nil, fmt.Errorf("list nutrition logs: %w", err)
	}

	out := make([]*NutritionLogResponse, 0, len(logs))
	for i := range logs {
		out = append(out, logResponse(&logs[i]))
	}
	return out, nil
}

// GetByDate returns the user's log for one calendar date.
func (s *NutritionService) GetByDate(userID uint, dateStr string) (*NutritionLogResponse, error) {
	date, err := utils.ParseDate(dateStr)
	if err != nil {
		return nil, ErrInvalidDate
	}
	log, err := s.findLog(userID, date)
	if err != nil {
		return nil, err
	}
	return logResponse(log), nil
}

// Upsert replaces the log stored for the date, or creates one. At most
// one log per (user, date) - enforced here by lookup, not by a storage
// constraint. Totals are recomputed from the submitted entries; any
// totals the caller sends are ignored.
func (s *NutritionService) Upsert(userID uint, dateStr string, input NutritionLogInput) (*NutritionLogResponse, error) {
	date, err := utils.ParseDate(dateStr)
	if err != nil {
		return nil, ErrInvalidDate
	}

	log, err := s.findLog(userID, date)
	switch {
	case errors.Is(err, ErrNutritionLogNotFound):
		log = &models.NutritionLog{UserID: userID, Date: date}
	case err != nil:
		return nil, err
	default:
		if derr := s.db.Where("nutrition_log_id = ?", log.ID).Delete(&models.FoodEntry{}).Error; derr != nil {
			return nil, fmt.Errorf("replace entries: %w", derr)
		}
	}

	log.Entries = buildEntries(input.Meals)
	log.WaterMl = input.Water
	if log.WaterMl < 0 {
		log.WaterMl = 0
	}
	log.RecomputeTotals()

	if err := s.db.Save(log).Error; err != nil {
		return nil, fmt.Errorf("save nutrition log: %w", err)
	}
	return logResponse(log), nil
}

// AddEntry appends a food entry to one meal slot, creating the day's
// log if it does not exist yet.
func (s *NutritionService) AddEntry(userID uint, dateStr, slot string, input FoodEntryInput) (*NutritionLogResponse, error) {
	if !models.ValidMealSlot(slot) {
		return nil, ErrInvalidMealSlot
	}
	date, err := utils.ParseDate(dateStr)
	if err != nil {
		return nil, ErrInvalidDate
	}

	log, err := s.findOrCreateLog(userID, date)
	if err != nil {
		return nil, err
	}

	log.Entries = append(log.Entries, models.FoodEntry{
		Slot:     slot,
		Position: len(log.Entries),
		FoodID:   input.FoodID,
		FoodName: input.FoodName,
		Quantity: input.Quantity,
		Calories: input.Calories,
		Protein:  input.Protein,
		Carbs:    input.Carbs,
		Fat:      input.Fat,
	})
	log.RecomputeTotals()

	if err := s.db.Save(log).Error; err != nil {
		return nil, fmt.Errorf("add food entry: %w", err)
	}
	return logResponse(log), nil
}

// RemoveEntry deletes the index-th entry of one meal slot and
// recomputes the totals.
func (s *NutritionService) RemoveEntry(userID uint, dateStr, slot string, index int) (*NutritionLogResponse, error) {
	if !models.ValidMealSlot(slot) {
		return nil, ErrInvalidMealSlot
	}
	date, err := utils.ParseDate(dateStr)
	if err != nil {
		return nil, ErrInvalidDate
	}

	log, err := s.findLog(userID, date)
	if err != nil {
		return nil, err
	}

	slotEntries := log.SlotEntries(slot)
	if index < 0 || index >= len(slotEntries) {
		return nil, ErrFoodEntryNotFound
	}
	target := slotEntries[index]

	if err := s.db.Delete(&target).Error; err != nil {
		return nil, fmt.Errorf("remove food entry: %w", err)
	}

	kept := make([]models.FoodEntry, 0, len(log.Entries)-1)
	for _, e := range log.Entries {
		if e.ID != target.ID {
			kept = append(kept, e)
		}
	}
	log.Entries = kept
	log.RecomputeTotals()

	if err := s.db.Save(log).Error; err != nil {
		return nil, fmt.Errorf("save nutrition log: %w", err)
	}
	return logResponse(log), nil
}

// AdjustWater applies a signed delta in ml to the day's water intake,
// clamping at zero. The log is created if missing so water can be
// tracked before any food is logged.
func (s *NutritionService) AdjustWater(userID uint, dateStr string, deltaMl float64) (*NutritionLogResponse, error) {
	date, err := utils.ParseDate(dateStr)
	if err != nil {
		return nil, ErrInvalidDate
	}

	log, err := s.findOrCreateLog(userID, date)
	if err != nil {
		return nil, err
	}

	log.AdjustWater(deltaMl)
	if err := s.db.Save(log).Error; err != nil {
		return nil, fmt.Errorf("adjust water: %w", err)
	}
	return logResponse(log), nil
}

func (s *NutritionService) findLog(userID uint, date time.Time) (*models.NutritionLog, error) {
	var log models.NutritionLog
	err := s.db.
		Preload("Entries", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Where("user_id = ? AND date = ?", userID, date).
		First(&log).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNutritionLogNotFound
		}
		return nil, fmt.Errorf("get nutrition log: %w", err)
	}
	return &log, nil
}

func (s *NutritionService) findOrCreateLog(userID uint, date time.Time) (*models.NutritionLog, error) {
	log, err := s.findLog(userID, date)
	if errors.Is(err, ErrNutritionLogNotFound) {
		log = &models.NutritionLog{UserID: userID, Date: date}
		if cerr := s.db.Create(log).Error; cerr != nil {
			return nil, fmt.Errorf("create nutrition log: %w", cerr)
		}
		return log, nil
	}
	return log, err
}

func buildEntries(meals MealsInput) []models.FoodEntry {
	var entries []models.FoodEntry
	appendSlot := func(slot string, inputs []FoodEntryInput) {
		for _, in := range inputs {
			entries = append(entries, models.FoodEntry{
				Slot:     slot,
				Position: len(entries),
				FoodID:   in.FoodID,
				FoodName: in.FoodName,
				Quantity: in.Quantity,
				Calories: in.Calories,
				Protein:  in.Protein,
				Carbs:    in.Carbs,
				Fat:      in.Fat,
			})
		}
	}
	appendSlot(models.SlotBreakfast, meals.Breakfast)
	appendSlot(models.SlotLunch, meals.Lunch)
	appendSlot(models.SlotDinner, meals.Dinner)
	appendSlot(models.SlotSnacks, meals.Snacks)
	return entries
}
