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
	ErrGoalNotFound      = errors.New("goal not found")
	ErrInvalidGoalTarget = errors.New("goal target must be positive")
	ErrInvalidGoalType   = errors.New("invalid goal type")
	ErrInvalidStatus     = errors.New("status must be all, active or completed")
)

type GoalService struct {
	db *gorm.DB
}

func NewGoalService(db *gorm.DB) *GoalService {
	return &GoalService{db: db}
}

type GoalInput struct {
	Type        string  `json:"type" binding:"required"`
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Target      float64 `json:"target"`
	Current     float64 `json:"current"`
	Unit        string  `json:"unit"`
	Deadline    string  `json:"deadline" binding:"required"`
	Priority    string  `json:"priority"`
}

// GoalResponse decorates a goal with its derived progress fields.
type GoalResponse struct {
	ID              uint    `json:"id"`
	Type            string  `json:"type"`
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	Target          float64 `json:"target"`
	Current         float64 `json:"current"`
	Unit            string  `json:"unit"`
	Deadline        string  `json:"deadline"`
	Completed       bool    `json:"completed"`
	Priority        string  `json:"priority"`
	ProgressPercent float64 `json:"progress_percent"`
	Overdue         bool    `json:"overdue"`
	DaysRemaining   int     `json:"days_remaining"`
}

// GoalStats summarizes a user's goal list.
type GoalStats struct {
	Total     int `json:"total"`
	Active    int `json:"active"`
	Completed int `json:"completed"`
	Overdue   int `json:"overdue"`
}

func goalResponse(g *models.Goal, now time.Time) *GoalResponse {
	return &GoalResponse{
		ID:              g.ID,
		Type:            g.Type,
		Title:           g.Title,
		Description:     g.Description,
		Target:          g.Target,
		Current:         g.Current,
		Unit:            g.Unit,
		Deadline:        utils.FormatDate(g.Deadline),
		Completed:       g.Completed,
		Priority:        g.Priority,
		ProgressPercent: g.ProgressPercent(),
		Overdue:         g.IsOverdue(now),
		DaysRemaining:   g.DaysRemaining(now),
	}
}

func (s *GoalService) validate(input GoalInput) (time.Time, error) {
	if input.Target <= 0 {
		return time.Time{}, ErrInvalidGoalTarget
	}
	if !models.ValidGoalType(input.Type) {
		return time.Time{}, ErrInvalidGoalType
	}
	deadline, err := utils.ParseDate(input.Deadline)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return deadline, nil
}

// Create stores a new goal. A non-positive target is rejected so the
// progress calculation can never divide by zero.
func (s *GoalService) Create(userID uint, input GoalInput) (*GoalResponse, error) {
	deadline, err := s.validate(input)
	if err != nil {
		return nil, err
	}

	priority := input.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}
	if !models.ValidPriority(priority) {
		priority = models.PriorityMedium
	}

	goal := &models.Goal{
		UserID:      userID,
		Type:        input.Type,
		Title:       input.Title,
		Description: input.Description,
		Target:      input.Target,
		Current:     input.Current,
		Unit:        input.Unit,
		Deadline:    deadline,
		Priority:    priority,
	}
	if err := s.db.Create(goal).Error; err != nil {
		return nil, fmt.Errorf("create goal: %w", err)
	}
	return goalResponse(goal, time.Now()), nil
}

// List returns the user's goals newest-first, filtered by status:
// all (default), active (not completed) or completed.
func (s *GoalService) List(userID uint, status string) ([]*GoalResponse, error) {
	if status == "" {
		status = "all"
	}

	q := s.db.Where("user_id = ?", userID).Order("created_at DESC")
	switch status {
	case "all":
	case "active":
		q = q.Where("completed = ?", false)
	case "completed":
		q = q.Where("completed = ?", true)
	default:
		return nil, ErrInvalidStatus
	}

	var goals []models.Goal
	if err := q.Find(&goals).Error; err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}

	now := time.Now()
	out := make([]*GoalResponse, 0, len(goals))
	for i := range goals {
		out = append(out, goalResponse(&goals[i], now))
	}
	return out, nil
}

// Stats counts the user's goals by state.
func (s *GoalService) Stats(userID uint) (*GoalStats, error) {
	var goals []models.Goal
	if err := s.db.Where("user_id = ?", userID).Find(&goals).Error; err != nil {
		return nil, fmt.Errorf("goal stats: %w", err)
	}

	now := time.Now()
	stats := &GoalStats{Total: len(goals)}
	for i := range goals {
		if goals[i].Completed {
			stats.Completed++
		} else {
			stats.Active++
		}
		if goals[i].IsOverdue(now) {
			stats.Overdue++
		}
	}
	return stats, nil
}

// Update replaces a goal's definition. The goal must exist.
func (s *GoalService) Update(userID, goalID uint, input GoalInput) (*GoalResponse, error) {
	deadline, err := s.validate(input)
	if err != nil {
		return nil, err
	}

	goal, err := s.find(userID, goalID)
	if err != nil {
		return nil, err
	}

	goal.Type = input.Type
	goal.Title = input.Title
	goal.Description = input.Description
	goal.Target = input.Target
	goal.Current = input.Current
	goal.Unit = input.Unit
	goal.Deadline = deadline
	if models.ValidPriority(input.Priority) {
		goal.Priority = input.Priority
	}

	if err := s.db.Save(goal).Error; err != nil {
		return nil, fmt.Errorf("update goal: %w", err)
	}
	return goalResponse(goal, time.Now()), nil
}

// UpdateProgress mutates only the current value. Reaching the target
// does not complete the goal; completion stays a separate manual step.
func (s *GoalService) UpdateProgress(userID, goalID uint, current float64) (*GoalResponse, error) {
	goal, err := s.find(userID, goalID)
	if err != nil {
		return nil, err
	}

	goal.Current = current
	if err := s.db.Save(goal).Error; err != nil {
		return nil, fmt.Errorf("update goal progress: %w", err)
	}
	return goalResponse(goal, time.Now()), nil
}

// ToggleCompleted flips the goal between active and completed.
func (s *GoalService) ToggleCompleted(userID, goalID uint) (*GoalResponse, error) {
	goal, err := s.find(userID, goalID)
	if err != nil {
		return nil, err
	}

	goal.Completed = !goal.Completed
	if err := s.db.Save(goal).Error; err != nil {
		return nil, fmt.Errorf("toggle goal: %w", err)
	}
	return goalResponse(goal, time.Now()), nil
}

func (s *GoalService) Delete(userID, goalID uint) error {
	goal, err := s.find(userID, goalID)
	if err != nil {
		return err
	}
	if err := s.db.Delete(goal).Error; err != nil {
		return fmt.Errorf("delete goal: %w", err)
	}
	return nil
}

func (s *GoalService) find(userID, goalID uint) (*models.Goal, error) {
	var goal models.Goal
	err := s.db.Where("id = ? AND user_id = ?", goalID, userID).First(&goal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGoalNotFound
		}
		return nil, fmt.Errorf("get goal: %w", err)
	}
	return &goal, nil
}
