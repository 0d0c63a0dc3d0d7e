package services

import (
	"testing"
	"time"

	"github.com/Letitbe098/Fitness-Tracker/models"
	"github.com/Letitbe098/Fitness-Tracker/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weightGoalInput(deadline string) GoalInput {
	return GoalInput{
		Type:        models.GoalTypeWeight,
		Title:       "Reach 68kg",
		Description: "Cut for summer",
		Target:      100,
		Current:     50,
		Unit:        "kg",
		Deadline:    deadline,
		Priority:    models.PriorityHigh,
	}
}

func futureDate() string {
	return utils.FormatDate(time.Now().AddDate(0, 0, 30))
}

func TestGoalCreate(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db)
	svc := NewGoalService(db)

	goal, err := svc.Create(user.ID, weightGoalInput(futureDate()))
	require.NoError(t, err)
	assert.Equal(t, 50.0, goal.ProgressPercent)
	assert.False(t, goal.Completed)
	assert.False(t, goal.Overdue)
	assert.Equal(t, models.PriorityHigh, goal.Priority)
}

func TestGoalCreateRejectsBadInput(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db)
	svc := NewGoalService(db)

	input := weightGoalInput(futureDate())
	input.Target = 0
	_, err := svc.Create(user.ID, input)
	assert.ErrorIs(t, err, ErrInvalidGoalTarget)

	input = weightGoalInput(futureDate())
	input.Target = -5
	_, err = svc.Create(user.ID, input)
	assert.ErrorIs(t, err, ErrInvalidGoalTarget)

	input = weightGoalInput(futureDate())
	input.Type = "wishful-thinking"
	_, err = svc.Create(user.ID, input)
	assert.ErrorIs(t, err, ErrInvalidGoalType)

	input = weightGoalInput("soon")
	_, err = svc.Create(user.ID, input)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestGoalProgressClampAndNoAutoComplete(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db)
	svc := NewGoalService(db)

	goal, err := svc.Create(user.ID, weightGoalInput(futureDate()))
	require.NoError(t, err)

	// passing the target clamps progress at 100 but does NOT complete
	updated, err := svc.UpdateProgress(user.ID, goal.ID, 150)
	require.NoError(t, err)
	assert.Equal(t, 100.0, updated.ProgressPercent)
	assert.False(t, updated.Completed)
}

func TestGoalToggleCompleted(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db)
	svc := NewGoalService(db)

	// already past the deadline
	past := utils.FormatDate(time.Now().AddDate(0, 0, -5))
	goal, err := svc.Create(user.ID, weightGoalInput(past))
	require.NoError(t, err)
	assert.True(t, goal.Overdue)
	assert.Negative(t, goal.DaysRemaining)

	// completing clears overdue
	toggled, err := svc.ToggleCompleted(user.ID, goal.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Completed)
	assert.False(t, toggled.Overdue)

	// the toggle is reversible
	toggled, err = svc.ToggleCompleted(user.ID, goal.ID)
	require.NoError(t, err)
	assert.False(t, toggled.Completed)
	assert.True(t, toggled.Overdue)
}

func TestGoalFilterByStatus(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db)
	svc := NewGoalService(db)

	a, err := svc.Create(user.ID, weightGoalInput(futureDate()))
	require.NoError(t, err)
	_, err = svc.Create(user.ID, weightGoalInput(futureDate()))
	require.NoError(t, err)
	_, err = svc.ToggleCompleted(user.ID, a.ID)
	require.NoError(t, err)

	all, err := svc.List(user.ID, "all")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	active, err := svc.List(user.ID, "active")
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.False(t, active[0].Completed)

	completed, err := svc.List(user.ID, "completed")
	require.NoError(t, err)
	require.Len(t, completed, 1)
	assert.True(t, completed[0].Completed)

	// empty defaults to all
	all, err = svc.List(user.ID, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = svc.List(user.ID, "archived")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestGoalStats(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db)
	svc := NewGoalService(db)

	past := utils.FormatDate(time.Now().AddDate(0, 0, -1))
	_, err := svc.Create(user.ID, weightGoalInput(past))
	require.NoError(t, err)
	done, err := svc.Create(user.ID, weightGoalInput(futureDate()))
	require.NoError(t, err)
	_, err = svc.ToggleCompleted(user.ID, done.ID)
	require.NoError(t, err)

	stats, err := svc.Stats(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.Active)
	assert.Equal(t, 1, stats.Completed)
	assert.Equal(t, 1, stats.Overdue)
}

func TestGoalUpdateAndDelete(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db)
	svc := NewGoalService(db)

	goal, err := svc.Create(user.ID, weightGoalInput(futureDate()))
	require.NoError(t, err)

	input := weightGoalInput(futureDate())
	input.Title = "Reach 70kg"
	input.Target = 200
	updated, err := svc.Update(user.ID, goal.ID, input)
	require.NoError(t, err)
	assert.Equal(t, "Reach 70kg", updated.Title)
	assert.Equal(t, 25.0, updated.ProgressPercent)

	_, err = svc.Update(user.ID, 999, input)
	assert.ErrorIs(t, err, ErrGoalNotFound)

	require.NoError(t, svc.Delete(user.ID, goal.ID))
	assert.ErrorIs(t, svc.Delete(user.ID, goal.ID), ErrGoalNotFound)
}
