package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fp(v float64) *float64 { return &v }

func benchWorkoutInput() WorkoutInput {
	return WorkoutInput{
		Date: "2024-05-01",
		Name: "Upper Body",
		Exercises: []WorkoutExerciseInput{
			{
				ExerciseID:   "bench-press",
				ExerciseName: "Bench Press",
				Sets: []WorkoutSetInput{
					{Reps: 10, Weight: fp(50)},
					{Reps: 8, Weight: fp(0)},
				},
			},
		},
		Duration: 45,
	}
}

func TestWorkoutCreateAndList(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db)
	svc := NewWorkoutService(db)

	workout, err := svc.Create(user.ID, benchWorkoutInput())
	require.NoError(t, err)
	assert.NotZero(t, workout.ID)
	assert.Equal(t, 2, workout.TotalSets())
	assert.Equal(t, 500.0, workout.TotalVolume())

	workouts, err := svc.List(user.ID, "")
	require.NoError(t, err)
	require.Len(t, workouts, 1)
	assert.Equal(t, "Upper Body", workouts[0].Name)

	// other users see nothing
	other := createTestUser(t, db)
	workouts, err = svc.List(other.ID, "")
	require.NoError(t, err)
	assert.Empty(t, workouts)
}

func TestWorkoutCreateInvalidDate(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db)
	svc := NewWorkoutService(db)

	input := benchWorkoutInput()
	input.Date = "May 1st"
	_, err := svc.Create(user.ID, input)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestWorkoutSearch(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db)
	svc := NewWorkoutService(db)

	_, err := svc.Create(user.ID, benchWorkoutInput())
	require.NoError(t, err)

	leg := benchWorkoutInput()
	leg.Name = "Leg Day"
	leg.Exercises = []WorkoutExerciseInput{
		{ExerciseID: "squats", ExerciseName: "Squats", Sets: []WorkoutSetInput{{Reps: 5, Weight: fp(100)}}},
	}
	_, err = svc.Create(user.ID, leg)
	require.NoError(t, err)

	// matches workout name
	found, err := svc.List(user.ID, "leg")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Leg Day", found[0].Name)

	// matches exercise name, case-insensitively
	found, err = svc.List(user.ID, "BENCH")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Upper Body", found[0].Name)

	found, err = svc.List(user.ID, "swimming")
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestWorkoutUpdateReplacesRecord(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db)
	svc := NewWorkoutService(db)

	workout, err := svc.Create(user.ID, benchWorkoutInput())
	require.NoError(t, err)

	update := WorkoutInput{
		Date: "2024-05-02",
		Name: "Full Body",
		Exercises: []WorkoutExerciseInput{
			{ExerciseID: "deadlifts", ExerciseName: "Deadlifts", Sets: []WorkoutSetInput{{Reps: 5, Weight: fp(120)}}},
		},
		Duration: 60,
	}
	updated, err := svc.Update(user.ID, workout.ID, update)
	require.NoError(t, err)
	assert.Equal(t, "Full Body", updated.Name)
	require.Len(t, updated.Exercises, 1)
	assert.Equal(t, "Deadlifts", updated.Exercises[0].ExerciseName)
	assert.Equal(t, 600.0, updated.TotalVolume())

	// whole-record replace: the bench press exercise is gone
	workouts, err := svc.List(user.ID, "bench")
	require.NoError(t, err)
	assert.Empty(t, workouts)
}

func TestWorkoutUpdateRequiresExistence(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db)
	svc := NewWorkoutService(db)

	// no upsert by id: updating a missing workout is NotFound
	_, err := svc.Update(user.ID, 999, benchWorkoutInput())
	assert.ErrorIs(t, err, ErrWorkoutNotFound)
}

func TestWorkoutDelete(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db)
	svc := NewWorkoutService(db)

	workout, err := svc.Create(user.ID, benchWorkoutInput())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(user.ID, workout.ID))
	assert.ErrorIs(t, svc.Delete(user.ID, workout.ID), ErrWorkoutNotFound)

	workouts, err := svc.List(user.ID, "")
	require.NoError(t, err)
	assert.Empty(t, workouts)
}

func TestWorkoutOwnershipScoping(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db)
	other := createTestUser(t, db)
	svc := NewWorkoutService(db)

	workout, err := svc.Create(user.ID, benchWorkoutInput())
	require.NoError(t, err)

	_, err = svc.Update(other.ID, workout.ID, benchWorkoutInput())
	assert.ErrorIs(t, err, ErrWorkoutNotFound)
	assert.ErrorIs(t, svc.Delete(other.ID, workout.ID), ErrWorkoutNotFound)
}
