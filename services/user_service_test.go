package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateProfilePartial(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db)
	svc := NewUserService(db)

	updated, err := svc.UpdateProfile(user.ID, ProfileInput{
		CurrentWeight: 72,
		Goals:         []string{"build muscle"},
	})
	require.NoError(t, err)

	// untouched fields keep their values
	assert.Equal(t, "Test User", updated.Name)
	assert.Equal(t, 30, updated.Age)
	assert.Equal(t, 175.0, updated.HeightCm)
	assert.Equal(t, 72.0, updated.CurrentWeightKg)
	assert.Equal(t, []string{"build muscle"}, updated.GoalLabels())
}

func TestUpdateProfileUnknownUser(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)

	_, err := svc.UpdateProfile(999, ProfileInput{Name: "Ghost"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestEnergySummary(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db)
	svc := NewUserService(db)

	// 30y, 175cm, 70kg, moderate activity
	summary, err := svc.Energy(user.ID)
	require.NoError(t, err)

	assert.InDelta(t, 22.86, summary.BMI, 0.01)
	assert.Equal(t, "Normal weight", summary.BMICategory)
	assert.InDelta(t, 1648.75, summary.BMR, 0.01)
	assert.InDelta(t, 1648.75*1.55, summary.TDEE, 0.01)
	assert.InDelta(t, summary.TDEE-500, summary.CaloriesLose, 0.01)
	assert.InDelta(t, summary.TDEE, summary.CaloriesMaintain, 0.01)
	assert.InDelta(t, summary.TDEE+500, summary.CaloriesGain, 0.01)
}

func TestEnergyRejectsInvalidHeight(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db)
	require.NoError(t, db.Model(user).Update("height_cm", 0).Error)

	_, err := NewUserService(db).Energy(user.ID)
	assert.Error(t, err)
}
