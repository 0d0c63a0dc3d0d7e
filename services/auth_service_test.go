package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerInput() RegisterInput {
	return RegisterInput{
		Name:          "Jamie",
		Email:         "jamie@example.com",
		Password:      "hunter22",
		Age:           28,
		Height:        170,
		CurrentWeight: 65,
		GoalWeight:    62,
		Goals:         []string{"run a 10k", "sleep more"},
	}
}

func TestRegisterAndAuthenticate(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := setupTestDB(t)
	svc := NewAuthService(db)

	user, token, err := svc.Register(registerInput())
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NotEmpty(t, user.PublicID)
	assert.NotEqual(t, "hunter22", user.Password) // stored hashed
	assert.Equal(t, "moderate", user.ActivityLevel)
	assert.Equal(t, []string{"run a 10k", "sleep more"}, user.GoalLabels())

	_, token, err = svc.Authenticate("jamie@example.com", "hunter22")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	// email matching is case-insensitive on the stored lowercase form
	_, _, err = svc.Authenticate("JAMIE@example.com", "hunter22")
	require.NoError(t, err)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := setupTestDB(t)
	svc := NewAuthService(db)

	_, _, err := svc.Register(registerInput())
	require.NoError(t, err)

	_, _, err = svc.Register(registerInput())
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestAuthenticateRejectsBadCredentials(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := setupTestDB(t)
	svc := NewAuthService(db)

	_, _, err := svc.Register(registerInput())
	require.NoError(t, err)

	_, _, err = svc.Authenticate("jamie@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Authenticate("nobody@example.com", "hunter22")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
