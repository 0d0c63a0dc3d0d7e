package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Letitbe098/Fitness-Tracker/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "open test database")
	require.NoError(t, config.Migrate(db), "migrate test database")
	return SetupRouter(db)
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealthCheck(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/health-check", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "running")
}

func TestAuthRoundTrip(t *testing.T) {
	r := setupRouter(t)

	register := map[string]any{
		"name":          "Jamie",
		"email":         "jamie@example.com",
		"password":      "hunter22",
		"age":           28,
		"height":        170,
		"currentWeight": 65,
		"goalWeight":    62,
	}

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", register)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		Token string `json:"token"`
		User  struct {
			ID    string `json:"id"`
			Email string `json:"email"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotEmpty(t, created.Token)
	assert.Equal(t, "jamie@example.com", created.User.Email)

	// duplicate email is rejected
	w = doJSON(t, r, http.MethodPost, "/api/auth/register", "", register)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email":    "jamie@example.com",
		"password": "hunter22",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var logged struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &logged))
	require.NotEmpty(t, logged.Token)

	w = doJSON(t, r, http.MethodGet, "/api/auth/me", logged.Token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "jamie@example.com")

	w = doJSON(t, r, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email":    "jamie@example.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	r := setupRouter(t)

	for _, path := range []string{"/api/workouts", "/api/goals", "/api/dashboard"} {
		w := doJSON(t, r, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}

	w := doJSON(t, r, http.MethodGet, "/api/workouts", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestWorkoutFlowOverHTTP(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", map[string]any{
		"name":          "Sam",
		"email":         "sam@example.com",
		"password":      "hunter22",
		"age":           35,
		"height":        180,
		"currentWeight": 80,
		"goalWeight":    78,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	token := created.Token

	w = doJSON(t, r, http.MethodPost, "/api/workouts", token, map[string]any{
		"name": "Push Day",
		"date": "2025-03-10",
		"exercises": []map[string]any{
			{
				"exercise_name": "Bench Press",
				"sets": []map[string]any{
					{"reps": 10, "weight": 60},
					{"reps": 8, "weight": 65},
				},
			},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var workout struct {
		ID          uint    `json:"id"`
		TotalSets   int     `json:"total_sets"`
		TotalVolume float64 `json:"total_volume"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &workout))
	assert.Equal(t, 2, workout.TotalSets)
	assert.InDelta(t, 10*60+8*65, workout.TotalVolume, 0.001)

	w = doJSON(t, r, http.MethodGet, "/api/workouts?q=bench", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Push Day")

	w = doJSON(t, r, http.MethodGet, "/api/workouts?q=deadlift", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "Push Day")
}
