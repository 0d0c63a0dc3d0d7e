package controllers

import (
	"net/http"

	"github.com/Letitbe098/Fitness-Tracker/services"

	"github.com/gin-gonic/gin"
)

type HealthMetricController struct {
	metrics *services.HealthMetricService
	users   *services.UserService
}

func NewHealthMetricController(metrics *services.HealthMetricService, users *services.UserService) *HealthMetricController {
	return &HealthMetricController{metrics: metrics, users: users}
}

func (ctl *HealthMetricController) List(c *gin.Context) {
	metrics, err := ctl.metrics.List(currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, metrics)
}

// Upsert records the day's measurements; posting the same date again
// replaces the earlier record.
func (ctl *HealthMetricController) Upsert(c *gin.Context) {
	var input services.HealthMetricInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	metric, err := ctl.metrics.Upsert(currentUserID(c), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, metric)
}

func (ctl *HealthMetricController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := ctl.metrics.Delete(currentUserID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Health metric deleted successfully"})
}

// Insights classifies the latest metric (BMI, blood pressure stage,
// sleep quality).
func (ctl *HealthMetricController) Insights(c *gin.Context) {
	userID := currentUserID(c)
	user, err := ctl.users.Get(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	insights, err := ctl.metrics.LatestInsights(userID, user.HeightCm)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, insights)
}
