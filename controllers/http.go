package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Letitbe098/Fitness-Tracker/services"
	"github.com/Letitbe098/Fitness-Tracker/utils"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func currentUserID(c *gin.Context) uint {
	return c.MustGet("userID").(uint)
}

func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return uint(id), true
}

var notFoundErrs = []error{
	services.ErrWorkoutNotFound,
	services.ErrNutritionLogNotFound,
	services.ErrFoodEntryNotFound,
	services.ErrGoalNotFound,
	services.ErrHealthMetricNotFound,
	services.ErrUserNotFound,
}

var invalidInputErrs = []error{
	services.ErrInvalidDate,
	services.ErrInvalidMealSlot,
	services.ErrInvalidGoalTarget,
	services.ErrInvalidGoalType,
	services.ErrInvalidStatus,
	services.ErrEmailTaken,
	utils.ErrInvalidHeight,
}

// respondError maps service errors onto HTTP statuses: NotFound -> 404,
// InvalidInput -> 400, anything else -> 500.
func respondError(c *gin.Context, err error) {
	for _, sentinel := range notFoundErrs {
		if errors.Is(err, sentinel) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
	}
	for _, sentinel := range invalidInputErrs {
		if errors.Is(err, sentinel) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	log.WithError(err).Error("request failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
