package controllers

import (
	"net/http"

	"github.com/Letitbe098/Fitness-Tracker/models"
	"github.com/Letitbe098/Fitness-Tracker/services"
	"github.com/Letitbe098/Fitness-Tracker/utils"

	"github.com/gin-gonic/gin"
)

type WorkoutController struct {
	workouts *services.WorkoutService
}

func NewWorkoutController(workouts *services.WorkoutService) *WorkoutController {
	return &WorkoutController{workouts: workouts}
}

// workoutView decorates a workout with its date string and derived
// aggregates.
type workoutView struct {
	models.Workout
	ID          uint    `json:"id"`
	Date        string  `json:"date"`
	TotalSets   int     `json:"total_sets"`
	TotalVolume float64 `json:"total_volume"`
}

func viewOf(w *models.Workout) workoutView {
	return workoutView{
		Workout:     *w,
		ID:          w.ID,
		Date:        utils.FormatDate(w.Date),
		TotalSets:   w.TotalSets(),
		TotalVolume: w.TotalVolume(),
	}
}

func (ctl *WorkoutController) List(c *gin.Context) {
	workouts, err := ctl.workouts.List(currentUserID(c), c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}

	views := make([]workoutView, 0, len(workouts))
	for i := range workouts {
		views = append(views, viewOf(&workouts[i]))
	}
	c.JSON(http.StatusOK, views)
}

func (ctl *WorkoutController) Create(c *gin.Context) {
	var input services.WorkoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	workout, err := ctl.workouts.Create(currentUserID(c), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, viewOf(workout))
}

func (ctl *WorkoutController) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var input services.WorkoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	workout, err := ctl.workouts.Update(currentUserID(c), id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, viewOf(workout))
}

func (ctl *WorkoutController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := ctl.workouts.Delete(currentUserID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Workout deleted successfully"})
}
