package controllers

import (
	"net/http"
	"strconv"

	"github.com/Letitbe098/Fitness-Tracker/services"

	"github.com/gin-gonic/gin"
)

type NutritionController struct {
	nutrition *services.NutritionService
}

func NewNutritionController(nutrition *services.NutritionService) *NutritionController {
	return &NutritionController{nutrition: nutrition}
}

func (ctl *NutritionController) List(c *gin.Context) {
	logs, err := ctl.nutrition.List(currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}

func (ctl *NutritionController) GetByDate(c *gin.Context) {
	log, err := ctl.nutrition.GetByDate(currentUserID(c), c.Param("date"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, log)
}

func (ctl *NutritionController) Upsert(c *gin.Context) {
	var input services.NutritionLogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	log, err := ctl.nutrition.Upsert(currentUserID(c), c.Param("date"), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, log)
}

type addEntryInput struct {
	Slot  string                  `json:"slot" binding:"required"`
	Entry services.FoodEntryInput `json:"entry" binding:"required"`
}

func (ctl *NutritionController) AddEntry(c *gin.Context) {
	var input addEntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	log, err := ctl.nutrition.AddEntry(currentUserID(c), c.Param("date"), input.Slot, input.Entry)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, log)
}

func (ctl *NutritionController) RemoveEntry(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid index"})
		return
	}

	log, err := ctl.nutrition.RemoveEntry(currentUserID(c), c.Param("date"), c.Param("slot"), index)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, log)
}

type waterInput struct {
	DeltaMl float64 `json:"delta_ml" binding:"required"`
}

func (ctl *NutritionController) AdjustWater(c *gin.Context) {
	var input waterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	log, err := ctl.nutrition.AdjustWater(currentUserID(c), c.Param("date"), input.DeltaMl)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, log)
}
