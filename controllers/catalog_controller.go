package controllers

import (
	"net/http"

	"github.com/Letitbe098/Fitness-Tracker/services"

	"github.com/gin-gonic/gin"
)

type CatalogController struct {
	catalog *services.CatalogService
}

func NewCatalogController(catalog *services.CatalogService) *CatalogController {
	return &CatalogController{catalog: catalog}
}

func (ctl *CatalogController) ListExercises(c *gin.Context) {
	exercises, err := ctl.catalog.ListExercises(c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, exercises)
}

func (ctl *CatalogController) ListFoods(c *gin.Context) {
	foods, err := ctl.catalog.ListFoods(c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, foods)
}
