package controllers

import (
	"net/http"
	"time"

	"github.com/Letitbe098/Fitness-Tracker/services"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	dashboard *services.DashboardService
}

func NewDashboardController(dashboard *services.DashboardService) *DashboardController {
	return &DashboardController{dashboard: dashboard}
}

func (ctl *DashboardController) Summary(c *gin.Context) {
	summary, err := ctl.dashboard.Summary(currentUserID(c), time.Now())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
