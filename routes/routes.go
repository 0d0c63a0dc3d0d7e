package routes

import (
	"github.com/Letitbe098/Fitness-Tracker/controllers"
	"github.com/Letitbe098/Fitness-Tracker/middlewares"
	"github.com/Letitbe098/Fitness-Tracker/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter wires every controller onto a gin engine.
func SetupRouter(db *gorm.DB) *gin.Engine {
	users := services.NewUserService(db)

	authCtl := controllers.NewAuthController(services.NewAuthService(db), users)
	userCtl := controllers.NewUserController(users)
	workoutCtl := controllers.NewWorkoutController(services.NewWorkoutService(db))
	nutritionCtl := controllers.NewNutritionController(services.NewNutritionService(db))
	metricCtl := controllers.NewHealthMetricController(services.NewHealthMetricService(db), users)
	goalCtl := controllers.NewGoalController(services.NewGoalService(db))
	dashboardCtl := controllers.NewDashboardController(services.NewDashboardService(db))
	catalogCtl := controllers.NewCatalogController(services.NewCatalogService(db))

	r := gin.Default()

	api := r.Group("/api")

	api.GET("/health-check", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Fitness Tracker API is running!"})
	})

	auth := api.Group("/auth")
	{
		auth.POST("/register", authCtl.Register)
		auth.POST("/login", authCtl.Login)
		auth.GET("/me", middlewares.AuthMiddleware(), authCtl.Me)
	}

	protected := api.Group("")
	protected.Use(middlewares.AuthMiddleware())
	{
		protected.PUT("/users/me", userCtl.UpdateProfile)
		protected.GET("/users/me/energy", userCtl.Energy)

		protected.GET("/workouts", workoutCtl.List)
		protected.POST("/workouts", workoutCtl.Create)
		protected.PUT("/workouts/:id", workoutCtl.Update)
		protected.DELETE("/workouts/:id", workoutCtl.Delete)

		protected.GET("/nutrition", nutritionCtl.List)
		protected.GET("/nutrition/:date", nutritionCtl.GetByDate)
		protected.PUT("/nutrition/:date", nutritionCtl.Upsert)
		protected.POST("/nutrition/:date/entries", nutritionCtl.AddEntry)
		protected.DELETE("/nutrition/:date/entries/:slot/:index", nutritionCtl.RemoveEntry)
		protected.POST("/nutrition/:date/water", nutritionCtl.AdjustWater)

		protected.GET("/health-metrics", metricCtl.List)
		protected.POST("/health-metrics", metricCtl.Upsert)
		protected.DELETE("/health-metrics/:id", metricCtl.Delete)
		protected.GET("/health-metrics/insights", metricCtl.Insights)

		protected.GET("/goals", goalCtl.List)
		protected.GET("/goals/stats", goalCtl.Stats)
		protected.POST("/goals", goalCtl.Create)
		protected.PUT("/goals/:id", goalCtl.Update)
		protected.PATCH("/goals/:id/progress", goalCtl.UpdateProgress)
		protected.POST("/goals/:id/toggle", goalCtl.ToggleCompleted)
		protected.DELETE("/goals/:id", goalCtl.Delete)

		protected.GET("/dashboard", dashboardCtl.Summary)

		protected.GET("/exercises", catalogCtl.ListExercises)
		protected.GET("/foods", catalogCtl.ListFoods)
	}

	return r
}
