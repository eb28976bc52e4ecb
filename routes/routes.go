package routes

import (
	"backend/controllers"
	"backend/middlewares"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	// Everything below requires a valid bearer token
	api := r.Group("/")
	api.Use(middlewares.AuthMiddleware())
	{
		api.GET("/profile", controllers.GetProfile)
		api.PUT("/profile", controllers.UpdateProfile)

		api.GET("/food-database", controllers.SearchFoodDatabase)
		api.POST("/food-database", controllers.AddFoodToDatabase)

		api.POST("/food-logs", controllers.SaveFoodLog)
		api.GET("/food-logs/:date", controllers.GetFoodLog)

		api.POST("/water-logs", controllers.AddWaterIntake)
		api.GET("/water-logs/:date", controllers.GetWaterLog)

		api.POST("/sleep-logs", controllers.SaveSleepLog)
		api.GET("/sleep-logs/:date", controllers.GetSleepLog)

		api.POST("/mood-logs", controllers.SaveMoodLog)
		api.GET("/mood-logs/:date", controllers.GetMoodLog)

		api.POST("/activity-logs", controllers.LogActivity)
		api.GET("/activity-logs/:date", controllers.GetActivities)
		api.GET("/activity-history", controllers.GetActivityHistory)

		api.GET("/dashboard/:date", controllers.GetDashboard)

		api.POST("/food/analyze", controllers.AnalyzeFood)
	}

	return r
}
