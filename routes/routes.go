package routes

import (
	"net/http"
	"time"

	"github.com/hazalkoom/Food-Tracker/config"
	"github.com/hazalkoom/Food-Tracker/controllers"
	"github.com/hazalkoom/Food-Tracker/middlewares"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		sqlDB, err := config.DB.DB()
		if err != nil || sqlDB.Ping() != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "database unreachable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	anonThrottle := middlewares.AnonRateLimit(time.Minute, 5)

	auth := api.Group("/auth")
	{
		auth.POST("/login", controllers.Login)
		auth.POST("/login/refresh", controllers.RefreshToken)
		auth.POST("/login/verify", controllers.VerifyToken)
	}

	users := api.Group("/users")
	{
		users.POST("/register", anonThrottle, controllers.Register)
		users.POST("/resend-verification", anonThrottle, controllers.ResendVerification)
		users.GET("/verify-email/:uid/:token", controllers.VerifyEmail)
		users.POST("/password-reset", anonThrottle, controllers.PasswordResetRequest)
		users.POST("/password-reset-confirm/:uid/:token", controllers.PasswordResetConfirm)

		authed := users.Group("")
		authed.Use(middlewares.AuthMiddleware())
		{
			authed.GET("/profile", controllers.GetProfile)
			authed.PUT("/profile", controllers.UpdateProfile)
			authed.DELETE("/profile", controllers.DeleteProfile)
			authed.PUT("/profile/change-password", controllers.ChangePassword)
			authed.POST("/logout", controllers.Logout)
		}
	}

	tracker := api.Group("/foodtracker")
	tracker.Use(middlewares.AuthMiddleware())
	{
		tracker.GET("/search", controllers.SearchFoods)

		tracker.GET("/items", controllers.ListFoodItems)
		tracker.POST("/items", controllers.CreateFoodItem)
		tracker.POST("/items/import", controllers.ImportFoodItem)
		tracker.GET("/items/:id", controllers.GetFoodItem)
		tracker.DELETE("/items/:id", controllers.DeleteFoodItem)

		tracker.GET("/logs", controllers.ListLogEntries)
		tracker.POST("/logs", controllers.CreateLogEntry)
		tracker.GET("/logs/:id", controllers.GetLogEntry)
		tracker.PUT("/logs/:id", controllers.UpdateLogEntry)
		tracker.DELETE("/logs/:id", controllers.DeleteLogEntry)

		tracker.GET("/summary", controllers.DailySummary)
	}

	return r
}
