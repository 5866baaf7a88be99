package routes

import (
	"studyhub/controllers"

	"github.com/gin-gonic/gin"
)

// SetupGamificationRoutes wires the streak, stats, badge and pomodoro
// endpoints.
func SetupGamificationRoutes(rg *gin.RouterGroup) {
	rg.GET("/streak", controllers.GetStreak)
	rg.POST("/streak/check", controllers.CheckStreak)

	rg.GET("/stats", controllers.GetStats)
	rg.GET("/badges", controllers.GetBadges)
	rg.PUT("/stats/showcase", controllers.UpdateShowcase)

	rg.POST("/pomodoro/complete", controllers.CompletePomodoro)
}
