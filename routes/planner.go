package routes

import (
	"studyhub/controllers"

	"github.com/gin-gonic/gin"
)

// SetupPlannerRoutes wires the curriculum, semester and exam endpoints.
func SetupPlannerRoutes(rg *gin.RouterGroup) {
	rg.GET("/semester/current", controllers.GetCurrentWeek)
	rg.GET("/semester/week/:week", controllers.GetWeekRange)

	rg.GET("/tasks", controllers.GetTasks)
	rg.PUT("/tasks/:id/toggle", controllers.ToggleTask)
	rg.POST("/semester/reset", controllers.ResetSemester)

	rg.GET("/exams", controllers.GetExams)
}
