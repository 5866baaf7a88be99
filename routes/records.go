package routes

import (
	"studyhub/controllers"

	"github.com/gin-gonic/gin"
)

// SetupRecordRoutes wires grades, notes and question generation.
func SetupRecordRoutes(rg *gin.RouterGroup) {
	rg.GET("/grades", controllers.GetGrades)
	rg.POST("/grades", controllers.CreateGrade)
	rg.DELETE("/grades/:id", controllers.DeleteGrade)

	rg.GET("/notes", controllers.GetNotes)
	rg.POST("/notes", controllers.CreateNote)
	rg.PUT("/notes/:id", controllers.UpdateNote)
	rg.DELETE("/notes/:id", controllers.DeleteNote)

	rg.POST("/questions/generate", controllers.GenerateQuestions)
}
