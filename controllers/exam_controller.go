package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"studyhub/db"

	"github.com/gin-gonic/gin"
)

// GetExams returns the user's semester exams ordered by date.
func GetExams(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	exams, err := db.GetExams(dbCtx, userID)
	if err != nil {
		log.Printf("Error fetching exams: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch exams"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"exams": exams, "total": len(exams)})
}
