package controllers

import (
	"context"
	"io"
	"log"
	"net/http"
	"time"

	"studyhub/models"
	"studyhub/services"

	"github.com/gin-gonic/gin"
)

const maxUploadBytes = 1 << 20 // 1 MiB of note text is plenty

// GenerateQuestions accepts an uploaded notes file and returns Gemini-
// generated practice questions. The client passes withQuestions=true on the
// matching task completion to claim the higher point award.
func GenerateQuestions(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}

	subject := models.Subject(c.PostForm("subjectId"))
	if !models.ValidSubject(subject) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown subject id"})
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing notes file"})
		return
	}
	defer file.Close()

	if header.Size > maxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Notes file too large"})
		return
	}

	content, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		log.Printf("Error reading upload: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read notes file"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	questions, err := services.GenerateQuestions(ctx, subject, string(content), 5)
	if err != nil {
		log.Printf("Error generating questions: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to generate questions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"questions":     questions,
		"withQuestions": true,
	})
}
