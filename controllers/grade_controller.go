package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"studyhub/db"
	"studyhub/gamification"
	"studyhub/models"
	"studyhub/websocket"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetGrades returns the user's grades plus the overall average percentage.
func GetGrades(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	grades, err := db.GetGrades(dbCtx, userID)
	if err != nil {
		log.Printf("Error fetching grades: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch grades"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"grades":  grades,
		"average": averagePercent(grades),
	})
}

type createGradeRequest struct {
	SubjectID models.Subject `json:"subjectId" binding:"required"`
	Title     string         `json:"title" binding:"required"`
	Score     float64        `json:"score" binding:"min=0"`
	MaxScore  float64        `json:"maxScore" binding:"required,gt=0"`
	Date      time.Time      `json:"date"`
}

// CreateGrade records an assessment result, awards the percentage-derived
// points and evaluates the grade badges.
func CreateGrade(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req createGradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	if !models.ValidSubject(req.SubjectID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown subject id"})
		return
	}
	if req.Score > req.MaxScore {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Score cannot exceed max score"})
		return
	}

	if req.Date.IsZero() {
		req.Date = time.Now()
	}

	grade := models.Grade{
		ID:         uuid.NewString(),
		UserID:     userID,
		SubjectID:  req.SubjectID,
		Title:      req.Title,
		Score:      req.Score,
		MaxScore:   req.MaxScore,
		Percentage: req.Score / req.MaxScore * 100,
		Date:       req.Date,
		CreatedAt:  time.Now(),
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := db.InsertGrade(dbCtx, grade); err != nil {
		log.Printf("Error inserting grade: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save grade"})
		return
	}

	grades, err := db.GetGrades(dbCtx, userID)
	if err != nil {
		log.Printf("Error fetching grades: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch grades"})
		return
	}

	stats, err := db.LoadStats(dbCtx, userID)
	if err != nil {
		log.Printf("Error loading stats: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load stats"})
		return
	}

	points := gamification.GradePoints(grade.Percentage)
	stats, newBadges, leveledUp := gamification.RecordGrade(stats, points, grade.Percentage, averagePercent(grades), time.Now())

	if err := db.SaveStats(dbCtx, userID, stats); err != nil {
		log.Printf("Error saving stats: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save stats"})
		return
	}

	now := time.Now()
	for _, badgeID := range newBadges {
		websocket.BroadcastGamificationEvent(models.GamificationEvent{
			Type:      "badge_unlocked",
			UserID:    userID.Hex(),
			BadgeID:   badgeID,
			Timestamp: now,
		})
	}

	c.JSON(http.StatusCreated, gin.H{
		"grade":     grade,
		"points":    points,
		"newBadges": newBadges,
		"leveledUp": leveledUp,
	})
}

// DeleteGrade removes a grade record. Points already awarded stay.
func DeleteGrade(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.DeleteGrade(dbCtx, userID, c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Grade not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Grade deleted"})
}

func averagePercent(grades []models.Grade) float64 {
	if len(grades) == 0 {
		return 0
	}
	var sum float64
	for _, g := range grades {
		sum += g.Percentage
	}
	return sum / float64(len(grades))
}
