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
)

type pomodoroRequest struct {
	SubjectID models.Subject `json:"subjectId"`
	Minutes   int            `json:"minutes" binding:"required,min=1,max=180"`
}

// CompletePomodoro credits one finished pomodoro session. The client only
// reports sessions whose timer actually elapsed; paused or reset timers
// never reach this endpoint.
func CompletePomodoro(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req pomodoroRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	if req.SubjectID != "" && !models.ValidSubject(req.SubjectID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown subject id"})
		return
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	stats, err := db.LoadStats(dbCtx, userID)
	if err != nil {
		log.Printf("Error loading stats: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load stats"})
		return
	}

	stats, newBadges, leveledUp := gamification.RecordPomodoroSession(stats, req.SubjectID, req.Minutes, time.Now())

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

	c.JSON(http.StatusOK, gin.H{
		"points":    gamification.PointsPomodoroSession,
		"stats":     stats,
		"newBadges": newBadges,
		"leveledUp": leveledUp,
	})
}
