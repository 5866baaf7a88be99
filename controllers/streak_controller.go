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

// GetStreak returns the user's streak state.
func GetStreak(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	streak, err := db.LoadStreak(dbCtx, userID)
	if err != nil {
		log.Printf("Error loading streak: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch streak"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"streak": streak})
}

// CheckStreak runs the once-per-day streak maintenance. The client calls it
// on every app load; repeats on the same day are no-ops.
func CheckStreak(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	streak, err := db.LoadStreak(dbCtx, userID)
	if err != nil {
		log.Printf("Error loading streak: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch streak"})
		return
	}
	stats, err := db.LoadStats(dbCtx, userID)
	if err != nil {
		log.Printf("Error loading stats: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stats"})
		return
	}

	updated, newBadges := gamification.CheckDailyStreak(streak, &stats, time.Now())

	if err := db.SaveStreak(dbCtx, userID, updated); err != nil {
		log.Printf("Error saving streak: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save streak"})
		return
	}
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
	if updated.CurrentStreak != streak.CurrentStreak || updated.StreakFreezes != streak.StreakFreezes {
		websocket.BroadcastGamificationEvent(models.GamificationEvent{
			Type:      "streak_updated",
			UserID:    userID.Hex(),
			Streak:    updated.CurrentStreak,
			Timestamp: now,
		})
	}

	c.JSON(http.StatusOK, gin.H{"streak": updated, "newBadges": newBadges})
}
