package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"studyhub/db"
	"studyhub/gamification"

	"github.com/gin-gonic/gin"
)

// GetStats returns the user's gamification stats plus level progress.
func GetStats(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	stats, err := db.LoadStats(dbCtx, userID)
	if err != nil {
		log.Printf("Error loading stats: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stats"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"stats":              stats,
		"pointsForNextLevel": gamification.PointsForNextLevel(stats.Level),
	})
}

// GetBadges returns the static catalog with the user's earned set.
func GetBadges(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	stats, err := db.LoadStats(dbCtx, userID)
	if err != nil {
		log.Printf("Error loading stats: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch badges"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"catalog":   gamification.Catalog,
		"earned":    stats.BadgesEarned,
		"showcased": stats.ShowcasedBadges,
	})
}

type showcaseRequest struct {
	BadgeIDs []string `json:"badgeIds" binding:"required,max=4"`
}

// UpdateShowcase sets the user's showcased badges (at most 4, each earned).
func UpdateShowcase(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req showcaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	stats, err := db.LoadStats(dbCtx, userID)
	if err != nil {
		log.Printf("Error loading stats: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stats"})
		return
	}

	for _, id := range req.BadgeIDs {
		if _, found := gamification.CatalogByID(id); !found {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown badge id: " + id})
			return
		}
		if !stats.HasBadge(id) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Badge not earned: " + id})
			return
		}
	}

	stats.ShowcasedBadges = req.BadgeIDs
	if err := db.SaveStats(dbCtx, userID, stats); err != nil {
		log.Printf("Error saving stats: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save showcase"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"showcased": stats.ShowcasedBadges})
}
