package controllers

import (
	"net/http"
	"strconv"
	"time"

	"studyhub/semester"

	"github.com/gin-gonic/gin"
)

// GetCurrentWeek reports where today falls in the semester.
func GetCurrentWeek(c *gin.Context) {
	sem := semester.Current(time.Now())
	week := sem.CurrentWeek(time.Now())
	label, _ := sem.TermLabel(week)
	r, _ := sem.WeekDateRange(week)

	c.JSON(http.StatusOK, gin.H{
		"week":  week,
		"label": label,
		"range": r,
	})
}

// GetWeekRange returns the date span of a specific week.
func GetWeekRange(c *gin.Context) {
	week, err := strconv.Atoi(c.Param("week"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid week number"})
		return
	}

	sem := semester.Current(time.Now())
	r, err := sem.WeekDateRange(week)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	label, _ := sem.TermLabel(week)

	c.JSON(http.StatusOK, gin.H{"week": week, "label": label, "range": r})
}
