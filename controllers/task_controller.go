package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"studyhub/curriculum"
	"studyhub/db"
	"studyhub/gamification"
	"studyhub/models"
	"studyhub/websocket"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GetTasks returns the user's full semester task list.
func GetTasks(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tasks, err := db.GetTasks(dbCtx, userID)
	if err != nil {
		log.Printf("Error fetching tasks: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tasks"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tasks": tasks, "total": len(tasks)})
}

type toggleTaskRequest struct {
	WithQuestions bool `json:"withQuestions"`
}

// ToggleTask flips a task's completed flag. The incomplete→complete
// transition drives the whole gamification pipeline; completing the same
// task twice or un-completing it never touches streak or points.
func ToggleTask(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	taskID := c.Param("id")

	var req toggleTaskRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
			return
		}
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	task, err := db.GetTask(dbCtx, userID, taskID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}

	if task.Completed {
		// Un-complete: day-granular streak and points are never reversed.
		task.Completed = false
		task.CompletedAt = nil
		if err := db.SaveTaskCompletion(dbCtx, userID, task); err != nil {
			log.Printf("Error saving task: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update task"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"task": task})
		return
	}

	now := time.Now()
	task.Completed = true
	task.CompletedAt = &now
	if err := db.SaveTaskCompletion(dbCtx, userID, task); err != nil {
		log.Printf("Error saving task: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update task"})
		return
	}

	tasks, err := db.GetTasks(dbCtx, userID)
	if err != nil {
		log.Printf("Error fetching tasks for progress: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update task"})
		return
	}

	streak, err := db.LoadStreak(dbCtx, userID)
	if err != nil {
		log.Printf("Error loading streak: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update streak"})
		return
	}
	stats, err := db.LoadStats(dbCtx, userID)
	if err != nil {
		log.Printf("Error loading stats: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update stats"})
		return
	}

	result := gamification.RecordTaskCompletion(streak, stats, gamification.CompletionEvent{
		TaskID:        task.ID,
		SubjectID:     task.SubjectID,
		Timestamp:     now,
		Minutes:       task.EstimatedMinutes,
		WithQuestions: req.WithQuestions,
		Progress:      buildSubjectProgress(tasks),
	})

	if err := db.SaveStreak(dbCtx, userID, result.Streak); err != nil {
		log.Printf("Error saving streak: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save streak"})
		return
	}
	if err := db.SaveStats(dbCtx, userID, result.Stats); err != nil {
		log.Printf("Error saving stats: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save stats"})
		return
	}

	broadcastResult(userID, result)

	c.JSON(http.StatusOK, gin.H{
		"task":      task,
		"points":    result.Points,
		"newBadges": result.NewBadges,
		"leveledUp": result.LeveledUp,
		"streak":    result.Streak,
		"stats":     result.Stats,
	})
}

// ResetSemester wipes and regenerates the user's curriculum. Gamification
// state survives a reset; only tasks and exams are rebuilt.
func ResetSemester(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := db.DeleteTasks(dbCtx, userID); err != nil {
		log.Printf("Error deleting tasks: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset semester"})
		return
	}
	if err := db.DeleteExams(dbCtx, userID); err != nil {
		log.Printf("Error deleting exams: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset semester"})
		return
	}

	year := time.Now().Year()
	if err := db.InsertTasks(dbCtx, userID, curriculum.GenerateTasks(year)); err != nil {
		log.Printf("Error regenerating tasks: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset semester"})
		return
	}
	if err := db.InsertExams(dbCtx, userID, curriculum.GenerateExams(year)); err != nil {
		log.Printf("Error regenerating exams: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset semester"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Semester curriculum regenerated"})
}

// buildSubjectProgress folds the task list into per-subject completed/total
// counts for the badge evaluator.
func buildSubjectProgress(tasks []models.Task) gamification.SubjectProgress {
	progress := gamification.SubjectProgress{}
	for _, task := range tasks {
		p := progress[task.SubjectID]
		p.Total++
		if task.Completed {
			p.Completed++
		}
		progress[task.SubjectID] = p
	}
	return progress
}

// broadcastResult pushes a completion's unlocks over the websocket channel.
func broadcastResult(userID primitive.ObjectID, result gamification.Result) {
	now := time.Now()
	for _, badgeID := range result.NewBadges {
		websocket.BroadcastGamificationEvent(models.GamificationEvent{
			Type:      "badge_unlocked",
			UserID:    userID.Hex(),
			BadgeID:   badgeID,
			Timestamp: now,
		})
	}
	if result.LeveledUp {
		websocket.BroadcastGamificationEvent(models.GamificationEvent{
			Type:      "level_up",
			UserID:    userID.Hex(),
			Level:     result.Stats.Level,
			Timestamp: now,
		})
	}
	websocket.BroadcastGamificationEvent(models.GamificationEvent{
		Type:      "points_awarded",
		UserID:    userID.Hex(),
		Points:    result.Points,
		NewTotal:  result.Stats.TotalPoints,
		Streak:    result.Streak.CurrentStreak,
		Timestamp: now,
	})
}
