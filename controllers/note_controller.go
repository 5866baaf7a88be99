package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"studyhub/db"
	"studyhub/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type noteRequest struct {
	SubjectID models.Subject `json:"subjectId"`
	Title     string         `json:"title" binding:"required"`
	Content   string         `json:"content" binding:"required"`
}

// GetNotes returns the user's notes, newest first.
func GetNotes(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	notes, err := db.GetNotes(dbCtx, userID)
	if err != nil {
		log.Printf("Error fetching notes: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch notes"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"notes": notes, "total": len(notes)})
}

// CreateNote stores a new study note.
func CreateNote(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req noteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	if req.SubjectID != "" && !models.ValidSubject(req.SubjectID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown subject id"})
		return
	}

	note := models.Note{
		ID:        uuid.NewString(),
		UserID:    userID,
		SubjectID: req.SubjectID,
		Title:     req.Title,
		Content:   req.Content,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.InsertNote(dbCtx, note); err != nil {
		log.Printf("Error inserting note: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save note"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"note": note})
}

// UpdateNote edits an existing note.
func UpdateNote(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req noteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	if req.SubjectID != "" && !models.ValidSubject(req.SubjectID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown subject id"})
		return
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	note, err := db.GetNote(dbCtx, userID, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Note not found"})
		return
	}

	note.SubjectID = req.SubjectID
	note.Title = req.Title
	note.Content = req.Content
	note.UpdatedAt = time.Now()

	if err := db.UpdateNote(dbCtx, userID, *note); err != nil {
		log.Printf("Error updating note: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save note"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"note": note})
}

// DeleteNote removes a note.
func DeleteNote(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.DeleteNote(dbCtx, userID, c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Note not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Note deleted"})
}
