package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"studyhub/config"
	"studyhub/curriculum"
	"studyhub/db"
	"studyhub/models"
	"studyhub/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var cfg *config.Config

// Init stores the loaded configuration for the handlers.
func Init(c *config.Config) {
	cfg = c
}

// currentUserID pulls the authenticated user's id set by the auth middleware.
func currentUserID(c *gin.Context) (primitive.ObjectID, bool) {
	v, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return primitive.NilObjectID, false
	}
	return v.(primitive.ObjectID), true
}

type signUpRequest struct {
	Email       string `json:"email" binding:"required,email"`
	DisplayName string `json:"displayName" binding:"required"`
	Password    string `json:"password" binding:"required,min=8"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SignUp creates the student account and bulk-generates its semester
// curriculum, streak and stats in one go.
func SignUp(c *gin.Context) {
	var req signUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := db.GetUserByEmail(dbCtx, req.Email); err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Account already exists"})
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
		return
	}

	year := time.Now().Year()
	user := models.User{
		Email:        req.Email,
		DisplayName:  req.DisplayName,
		PasswordHash: hash,
		SemesterYear: year,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := db.CreateUser(dbCtx, &user); err != nil {
		log.Printf("Error creating user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
		return
	}

	if err := db.InsertTasks(dbCtx, user.ID, curriculum.GenerateTasks(year)); err != nil {
		log.Printf("Error generating tasks: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate curriculum"})
		return
	}
	if err := db.InsertExams(dbCtx, user.ID, curriculum.GenerateExams(year)); err != nil {
		log.Printf("Error generating exams: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate curriculum"})
		return
	}
	if err := db.SaveStreak(dbCtx, user.ID, models.NewStreak()); err != nil {
		log.Printf("Error initializing streak: %v", err)
	}
	if err := db.SaveStats(dbCtx, user.ID, models.NewUserStats()); err != nil {
		log.Printf("Error initializing stats: %v", err)
	}

	token, err := utils.GenerateToken(cfg, user.Email)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Account created but login failed"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Account created",
		"token":   token,
		"user":    user,
	})
}

// Login checks credentials and issues a JWT.
func Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	user, err := db.GetUserByEmail(dbCtx, req.Email)
	if err != nil || !utils.CheckPassword(user.PasswordHash, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	token, err := utils.GenerateToken(cfg, user.Email)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log in"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}
