package utils

import (
	"context"
	"log"
	"time"

	"studyhub/curriculum"
	"studyhub/db"
	"studyhub/models"

	"go.mongodb.org/mongo-driver/bson"
)

// SeedDemoStudent creates a demo account with a full semester curriculum the
// first time the server starts against an empty database.
func SeedDemoStudent() {
	dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Skip if any account already exists
	count, err := db.GetCollection(db.UsersCollection).CountDocuments(dbCtx, bson.M{})
	if err != nil || count > 0 {
		return
	}

	hash, err := HashPassword("demo1234")
	if err != nil {
		log.Printf("Failed to hash demo password: %v", err)
		return
	}

	year := time.Now().Year()
	user := models.User{
		Email:        "demo@studyhub.local",
		DisplayName:  "Demo Student",
		PasswordHash: hash,
		SemesterYear: year,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := db.CreateUser(dbCtx, &user); err != nil {
		log.Printf("Failed to seed demo user: %v", err)
		return
	}

	if err := db.InsertTasks(dbCtx, user.ID, curriculum.GenerateTasks(year)); err != nil {
		log.Printf("Failed to seed demo tasks: %v", err)
	}
	if err := db.InsertExams(dbCtx, user.ID, curriculum.GenerateExams(year)); err != nil {
		log.Printf("Failed to seed demo exams: %v", err)
	}
	if err := db.SaveStreak(dbCtx, user.ID, models.NewStreak()); err != nil {
		log.Printf("Failed to seed demo streak: %v", err)
	}
	if err := db.SaveStats(dbCtx, user.ID, models.NewUserStats()); err != nil {
		log.Printf("Failed to seed demo stats: %v", err)
	}

	log.Println("Seeded demo student account")
}
