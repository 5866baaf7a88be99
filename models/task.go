package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Task is one curriculum task for a specific subject and semester week.
// Tasks are bulk-created at account setup and only ever mutated by toggling
// Completed; a full reset regenerates the whole set.
type Task struct {
	ID               string             `bson:"taskId" json:"id"`
	UserID           primitive.ObjectID `bson:"userId" json:"-"`
	SubjectID        Subject            `bson:"subjectId" json:"subjectId"`
	Week             int                `bson:"week" json:"week"`
	Term             int                `bson:"term" json:"term"`
	Title            string             `bson:"title" json:"title"`
	Description      string             `bson:"description" json:"description"`
	EstimatedMinutes int                `bson:"estimatedMinutes" json:"estimatedMinutes"`
	Completed        bool               `bson:"completed" json:"completed"`
	DueDate          time.Time          `bson:"dueDate" json:"dueDate"`
	CompletedAt      *time.Time         `bson:"completedAt,omitempty" json:"completedAt,omitempty"`
}
