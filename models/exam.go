package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Exam is a fixed assessment emitted at semester setup. Immutable thereafter.
type Exam struct {
	ID          string             `bson:"examId" json:"id"`
	UserID      primitive.ObjectID `bson:"userId" json:"-"`
	SubjectID   Subject            `bson:"subjectId" json:"subjectId"`
	Title       string             `bson:"title" json:"title"`
	Date        time.Time          `bson:"date" json:"date"`
	Week        int                `bson:"week" json:"week"`
	Term        int                `bson:"term,omitempty" json:"term,omitempty"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
}
