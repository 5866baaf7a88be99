package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Note is a free-form study note, optionally tied to a subject.
type Note struct {
	ID        string             `bson:"noteId" json:"id"`
	UserID    primitive.ObjectID `bson:"userId" json:"-"`
	SubjectID Subject            `bson:"subjectId,omitempty" json:"subjectId,omitempty"`
	Title     string             `bson:"title" json:"title"`
	Content   string             `bson:"content" json:"content"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
