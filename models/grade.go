package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Grade records a score on an assessment.
type Grade struct {
	ID         string             `bson:"gradeId" json:"id"`
	UserID     primitive.ObjectID `bson:"userId" json:"-"`
	SubjectID  Subject            `bson:"subjectId" json:"subjectId"`
	Title      string             `bson:"title" json:"title"`
	Score      float64            `bson:"score" json:"score"`
	MaxScore   float64            `bson:"maxScore" json:"maxScore"`
	Percentage float64            `bson:"percentage" json:"percentage"`
	Date       time.Time          `bson:"date" json:"date"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}
