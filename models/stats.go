package models

import "time"

// TaskCompletion is one entry of the bounded completion history kept for
// same-day badge rules (all-rounder, speed-demon).
type TaskCompletion struct {
	TaskID      string    `bson:"taskId" json:"taskId"`
	SubjectID   Subject   `bson:"subjectId" json:"subjectId"`
	CompletedAt time.Time `bson:"completedAt" json:"completedAt"`
}

// UserStats accumulates a user's gamification state. Everything is
// monotonic except ShowcasedBadges, which the user edits freely.
type UserStats struct {
	TotalPoints           int              `bson:"totalPoints" json:"totalPoints"`
	TotalStudyMinutes     int              `bson:"totalStudyMinutes" json:"totalStudyMinutes"`
	TotalTasksCompleted   int              `bson:"totalTasksCompleted" json:"totalTasksCompleted"`
	TotalPomodoroSessions int              `bson:"totalPomodoroSessions" json:"totalPomodoroSessions"`
	BadgesEarned          []string         `bson:"badgesEarned" json:"badgesEarned"`
	DailyTaskCompletions  map[string]int   `bson:"dailyTaskCompletions" json:"dailyTaskCompletions"`
	TaskCompletionTimes   []TaskCompletion `bson:"taskCompletionTimes" json:"taskCompletionTimes"`
	SubjectStudyMinutes   map[Subject]int  `bson:"subjectStudyMinutes" json:"subjectStudyMinutes"`
	Level                 int              `bson:"level" json:"level"`
	LastActiveDate        string           `bson:"lastActiveDate,omitempty" json:"lastActiveDate,omitempty"`
	ShowcasedBadges       []string         `bson:"showcasedBadges" json:"showcasedBadges"`
}

// NewUserStats returns the empty stats a fresh account starts with.
func NewUserStats() UserStats {
	return UserStats{
		BadgesEarned:         []string{},
		DailyTaskCompletions: map[string]int{},
		TaskCompletionTimes:  []TaskCompletion{},
		SubjectStudyMinutes:  map[Subject]int{},
		Level:                1,
		ShowcasedBadges:      []string{},
	}
}

// HasBadge reports whether id is already in BadgesEarned.
func (s *UserStats) HasBadge(id string) bool {
	for _, b := range s.BadgesEarned {
		if b == id {
			return true
		}
	}
	return false
}
