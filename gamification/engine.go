// Package gamification holds the study-planner's streak, points and badge
// engine. All entry points are pure read-modify-return functions over the
// state structs; persistence stays with the caller.
package gamification

import (
	"time"

	"studyhub/models"
)

// historyWindowDays bounds the completion history kept in UserStats; 35 days
// comfortably covers every same-day and rolling badge rule.
const historyWindowDays = 35

// CompletionEvent describes one incomplete→complete task transition.
type CompletionEvent struct {
	TaskID        string
	SubjectID     models.Subject
	Timestamp     time.Time
	Minutes       int
	WithQuestions bool

	// Progress is the per-subject completed/total task count including this
	// completion, supplied by the caller from the task store.
	Progress SubjectProgress
}

// Result carries everything a task completion changed.
type Result struct {
	Streak    models.Streak
	Stats     models.UserStats
	NewBadges []string
	LeveledUp bool
	Points    int
}

// RecordTaskCompletion drives the full completion pipeline: streak update,
// point award, stats accumulation and badge evaluation. Completing a second
// task on the same day never double-increments the streak, and uncompleting
// a task is deliberately not an event at all.
func RecordTaskCompletion(streak models.Streak, stats models.UserStats, event CompletionEvent) Result {
	streak, newStudyDay := advanceStreakForStudy(streak, event.Timestamp)

	points := PointsTaskCompleted
	if event.WithQuestions {
		points = PointsTaskWithQuestions
	}
	if newStudyDay {
		points += PointsStreakDay
	}

	dayKey := DateKey(event.Timestamp)
	stats.TotalTasksCompleted++
	stats.TotalStudyMinutes += event.Minutes
	if stats.SubjectStudyMinutes == nil {
		stats.SubjectStudyMinutes = map[models.Subject]int{}
	}
	stats.SubjectStudyMinutes[event.SubjectID] += event.Minutes
	if stats.DailyTaskCompletions == nil {
		stats.DailyTaskCompletions = map[string]int{}
	}
	stats.DailyTaskCompletions[dayKey]++
	stats.TaskCompletionTimes = append(stats.TaskCompletionTimes, models.TaskCompletion{
		TaskID:      event.TaskID,
		SubjectID:   event.SubjectID,
		CompletedAt: event.Timestamp,
	})
	stats.LastActiveDate = dayKey
	pruneHistory(&stats, event.Timestamp)

	stats, leveledUp := AddPoints(stats, points)

	newBadges := EvaluateBadges(&stats, streak, Event{
		Kind:      EventTaskCompleted,
		Timestamp: event.Timestamp,
		SubjectID: event.SubjectID,
		Progress:  event.Progress,
	})

	return Result{
		Streak:    streak,
		Stats:     stats,
		NewBadges: newBadges,
		LeveledUp: leveledUp,
		Points:    points,
	}
}

// RecordPomodoroSession credits a completed pomodoro session. Partial or
// cancelled sessions never reach this point.
func RecordPomodoroSession(stats models.UserStats, subject models.Subject, minutes int, now time.Time) (models.UserStats, []string, bool) {
	stats.TotalPomodoroSessions++
	stats.TotalStudyMinutes += minutes
	if subject != "" {
		if stats.SubjectStudyMinutes == nil {
			stats.SubjectStudyMinutes = map[models.Subject]int{}
		}
		stats.SubjectStudyMinutes[subject] += minutes
	}
	stats.LastActiveDate = DateKey(now)

	stats, leveledUp := AddPoints(stats, PointsPomodoroSession)
	newBadges := EvaluateBadges(&stats, models.Streak{}, Event{Kind: EventPomodoroCompleted, Timestamp: now})
	return stats, newBadges, leveledUp
}

// RecordGrade awards the caller-supplied grade points and evaluates the
// grade badges against the assessment percentage and overall average.
func RecordGrade(stats models.UserStats, points int, percent, average float64, now time.Time) (models.UserStats, []string, bool) {
	stats, leveledUp := AddPoints(stats, points)
	newBadges := EvaluateBadges(&stats, models.Streak{}, Event{
		Kind:           EventGradeRecorded,
		Timestamp:      now,
		GradePercent:   percent,
		AveragePercent: average,
	})
	return stats, newBadges, leveledUp
}

// GradePoints maps an assessment percentage onto the 50..100 point award.
func GradePoints(percent float64) int {
	points := PointsGradeMin + int(percent/2)
	if points > PointsGradeMax {
		points = PointsGradeMax
	}
	if points < PointsGradeMin {
		points = PointsGradeMin
	}
	return points
}

// pruneHistory drops completion history and daily counters older than the
// rolling window so per-user state stays bounded.
func pruneHistory(stats *models.UserStats, now time.Time) {
	cutoff := now.AddDate(0, 0, -historyWindowDays)

	kept := stats.TaskCompletionTimes[:0]
	for _, tc := range stats.TaskCompletionTimes {
		if !tc.CompletedAt.Before(cutoff) {
			kept = append(kept, tc)
		}
	}
	stats.TaskCompletionTimes = kept

	cutoffKey := DateKey(cutoff)
	for day := range stats.DailyTaskCompletions {
		if day < cutoffKey {
			delete(stats.DailyTaskCompletions, day)
		}
	}
}
