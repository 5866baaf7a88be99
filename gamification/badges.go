package gamification

import (
	"time"

	"studyhub/models"
)

// Badge ids.
const (
	BadgeGettingStarted = "getting-started"
	BadgeTaskCrusher    = "task-crusher"
	BadgeCenturion      = "centurion"
	BadgeWeekWarrior    = "week-warrior"
	BadgeTwoWeeksStrong = "two-weeks-strong"
	BadgeMonthMaster    = "month-master"
	BadgeCenturyClub    = "century-club"
	BadgeEarlyBird      = "early-bird"
	BadgeNightOwl       = "night-owl"
	BadgeSpeedDemon     = "speed-demon"
	BadgeAllRounder     = "all-rounder"
	BadgeTimeLord       = "time-lord"
	BadgeOverachiever   = "overachiever"
	BadgePerfectScore   = "perfect-score"
	BadgeHonorRoll      = "honor-roll"
)

// SubjectMasterBadgeID returns the id of the completion badge for a subject.
func SubjectMasterBadgeID(subject models.Subject) string {
	return "subject-master-" + string(subject)
}

// Catalog is the static 19-entry badge catalog. Read-only reference data;
// per-user state is just the earned ids in UserStats.BadgesEarned.
var Catalog = []models.Badge{
	{ID: BadgeGettingStarted, Name: "Getting Started", Description: "Complete your first task", Icon: "🌱", Requirement: "Complete 1 task", Category: "tasks"},
	{ID: BadgeTaskCrusher, Name: "Task Crusher", Description: "Complete 50 tasks", Icon: "💪", Requirement: "Complete 50 tasks", Category: "tasks"},
	{ID: BadgeCenturion, Name: "Centurion", Description: "Complete 100 tasks", Icon: "💯", Requirement: "Complete 100 tasks", Category: "tasks"},
	{ID: BadgeWeekWarrior, Name: "Week Warrior", Description: "Keep a 7-day study streak", Icon: "🔥", Requirement: "7-day streak", Category: "streak"},
	{ID: BadgeTwoWeeksStrong, Name: "Two Weeks Strong", Description: "Keep a 14-day study streak", Icon: "⚡", Requirement: "14-day streak", Category: "streak"},
	{ID: BadgeMonthMaster, Name: "Month Master", Description: "Keep a 30-day study streak", Icon: "🏆", Requirement: "30-day streak", Category: "streak"},
	{ID: BadgeCenturyClub, Name: "Century Club", Description: "Keep a 100-day study streak", Icon: "👑", Requirement: "100-day streak", Category: "streak"},
	{ID: BadgeEarlyBird, Name: "Early Bird", Description: "Complete a task before 8am", Icon: "🌅", Requirement: "Finish a task before 08:00", Category: "time"},
	{ID: BadgeNightOwl, Name: "Night Owl", Description: "Complete a task after 10pm", Icon: "🦉", Requirement: "Finish a task after 22:00", Category: "time"},
	{ID: BadgeSpeedDemon, Name: "Speed Demon", Description: "Complete 10 tasks in a single day", Icon: "🚀", Requirement: "10 tasks in one day", Category: "tasks"},
	{ID: SubjectMasterBadgeID(models.SubjectMaths), Name: "Maths Master", Description: "Complete every maths task", Icon: "📐", Requirement: "All maths tasks done", Category: "subject"},
	{ID: SubjectMasterBadgeID(models.SubjectPhysics), Name: "Physics Master", Description: "Complete every physics task", Icon: "🔭", Requirement: "All physics tasks done", Category: "subject"},
	{ID: SubjectMasterBadgeID(models.SubjectChemistry), Name: "Chemistry Master", Description: "Complete every chemistry task", Icon: "🧪", Requirement: "All chemistry tasks done", Category: "subject"},
	{ID: SubjectMasterBadgeID(models.SubjectEnglish), Name: "English Master", Description: "Complete every English task", Icon: "📚", Requirement: "All English tasks done", Category: "subject"},
	{ID: BadgeAllRounder, Name: "All-Rounder", Description: "Complete a task in every subject on the same day", Icon: "🎯", Requirement: "All 4 subjects in one day", Category: "subject"},
	{ID: BadgeTimeLord, Name: "Time Lord", Description: "Accumulate 25 hours of study time", Icon: "⏳", Requirement: "1500 study minutes", Category: "time"},
	{ID: BadgeOverachiever, Name: "Overachiever", Description: "Complete every task of the semester", Icon: "🌟", Requirement: "All 68 semester tasks done", Category: "tasks"},
	{ID: BadgePerfectScore, Name: "Perfect Score", Description: "Score 100% on an assessment", Icon: "🎓", Requirement: "100% on any assessment", Category: "grades"},
	{ID: BadgeHonorRoll, Name: "Honor Roll", Description: "Hold an overall average of 90% or higher", Icon: "🏅", Requirement: "90% overall average", Category: "grades"},
}

// CatalogByID returns the catalog entry for a badge id.
func CatalogByID(id string) (models.Badge, bool) {
	for _, b := range Catalog {
		if b.ID == id {
			return b, true
		}
	}
	return models.Badge{}, false
}

// Event kinds feeding the badge evaluator.
const (
	EventTaskCompleted     = "task_completed"
	EventDailyCheck        = "daily_check"
	EventGradeRecorded     = "grade_recorded"
	EventPomodoroCompleted = "pomodoro_completed"
)

// Progress is the completed/total task count for one subject.
type Progress struct {
	Completed int
	Total     int
}

// SubjectProgress maps each subject to its task completion progress.
type SubjectProgress map[models.Subject]Progress

// Event is the triggering context for one badge evaluation.
type Event struct {
	Kind      string
	Timestamp time.Time
	SubjectID models.Subject

	// Progress reflects per-subject task completion after the event; only
	// task events carry it.
	Progress SubjectProgress

	// Grade context; only grade events carry it.
	GradePercent   float64
	AveragePercent float64
}

// streakMilestones and taskMilestones map thresholds to badge ids.
var streakMilestones = []struct {
	days  int
	badge string
}{
	{7, BadgeWeekWarrior},
	{14, BadgeTwoWeeksStrong},
	{30, BadgeMonthMaster},
	{100, BadgeCenturyClub},
}

var taskMilestones = []struct {
	count int
	badge string
}{
	{1, BadgeGettingStarted},
	{50, BadgeTaskCrusher},
	{100, BadgeCenturion},
}

const (
	speedDemonDailyTasks = 10
	timeLordMinutes      = 1500
	earlyBirdHourBefore  = 8
	nightOwlHourFrom     = 22
	honorRollPercent     = 90
)

// EvaluateBadges runs every badge rule against the current state and the
// triggering event. Each rule is re-checked independently; ids already in
// stats.BadgesEarned are never returned again. Newly unlocked ids are
// appended to stats.BadgesEarned so repeated evaluation stays idempotent.
func EvaluateBadges(stats *models.UserStats, streak models.Streak, event Event) []string {
	var unlocked []string
	award := func(id string) {
		if stats.HasBadge(id) {
			return
		}
		stats.BadgesEarned = append(stats.BadgesEarned, id)
		unlocked = append(unlocked, id)
	}

	for _, m := range streakMilestones {
		if streak.CurrentStreak >= m.days {
			award(m.badge)
		}
	}
	for _, m := range taskMilestones {
		if stats.TotalTasksCompleted >= m.count {
			award(m.badge)
		}
	}
	if stats.TotalStudyMinutes >= timeLordMinutes {
		award(BadgeTimeLord)
	}

	if event.Kind == EventTaskCompleted {
		hour := event.Timestamp.Hour()
		if hour < earlyBirdHourBefore {
			award(BadgeEarlyBird)
		}
		if hour >= nightOwlHourFrom {
			award(BadgeNightOwl)
		}
		if stats.DailyTaskCompletions[DateKey(event.Timestamp)] >= speedDemonDailyTasks {
			award(BadgeSpeedDemon)
		}
		if completedAllSubjectsOn(stats, event.Timestamp) {
			award(BadgeAllRounder)
		}
	}

	if len(event.Progress) > 0 {
		allDone := true
		for _, subject := range models.AllSubjects {
			p, ok := event.Progress[subject]
			if !ok || p.Total == 0 || p.Completed < p.Total {
				allDone = false
				continue
			}
			award(SubjectMasterBadgeID(subject))
		}
		if allDone {
			award(BadgeOverachiever)
		}
	}

	if event.Kind == EventGradeRecorded {
		if event.GradePercent >= 100 {
			award(BadgePerfectScore)
		}
		if event.AveragePercent >= honorRollPercent {
			award(BadgeHonorRoll)
		}
	}

	return unlocked
}

// completedAllSubjectsOn reports whether the bounded completion history holds
// at least one completion per subject on the given calendar day.
func completedAllSubjectsOn(stats *models.UserStats, day time.Time) bool {
	key := DateKey(day)
	seen := make(map[models.Subject]bool)
	for _, tc := range stats.TaskCompletionTimes {
		if DateKey(tc.CompletedAt) == key {
			seen[tc.SubjectID] = true
		}
	}
	for _, subject := range models.AllSubjects {
		if !seen[subject] {
			return false
		}
	}
	return true
}
