package gamification

import (
	"testing"
	"time"

	"studyhub/models"
)

func completionAt(ts time.Time) CompletionEvent {
	return CompletionEvent{
		TaskID:    "maths-w03",
		SubjectID: models.SubjectMaths,
		Timestamp: ts,
		Minutes:   50,
	}
}

func TestRecordTaskCompletionContinuesStreak(t *testing.T) {
	streak := models.Streak{CurrentStreak: 3, LongestStreak: 5, LastStudyDate: dayKey(-1)}
	stats := models.NewUserStats()

	res := RecordTaskCompletion(streak, stats, completionAt(testDay))

	if res.Streak.CurrentStreak != 4 {
		t.Errorf("streak = %d, want 4", res.Streak.CurrentStreak)
	}
	if res.Streak.LongestStreak != 5 {
		t.Errorf("longest = %d, want 5", res.Streak.LongestStreak)
	}
	if res.Points != PointsTaskCompleted+PointsStreakDay {
		t.Errorf("points = %d, want %d", res.Points, PointsTaskCompleted+PointsStreakDay)
	}
	if res.Stats.TotalTasksCompleted != 1 {
		t.Errorf("tasks completed = %d, want 1", res.Stats.TotalTasksCompleted)
	}
	if res.Stats.TotalStudyMinutes != 50 || res.Stats.SubjectStudyMinutes[models.SubjectMaths] != 50 {
		t.Errorf("study minutes not accumulated: %+v", res.Stats)
	}
	if !contains(res.NewBadges, BadgeGettingStarted) {
		t.Errorf("first completion missing getting-started: %v", res.NewBadges)
	}
}

func TestRecordTaskCompletionSameDayNoDoubleStreak(t *testing.T) {
	streak := models.Streak{CurrentStreak: 3, LongestStreak: 5, LastStudyDate: dayKey(-1)}
	stats := models.NewUserStats()

	first := RecordTaskCompletion(streak, stats, completionAt(testDay))
	second := RecordTaskCompletion(first.Streak, first.Stats, CompletionEvent{
		TaskID:    "maths-w04",
		SubjectID: models.SubjectMaths,
		Timestamp: testDay.Add(2 * time.Hour),
		Minutes:   45,
	})

	if second.Streak.CurrentStreak != 4 {
		t.Errorf("second completion changed streak to %d, want 4", second.Streak.CurrentStreak)
	}
	if second.Points != PointsTaskCompleted {
		t.Errorf("second completion awarded %d, want %d (no streak bonus)", second.Points, PointsTaskCompleted)
	}
	if second.Stats.TotalTasksCompleted != 2 {
		t.Errorf("tasks completed = %d, want 2", second.Stats.TotalTasksCompleted)
	}
	if second.Stats.DailyTaskCompletions[DateKey(testDay)] != 2 {
		t.Errorf("daily completions = %d, want 2", second.Stats.DailyTaskCompletions[DateKey(testDay)])
	}
}

func TestRecordTaskCompletionWithQuestions(t *testing.T) {
	streak := models.Streak{CurrentStreak: 1, LongestStreak: 1, LastStudyDate: dayKey(0)}
	stats := models.NewUserStats()

	ev := completionAt(testDay)
	ev.WithQuestions = true
	res := RecordTaskCompletion(streak, stats, ev)

	if res.Points != PointsTaskWithQuestions {
		t.Errorf("points = %d, want %d", res.Points, PointsTaskWithQuestions)
	}
}

func TestRecordTaskCompletionLevelUp(t *testing.T) {
	streak := models.Streak{LastStudyDate: dayKey(0)}
	stats := models.NewUserStats()
	stats.TotalPoints = 95
	stats.Level = 1

	res := RecordTaskCompletion(streak, stats, completionAt(testDay))
	if !res.LeveledUp {
		t.Error("crossing 100 points did not report leveledUp")
	}
	if res.Stats.Level != 2 {
		t.Errorf("level = %d, want 2", res.Stats.Level)
	}
}

func TestRecordTaskCompletionPrunesOldHistory(t *testing.T) {
	streak := models.Streak{LastStudyDate: dayKey(0)}
	stats := models.NewUserStats()
	old := testDay.AddDate(0, 0, -historyWindowDays-5)
	stats.TaskCompletionTimes = append(stats.TaskCompletionTimes, models.TaskCompletion{
		TaskID:      "maths-w01",
		SubjectID:   models.SubjectMaths,
		CompletedAt: old,
	})
	stats.DailyTaskCompletions[DateKey(old)] = 1

	res := RecordTaskCompletion(streak, stats, completionAt(testDay))

	for _, tc := range res.Stats.TaskCompletionTimes {
		if tc.CompletedAt.Before(testDay.AddDate(0, 0, -historyWindowDays)) {
			t.Errorf("stale completion %s survived pruning", tc.CompletedAt)
		}
	}
	if _, ok := res.Stats.DailyTaskCompletions[DateKey(old)]; ok {
		t.Error("stale daily counter survived pruning")
	}
}

func TestRecordPomodoroSession(t *testing.T) {
	stats := models.NewUserStats()
	got, _, _ := RecordPomodoroSession(stats, models.SubjectPhysics, 25, testDay)

	if got.TotalPomodoroSessions != 1 {
		t.Errorf("sessions = %d, want 1", got.TotalPomodoroSessions)
	}
	if got.TotalPoints != PointsPomodoroSession {
		t.Errorf("points = %d, want %d", got.TotalPoints, PointsPomodoroSession)
	}
	if got.SubjectStudyMinutes[models.SubjectPhysics] != 25 {
		t.Errorf("physics minutes = %d, want 25", got.SubjectStudyMinutes[models.SubjectPhysics])
	}
}

func TestRecordGrade(t *testing.T) {
	stats := models.NewUserStats()
	got, badges, _ := RecordGrade(stats, GradePoints(100), 100, 95, testDay)

	if got.TotalPoints != PointsGradeMax {
		t.Errorf("points = %d, want %d", got.TotalPoints, PointsGradeMax)
	}
	if !contains(badges, BadgePerfectScore) || !contains(badges, BadgeHonorRoll) {
		t.Errorf("badges = %v, want perfect-score and honor-roll", badges)
	}
}
