package gamification

import (
	"testing"
	"time"

	"studyhub/models"
)

func fullProgress(subjects ...models.Subject) SubjectProgress {
	progress := SubjectProgress{}
	for _, s := range models.AllSubjects {
		progress[s] = Progress{Completed: 3, Total: 17}
	}
	for _, s := range subjects {
		progress[s] = Progress{Completed: 17, Total: 17}
	}
	return progress
}

func TestCatalogHasNineteenUniqueBadges(t *testing.T) {
	if len(Catalog) != 19 {
		t.Fatalf("catalog has %d badges, want 19", len(Catalog))
	}
	seen := make(map[string]bool)
	for _, b := range Catalog {
		if seen[b.ID] {
			t.Errorf("duplicate badge id %q", b.ID)
		}
		seen[b.ID] = true
		if b.Name == "" || b.Description == "" || b.Requirement == "" || b.Category == "" {
			t.Errorf("badge %q has empty fields", b.ID)
		}
	}
}

func TestEvaluateBadgesStreakMilestones(t *testing.T) {
	cases := []struct {
		streak int
		want   []string
	}{
		{6, nil},
		{7, []string{BadgeWeekWarrior}},
		{14, []string{BadgeWeekWarrior, BadgeTwoWeeksStrong}},
		{100, []string{BadgeWeekWarrior, BadgeTwoWeeksStrong, BadgeMonthMaster, BadgeCenturyClub}},
	}
	for _, c := range cases {
		stats := models.NewUserStats()
		got := EvaluateBadges(&stats, models.Streak{CurrentStreak: c.streak}, Event{Kind: EventDailyCheck, Timestamp: testDay})
		if len(got) != len(c.want) {
			t.Errorf("streak %d unlocked %v, want %v", c.streak, got, c.want)
			continue
		}
		for i := range got {
			if got[i] != c.want[i] {
				t.Errorf("streak %d unlocked %v, want %v", c.streak, got, c.want)
				break
			}
		}
	}
}

func TestEvaluateBadgesIsIdempotent(t *testing.T) {
	stats := models.NewUserStats()
	stats.TotalTasksCompleted = 60
	stats.TotalStudyMinutes = 2000
	streak := models.Streak{CurrentStreak: 20}

	first := EvaluateBadges(&stats, streak, Event{Kind: EventDailyCheck, Timestamp: testDay})
	if len(first) == 0 {
		t.Fatal("expected unlocks on first evaluation")
	}
	second := EvaluateBadges(&stats, streak, Event{Kind: EventDailyCheck, Timestamp: testDay})
	if len(second) != 0 {
		t.Errorf("identical state unlocked again: %v", second)
	}
}

func TestEvaluateBadgesTimeOfDay(t *testing.T) {
	early := time.Date(2026, 3, 18, 7, 59, 0, 0, time.UTC)
	late := time.Date(2026, 3, 18, 22, 0, 0, 0, time.UTC)
	midday := time.Date(2026, 3, 18, 12, 0, 0, 0, time.UTC)

	stats := models.NewUserStats()
	got := EvaluateBadges(&stats, models.Streak{}, Event{Kind: EventTaskCompleted, Timestamp: early})
	if !contains(got, BadgeEarlyBird) {
		t.Errorf("7:59 completion missing early-bird: %v", got)
	}

	stats = models.NewUserStats()
	got = EvaluateBadges(&stats, models.Streak{}, Event{Kind: EventTaskCompleted, Timestamp: late})
	if !contains(got, BadgeNightOwl) {
		t.Errorf("22:00 completion missing night-owl: %v", got)
	}

	stats = models.NewUserStats()
	got = EvaluateBadges(&stats, models.Streak{}, Event{Kind: EventTaskCompleted, Timestamp: midday})
	if contains(got, BadgeEarlyBird) || contains(got, BadgeNightOwl) {
		t.Errorf("midday completion unlocked time-of-day badges: %v", got)
	}

	// Daily checks never fire time-of-day badges.
	stats = models.NewUserStats()
	got = EvaluateBadges(&stats, models.Streak{}, Event{Kind: EventDailyCheck, Timestamp: early})
	if contains(got, BadgeEarlyBird) {
		t.Errorf("daily check unlocked early-bird: %v", got)
	}
}

func TestEvaluateBadgesSpeedDemon(t *testing.T) {
	stats := models.NewUserStats()
	stats.DailyTaskCompletions[DateKey(testDay)] = 10

	got := EvaluateBadges(&stats, models.Streak{}, Event{Kind: EventTaskCompleted, Timestamp: testDay})
	if !contains(got, BadgeSpeedDemon) {
		t.Errorf("10 same-day completions missing speed-demon: %v", got)
	}
}

func TestEvaluateBadgesSubjectMaster(t *testing.T) {
	stats := models.NewUserStats()
	got := EvaluateBadges(&stats, models.Streak{}, Event{
		Kind:      EventTaskCompleted,
		Timestamp: testDay,
		SubjectID: models.SubjectMaths,
		Progress:  fullProgress(models.SubjectMaths),
	})

	if !contains(got, SubjectMasterBadgeID(models.SubjectMaths)) {
		t.Errorf("completed subject missing subject-master badge: %v", got)
	}
	if contains(got, SubjectMasterBadgeID(models.SubjectPhysics)) {
		t.Errorf("incomplete subject unlocked its master badge: %v", got)
	}
	if contains(got, BadgeOverachiever) {
		t.Errorf("overachiever unlocked with incomplete subjects: %v", got)
	}

	// Evaluating the same completed subject again must not re-award.
	again := EvaluateBadges(&stats, models.Streak{}, Event{
		Kind:      EventTaskCompleted,
		Timestamp: testDay,
		SubjectID: models.SubjectMaths,
		Progress:  fullProgress(models.SubjectMaths),
	})
	if contains(again, SubjectMasterBadgeID(models.SubjectMaths)) {
		t.Errorf("subject-master awarded twice: %v", again)
	}
}

func TestEvaluateBadgesOverachiever(t *testing.T) {
	stats := models.NewUserStats()
	got := EvaluateBadges(&stats, models.Streak{}, Event{
		Kind:      EventTaskCompleted,
		Timestamp: testDay,
		Progress:  fullProgress(models.AllSubjects...),
	})
	if !contains(got, BadgeOverachiever) {
		t.Errorf("all subjects complete but overachiever missing: %v", got)
	}
}

func TestEvaluateBadgesAllRounder(t *testing.T) {
	stats := models.NewUserStats()
	for _, subject := range models.AllSubjects {
		stats.TaskCompletionTimes = append(stats.TaskCompletionTimes, models.TaskCompletion{
			TaskID:      string(subject) + "-w01",
			SubjectID:   subject,
			CompletedAt: testDay,
		})
	}

	got := EvaluateBadges(&stats, models.Streak{}, Event{Kind: EventTaskCompleted, Timestamp: testDay})
	if !contains(got, BadgeAllRounder) {
		t.Errorf("all four subjects on one day but all-rounder missing: %v", got)
	}

	// Three subjects only: no unlock.
	stats = models.NewUserStats()
	for _, subject := range models.AllSubjects[:3] {
		stats.TaskCompletionTimes = append(stats.TaskCompletionTimes, models.TaskCompletion{
			SubjectID:   subject,
			CompletedAt: testDay,
		})
	}
	got = EvaluateBadges(&stats, models.Streak{}, Event{Kind: EventTaskCompleted, Timestamp: testDay})
	if contains(got, BadgeAllRounder) {
		t.Errorf("three subjects unlocked all-rounder: %v", got)
	}
}

func TestEvaluateBadgesGrades(t *testing.T) {
	stats := models.NewUserStats()
	got := EvaluateBadges(&stats, models.Streak{}, Event{
		Kind:         EventGradeRecorded,
		Timestamp:    testDay,
		GradePercent: 100,
	})
	if !contains(got, BadgePerfectScore) {
		t.Errorf("100%% grade missing perfect-score: %v", got)
	}
	if contains(got, BadgeHonorRoll) {
		t.Errorf("honor-roll unlocked with zero average: %v", got)
	}

	stats = models.NewUserStats()
	got = EvaluateBadges(&stats, models.Streak{}, Event{
		Kind:           EventGradeRecorded,
		Timestamp:      testDay,
		GradePercent:   92,
		AveragePercent: 91,
	})
	if !contains(got, BadgeHonorRoll) {
		t.Errorf("91%% average missing honor-roll: %v", got)
	}
	if contains(got, BadgePerfectScore) {
		t.Errorf("92%% grade unlocked perfect-score: %v", got)
	}
}

func TestEvaluateBadgesTimeLord(t *testing.T) {
	stats := models.NewUserStats()
	stats.TotalStudyMinutes = 1500
	got := EvaluateBadges(&stats, models.Streak{}, Event{Kind: EventPomodoroCompleted, Timestamp: testDay})
	if !contains(got, BadgeTimeLord) {
		t.Errorf("1500 minutes missing time-lord: %v", got)
	}
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
