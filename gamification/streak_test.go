package gamification

import (
	"testing"
	"time"

	"studyhub/models"
)

var testDay = time.Date(2026, 3, 18, 10, 0, 0, 0, time.UTC)

func dayKey(offset int) string {
	return DateKey(testDay.AddDate(0, 0, offset))
}

func TestCheckDailyStreakNoOpWhenAlreadyCheckedToday(t *testing.T) {
	stats := models.NewUserStats()
	streak := models.Streak{
		CurrentStreak: 3,
		LongestStreak: 5,
		LastStudyDate: dayKey(-4),
		LastCheckDate: dayKey(0),
		StreakFreezes: 1,
	}

	got, badges := CheckDailyStreak(streak, &stats, testDay)
	if got != streak {
		t.Errorf("second check of the day mutated streak: %+v", got)
	}
	if len(badges) != 0 {
		t.Errorf("second check of the day returned badges: %v", badges)
	}
}

func TestCheckDailyStreakKeepsContinuousStreak(t *testing.T) {
	stats := models.NewUserStats()
	streak := models.Streak{
		CurrentStreak:   4,
		LongestStreak:   6,
		LastStudyDate:   dayKey(-1),
		LastCheckDate:   dayKey(-1),
		StreakFreezes:   2,
		LastFreezeMonth: testDay.Format("2006-01"),
	}

	got, _ := CheckDailyStreak(streak, &stats, testDay)
	if got.CurrentStreak != 4 {
		t.Errorf("streak changed on a continuous day: %d, want 4", got.CurrentStreak)
	}
	if got.StreakFreezes != 2 {
		t.Errorf("freezes consumed with no gap: %d, want 2", got.StreakFreezes)
	}
	if got.LastCheckDate != dayKey(0) {
		t.Errorf("LastCheckDate = %q, want %q", got.LastCheckDate, dayKey(0))
	}
}

func TestCheckDailyStreakGapFullyCoveredByFreezes(t *testing.T) {
	stats := models.NewUserStats()
	streak := models.Streak{
		CurrentStreak:   5,
		LongestStreak:   5,
		LastStudyDate:   dayKey(-2),
		LastCheckDate:   dayKey(-2),
		StreakFreezes:   2,
		LastFreezeMonth: testDay.Format("2006-01"),
	}

	got, _ := CheckDailyStreak(streak, &stats, testDay)
	if got.CurrentStreak != 5 {
		t.Errorf("bridged streak = %d, want 5", got.CurrentStreak)
	}
	if got.StreakFreezes != 1 {
		t.Errorf("freezes = %d, want 1 (one consumed for the single gap day)", got.StreakFreezes)
	}
	if got.FreezesUsedThisMonth != 1 {
		t.Errorf("freezes used this month = %d, want 1", got.FreezesUsedThisMonth)
	}

	// A completion today must now continue the streak, not restart it.
	after, newDay := advanceStreakForStudy(got, testDay)
	if !newDay {
		t.Fatal("completion after a bridged gap did not count as a new study day")
	}
	if after.CurrentStreak != 6 {
		t.Errorf("streak after completion = %d, want 6", after.CurrentStreak)
	}
}

func TestCheckDailyStreakGapNotCoveredResetsToZero(t *testing.T) {
	stats := models.NewUserStats()
	streak := models.Streak{
		CurrentStreak:   10,
		LongestStreak:   10,
		LastStudyDate:   dayKey(-4),
		LastCheckDate:   dayKey(-4),
		StreakFreezes:   1, // 1 freeze covers only 1 of the 3 missed days
		LastFreezeMonth: testDay.Format("2006-01"),
	}

	got, _ := CheckDailyStreak(streak, &stats, testDay)
	if got.CurrentStreak != 0 {
		t.Errorf("streak = %d, want 0", got.CurrentStreak)
	}
	if got.LongestStreak != 10 {
		t.Errorf("longest streak = %d, want 10 preserved", got.LongestStreak)
	}
	if got.StreakFreezes != 0 {
		t.Errorf("freezes = %d, want 0 after a failed bridge", got.StreakFreezes)
	}
}

func TestCheckDailyStreakRefillsFreezesOnNewMonth(t *testing.T) {
	stats := models.NewUserStats()
	streak := models.Streak{
		CurrentStreak:        2,
		LongestStreak:        2,
		LastStudyDate:        dayKey(-1),
		LastCheckDate:        dayKey(-1),
		StreakFreezes:        0,
		FreezesUsedThisMonth: 2,
		LastFreezeMonth:      "2026-02",
	}

	got, _ := CheckDailyStreak(streak, &stats, testDay)
	if got.StreakFreezes != MaxStreakFreezes {
		t.Errorf("freezes = %d, want %d after month rollover", got.StreakFreezes, MaxStreakFreezes)
	}
	if got.FreezesUsedThisMonth != 0 {
		t.Errorf("freezes used this month = %d, want 0", got.FreezesUsedThisMonth)
	}
	if got.LastFreezeMonth != "2026-03" {
		t.Errorf("LastFreezeMonth = %q, want 2026-03", got.LastFreezeMonth)
	}
}

func TestCheckDailyStreakMonthRefillBridgesGap(t *testing.T) {
	// Freezes were exhausted last month, but the refill happens before the
	// gap is judged, so a 1-day gap still survives.
	stats := models.NewUserStats()
	streak := models.Streak{
		CurrentStreak:   8,
		LongestStreak:   8,
		LastStudyDate:   dayKey(-2),
		LastCheckDate:   dayKey(-2),
		StreakFreezes:   0,
		LastFreezeMonth: "2026-02",
	}

	got, _ := CheckDailyStreak(streak, &stats, testDay)
	if got.CurrentStreak != 8 {
		t.Errorf("streak = %d, want 8 preserved by refilled freeze", got.CurrentStreak)
	}
	if got.StreakFreezes != 1 {
		t.Errorf("freezes = %d, want 1", got.StreakFreezes)
	}
}

func TestAdvanceStreakIncrement(t *testing.T) {
	streak := models.Streak{CurrentStreak: 3, LongestStreak: 5, LastStudyDate: dayKey(-1)}

	got, newDay := advanceStreakForStudy(streak, testDay)
	if !newDay {
		t.Fatal("expected a new study day")
	}
	if got.CurrentStreak != 4 {
		t.Errorf("streak = %d, want 4", got.CurrentStreak)
	}
	if got.LongestStreak != 5 {
		t.Errorf("longest = %d, want 5 (not yet exceeded)", got.LongestStreak)
	}
	if got.LastStudyDate != dayKey(0) {
		t.Errorf("LastStudyDate = %q, want %q", got.LastStudyDate, dayKey(0))
	}
}

func TestAdvanceStreakUpdatesLongest(t *testing.T) {
	streak := models.Streak{CurrentStreak: 5, LongestStreak: 5, LastStudyDate: dayKey(-1)}
	got, _ := advanceStreakForStudy(streak, testDay)
	if got.CurrentStreak != 6 || got.LongestStreak != 6 {
		t.Errorf("streak = %d/%d, want 6/6", got.CurrentStreak, got.LongestStreak)
	}
}

func TestAdvanceStreakSameDayIsNoOp(t *testing.T) {
	streak := models.Streak{CurrentStreak: 4, LongestStreak: 4, LastStudyDate: dayKey(0)}
	got, newDay := advanceStreakForStudy(streak, testDay)
	if newDay {
		t.Error("same-day completion counted as a new study day")
	}
	if got.CurrentStreak != 4 {
		t.Errorf("streak = %d, want 4 unchanged", got.CurrentStreak)
	}
}

func TestAdvanceStreakAfterGapRestartsAtOne(t *testing.T) {
	streak := models.Streak{CurrentStreak: 9, LongestStreak: 9, LastStudyDate: dayKey(-3)}
	got, _ := advanceStreakForStudy(streak, testDay)
	if got.CurrentStreak != 1 {
		t.Errorf("streak = %d, want 1 after unbridged gap", got.CurrentStreak)
	}
	if got.LongestStreak != 9 {
		t.Errorf("longest = %d, want 9 preserved", got.LongestStreak)
	}
}

func TestAdvanceStreakFirstEver(t *testing.T) {
	got, newDay := advanceStreakForStudy(models.NewStreak(), testDay)
	if !newDay || got.CurrentStreak != 1 || got.LongestStreak != 1 {
		t.Errorf("first study day: newDay=%v streak=%d/%d, want true 1/1", newDay, got.CurrentStreak, got.LongestStreak)
	}
}
