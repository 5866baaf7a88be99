package gamification

import (
	"time"

	"studyhub/models"
	"studyhub/semester"
)

const (
	dateLayout  = "2006-01-02"
	monthLayout = "2006-01"

	// MaxStreakFreezes is the freeze balance restored on the first check of
	// each calendar month.
	MaxStreakFreezes = 2
)

// DateKey renders a timestamp as the date-only key used throughout the
// streak and stats structures.
func DateKey(t time.Time) string {
	return t.Format(dateLayout)
}

func daysBetweenKeys(a, b string) int {
	ta, errA := time.Parse(dateLayout, a)
	tb, errB := time.Parse(dateLayout, b)
	if errA != nil || errB != nil {
		return 0
	}
	return semester.DaysBetween(ta, tb)
}

// CheckDailyStreak runs the once-per-day streak maintenance: refill freezes
// on a new month, bridge study gaps with available freezes, reset the streak
// when the gap is not fully covered. Repeat calls on the same day are no-ops.
// Returns the updated streak and any badge ids newly unlocked from streak
// milestones; unlocked ids are appended to stats.BadgesEarned.
func CheckDailyStreak(streak models.Streak, stats *models.UserStats, today time.Time) (models.Streak, []string) {
	todayKey := DateKey(today)
	if streak.LastCheckDate == todayKey {
		return streak, nil
	}

	month := today.Format(monthLayout)
	if streak.LastFreezeMonth != month {
		streak.StreakFreezes = MaxStreakFreezes
		streak.FreezesUsedThisMonth = 0
		streak.LastFreezeMonth = month
	}

	if streak.LastStudyDate != "" && streak.CurrentStreak > 0 {
		elapsed := daysBetweenKeys(streak.LastStudyDate, todayKey)
		if elapsed >= 2 {
			// Yesterday was still within grace; every day beyond it needs a freeze.
			missed := elapsed - 1
			if missed <= streak.StreakFreezes {
				streak.StreakFreezes -= missed
				streak.FreezesUsedThisMonth += missed
				// A frozen day counts as studied, so the next completion
				// continues the streak instead of restarting it.
				streak.LastStudyDate = DateKey(today.AddDate(0, 0, -1))
			} else {
				streak.FreezesUsedThisMonth += streak.StreakFreezes
				streak.StreakFreezes = 0
				streak.CurrentStreak = 0
			}
		}
	}

	streak.FreezeDaysRemaining = streak.StreakFreezes
	streak.LastCheckDate = todayKey
	streak.LastActiveDate = todayKey

	newBadges := EvaluateBadges(stats, streak, Event{Kind: EventDailyCheck, Timestamp: today})
	return streak, newBadges
}

// advanceStreakForStudy applies a task completion to the streak. The streak
// is day-granular: the first completion of a day advances it, repeats do
// nothing. Returns the updated streak and whether a new study day started.
func advanceStreakForStudy(streak models.Streak, today time.Time) (models.Streak, bool) {
	todayKey := DateKey(today)
	if streak.LastStudyDate == todayKey {
		return streak, false
	}

	yesterdayKey := DateKey(today.AddDate(0, 0, -1))
	if streak.LastStudyDate == yesterdayKey {
		streak.CurrentStreak++
	} else {
		// First study day ever, or a gap the daily check did not bridge.
		streak.CurrentStreak = 1
	}
	if streak.CurrentStreak > streak.LongestStreak {
		streak.LongestStreak = streak.CurrentStreak
	}
	streak.LastStudyDate = todayKey
	streak.LastActiveDate = todayKey
	return streak, true
}
