package semester

import (
	"fmt"
	"time"
)

const (
	Term1Weeks = 9
	BreakWeeks = 2
	Term2Weeks = 8
	TotalWeeks = Term1Weeks + Term2Weeks
)

// Semester anchors the fixed 17-week school semester to a calendar year:
// 9 weeks of term 1, a 2-week break, then 8 weeks of term 2 ending in the
// final exam week.
type Semester struct {
	Year       int
	Term1Start time.Time
	Term2Start time.Time
}

// Range is the date span of a single semester week.
type Range struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Term  int       `json:"term"`
}

// ForYear builds the semester for a given year. Term 1 starts on the first
// Monday of February.
func ForYear(year int) Semester {
	start := time.Date(year, time.February, 1, 0, 0, 0, 0, time.UTC)
	for start.Weekday() != time.Monday {
		start = start.AddDate(0, 0, 1)
	}
	return Semester{
		Year:       year,
		Term1Start: start,
		Term2Start: start.AddDate(0, 0, (Term1Weeks+BreakWeeks)*7),
	}
}

// Current returns the semester of the current year.
func Current(now time.Time) Semester {
	return ForYear(now.Year())
}

// End returns the last day of the semester (end of week 17).
func (s Semester) End() time.Time {
	return s.Term2Start.AddDate(0, 0, Term2Weeks*7-1)
}

// CurrentWeek maps a clock date onto a semester week in [1,17]. Dates before
// term 1 clamp to 1, the inter-term break clamps to 9, and dates after the
// semester clamp to 17. Clamping here is intentional, not an error.
func (s Semester) CurrentWeek(now time.Time) int {
	day := DateOnly(now)
	if day.Before(s.Term1Start) {
		return 1
	}
	if day.Before(s.Term2Start) {
		week := DaysBetween(s.Term1Start, day)/7 + 1
		if week > Term1Weeks {
			week = Term1Weeks
		}
		return week
	}
	week := Term1Weeks + DaysBetween(s.Term2Start, day)/7 + 1
	if week > TotalWeeks {
		week = TotalWeeks
	}
	return week
}

// WeekDateRange returns the Monday..Sunday date span for a semester week.
func (s Semester) WeekDateRange(week int) (Range, error) {
	if week < 1 || week > TotalWeeks {
		return Range{}, fmt.Errorf("week %d out of range [1,%d]", week, TotalWeeks)
	}
	var start time.Time
	term := 1
	if week <= Term1Weeks {
		start = s.Term1Start.AddDate(0, 0, (week-1)*7)
	} else {
		term = 2
		start = s.Term2Start.AddDate(0, 0, (week-Term1Weeks-1)*7)
	}
	return Range{Start: start, End: start.AddDate(0, 0, 6), Term: term}, nil
}

// TermLabel renders a week as "Term 1, Week 3" / "Term 2, Week 5".
func (s Semester) TermLabel(week int) (string, error) {
	if week < 1 || week > TotalWeeks {
		return "", fmt.Errorf("week %d out of range [1,%d]", week, TotalWeeks)
	}
	if week <= Term1Weeks {
		return fmt.Sprintf("Term 1, Week %d", week), nil
	}
	return fmt.Sprintf("Term 2, Week %d", week-Term1Weeks), nil
}

// TermOfWeek returns 1 or 2 for a valid week number.
func TermOfWeek(week int) int {
	if week <= Term1Weeks {
		return 1
	}
	return 2
}

// DateOnly strips the time-of-day component, keeping the location.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DaysBetween counts whole calendar days from a to b. It rounds rather than
// truncates so daylight-saving shifts cannot skew the count.
func DaysBetween(a, b time.Time) int {
	hours := DateOnly(b).Sub(DateOnly(a)).Hours()
	if hours >= 0 {
		return int(hours/24 + 0.5)
	}
	return -int(-hours/24 + 0.5)
}
