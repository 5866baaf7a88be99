package models

// Streak tracks the consecutive-day study streak for one user. All date
// fields are date-only strings in "2006-01-02" form; streak logic is
// day-granular, never time-granular.
type Streak struct {
	CurrentStreak        int    `bson:"currentStreak" json:"currentStreak"`
	LongestStreak        int    `bson:"longestStreak" json:"longestStreak"`
	LastStudyDate        string `bson:"lastStudyDate,omitempty" json:"lastStudyDate,omitempty"`
	LastActiveDate       string `bson:"lastActiveDate,omitempty" json:"lastActiveDate,omitempty"`
	LastCheckDate        string `bson:"lastCheckDate,omitempty" json:"lastCheckDate,omitempty"`
	StreakFreezes        int    `bson:"streakFreezes" json:"streakFreezes"`
	FreezesUsedThisMonth int    `bson:"freezesUsedThisMonth" json:"freezesUsedThisMonth"`
	FreezeDaysRemaining  int    `bson:"freezeDaysRemaining" json:"freezeDaysRemaining"`
	LastFreezeMonth      string `bson:"lastFreezeMonth,omitempty" json:"lastFreezeMonth,omitempty"`
}

// NewStreak returns the zero streak a fresh account starts with: no history
// and a full freeze balance.
func NewStreak() Streak {
	return Streak{StreakFreezes: 2}
}
