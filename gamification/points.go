package gamification

import "studyhub/models"

// Fixed point awards.
const (
	PointsTaskCompleted     = 10
	PointsTaskWithQuestions = 25 // task completed together with generated practice questions
	PointsPomodoroSession   = 15
	PointsStreakDay         = 5
	PointsGradeMin          = 50
	PointsGradeMax          = 100
)

// levelThresholds[i] is the point total at which level i+2 begins; past the
// table a new level comes every 5000 points.
var levelThresholds = []int{100, 250, 500, 1000, 2000, 3500, 5500, 8000, 11000, 15000}

const (
	maxTableLevel       = 10
	pointsPerExtraLevel = 5000
	extraLevelBase      = 15000
)

// LevelFromPoints maps a point total onto a discrete level, starting at 1.
func LevelFromPoints(points int) int {
	if points >= extraLevelBase {
		return maxTableLevel + (points-extraLevelBase)/pointsPerExtraLevel
	}
	level := 1
	for i, threshold := range levelThresholds {
		if points < threshold {
			break
		}
		level = i + 2
	}
	return level
}

// PointsForNextLevel returns the point total at which the next level begins.
func PointsForNextLevel(level int) int {
	if level < 1 {
		level = 1
	}
	if level >= maxTableLevel {
		return extraLevelBase + (level-maxTableLevel+1)*pointsPerExtraLevel
	}
	return levelThresholds[level-1]
}

// AddPoints adds a non-negative point delta to the stats, recomputes the
// level and reports whether it increased. Negative deltas are ignored:
// points never decrease.
func AddPoints(stats models.UserStats, points int) (models.UserStats, bool) {
	if points <= 0 {
		return stats, false
	}
	before := LevelFromPoints(stats.TotalPoints)
	stats.TotalPoints += points
	stats.Level = LevelFromPoints(stats.TotalPoints)
	return stats, stats.Level > before
}
