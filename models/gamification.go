package models

import "time"

// Badge represents a catalog badge that can be earned
type Badge struct {
	ID          string `bson:"badgeId" json:"id"`
	Name        string `bson:"name" json:"name"`
	Description string `bson:"description" json:"description"`
	Icon        string `bson:"icon" json:"icon"`
	Requirement string `bson:"requirement" json:"requirement"`
	Category    string `bson:"category" json:"category"` // "streak", "tasks", "time", "subject", "grades"
}

// GamificationEvent represents a gamification event to broadcast via WebSocket
type GamificationEvent struct {
	Type      string    `json:"type"` // "badge_unlocked", "level_up", "streak_updated", "points_awarded"
	UserID    string    `json:"userId"`
	BadgeID   string    `json:"badgeId,omitempty"`
	Points    int       `json:"points,omitempty"`
	NewTotal  int       `json:"newTotal,omitempty"`
	Level     int       `json:"level,omitempty"`
	Streak    int       `json:"streak,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
