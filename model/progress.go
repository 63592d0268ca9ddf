package model

import (
	"encoding/json"
	"time"
)

// PlayerProgress is the per-player progression snapshot: XP, level, streak
// state, and the inventories the achievement evaluator reads. Streak fields
// mirror progression.StreakState; LastActiveDate is a calendar-day key.
type PlayerProgress struct {
	ID              string          `json:"id" gorm:"primaryKey"`
	UserID          string          `json:"user_id" gorm:"uniqueIndex;not null"`
	XP              int             `json:"xp" gorm:"not null"` // cumulative, never decreases
	XPSpent         int             `json:"xp_spent" gorm:"not null"`
	Level           int             `json:"level" gorm:"not null"`
	CurrentStreak   int             `json:"current_streak" gorm:"not null"`
	LongestStreak   int             `json:"longest_streak" gorm:"not null"`
	LastActiveDate  string          `json:"last_active_date"`
	FreezeTokens    int             `json:"freeze_tokens" gorm:"not null"`
	QuestsCompleted int             `json:"quests_completed" gorm:"not null"`
	TreasuresFound  int             `json:"treasures_found" gorm:"not null"`
	CompletedQuests json.RawMessage `json:"completed_quests" gorm:"not null"`
	OwnedItems      json.RawMessage `json:"owned_items" gorm:"not null"`
	TotalPlayTime   int             `json:"total_play_time" gorm:"not null"` // in minutes
	CreatedAt       time.Time       `json:"created_at" gorm:"not null"`
	UpdatedAt       time.Time       `json:"updated_at" gorm:"not null"`
}

// QuestAttempt records one finished mini-game run.
type QuestAttempt struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"index;not null"`
	QuestID   string    `json:"quest_id" gorm:"not null"`
	QuestType string    `json:"quest_type" gorm:"not null"`
	Accuracy  int       `json:"accuracy" gorm:"not null"` // 0..100
	XPEarned  int       `json:"xp_earned" gorm:"not null"`
	TimeSpent int       `json:"time_spent" gorm:"not null"` // in seconds
	CreatedAt time.Time `json:"created_at" gorm:"not null"`
}

// Quest is one catalog entry for a mini-game challenge. Content payloads
// (word lists, phoneme tables) live client-side; the backend only tracks
// identity and difficulty.
type Quest struct {
	ID         string    `json:"id" gorm:"primaryKey"`
	Title      string    `json:"title" gorm:"not null"`
	Type       string    `json:"type" gorm:"not null;index"`
	WilsonStep int       `json:"wilson_step" gorm:"not null;index"`
	BaseXP     int       `json:"base_xp" gorm:"not null"`
	IsActive   bool      `json:"is_active" gorm:"not null;default:true"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
