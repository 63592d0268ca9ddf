package model

import "time"

// Achievement is one catalog row: a threshold rule over a named cumulative
// metric plus display fields. The catalog is seeded and never mutated at
// runtime.
type Achievement struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null;uniqueIndex"`
	Description string    `json:"description" gorm:"not null"`
	Tier        string    `json:"tier" gorm:"not null"`   // bronze, silver, gold, platinum
	Metric      string    `json:"metric" gorm:"not null"` // progression metric tag
	Threshold   int       `json:"threshold" gorm:"not null"`
	BadgeURL    string    `json:"badge_url"`
	XPReward    int       `json:"xp_reward" gorm:"default:0"`
	IsActive    bool      `json:"is_active" gorm:"not null;default:true"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type UserAchievement struct {
	ID            string      `json:"id" gorm:"primaryKey"`
	UserID        string      `json:"user_id" gorm:"index:idx_user_achievement,unique;not null"`
	AchievementID string      `json:"achievement_id" gorm:"index:idx_user_achievement,unique;not null"`
	Achievement   Achievement `json:"achievement" gorm:"foreignKey:AchievementID"`
	UnlockedAt    time.Time   `json:"unlocked_at" gorm:"not null"`
	CreatedAt     time.Time   `json:"created_at"`
}
