package model

import "time"

// LoginReward is the persisted 7-day login reward cycle position, one row
// per player. Mirrors progression.LoginRewardState.
type LoginReward struct {
	ID                  string    `json:"id" gorm:"primaryKey"`
	UserID              string    `json:"user_id" gorm:"uniqueIndex;not null"`
	LastClaimDate       string    `json:"last_claim_date"`
	ConsecutiveDays     int       `json:"consecutive_days" gorm:"not null"`
	TotalWeeksCompleted int       `json:"total_weeks_completed" gorm:"not null"`
	CreatedAt           time.Time `json:"created_at" gorm:"not null"`
	UpdatedAt           time.Time `json:"updated_at" gorm:"not null"`
}

// TreasureDrop logs one treasure awarded after a quest.
type TreasureDrop struct {
	ID         string    `json:"id" gorm:"primaryKey"`
	UserID     string    `json:"user_id" gorm:"index;not null"`
	TreasureID string    `json:"treasure_id" gorm:"not null"`
	Rarity     string    `json:"rarity" gorm:"not null;index"`
	XPBonus    int       `json:"xp_bonus" gorm:"not null"`
	QuestID    string    `json:"quest_id"`
	CreatedAt  time.Time `json:"created_at" gorm:"not null"`
}

// StoreItem is one reward-store entry purchasable with XP.
type StoreItem struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description"`
	Category    string    `json:"category" gorm:"not null;index"` // avatar, theme, sticker, booster
	Cost        int       `json:"cost" gorm:"not null"`
	Rarity      string    `json:"rarity" gorm:"not null"`
	IsActive    bool      `json:"is_active" gorm:"not null;default:true"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
