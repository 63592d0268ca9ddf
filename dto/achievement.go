package dto

import "time"

type AchievementResponse struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Tier        string     `json:"tier"`
	BadgeURL    string     `json:"badge_url"`
	XPReward    int        `json:"xp_reward"`
	UnlockedAt  *time.Time `json:"unlocked_at,omitempty"`
}

// TrophyCaseResponse is the achievement catalog annotated with the player's
// unlock status, for the trophy room screen.
type TrophyCaseResponse struct {
	Achievements []TrophyResponse `json:"achievements"`
	Total        int              `json:"total"`
	Unlocked     int              `json:"unlocked"`
	TierCounts   map[string]int   `json:"tier_counts"`
}

type TrophyResponse struct {
	AchievementResponse
	Unlocked  bool   `json:"unlocked"`
	Metric    string `json:"metric"`
	Threshold int    `json:"threshold"`
	Progress  int    `json:"progress"`
}
