package dto

import "time"

type CompleteQuestRequest struct {
	QuestID   string `json:"quest_id" validate:"required"`
	Accuracy  int    `json:"accuracy" validate:"min=0,max=100"`
	TimeSpent int    `json:"time_spent" validate:"min=0"` // seconds
}

func (r CompleteQuestRequest) Validate() error {
	return GetValidator().Struct(r)
}

// CompleteQuestResponse carries every delta the client renders after a
// quest: XP, level-ups, the streak decision, an optional milestone
// celebration, an optional treasure, and any newly unlocked achievements.
type CompleteQuestResponse struct {
	XPEarned      int                   `json:"xp_earned"`
	TotalXP       int                   `json:"total_xp"`
	Level         int                   `json:"level"`
	LeveledUp     bool                  `json:"leveled_up"`
	Streak        StreakResponse        `json:"streak"`
	Milestone     *MilestoneResponse    `json:"milestone,omitempty"`
	Treasure      *TreasureResponse     `json:"treasure,omitempty"`
	NewUnlocks    []AchievementResponse `json:"new_achievements,omitempty"`
	QuestsCleared int                   `json:"quests_completed"`
}

type QuestResponse struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Type       string `json:"type"`
	WilsonStep int    `json:"wilson_step"`
	BaseXP     int    `json:"base_xp"`
}

type StreakResponse struct {
	Current        int    `json:"current"`
	Longest        int    `json:"longest"`
	LastActiveDate string `json:"last_active_date"`
	FreezeTokens   int    `json:"freeze_tokens"`
	FreezeConsumed bool   `json:"freeze_consumed"`
	Broken         bool   `json:"broken"`
	Continued      bool   `json:"continued"`
}

type MilestoneResponse struct {
	Days         int     `json:"days"`
	Message      string  `json:"message"`
	XPMultiplier float64 `json:"xp_multiplier"`
}

type TreasureResponse struct {
	TreasureID string `json:"treasure_id"`
	Rarity     string `json:"rarity"`
	XPBonus    int    `json:"xp_bonus"`
}

type PlayerProgressResponse struct {
	UserID          string                `json:"user_id"`
	XP              int                   `json:"xp"`
	SpendableXP     int                   `json:"spendable_xp"`
	Level           int                   `json:"level"`
	XPToNextLevel   int                   `json:"xp_to_next_level"`
	Streak          StreakResponse        `json:"streak"`
	QuestsCompleted int                   `json:"quests_completed"`
	TreasuresFound  int                   `json:"treasures_found"`
	CompletedQuests []string              `json:"completed_quests"`
	OwnedItems      []string              `json:"owned_items"`
	TotalPlayTime   int                   `json:"total_play_time"`
	Achievements    []AchievementResponse `json:"recent_achievements"`
}

type ParentSummaryResponse struct {
	UserID            string         `json:"user_id"`
	Streak            StreakResponse `json:"streak"`
	WeeksCompleted    int            `json:"weeks_completed"`
	QuestsCompleted   int            `json:"quests_completed"`
	TotalPlayTime     int            `json:"total_play_time"`
	Level             int            `json:"level"`
	AchievementCounts map[string]int `json:"achievement_counts"` // by tier
	RecentTreasures   []TreasureResponse `json:"recent_treasures"`
	LastActive        *time.Time     `json:"last_active,omitempty"`
}

type LeaderboardUserResponse struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Level    int    `json:"level"`
	XP       int    `json:"xp"`
	Streak   int    `json:"streak"`
	Rank     int    `json:"rank"`
}

type LeaderboardResponse struct {
	Period      string                    `json:"period"`
	CurrentUser LeaderboardUserResponse   `json:"current_user"`
	TopUsers    []LeaderboardUserResponse `json:"top_users"`
}
