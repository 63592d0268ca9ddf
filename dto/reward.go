package dto

type DailyRewardDay struct {
	Day       int  `json:"day"`
	XP        int  `json:"xp"`
	IsSpecial bool `json:"is_special"`
}

type DailyRewardStatusResponse struct {
	CanClaim        bool             `json:"can_claim"`
	TodayReward     DailyRewardDay   `json:"today_reward"`
	IsNewCycleStart bool             `json:"is_new_cycle_start"`
	ConsecutiveDays int              `json:"consecutive_days"`
	WeeksCompleted  int              `json:"weeks_completed"`
	Cycle           []DailyRewardDay `json:"cycle"`
}

type ClaimDailyRewardResponse struct {
	Reward          DailyRewardDay `json:"reward"`
	XPGranted       int            `json:"xp_granted"`
	WeekCompleted   bool           `json:"week_completed"`
	FreezeGranted   bool           `json:"freeze_granted"`
	ConsecutiveDays int            `json:"consecutive_days"`
	WeeksCompleted  int            `json:"weeks_completed"`
	TotalXP         int            `json:"total_xp"`
}

type StoreItemResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Cost        int    `json:"cost"`
	Rarity      string `json:"rarity"`
	Owned       bool   `json:"owned"`
}

type PurchaseItemRequest struct {
	ItemID string `json:"item_id" validate:"required"`
}

func (r PurchaseItemRequest) Validate() error {
	return GetValidator().Struct(r)
}

type PurchaseItemResponse struct {
	Item        StoreItemResponse `json:"item"`
	RemainingXP int               `json:"remaining_xp"`
	OwnedItems  []string          `json:"owned_items"`
}
