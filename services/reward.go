package services

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"

	"github.com/letterquest/reader_api/dto"
	"github.com/letterquest/reader_api/progression"
	"github.com/letterquest/reader_api/shared"
)

// RewardService owns the 7-day login reward cycle and the XP reward store.
type RewardService struct {
	context.DefaultService

	sqlSvc    *SqliteService
	playerSvc *PlayerService
	achSvc    *AchievementService
}

const REWARD_SVC = "reward_svc"

func (svc RewardService) Id() string {
	return REWARD_SVC
}

func (svc *RewardService) Configure(ctx *context.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *RewardService) Start() error {
	svc.sqlSvc = svc.Service(SQLITE_SVC).(*SqliteService)
	svc.playerSvc = svc.Service(PLAYER_SVC).(*PlayerService)
	svc.achSvc = svc.Service(ACHIEVEMENT_SVC).(*AchievementService)
	return nil
}

func dayRewardResponse(r progression.DayReward) dto.DailyRewardDay {
	return dto.DailyRewardDay{Day: r.Day, XP: r.XP, IsSpecial: r.IsSpecial}
}

// GetDailyRewardStatus answers the dashboard's "can I claim today" query.
// Pure evaluation: safe to call on every render.
func (svc *RewardService) GetDailyRewardStatus(userID string) (*dto.DailyRewardStatusResponse, error) {
	reward, err := svc.sqlSvc.GetLoginReward(userID)
	if err != nil {
		return nil, err
	}

	today := progression.Today(time.Now())
	ev := progression.EvaluateClaim(progression.LoginRewardState{
		LastClaimDate:       progression.DayKey(reward.LastClaimDate),
		ConsecutiveDays:     reward.ConsecutiveDays,
		TotalWeeksCompleted: reward.TotalWeeksCompleted,
	}, today)

	cycle := progression.RewardCycle()
	cycleResp := make([]dto.DailyRewardDay, len(cycle))
	for i, r := range cycle {
		cycleResp[i] = dayRewardResponse(r)
	}

	return &dto.DailyRewardStatusResponse{
		CanClaim:        ev.CanClaim,
		TodayReward:     dayRewardResponse(ev.Reward),
		IsNewCycleStart: ev.IsNewCycleStart,
		ConsecutiveDays: reward.ConsecutiveDays,
		WeeksCompleted:  reward.TotalWeeksCompleted,
		Cycle:           cycleResp,
	}, nil
}

// ClaimDailyReward applies today's claim: grants the day's XP, and on day 7
// the bonus streak freeze token. At most one claim per calendar day.
func (svc *RewardService) ClaimDailyReward(userID string) (*dto.ClaimDailyRewardResponse, error) {
	reward, err := svc.sqlSvc.GetLoginReward(userID)
	if err != nil {
		return nil, err
	}

	today := progression.Today(time.Now())
	state := progression.LoginRewardState{
		LastClaimDate:       progression.DayKey(reward.LastClaimDate),
		ConsecutiveDays:     reward.ConsecutiveDays,
		TotalWeeksCompleted: reward.TotalWeeksCompleted,
	}

	if state.LastClaimDate == today {
		return nil, shared.NewConflictError(fmt.Errorf("already claimed"), "Daily reward already claimed today")
	}

	next, outcome := progression.ApplyClaim(state, today)

	progress, err := svc.sqlSvc.GetPlayerProgress(userID)
	if err != nil {
		return nil, err
	}
	progress.XP += outcome.Reward.XP
	progress.Level = svc.playerSvc.calculateLevel(progress.XP)
	if outcome.FreezeGranted {
		progress.FreezeTokens++
	}

	// Grant before recording the claim: if persisting the grant fails the
	// claim stays open for a retry, rather than being consumed with nothing
	// awarded.
	if err := svc.sqlSvc.UpdatePlayerProgress(progress); err != nil {
		return nil, err
	}

	reward.LastClaimDate = string(next.LastClaimDate)
	reward.ConsecutiveDays = next.ConsecutiveDays
	reward.TotalWeeksCompleted = next.TotalWeeksCompleted
	if err := svc.sqlSvc.UpdateLoginReward(reward); err != nil {
		return nil, err
	}

	if outcome.WeekCompleted {
		log.WithField("user_id", userID).
			WithField("weeks", reward.TotalWeeksCompleted).
			Info("Login reward week completed")
	}

	// Claiming counts as an app open for the streak.
	if _, err := svc.playerSvc.RecordAppOpen(userID); err != nil {
		log.WithError(err).WithField("user_id", userID).Error("Failed to touch streak on claim")
	}

	return &dto.ClaimDailyRewardResponse{
		Reward:          dayRewardResponse(outcome.Reward),
		XPGranted:       outcome.Reward.XP,
		WeekCompleted:   outcome.WeekCompleted,
		FreezeGranted:   outcome.FreezeGranted,
		ConsecutiveDays: reward.ConsecutiveDays,
		WeeksCompleted:  reward.TotalWeeksCompleted,
		TotalXP:         progress.XP,
	}, nil
}

// ==================== STORE METHODS ====================

func (svc *RewardService) GetStore(userID string) ([]dto.StoreItemResponse, error) {
	items, err := svc.sqlSvc.GetActiveStoreItems()
	if err != nil {
		return nil, err
	}

	owned := map[string]bool{}
	if progress, err := svc.sqlSvc.GetPlayerProgress(userID); err == nil {
		var ownedIDs []string
		if err := json.Unmarshal(progress.OwnedItems, &ownedIDs); err == nil {
			for _, id := range ownedIDs {
				owned[id] = true
			}
		}
	}

	resp := make([]dto.StoreItemResponse, len(items))
	for i, item := range items {
		resp[i] = dto.StoreItemResponse{
			ID:          item.ID,
			Name:        item.Name,
			Description: item.Description,
			Category:    item.Category,
			Cost:        item.Cost,
			Rarity:      item.Rarity,
			Owned:       owned[item.ID],
		}
	}
	return resp, nil
}

// PurchaseItem spends XP on a store item. Owned items feed the owned_items
// achievement metric.
func (svc *RewardService) PurchaseItem(userID string, req dto.PurchaseItemRequest) (*dto.PurchaseItemResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, shared.NewBadRequestError(err, "Invalid purchase request")
	}

	item, err := svc.sqlSvc.GetStoreItem(req.ItemID)
	if err != nil {
		return nil, shared.NewNotFoundError(err, "Item not found")
	}

	progress, err := svc.sqlSvc.GetPlayerProgress(userID)
	if err != nil {
		return nil, err
	}

	var ownedIDs []string
	if err := json.Unmarshal(progress.OwnedItems, &ownedIDs); err != nil {
		return nil, shared.NewInternalError(err, "Corrupt owned item list")
	}
	for _, id := range ownedIDs {
		if id == item.ID {
			return nil, shared.NewConflictError(fmt.Errorf("already owned"), "Item already owned")
		}
	}

	// XP is cumulative so level and achievements stay monotonic; spending
	// only moves the spendable balance.
	if progress.XP-progress.XPSpent < item.Cost {
		return nil, shared.NewBadRequestError(fmt.Errorf("insufficient xp"), "Not enough XP")
	}

	ownedIDs = append(ownedIDs, item.ID)
	ownedJSON, err := json.Marshal(ownedIDs)
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to encode owned items")
	}
	progress.OwnedItems = ownedJSON
	progress.XPSpent += item.Cost

	if err := svc.sqlSvc.UpdatePlayerProgress(progress); err != nil {
		return nil, err
	}

	if _, err := svc.achSvc.EvaluateForPlayer(userID, progress); err != nil {
		log.WithError(err).WithField("user_id", userID).Error("Failed to evaluate achievements after purchase")
	}

	return &dto.PurchaseItemResponse{
		Item: dto.StoreItemResponse{
			ID:          item.ID,
			Name:        item.Name,
			Description: item.Description,
			Category:    item.Category,
			Cost:        item.Cost,
			Rarity:      item.Rarity,
			Owned:       true,
		},
		RemainingXP: progress.XP - progress.XPSpent,
		OwnedItems:  ownedIDs,
	}, nil
}
