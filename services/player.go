// services/player.go
package services

import (
	"encoding/json"
	"math/rand"
	"time"

	"github.com/alphabatem/common/context"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/letterquest/reader_api/dto"
	"github.com/letterquest/reader_api/model"
	"github.com/letterquest/reader_api/progression"
	"github.com/letterquest/reader_api/shared"
)

// PlayerService orchestrates the progression core: it loads the persisted
// snapshot, runs the pure calculators, and persists the returned state.
type PlayerService struct {
	context.DefaultService

	sqlSvc   *SqliteService
	achSvc   *AchievementService
	redisSvc *RedisService

	rng *rand.Rand
}

const PLAYER_SVC = "player_svc"

func (svc PlayerService) Id() string {
	return PLAYER_SVC
}

func (svc *PlayerService) Configure(ctx *context.Context) error {
	svc.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	return svc.DefaultService.Configure(ctx)
}

func (svc *PlayerService) Start() error {
	svc.sqlSvc = svc.Service(SQLITE_SVC).(*SqliteService)
	svc.achSvc = svc.Service(ACHIEVEMENT_SVC).(*AchievementService)
	svc.redisSvc = svc.Service(REDIS_SVC).(*RedisService)
	return nil
}

// InitializePlayer creates the progression rows for a fresh account. The
// streak stays at zero until the first activity-producing event.
func (svc *PlayerService) InitializePlayer(userID string) error {
	progressID, _ := uuid.NewV7()
	progress := &model.PlayerProgress{
		ID:              progressID.String(),
		UserID:          userID,
		XP:              0,
		Level:           1,
		CompletedQuests: json.RawMessage("[]"),
		OwnedItems:      json.RawMessage("[]"),
	}

	if _, err := svc.sqlSvc.CreatePlayerProgress(progress); err != nil {
		return err
	}

	rewardID, _ := uuid.NewV7()
	_, err := svc.sqlSvc.CreateLoginReward(&model.LoginReward{
		ID:     rewardID.String(),
		UserID: userID,
	})
	return err
}

// touchStreak runs the streak calculator against the snapshot and folds the
// result back in. Returns the decision and the milestone hit, if any.
// Same-day calls leave the snapshot untouched.
func (svc *PlayerService) touchStreak(progress *model.PlayerProgress) (progression.StreakResult, *progression.Milestone) {
	today := progression.Today(time.Now())

	res := progression.ComputeStreak(progression.StreakState{
		CurrentStreak:  progress.CurrentStreak,
		LastActiveDate: progression.DayKey(progress.LastActiveDate),
		LongestStreak:  progress.LongestStreak,
		FreezeTokens:   progress.FreezeTokens,
	}, today)

	if !res.Continued && !res.Broken {
		return res, nil // already recorded today
	}

	progress.CurrentStreak = res.Streak
	progress.LastActiveDate = string(res.LastActiveDate)
	if res.Streak > progress.LongestStreak {
		progress.LongestStreak = res.Streak
	}
	if res.FreezeConsumed {
		progress.FreezeTokens--
		freezesConsumedTotal.Inc()
	}
	if res.Broken {
		streaksBrokenTotal.Inc()
	}

	if m, ok := progression.MilestoneFor(res.Streak); ok {
		return res, &m
	}
	return res, nil
}

// RecordAppOpen counts opening the app as the day's activity.
func (svc *PlayerService) RecordAppOpen(userID string) (*dto.StreakResponse, error) {
	progress, err := svc.sqlSvc.GetPlayerProgress(userID)
	if err != nil {
		return nil, err
	}

	res, _ := svc.touchStreak(progress)
	if res.Continued || res.Broken {
		if err := svc.sqlSvc.UpdatePlayerProgress(progress); err != nil {
			return nil, err
		}
	}

	return svc.streakResponse(progress, res), nil
}

func (svc *PlayerService) streakResponse(progress *model.PlayerProgress, res progression.StreakResult) *dto.StreakResponse {
	return &dto.StreakResponse{
		Current:        progress.CurrentStreak,
		Longest:        progress.LongestStreak,
		LastActiveDate: progress.LastActiveDate,
		FreezeTokens:   progress.FreezeTokens,
		FreezeConsumed: res.FreezeConsumed,
		Broken:         res.Broken,
		Continued:      res.Continued,
	}
}

// GetQuests lists the active quest catalog, optionally filtered by type and
// Wilson step. Zero values mean no filter.
func (svc *PlayerService) GetQuests(questType string, wilsonStep int) ([]dto.QuestResponse, error) {
	quests, err := svc.sqlSvc.GetActiveQuests(questType, wilsonStep)
	if err != nil {
		return nil, err
	}

	resp := make([]dto.QuestResponse, len(quests))
	for i, q := range quests {
		resp[i] = dto.QuestResponse{
			ID:         q.ID,
			Title:      q.Title,
			Type:       q.Type,
			WilsonStep: q.WilsonStep,
			BaseXP:     q.BaseXP,
		}
	}
	return resp, nil
}

// CompleteQuest records a finished mini-game run and applies every
// progression delta: XP with milestone multiplier, level, streak, treasure
// roll, and achievement unlocks.
func (svc *PlayerService) CompleteQuest(userID string, req dto.CompleteQuestRequest) (*dto.CompleteQuestResponse, error) {
	quest, err := svc.sqlSvc.GetQuest(req.QuestID)
	if err != nil {
		return nil, shared.NewNotFoundError(err, "Quest not found")
	}

	progress, err := svc.sqlSvc.GetPlayerProgress(userID)
	if err != nil {
		return nil, err
	}

	var completed []string
	if err := json.Unmarshal(progress.CompletedQuests, &completed); err != nil {
		return nil, shared.NewInternalError(err, "Corrupt completed quest list")
	}

	isNewCompletion := true
	for _, id := range completed {
		if id == quest.ID {
			isNewCompletion = false
			break
		}
	}

	// Streak first, so a milestone multiplier applies to this quest's XP.
	streakRes, milestone := svc.touchStreak(progress)

	xpGained := svc.calculateXP(quest.BaseXP, req.Accuracy)
	if milestone != nil {
		xpGained = int(float64(xpGained) * milestone.XPMultiplier)
	}

	resp := &dto.CompleteQuestResponse{}

	var treasure *progression.Reward
	if isNewCompletion {
		completed = append(completed, quest.ID)
		completedJSON, err := json.Marshal(completed)
		if err != nil {
			return nil, shared.NewInternalError(err, "Failed to encode completed quests")
		}
		progress.CompletedQuests = completedJSON
		progress.QuestsCompleted++

		if reward, ok := progression.SelectTreasure(req.Accuracy, svc.rng.Float64); ok {
			treasure = &reward
			progress.TreasuresFound++
			xpGained += reward.XPBonus
			treasureDropsTotal.WithLabelValues(reward.Rarity).Inc()

			if err := svc.sqlSvc.CreateTreasureDrop(&model.TreasureDrop{
				UserID:     userID,
				TreasureID: reward.ID,
				Rarity:     reward.Rarity,
				XPBonus:    reward.XPBonus,
				QuestID:    quest.ID,
			}); err != nil {
				log.WithError(err).WithField("user_id", userID).Error("Failed to log treasure drop")
			}
		}
	}

	oldLevel := progress.Level
	progress.XP += xpGained
	progress.Level = svc.calculateLevel(progress.XP)
	progress.TotalPlayTime += req.TimeSpent / 60

	if err := svc.sqlSvc.CreateQuestAttempt(&model.QuestAttempt{
		UserID:    userID,
		QuestID:   quest.ID,
		QuestType: quest.Type,
		Accuracy:  req.Accuracy,
		XPEarned:  xpGained,
		TimeSpent: req.TimeSpent,
	}); err != nil {
		log.WithError(err).WithField("user_id", userID).Error("Failed to record quest attempt")
	}

	if err := svc.sqlSvc.UpdatePlayerProgress(progress); err != nil {
		return nil, err
	}
	questsCompletedTotal.Inc()

	newUnlocks, err := svc.achSvc.EvaluateForPlayer(userID, progress)
	if err != nil {
		log.WithError(err).WithField("user_id", userID).Error("Failed to evaluate achievements")
	}

	if progress.Level > oldLevel {
		log.WithField("user_id", userID).WithField("level", progress.Level).Info("Player leveled up")
	}

	resp.XPEarned = xpGained
	resp.TotalXP = progress.XP
	resp.Level = progress.Level
	resp.LeveledUp = progress.Level > oldLevel
	resp.Streak = *svc.streakResponse(progress, streakRes)
	resp.QuestsCleared = progress.QuestsCompleted
	resp.NewUnlocks = newUnlocks
	if milestone != nil {
		resp.Milestone = &dto.MilestoneResponse{
			Days:         milestone.Days,
			Message:      milestone.Message,
			XPMultiplier: milestone.XPMultiplier,
		}
	}
	if treasure != nil {
		resp.Treasure = &dto.TreasureResponse{
			TreasureID: treasure.ID,
			Rarity:     treasure.Rarity,
			XPBonus:    treasure.XPBonus,
		}
	}

	return resp, nil
}

func (svc *PlayerService) calculateXP(baseXP, accuracy int) int {
	if baseXP <= 0 {
		baseXP = 50
	}
	bonusXP := max(0, (accuracy-60)/10*10) // Bonus for accuracy above 60%
	return baseXP + bonusXP
}

func (svc *PlayerService) calculateLevel(totalXP int) int {
	level := 1
	requiredXP := 100 // Base XP for level 2

	for totalXP >= requiredXP {
		totalXP -= requiredXP
		level++
		requiredXP = int(float64(requiredXP) * 1.5) // Each level requires 1.5x more XP
	}

	return level
}

func (svc *PlayerService) calculateXPToNextLevel(currentXP int) int {
	currentLevel := svc.calculateLevel(currentXP)
	return svc.getTotalXPForLevel(currentLevel+1) - currentXP
}

func (svc *PlayerService) getTotalXPForLevel(targetLevel int) int {
	if targetLevel <= 1 {
		return 0
	}

	totalXP := 0
	requiredXP := 100

	for level := 2; level <= targetLevel; level++ {
		totalXP += requiredXP
		requiredXP = int(float64(requiredXP) * 1.5)
	}

	return totalXP
}

// ==================== PROGRESS METHODS ====================

func (svc *PlayerService) GetPlayerProgress(userID string) (*dto.PlayerProgressResponse, error) {
	progress, err := svc.sqlSvc.GetPlayerProgress(userID)
	if err != nil {
		return nil, err
	}

	var completed []string
	if err := json.Unmarshal(progress.CompletedQuests, &completed); err != nil {
		completed = []string{}
	}
	var owned []string
	if err := json.Unmarshal(progress.OwnedItems, &owned); err != nil {
		owned = []string{}
	}

	achievements, err := svc.sqlSvc.GetUserAchievements(userID)
	if err != nil {
		log.WithError(err).WithField("user_id", userID).Error("Failed to get user achievements")
		achievements = []model.UserAchievement{}
	}

	recent := make([]dto.AchievementResponse, 0)
	for _, ua := range achievements {
		// Show achievements from last 7 days
		if time.Since(ua.UnlockedAt) <= 7*24*time.Hour {
			unlockedAt := ua.UnlockedAt
			recent = append(recent, dto.AchievementResponse{
				ID:          ua.Achievement.ID,
				Name:        ua.Achievement.Name,
				Description: ua.Achievement.Description,
				Tier:        ua.Achievement.Tier,
				BadgeURL:    ua.Achievement.BadgeURL,
				XPReward:    ua.Achievement.XPReward,
				UnlockedAt:  &unlockedAt,
			})
		}
	}

	return &dto.PlayerProgressResponse{
		UserID:          userID,
		XP:              progress.XP,
		SpendableXP:     progress.XP - progress.XPSpent,
		Level:           progress.Level,
		XPToNextLevel:   svc.calculateXPToNextLevel(progress.XP),
		Streak:          *svc.streakResponse(progress, progression.StreakResult{}),
		QuestsCompleted: progress.QuestsCompleted,
		TreasuresFound:  progress.TreasuresFound,
		CompletedQuests: completed,
		OwnedItems:      owned,
		TotalPlayTime:   progress.TotalPlayTime,
		Achievements:    recent,
	}, nil
}

// GetParentSummary builds the parent dashboard view.
func (svc *PlayerService) GetParentSummary(userID string) (*dto.ParentSummaryResponse, error) {
	progress, err := svc.sqlSvc.GetPlayerProgress(userID)
	if err != nil {
		return nil, err
	}

	reward, err := svc.sqlSvc.GetLoginReward(userID)
	if err != nil {
		return nil, err
	}

	achievements, err := svc.sqlSvc.GetUserAchievements(userID)
	if err != nil {
		return nil, err
	}
	tierCounts := make(map[string]int)
	for _, ua := range achievements {
		tierCounts[ua.Achievement.Tier]++
	}

	drops, err := svc.sqlSvc.GetRecentTreasures(userID, 10)
	if err != nil {
		return nil, err
	}
	treasures := make([]dto.TreasureResponse, len(drops))
	for i, d := range drops {
		treasures[i] = dto.TreasureResponse{
			TreasureID: d.TreasureID,
			Rarity:     d.Rarity,
			XPBonus:    d.XPBonus,
		}
	}

	summary := &dto.ParentSummaryResponse{
		UserID:            userID,
		Streak:            *svc.streakResponse(progress, progression.StreakResult{}),
		WeeksCompleted:    reward.TotalWeeksCompleted,
		QuestsCompleted:   progress.QuestsCompleted,
		TotalPlayTime:     progress.TotalPlayTime,
		Level:             progress.Level,
		AchievementCounts: tierCounts,
		RecentTreasures:   treasures,
	}
	if progress.LastActiveDate != "" {
		t := progression.DayKey(progress.LastActiveDate).Time()
		summary.LastActive = &t
	}
	return summary, nil
}

// ==================== LEADERBOARD METHODS ====================

func (svc *PlayerService) GetWeeklyLeaderboard(limit int, currentUserID string) (*dto.LeaderboardResponse, error) {
	if cached, ok := svc.redisSvc.GetLeaderboard("weekly"); ok && currentUserID == "" {
		return cached, nil
	}

	players, err := svc.sqlSvc.GetWeeklyLeaderboard(limit)
	if err != nil {
		return nil, err
	}
	return svc.buildLeaderboardResponse("weekly", players, currentUserID)
}

func (svc *PlayerService) GetMonthlyLeaderboard(limit int, currentUserID string) (*dto.LeaderboardResponse, error) {
	players, err := svc.sqlSvc.GetMonthlyLeaderboard(limit)
	if err != nil {
		return nil, err
	}
	return svc.buildLeaderboardResponse("monthly", players, currentUserID)
}

func (svc *PlayerService) GetAllTimeLeaderboard(limit int, currentUserID string) (*dto.LeaderboardResponse, error) {
	players, err := svc.sqlSvc.GetAllTimeLeaderboard(limit)
	if err != nil {
		return nil, err
	}
	return svc.buildLeaderboardResponse("all_time", players, currentUserID)
}

func (svc *PlayerService) buildLeaderboardResponse(period string, players []model.PlayerProgress, currentUserID string) (*dto.LeaderboardResponse, error) {
	topUsers := make([]dto.LeaderboardUserResponse, 0, len(players))
	var currentUser dto.LeaderboardUserResponse

	for i, p := range players {
		user, err := svc.sqlSvc.GetUser(p.UserID)
		if err != nil {
			log.WithError(err).WithField("user_id", p.UserID).Error("Failed to get leaderboard user")
			continue
		}

		entry := dto.LeaderboardUserResponse{
			UserID:   p.UserID,
			Username: user.Username,
			Level:    p.Level,
			XP:       p.XP,
			Streak:   p.CurrentStreak,
			Rank:     i + 1,
		}
		topUsers = append(topUsers, entry)

		if p.UserID == currentUserID {
			currentUser = entry
		}
	}

	// If current user is not in the top list, fetch their rank.
	if currentUserID != "" && currentUser.UserID == "" {
		rank, err := svc.sqlSvc.GetUserRank(currentUserID)
		if err == nil {
			progress, pErr := svc.sqlSvc.GetPlayerProgress(currentUserID)
			user, uErr := svc.sqlSvc.GetUser(currentUserID)
			if pErr == nil && uErr == nil {
				currentUser = dto.LeaderboardUserResponse{
					UserID:   currentUserID,
					Username: user.Username,
					Level:    progress.Level,
					XP:       progress.XP,
					Streak:   progress.CurrentStreak,
					Rank:     rank,
				}
			}
		}
	}

	resp := &dto.LeaderboardResponse{
		Period:      period,
		CurrentUser: currentUser,
		TopUsers:    topUsers,
	}

	if period == "weekly" && currentUserID == "" {
		svc.redisSvc.SetLeaderboard("weekly", resp)
	}
	return resp, nil
}
