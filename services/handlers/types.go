package handlers

import (
	"github.com/letterquest/reader_api/dto"
)

type AuthServiceInterface interface {
	Register(req dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(req dto.LoginRequest) (*dto.LoginResponse, error)
}

type JWTServiceInterface interface {
	ExtractTokenFromHeader(authHeader string) (string, error)
	VerifyJWTToken(token string) (string, error)
}

type PlayerServiceInterface interface {
	GetQuests(questType string, wilsonStep int) ([]dto.QuestResponse, error)
	GetPlayerProgress(userID string) (*dto.PlayerProgressResponse, error)
	CompleteQuest(userID string, req dto.CompleteQuestRequest) (*dto.CompleteQuestResponse, error)
	RecordAppOpen(userID string) (*dto.StreakResponse, error)
	GetParentSummary(userID string) (*dto.ParentSummaryResponse, error)
	GetWeeklyLeaderboard(limit int, currentUserID string) (*dto.LeaderboardResponse, error)
	GetMonthlyLeaderboard(limit int, currentUserID string) (*dto.LeaderboardResponse, error)
	GetAllTimeLeaderboard(limit int, currentUserID string) (*dto.LeaderboardResponse, error)
}

type RewardServiceInterface interface {
	GetDailyRewardStatus(userID string) (*dto.DailyRewardStatusResponse, error)
	ClaimDailyReward(userID string) (*dto.ClaimDailyRewardResponse, error)
	GetStore(userID string) ([]dto.StoreItemResponse, error)
	PurchaseItem(userID string, req dto.PurchaseItemRequest) (*dto.PurchaseItemResponse, error)
}

type AchievementServiceInterface interface {
	GetTrophyCase(userID string) (*dto.TrophyCaseResponse, error)
}
