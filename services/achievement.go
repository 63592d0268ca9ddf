package services

import (
	"encoding/json"

	"github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"

	"github.com/letterquest/reader_api/dto"
	"github.com/letterquest/reader_api/model"
	"github.com/letterquest/reader_api/progression"
)

// AchievementService loads the seeded catalog, snapshots player stats, and
// runs the pure evaluator, persisting any new unlocks.
type AchievementService struct {
	context.DefaultService

	sqlSvc *SqliteService
}

const ACHIEVEMENT_SVC = "achievement_svc"

func (svc AchievementService) Id() string {
	return ACHIEVEMENT_SVC
}

func (svc *AchievementService) Configure(ctx *context.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *AchievementService) Start() error {
	svc.sqlSvc = svc.Service(SQLITE_SVC).(*SqliteService)
	return nil
}

func statsFromProgress(progress *model.PlayerProgress) progression.Stats {
	var owned []string
	if err := json.Unmarshal(progress.OwnedItems, &owned); err != nil {
		owned = nil
	}

	return progression.Stats{
		TotalXP:         progress.XP,
		QuestsCompleted: progress.QuestsCompleted,
		Streak:          progress.CurrentStreak,
		LongestStreak:   progress.LongestStreak,
		Level:           progress.Level,
		OwnedItems:      len(owned),
		TreasuresFound:  progress.TreasuresFound,
	}
}

func catalogFromModels(achievements []model.Achievement) []progression.Definition {
	catalog := make([]progression.Definition, len(achievements))
	for i, a := range achievements {
		catalog[i] = progression.Definition{
			ID:        a.ID,
			Tier:      a.Tier,
			Metric:    a.Metric,
			Threshold: a.Threshold,
		}
	}
	return catalog
}

// EvaluateForPlayer runs one evaluator pass over the given snapshot and
// persists any newly unlocked achievements. Returned in catalog order so the
// client can present the first new unlock deterministically.
func (svc *AchievementService) EvaluateForPlayer(userID string, progress *model.PlayerProgress) ([]dto.AchievementResponse, error) {
	achievements, err := svc.sqlSvc.GetActiveAchievements()
	if err != nil {
		return nil, err
	}

	unlocked, err := svc.sqlSvc.GetUserAchievements(userID)
	if err != nil {
		return nil, err
	}
	already := make(map[string]bool, len(unlocked))
	for _, ua := range unlocked {
		already[ua.AchievementID] = true
	}

	ev := progression.Evaluate(statsFromProgress(progress), catalogFromModels(achievements), already)
	if len(ev.NewlyUnlocked) == 0 {
		return nil, nil
	}

	byID := make(map[string]model.Achievement, len(achievements))
	for _, a := range achievements {
		byID[a.ID] = a
	}

	newUnlocks := make([]dto.AchievementResponse, 0, len(ev.NewlyUnlocked))
	for _, def := range ev.NewlyUnlocked {
		if err := svc.sqlSvc.CreateUserAchievement(&model.UserAchievement{
			UserID:        userID,
			AchievementID: def.ID,
		}); err != nil {
			log.WithError(err).WithField("achievement_id", def.ID).Error("Failed to persist achievement unlock")
			continue
		}
		achievementsUnlockedTotal.Inc()

		a := byID[def.ID]
		newUnlocks = append(newUnlocks, dto.AchievementResponse{
			ID:          a.ID,
			Name:        a.Name,
			Description: a.Description,
			Tier:        a.Tier,
			BadgeURL:    a.BadgeURL,
			XPReward:    a.XPReward,
		})
	}

	return newUnlocks, nil
}

// GetTrophyCase returns the full catalog annotated with the player's unlock
// status and per-metric progress, for the trophy room screen.
func (svc *AchievementService) GetTrophyCase(userID string) (*dto.TrophyCaseResponse, error) {
	achievements, err := svc.sqlSvc.GetActiveAchievements()
	if err != nil {
		return nil, err
	}

	progress, err := svc.sqlSvc.GetPlayerProgress(userID)
	if err != nil {
		return nil, err
	}
	stats := statsFromProgress(progress)

	unlocked, err := svc.sqlSvc.GetUserAchievements(userID)
	if err != nil {
		return nil, err
	}
	unlockedAt := make(map[string]*model.UserAchievement, len(unlocked))
	for i := range unlocked {
		unlockedAt[unlocked[i].AchievementID] = &unlocked[i]
	}

	resp := &dto.TrophyCaseResponse{
		Achievements: make([]dto.TrophyResponse, len(achievements)),
		Total:        len(achievements),
		TierCounts:   make(map[string]int),
	}

	for i, a := range achievements {
		def := progression.Definition{ID: a.ID, Tier: a.Tier, Metric: a.Metric, Threshold: a.Threshold}
		trophy := dto.TrophyResponse{
			AchievementResponse: dto.AchievementResponse{
				ID:          a.ID,
				Name:        a.Name,
				Description: a.Description,
				Tier:        a.Tier,
				BadgeURL:    a.BadgeURL,
				XPReward:    a.XPReward,
			},
			Metric:    a.Metric,
			Threshold: a.Threshold,
			Progress:  def.Progress(stats),
		}
		if ua, ok := unlockedAt[a.ID]; ok {
			trophy.Unlocked = true
			t := ua.UnlockedAt
			trophy.UnlockedAt = &t
			resp.Unlocked++
			resp.TierCounts[a.Tier]++
		}
		resp.Achievements[i] = trophy
	}

	return resp, nil
}
