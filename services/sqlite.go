package services

import (
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/alphabatem/common/context"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/letterquest/reader_api/model"
	"github.com/letterquest/reader_api/shared"
)

type SqliteService struct {
	context.DefaultService
	db *gorm.DB

	database string
}

const SQLITE_SVC = "sqlite_svc"

// Id returns Service ID
func (ds SqliteService) Id() string {
	return SQLITE_SVC
}

// Db Access to raw SqliteService db
func (ds SqliteService) Db() *gorm.DB {
	return ds.db
}

// Configure the service
func (ds *SqliteService) Configure(ctx *context.Context) error {
	ds.database = os.Getenv("DB_DATABASE")
	if ds.database == "" {
		ds.database = "letterquest.db"
	}

	return ds.DefaultService.Configure(ctx)
}

// Start the service and open connection to the database
// Migrate any tables that have changed since last runtime
func (ds *SqliteService) Start() (err error) {
	ds.db, err = gorm.Open(sqlite.Open(ds.database), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		return err
	}

	models := []interface{}{
		&model.User{},
		&model.PlayerProgress{},
		&model.Quest{},
		&model.QuestAttempt{},
		&model.LoginReward{},
		&model.TreasureDrop{},
		&model.StoreItem{},
		&model.Achievement{},
		&model.UserAchievement{},
	}

	err = ds.db.AutoMigrate(models...)
	if err != nil {
		log.Printf("Failed to migrate database: %v", err)
		return err
	}

	log.Println("Database connected and migrated successfully")
	return nil
}

func (ds *SqliteService) Shutdown() {
}

func (ds *SqliteService) HandleError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return &shared.AppError{StatusCode: http.StatusNotFound, Message: "Not Found", Err: err}
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return &shared.AppError{StatusCode: http.StatusConflict, Message: "Conflict", Err: err}
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return &shared.AppError{StatusCode: http.StatusBadRequest, Message: "Bad Request", Err: err}
	default:
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return &shared.AppError{StatusCode: http.StatusConflict, Message: "Conflict", Err: err}
		}
		return &shared.AppError{StatusCode: http.StatusInternalServerError, Message: "Internal Server Error", Err: err}
	}
}

// ==================== USER METHODS ====================

func (ds *SqliteService) CreateUser(user *model.User) (*model.User, error) {
	if user.ID == "" {
		id, _ := uuid.NewV7()
		user.ID = id.String()
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()

	if err := ds.db.Create(user).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return user, nil
}

func (ds *SqliteService) GetUser(userID string) (*model.User, error) {
	var user model.User
	if err := ds.db.Where("id = ? AND deleted_at IS NULL", userID).First(&user).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return &user, nil
}

func (ds *SqliteService) GetUserByEmailOrUsername(emailOrUsername string) (*model.User, error) {
	var user model.User
	if err := ds.db.Where("(LOWER(email) = LOWER(?) OR LOWER(username) = LOWER(?)) AND deleted_at IS NULL",
		emailOrUsername, emailOrUsername).First(&user).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return &user, nil
}

func (ds *SqliteService) GetUserByUsername(username string) (*model.User, error) {
	var user model.User
	if err := ds.db.Where("LOWER(username) = LOWER(?) AND deleted_at IS NULL", username).First(&user).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return &user, nil
}

func (ds *SqliteService) UpdateUser(user *model.User) error {
	user.UpdatedAt = time.Now()
	if err := ds.db.Save(user).Error; err != nil {
		return ds.HandleError(err)
	}
	return nil
}

// ==================== PLAYER PROGRESS METHODS ====================

func (ds *SqliteService) CreatePlayerProgress(progress *model.PlayerProgress) (*model.PlayerProgress, error) {
	if progress.ID == "" {
		id, _ := uuid.NewV7()
		progress.ID = id.String()
	}
	progress.CreatedAt = time.Now()
	progress.UpdatedAt = time.Now()

	if err := ds.db.Create(progress).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return progress, nil
}

func (ds *SqliteService) GetPlayerProgress(userID string) (*model.PlayerProgress, error) {
	var progress model.PlayerProgress
	if err := ds.db.Where("user_id = ?", userID).First(&progress).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return &progress, nil
}

func (ds *SqliteService) UpdatePlayerProgress(progress *model.PlayerProgress) error {
	progress.UpdatedAt = time.Now()
	if err := ds.db.Save(progress).Error; err != nil {
		return ds.HandleError(err)
	}
	return nil
}

// GetPlayersLastActiveOn returns progress rows whose streak is alive as of
// the given day key. Used by the nightly streak-at-risk scan.
func (ds *SqliteService) GetPlayersLastActiveOn(dayKey string) ([]model.PlayerProgress, error) {
	var players []model.PlayerProgress
	if err := ds.db.Where("last_active_date = ? AND current_streak > 0", dayKey).
		Find(&players).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return players, nil
}

// ==================== QUEST METHODS ====================

func (ds *SqliteService) CreateQuest(quest *model.Quest) (*model.Quest, error) {
	if quest.ID == "" {
		id, _ := uuid.NewV7()
		quest.ID = id.String()
	}
	quest.CreatedAt = time.Now()
	quest.UpdatedAt = time.Now()

	if err := ds.db.Create(quest).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return quest, nil
}

func (ds *SqliteService) GetQuest(id string) (*model.Quest, error) {
	var quest model.Quest
	if err := ds.db.Where("id = ?", id).First(&quest).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return &quest, nil
}

func (ds *SqliteService) GetActiveQuests(questType string, wilsonStep int) ([]model.Quest, error) {
	query := ds.db.Where("is_active = ?", true)
	if questType != "" {
		query = query.Where("type = ?", questType)
	}
	if wilsonStep > 0 {
		query = query.Where("wilson_step = ?", wilsonStep)
	}

	var quests []model.Quest
	if err := query.Order("wilson_step ASC, title ASC").Find(&quests).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return quests, nil
}

func (ds *SqliteService) CreateQuestAttempt(attempt *model.QuestAttempt) error {
	if attempt.ID == "" {
		id, _ := uuid.NewV7()
		attempt.ID = id.String()
	}
	attempt.CreatedAt = time.Now()

	if err := ds.db.Create(attempt).Error; err != nil {
		return ds.HandleError(err)
	}
	return nil
}

// ==================== LOGIN REWARD METHODS ====================

func (ds *SqliteService) GetLoginReward(userID string) (*model.LoginReward, error) {
	var reward model.LoginReward
	if err := ds.db.Where("user_id = ?", userID).First(&reward).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return &reward, nil
}

func (ds *SqliteService) CreateLoginReward(reward *model.LoginReward) (*model.LoginReward, error) {
	if reward.ID == "" {
		id, _ := uuid.NewV7()
		reward.ID = id.String()
	}
	reward.CreatedAt = time.Now()
	reward.UpdatedAt = time.Now()

	if err := ds.db.Create(reward).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return reward, nil
}

func (ds *SqliteService) UpdateLoginReward(reward *model.LoginReward) error {
	reward.UpdatedAt = time.Now()
	if err := ds.db.Save(reward).Error; err != nil {
		return ds.HandleError(err)
	}
	return nil
}

// ==================== TREASURE METHODS ====================

func (ds *SqliteService) CreateTreasureDrop(drop *model.TreasureDrop) error {
	if drop.ID == "" {
		id, _ := uuid.NewV7()
		drop.ID = id.String()
	}
	drop.CreatedAt = time.Now()

	if err := ds.db.Create(drop).Error; err != nil {
		return ds.HandleError(err)
	}
	return nil
}

func (ds *SqliteService) GetRecentTreasures(userID string, limit int) ([]model.TreasureDrop, error) {
	var drops []model.TreasureDrop
	if err := ds.db.Where("user_id = ?", userID).
		Order("created_at DESC").Limit(limit).Find(&drops).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return drops, nil
}

// ==================== STORE METHODS ====================

func (ds *SqliteService) GetActiveStoreItems() ([]model.StoreItem, error) {
	var items []model.StoreItem
	if err := ds.db.Where("is_active = ?", true).Order("cost ASC").Find(&items).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return items, nil
}

func (ds *SqliteService) GetStoreItem(id string) (*model.StoreItem, error) {
	var item model.StoreItem
	if err := ds.db.Where("id = ? AND is_active = ?", id, true).First(&item).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return &item, nil
}

func (ds *SqliteService) CreateStoreItem(item *model.StoreItem) (*model.StoreItem, error) {
	if item.ID == "" {
		id, _ := uuid.NewV7()
		item.ID = id.String()
	}
	item.CreatedAt = time.Now()
	item.UpdatedAt = time.Now()

	if err := ds.db.Create(item).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return item, nil
}

// ==================== ACHIEVEMENT METHODS ====================

func (ds *SqliteService) CreateAchievement(achievement *model.Achievement) (*model.Achievement, error) {
	if achievement.ID == "" {
		id, _ := uuid.NewV7()
		achievement.ID = id.String()
	}
	achievement.CreatedAt = time.Now()
	achievement.UpdatedAt = time.Now()

	if err := ds.db.Create(achievement).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return achievement, nil
}

func (ds *SqliteService) GetActiveAchievements() ([]model.Achievement, error) {
	var achievements []model.Achievement
	if err := ds.db.Where("is_active = ?", true).
		Order("threshold ASC").Find(&achievements).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return achievements, nil
}

func (ds *SqliteService) CreateUserAchievement(userAchievement *model.UserAchievement) error {
	if userAchievement.ID == "" {
		id, _ := uuid.NewV7()
		userAchievement.ID = id.String()
	}
	userAchievement.CreatedAt = time.Now()
	userAchievement.UnlockedAt = time.Now()

	if err := ds.db.Create(userAchievement).Error; err != nil {
		return ds.HandleError(err)
	}
	return nil
}

func (ds *SqliteService) GetUserAchievements(userID string) ([]model.UserAchievement, error) {
	var userAchievements []model.UserAchievement
	if err := ds.db.Preload("Achievement").Where("user_id = ?", userID).
		Find(&userAchievements).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return userAchievements, nil
}

// ==================== LEADERBOARD METHODS ====================

func (ds *SqliteService) GetWeeklyLeaderboard(limit int) ([]model.PlayerProgress, error) {
	var players []model.PlayerProgress
	weekAgo := time.Now().AddDate(0, 0, -7)

	if err := ds.db.Where("updated_at >= ?", weekAgo).
		Order("xp DESC").Limit(limit).Find(&players).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return players, nil
}

func (ds *SqliteService) GetMonthlyLeaderboard(limit int) ([]model.PlayerProgress, error) {
	var players []model.PlayerProgress
	monthAgo := time.Now().AddDate(0, -1, 0)

	if err := ds.db.Where("updated_at >= ?", monthAgo).
		Order("xp DESC").Limit(limit).Find(&players).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return players, nil
}

func (ds *SqliteService) GetAllTimeLeaderboard(limit int) ([]model.PlayerProgress, error) {
	var players []model.PlayerProgress
	if err := ds.db.Order("xp DESC").Limit(limit).Find(&players).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return players, nil
}

func (ds *SqliteService) GetUserRank(userID string) (int, error) {
	progress, err := ds.GetPlayerProgress(userID)
	if err != nil {
		return 0, err
	}

	var ahead int64
	if err := ds.db.Model(&model.PlayerProgress{}).
		Where("xp > ?", progress.XP).Count(&ahead).Error; err != nil {
		return 0, ds.HandleError(err)
	}
	return int(ahead) + 1, nil
}
