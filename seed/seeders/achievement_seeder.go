package seeders

import (
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/letterquest/reader_api/model"
	"github.com/letterquest/reader_api/progression"
	"github.com/letterquest/reader_api/shared"
)

// AchievementSeeder loads the achievement catalog. Every row is a threshold
// rule over one of the progression metrics.
type AchievementSeeder struct {
	db *gorm.DB
}

func NewAchievementSeeder(db *gorm.DB) *AchievementSeeder {
	return &AchievementSeeder{db: db}
}

func (s *AchievementSeeder) SeedAchievements() error {
	achievements := s.getAchievementCatalog()

	for _, achievement := range achievements {
		var existing model.Achievement
		if err := s.db.Where("id = ?", achievement.ID).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				if err := s.db.Create(&achievement).Error; err != nil {
					log.Printf("Error creating achievement %s: %v", achievement.Name, err)
					return err
				}
				log.Printf("Created achievement: %s", achievement.Name)
			} else {
				log.Printf("Error checking achievement %s: %v", achievement.Name, err)
				return err
			}
		} else {
			log.Printf("Achievement %s already exists, skipping", achievement.Name)
		}
	}

	log.Println("Achievement seeding completed successfully")
	return nil
}

func (s *AchievementSeeder) getAchievementCatalog() []model.Achievement {
	now := time.Now()

	achievements := []model.Achievement{
		{
			ID:          "ach_first_quest",
			Name:        "First Steps",
			Description: "Complete your very first quest",
			Tier:        shared.TierBronze,
			Metric:      progression.MetricQuestsCompleted,
			Threshold:   1,
			BadgeURL:    "/assets/badges/first_steps.png",
			XPReward:    10,
		},
		{
			ID:          "ach_quest_explorer",
			Name:        "Quest Explorer",
			Description: "Complete 10 quests",
			Tier:        shared.TierBronze,
			Metric:      progression.MetricQuestsCompleted,
			Threshold:   10,
			BadgeURL:    "/assets/badges/quest_explorer.png",
			XPReward:    25,
		},
		{
			ID:          "ach_quest_adventurer",
			Name:        "Quest Adventurer",
			Description: "Complete 50 quests",
			Tier:        shared.TierSilver,
			Metric:      progression.MetricQuestsCompleted,
			Threshold:   50,
			BadgeURL:    "/assets/badges/quest_adventurer.png",
			XPReward:    75,
		},
		{
			ID:          "ach_quest_champion",
			Name:        "Quest Champion",
			Description: "Complete 200 quests",
			Tier:        shared.TierGold,
			Metric:      progression.MetricQuestsCompleted,
			Threshold:   200,
			BadgeURL:    "/assets/badges/quest_champion.png",
			XPReward:    200,
		},
		{
			ID:          "ach_streak_spark",
			Name:        "Spark",
			Description: "Keep a 3-day reading streak",
			Tier:        shared.TierBronze,
			Metric:      progression.MetricStreak,
			Threshold:   3,
			BadgeURL:    "/assets/badges/spark.png",
			XPReward:    15,
		},
		{
			ID:          "ach_streak_flame",
			Name:        "Flame",
			Description: "Keep a 7-day reading streak",
			Tier:        shared.TierSilver,
			Metric:      progression.MetricStreak,
			Threshold:   7,
			BadgeURL:    "/assets/badges/flame.png",
			XPReward:    50,
		},
		{
			ID:          "ach_streak_bonfire",
			Name:        "Bonfire",
			Description: "Keep a 30-day reading streak",
			Tier:        shared.TierGold,
			Metric:      progression.MetricStreak,
			Threshold:   30,
			BadgeURL:    "/assets/badges/bonfire.png",
			XPReward:    150,
		},
		{
			ID:          "ach_streak_eternal",
			Name:        "Eternal Flame",
			Description: "Reach a 100-day streak at any point",
			Tier:        shared.TierPlatinum,
			Metric:      progression.MetricLongestStreak,
			Threshold:   100,
			BadgeURL:    "/assets/badges/eternal_flame.png",
			XPReward:    500,
		},
		{
			ID:          "ach_xp_collector",
			Name:        "XP Collector",
			Description: "Earn 500 XP",
			Tier:        shared.TierBronze,
			Metric:      progression.MetricTotalXP,
			Threshold:   500,
			BadgeURL:    "/assets/badges/xp_collector.png",
			XPReward:    25,
		},
		{
			ID:          "ach_xp_hoarder",
			Name:        "XP Hoarder",
			Description: "Earn 5000 XP",
			Tier:        shared.TierSilver,
			Metric:      progression.MetricTotalXP,
			Threshold:   5000,
			BadgeURL:    "/assets/badges/xp_hoarder.png",
			XPReward:    100,
		},
		{
			ID:          "ach_level_five",
			Name:        "Rising Reader",
			Description: "Reach level 5",
			Tier:        shared.TierBronze,
			Metric:      progression.MetricLevel,
			Threshold:   5,
			BadgeURL:    "/assets/badges/rising_reader.png",
			XPReward:    30,
		},
		{
			ID:          "ach_level_ten",
			Name:        "Word Wizard",
			Description: "Reach level 10",
			Tier:        shared.TierGold,
			Metric:      progression.MetricLevel,
			Threshold:   10,
			BadgeURL:    "/assets/badges/word_wizard.png",
			XPReward:    150,
		},
		{
			ID:          "ach_treasure_hunter",
			Name:        "Treasure Hunter",
			Description: "Find 5 treasures",
			Tier:        shared.TierBronze,
			Metric:      progression.MetricTreasuresFound,
			Threshold:   5,
			BadgeURL:    "/assets/badges/treasure_hunter.png",
			XPReward:    25,
		},
		{
			ID:          "ach_treasure_baron",
			Name:        "Treasure Baron",
			Description: "Find 25 treasures",
			Tier:        shared.TierSilver,
			Metric:      progression.MetricTreasuresFound,
			Threshold:   25,
			BadgeURL:    "/assets/badges/treasure_baron.png",
			XPReward:    100,
		},
		{
			ID:          "ach_collector",
			Name:        "Collector",
			Description: "Own 5 store items",
			Tier:        shared.TierSilver,
			Metric:      progression.MetricOwnedItems,
			Threshold:   5,
			BadgeURL:    "/assets/badges/collector.png",
			XPReward:    50,
		},
	}

	for i := range achievements {
		achievements[i].IsActive = true
		achievements[i].CreatedAt = now
		achievements[i].UpdatedAt = now
	}

	return achievements
}
