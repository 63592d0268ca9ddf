package seeders

import (
	"log"

	"gorm.io/gorm"
)

// MainSeeder coordinates all seeding operations
type MainSeeder struct {
	db *gorm.DB
}

func NewMainSeeder(db *gorm.DB) *MainSeeder {
	return &MainSeeder{db: db}
}

// SeedAll runs all seeders. None of the catalogs depend on each other, so
// order is cosmetic.
func (s *MainSeeder) SeedAll() error {
	log.Println("Starting database seeding...")

	questSeeder := NewQuestSeeder(s.db)
	if err := questSeeder.SeedQuests(); err != nil {
		log.Printf("Quest seeding failed: %v", err)
		return err
	}

	achievementSeeder := NewAchievementSeeder(s.db)
	if err := achievementSeeder.SeedAchievements(); err != nil {
		log.Printf("Achievement seeding failed: %v", err)
		return err
	}

	storeSeeder := NewStoreSeeder(s.db)
	if err := storeSeeder.SeedStoreItems(); err != nil {
		log.Printf("Store seeding failed: %v", err)
		return err
	}

	log.Println("Database seeding completed successfully!")
	return nil
}

func (s *MainSeeder) SeedAchievementsOnly() error {
	return NewAchievementSeeder(s.db).SeedAchievements()
}

func (s *MainSeeder) SeedQuestsOnly() error {
	return NewQuestSeeder(s.db).SeedQuests()
}

func (s *MainSeeder) SeedStoreOnly() error {
	return NewStoreSeeder(s.db).SeedStoreItems()
}
