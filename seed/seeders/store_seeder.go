package seeders

import (
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/letterquest/reader_api/model"
	"github.com/letterquest/reader_api/shared"
)

// StoreSeeder loads the reward store catalog.
type StoreSeeder struct {
	db *gorm.DB
}

func NewStoreSeeder(db *gorm.DB) *StoreSeeder {
	return &StoreSeeder{db: db}
}

func (s *StoreSeeder) SeedStoreItems() error {
	items := s.getStoreCatalog()

	for _, item := range items {
		var existing model.StoreItem
		if err := s.db.Where("id = ?", item.ID).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				if err := s.db.Create(&item).Error; err != nil {
					log.Printf("Error creating store item %s: %v", item.Name, err)
					return err
				}
				log.Printf("Created store item: %s", item.Name)
			} else {
				log.Printf("Error checking store item %s: %v", item.Name, err)
				return err
			}
		} else {
			log.Printf("Store item %s already exists, skipping", item.Name)
		}
	}

	log.Println("Store seeding completed successfully")
	return nil
}

func (s *StoreSeeder) getStoreCatalog() []model.StoreItem {
	now := time.Now()

	items := []model.StoreItem{
		{
			ID:          "item_avatar_fox",
			Name:        "Fox Avatar",
			Description: "A clever fox to read alongside you",
			Category:    "avatar",
			Cost:        100,
			Rarity:      shared.RarityCommon,
		},
		{
			ID:          "item_avatar_owl",
			Name:        "Owl Avatar",
			Description: "A wise owl companion",
			Category:    "avatar",
			Cost:        100,
			Rarity:      shared.RarityCommon,
		},
		{
			ID:          "item_avatar_dragon",
			Name:        "Dragon Avatar",
			Description: "A friendly book-loving dragon",
			Category:    "avatar",
			Cost:        400,
			Rarity:      shared.RarityEpic,
		},
		{
			ID:          "item_theme_ocean",
			Name:        "Ocean Theme",
			Description: "Turn your library into an underwater world",
			Category:    "theme",
			Cost:        250,
			Rarity:      shared.RarityRare,
		},
		{
			ID:          "item_theme_space",
			Name:        "Space Theme",
			Description: "Read among the stars",
			Category:    "theme",
			Cost:        250,
			Rarity:      shared.RarityRare,
		},
		{
			ID:          "item_theme_castle",
			Name:        "Castle Theme",
			Description: "A royal reading room",
			Category:    "theme",
			Cost:        600,
			Rarity:      shared.RarityLegendary,
		},
		{
			ID:          "item_sticker_star",
			Name:        "Gold Star Sticker Pack",
			Description: "Shiny stars for your trophy shelf",
			Category:    "sticker",
			Cost:        50,
			Rarity:      shared.RarityCommon,
		},
		{
			ID:          "item_sticker_animals",
			Name:        "Animal Sticker Pack",
			Description: "A parade of animal friends",
			Category:    "sticker",
			Cost:        75,
			Rarity:      shared.RarityCommon,
		},
	}

	for i := range items {
		items[i].IsActive = true
		items[i].CreatedAt = now
		items[i].UpdatedAt = now
	}

	return items
}
