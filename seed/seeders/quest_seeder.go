package seeders

import (
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/letterquest/reader_api/model"
	"github.com/letterquest/reader_api/shared"
)

// QuestSeeder loads the quest catalog: one entry per mini-game per Wilson
// step. Content payloads live in the client bundle, keyed by quest ID.
type QuestSeeder struct {
	db *gorm.DB
}

func NewQuestSeeder(db *gorm.DB) *QuestSeeder {
	return &QuestSeeder{db: db}
}

func (s *QuestSeeder) SeedQuests() error {
	quests := s.getQuestCatalog()

	for _, quest := range quests {
		var existing model.Quest
		if err := s.db.Where("id = ?", quest.ID).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				if err := s.db.Create(&quest).Error; err != nil {
					log.Printf("Error creating quest %s: %v", quest.Title, err)
					return err
				}
			} else {
				log.Printf("Error checking quest %s: %v", quest.Title, err)
				return err
			}
		}
	}

	log.Printf("Quest seeding completed successfully (%d quests)", len(quests))
	return nil
}

func (s *QuestSeeder) getQuestCatalog() []model.Quest {
	now := time.Now()

	// Base XP grows with the Wilson step so later material pays more.
	types := []struct {
		questType string
		title     string
		baseXP    int
	}{
		{shared.QuestTypeSoundMatch, "Sound Match", 20},
		{shared.QuestTypeWordBuilder, "Word Builder", 25},
		{shared.QuestTypeRhymeTime, "Rhyme Time", 20},
		{shared.QuestTypeMemoryMatch, "Memory Match", 15},
		{shared.QuestTypeSyllableCount, "Syllable Count", 25},
		{shared.QuestTypeSpelling, "Spelling Bee", 30},
		{shared.QuestTypeVocabulary, "Word Meanings", 25},
	}

	var quests []model.Quest
	for step := 1; step <= 6; step++ {
		for _, t := range types {
			quests = append(quests, model.Quest{
				ID:         fmt.Sprintf("quest_%s_step%d", t.questType, step),
				Title:      fmt.Sprintf("%s %d", t.title, step),
				Type:       t.questType,
				WilsonStep: step,
				BaseXP:     t.baseXP + (step-1)*5,
				IsActive:   true,
				CreatedAt:  now,
				UpdatedAt:  now,
			})
		}
	}

	return quests
}
