package services

import (
	"testing"

	"github.com/letterquest/reader_api/model"
	"github.com/letterquest/reader_api/shared"
)

func TestGetQuests_FiltersActiveCatalog(t *testing.T) {
	ds := newTestStore(t)
	playerSvc := &PlayerService{sqlSvc: ds}

	quests := []*model.Quest{
		{ID: "q_spelling_2", Title: "Spelling Bee 2", Type: shared.QuestTypeSpelling, WilsonStep: 2, BaseXP: 35, IsActive: true},
		{ID: "q_sound_1", Title: "Sound Match 1", Type: shared.QuestTypeSoundMatch, WilsonStep: 1, BaseXP: 20, IsActive: true},
		{ID: "q_retired", Title: "Retired Quest", Type: shared.QuestTypeSpelling, WilsonStep: 2, BaseXP: 35, IsActive: true},
	}
	for _, q := range quests {
		if _, err := ds.CreateQuest(q); err != nil {
			t.Fatalf("CreateQuest(%s) error: %v", q.ID, err)
		}
	}
	// Deactivate directly: a create with IsActive false would be overridden
	// by the column default.
	if err := ds.Db().Model(&model.Quest{}).Where("id = ?", "q_retired").
		Update("is_active", false).Error; err != nil {
		t.Fatalf("deactivate error: %v", err)
	}

	all, err := playerSvc.GetQuests("", 0)
	if err != nil {
		t.Fatalf("GetQuests() error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("GetQuests() returned %d quests, want 2 active", len(all))
	}

	filtered, err := playerSvc.GetQuests(shared.QuestTypeSpelling, 2)
	if err != nil {
		t.Fatalf("GetQuests(spelling, 2) error: %v", err)
	}
	if len(filtered) != 1 || filtered[0].ID != "q_spelling_2" {
		t.Errorf("GetQuests(spelling, 2) = %+v, want only q_spelling_2", filtered)
	}
}
