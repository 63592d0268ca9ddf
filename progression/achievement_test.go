package progression

import "testing"

func testCatalog() []Definition {
	return []Definition{
		{ID: "first_quest", Tier: TierBronze, Metric: MetricQuestsCompleted, Threshold: 1},
		{ID: "quest_10", Tier: TierSilver, Metric: MetricQuestsCompleted, Threshold: 10},
		{ID: "streak_7", Tier: TierSilver, Metric: MetricLongestStreak, Threshold: 7},
		{ID: "level_5", Tier: TierGold, Metric: MetricLevel, Threshold: 5},
		{ID: "xp_1000", Tier: TierGold, Metric: MetricTotalXP, Threshold: 1000},
		{ID: "treasure_25", Tier: TierPlatinum, Metric: MetricTreasuresFound, Threshold: 25},
	}
}

func TestEvaluate_ThresholdRules(t *testing.T) {
	stats := Stats{TotalXP: 1200, QuestsCompleted: 4, LongestStreak: 7, Level: 3}

	ev := Evaluate(stats, testCatalog(), nil)

	want := []string{"first_quest", "streak_7", "xp_1000"}
	if len(ev.NewlyUnlocked) != len(want) {
		t.Fatalf("NewlyUnlocked = %v, want ids %v", ev.NewlyUnlocked, want)
	}
	for i, id := range want {
		if ev.NewlyUnlocked[i].ID != id {
			t.Errorf("NewlyUnlocked[%d].ID = %s, want %s (catalog order)", i, ev.NewlyUnlocked[i].ID, id)
		}
		if !ev.UnlockedNow[id] {
			t.Errorf("UnlockedNow missing %s", id)
		}
	}
	if ev.UnlockedNow["quest_10"] || ev.UnlockedNow["level_5"] || ev.UnlockedNow["treasure_25"] {
		t.Error("unsatisfied rules reported as unlocked")
	}
}

func TestEvaluate_NewlyUnlockedDisjointFromAlready(t *testing.T) {
	stats := Stats{TotalXP: 1200, QuestsCompleted: 12, LongestStreak: 7, Level: 5}
	already := map[string]bool{"first_quest": true, "streak_7": true}

	ev := Evaluate(stats, testCatalog(), already)

	for _, def := range ev.NewlyUnlocked {
		if already[def.ID] {
			t.Errorf("NewlyUnlocked contains already-unlocked %s", def.ID)
		}
	}
	// Already-unlocked achievements still show as satisfied.
	if !ev.UnlockedNow["first_quest"] {
		t.Error("UnlockedNow must include already-unlocked satisfied rules")
	}
}

func TestEvaluate_Idempotent(t *testing.T) {
	stats := Stats{QuestsCompleted: 10, Level: 5}
	catalog := testCatalog()

	first := Evaluate(stats, catalog, nil)

	already := make(map[string]bool)
	for id := range first.UnlockedNow {
		already[id] = true
	}

	second := Evaluate(stats, catalog, already)
	if len(second.NewlyUnlocked) != 0 {
		t.Errorf("second pass NewlyUnlocked = %v, want empty", second.NewlyUnlocked)
	}
	if len(second.UnlockedNow) != len(first.UnlockedNow) {
		t.Errorf("UnlockedNow changed between passes: %d vs %d", len(first.UnlockedNow), len(second.UnlockedNow))
	}
}

func TestEvaluate_MonotonicOverGrowingStats(t *testing.T) {
	catalog := testCatalog()
	snapshots := []Stats{
		{QuestsCompleted: 1},
		{QuestsCompleted: 3, TotalXP: 200, LongestStreak: 3, Level: 2},
		{QuestsCompleted: 10, TotalXP: 900, LongestStreak: 7, Level: 4},
		{QuestsCompleted: 30, TotalXP: 2500, LongestStreak: 14, Level: 6, TreasuresFound: 25},
	}

	prev := map[string]bool{}
	for i, stats := range snapshots {
		ev := Evaluate(stats, catalog, nil)
		for id := range prev {
			if !ev.UnlockedNow[id] {
				t.Errorf("snapshot %d lost previously satisfied %s", i, id)
			}
		}
		prev = ev.UnlockedNow
	}
	if len(prev) != len(catalog) {
		t.Errorf("final snapshot satisfies %d rules, want all %d", len(prev), len(catalog))
	}
}

func TestEvaluate_DoesNotMutateAlreadyUnlocked(t *testing.T) {
	already := map[string]bool{"first_quest": true}
	Evaluate(Stats{QuestsCompleted: 50}, testCatalog(), already)

	if len(already) != 1 || !already["first_quest"] {
		t.Errorf("alreadyUnlocked mutated: %v", already)
	}
}

func TestDefinition_Progress(t *testing.T) {
	def := Definition{ID: "quest_10", Metric: MetricQuestsCompleted, Threshold: 10}

	tests := []struct {
		completed int
		want      int
	}{
		{0, 0},
		{4, 4},
		{10, 10},
		{50, 10}, // capped at threshold
	}
	for _, tt := range tests {
		if got := def.Progress(Stats{QuestsCompleted: tt.completed}); got != tt.want {
			t.Errorf("Progress(quests=%d) = %d, want %d", tt.completed, got, tt.want)
		}
	}
}

func TestEvaluate_UnknownMetricPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("unknown metric should panic")
		}
	}()
	Evaluate(Stats{}, []Definition{{ID: "bad", Metric: "wilson_step", Threshold: 1}}, nil)
}
