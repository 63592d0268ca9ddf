package progression

import "testing"

func fixedRoll(v float64) func() float64 {
	return func() float64 { return v }
}

func TestSelectTreasure_PerfectScoreBands(t *testing.T) {
	tests := []struct {
		roll       float64
		wantRarity string
	}{
		{0.05, RarityLegendary}, // inside the 10% band
		{0.099, RarityLegendary},
		{0.10, RarityEpic}, // boundary: legendary band is [0, 0.10)
		{0.39, RarityEpic},
		{0.40, RarityRare},
		{0.999, RarityRare},
	}

	for _, tt := range tests {
		got, ok := SelectTreasure(100, fixedRoll(tt.roll))
		if !ok {
			t.Errorf("SelectTreasure(100, %v) dropped nothing; perfect scores always drop", tt.roll)
			continue
		}
		if got.Rarity != tt.wantRarity {
			t.Errorf("SelectTreasure(100, %v) = %s, want %s", tt.roll, got.Rarity, tt.wantRarity)
		}
	}
}

func TestSelectTreasure_GreatBand(t *testing.T) {
	tests := []struct {
		roll       float64
		wantRarity string
	}{
		{0.10, RarityEpic},
		{0.20, RarityRare},
		{0.59, RarityRare},
		{0.60, RarityCommon},
		{0.99, RarityCommon},
	}

	for _, accuracy := range []int{80, 90, 99} {
		for _, tt := range tests {
			got, ok := SelectTreasure(accuracy, fixedRoll(tt.roll))
			if !ok || got.Rarity != tt.wantRarity {
				t.Errorf("SelectTreasure(%d, %v) = (%s, %v), want (%s, true)",
					accuracy, tt.roll, got.Rarity, ok, tt.wantRarity)
			}
		}
	}
}

func TestSelectTreasure_GoodBandCanMiss(t *testing.T) {
	if got, ok := SelectTreasure(60, fixedRoll(0.3)); !ok || got.Rarity != RarityRare {
		t.Errorf("SelectTreasure(60, 0.3) = (%s, %v), want (rare, true)", got.Rarity, ok)
	}
	if got, ok := SelectTreasure(75, fixedRoll(0.5)); !ok || got.Rarity != RarityCommon {
		t.Errorf("SelectTreasure(75, 0.5) = (%s, %v), want (common, true)", got.Rarity, ok)
	}
	if _, ok := SelectTreasure(79, fixedRoll(0.85)); ok {
		t.Error("SelectTreasure(79, 0.85) dropped something, want no drop (20% miss band)")
	}
}

func TestSelectTreasure_LowBand(t *testing.T) {
	if _, ok := SelectTreasure(30, fixedRoll(0.69)); ok {
		t.Error("SelectTreasure(30, 0.69) dropped something, want no drop")
	}
	if got, ok := SelectTreasure(59, fixedRoll(0.70)); !ok || got.Rarity != RarityCommon {
		t.Errorf("SelectTreasure(59, 0.70) = (%s, %v), want (common, true)", got.Rarity, ok)
	}
	if got, ok := SelectTreasure(0, fixedRoll(0.99)); !ok || got.Rarity != RarityCommon {
		t.Errorf("SelectTreasure(0, 0.99) = (%s, %v), want (common, true)", got.Rarity, ok)
	}
}

func TestTreasureBands_ThresholdsCoverUnitInterval(t *testing.T) {
	for _, band := range [][]weightedTier{bandPerfect, bandGreat, bandGood, bandLow} {
		prev := 0.0
		for _, tier := range band {
			if tier.upto <= prev {
				t.Errorf("band threshold %v not strictly above previous %v", tier.upto, prev)
			}
			prev = tier.upto
		}
		if prev != 1.0 {
			t.Errorf("band's last threshold = %v, want exactly 1.0", prev)
		}
	}
}

func TestSelectTreasure_BoundariesAreExact(t *testing.T) {
	// Tier boundaries must hold for rolls exactly at a threshold; a summed
	// representation would put 0.6 on the wrong side for the 80-99 band.
	if got, _ := SelectTreasure(90, fixedRoll(0.60)); got.Rarity != RarityCommon {
		t.Errorf("SelectTreasure(90, 0.60) = %s, want common", got.Rarity)
	}
	if got, _ := SelectTreasure(100, fixedRoll(0.40)); got.Rarity != RarityRare {
		t.Errorf("SelectTreasure(100, 0.40) = %s, want rare", got.Rarity)
	}
	if _, ok := SelectTreasure(70, fixedRoll(0.80)); ok {
		t.Error("SelectTreasure(70, 0.80) dropped something, want no drop")
	}
}

func TestSelectTreasure_RewardShape(t *testing.T) {
	for _, rarity := range []string{RarityCommon, RarityRare, RarityEpic, RarityLegendary} {
		r, ok := TreasureByRarity(rarity)
		if !ok {
			t.Errorf("TreasureByRarity(%s) missing", rarity)
			continue
		}
		if r.XPBonus <= 0 {
			t.Errorf("%s treasure XPBonus = %d, want > 0", rarity, r.XPBonus)
		}
		if r.ID == "" {
			t.Errorf("%s treasure has empty ID", rarity)
		}
	}
}

func TestSelectTreasure_SequenceDeterministic(t *testing.T) {
	// A supplied sequence is consumed one roll per call.
	seq := []float64{0.05, 0.95, 0.65}
	i := 0
	roll := func() float64 {
		v := seq[i]
		i++
		return v
	}

	first, _ := SelectTreasure(100, roll)
	second, _ := SelectTreasure(100, roll)
	_, third := SelectTreasure(50, roll)

	if first.Rarity != RarityLegendary {
		t.Errorf("first = %s, want legendary", first.Rarity)
	}
	if second.Rarity != RarityRare {
		t.Errorf("second = %s, want rare", second.Rarity)
	}
	if third {
		t.Error("third roll at accuracy 50 with 0.65 should miss")
	}
}
