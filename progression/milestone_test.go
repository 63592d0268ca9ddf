package progression

import "testing"

func TestMilestoneFor_ExactMatchOnly(t *testing.T) {
	for _, days := range []int{3, 7, 14, 30, 100} {
		m, ok := MilestoneFor(days)
		if !ok {
			t.Errorf("MilestoneFor(%d) missing", days)
			continue
		}
		if m.Days != days {
			t.Errorf("MilestoneFor(%d).Days = %d", days, m.Days)
		}
		if m.Message == "" {
			t.Errorf("MilestoneFor(%d) has empty message", days)
		}
		if m.XPMultiplier <= 1.0 {
			t.Errorf("MilestoneFor(%d).XPMultiplier = %v, want > 1", days, m.XPMultiplier)
		}
	}

	// Days past a milestone must not re-notify.
	for _, days := range []int{0, 1, 2, 4, 8, 15, 31, 99, 101, 500} {
		if _, ok := MilestoneFor(days); ok {
			t.Errorf("MilestoneFor(%d) = hit, want miss", days)
		}
	}
}

func TestMilestones_Ascending(t *testing.T) {
	ms := Milestones()
	for i := 1; i < len(ms); i++ {
		if ms[i-1].Days >= ms[i].Days {
			t.Errorf("milestone table not strictly ascending at %d", i)
		}
		if ms[i-1].XPMultiplier >= ms[i].XPMultiplier {
			t.Errorf("milestone multipliers not increasing at %d", i)
		}
	}
}
