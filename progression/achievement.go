package progression

// Achievement tiers, lowest to highest.
const (
	TierBronze   = "bronze"
	TierSilver   = "silver"
	TierGold     = "gold"
	TierPlatinum = "platinum"
)

// Metrics a threshold rule can inspect. All are cumulative and
// non-decreasing over a player's lifetime, which is what keeps unlocks
// monotonic.
const (
	MetricTotalXP         = "total_xp"
	MetricQuestsCompleted = "quests_completed"
	MetricStreak          = "streak"
	MetricLongestStreak   = "longest_streak"
	MetricLevel           = "level"
	MetricOwnedItems      = "owned_items"
	MetricTreasuresFound  = "treasures_found"
)

// Stats is a read-only snapshot of cumulative player statistics.
type Stats struct {
	TotalXP         int
	QuestsCompleted int
	Streak          int
	LongestStreak   int
	Level           int
	OwnedItems      int
	TreasuresFound  int
}

// Definition is one catalog entry: a tagged threshold rule rather than a
// closure, so the catalog stays data-driven and testable apart from the
// evaluator. Satisfied when the named metric reaches Threshold.
type Definition struct {
	ID        string
	Tier      string
	Metric    string
	Threshold int
}

// Evaluation is the result of one evaluator pass.
type Evaluation struct {
	// UnlockedNow holds every catalog ID whose rule the snapshot satisfies.
	UnlockedNow map[string]bool
	// NewlyUnlocked holds the definitions satisfied now but absent from the
	// caller's already-unlocked set, in catalog order.
	NewlyUnlocked []Definition
}

func (d Definition) satisfied(s Stats) bool {
	return d.metricValue(s) >= d.Threshold
}

// Progress reports how far a snapshot is towards this rule's threshold,
// capped at the threshold.
func (d Definition) Progress(s Stats) int {
	v := d.metricValue(s)
	if v > d.Threshold {
		return d.Threshold
	}
	return v
}

func (d Definition) metricValue(s Stats) int {
	switch d.Metric {
	case MetricTotalXP:
		return s.TotalXP
	case MetricQuestsCompleted:
		return s.QuestsCompleted
	case MetricStreak:
		return s.Streak
	case MetricLongestStreak:
		return s.LongestStreak
	case MetricLevel:
		return s.Level
	case MetricOwnedItems:
		return s.OwnedItems
	case MetricTreasuresFound:
		return s.TreasuresFound
	default:
		panic("progression: unknown achievement metric: " + d.Metric)
	}
}

// Evaluate returns the currently satisfied achievements and, by diffing
// against alreadyUnlocked, the newly unlocked subset. Pure: it never mutates
// alreadyUnlocked, and with an up-to-date alreadyUnlocked set a second call
// yields an empty NewlyUnlocked. The caller persists the union of
// alreadyUnlocked and UnlockedNow.
func Evaluate(stats Stats, catalog []Definition, alreadyUnlocked map[string]bool) Evaluation {
	ev := Evaluation{UnlockedNow: make(map[string]bool, len(catalog))}
	for _, def := range catalog {
		if !def.satisfied(stats) {
			continue
		}
		ev.UnlockedNow[def.ID] = true
		if !alreadyUnlocked[def.ID] {
			ev.NewlyUnlocked = append(ev.NewlyUnlocked, def)
		}
	}
	return ev
}
