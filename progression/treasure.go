package progression

// Treasure rarities, shared with the store and drop log.
const (
	RarityCommon    = "common"
	RarityRare      = "rare"
	RarityEpic      = "epic"
	RarityLegendary = "legendary"
)

// Reward is one treasure the selector can drop.
type Reward struct {
	ID      string
	XPBonus int
	Rarity  string
}

var treasureCatalog = map[string]Reward{
	RarityCommon:    {ID: "treasure_common", XPBonus: 10, Rarity: RarityCommon},
	RarityRare:      {ID: "treasure_rare", XPBonus: 25, Rarity: RarityRare},
	RarityEpic:      {ID: "treasure_epic", XPBonus: 60, Rarity: RarityEpic},
	RarityLegendary: {ID: "treasure_legendary", XPBonus: 150, Rarity: RarityLegendary},
}

type weightedTier struct {
	rarity string  // empty means no drop
	upto   float64 // exclusive upper bound of the tier's roll range
}

// Per accuracy band, cumulative thresholds: a roll r selects the first tier
// with r < upto. The bounds are exact literals rather than summed weights so
// band boundaries do not drift with float accumulation; the last entry in
// every band is 1.0.
var (
	// legendary 10%, epic 30%, rare 60%
	bandPerfect = []weightedTier{
		{RarityLegendary, 0.10},
		{RarityEpic, 0.40},
		{RarityRare, 1.00},
	}
	// epic 20%, rare 40%, common 40%
	bandGreat = []weightedTier{
		{RarityEpic, 0.20},
		{RarityRare, 0.60},
		{RarityCommon, 1.00},
	}
	// rare 40%, common 40%, no drop 20%
	bandGood = []weightedTier{
		{RarityRare, 0.40},
		{RarityCommon, 0.80},
		{"", 1.00},
	}
	// no drop 70%, common 30%
	bandLow = []weightedTier{
		{"", 0.70},
		{RarityCommon, 1.00},
	}
)

func bandFor(accuracy int) []weightedTier {
	switch {
	case accuracy >= 100:
		return bandPerfect
	case accuracy >= 80:
		return bandGreat
	case accuracy >= 60:
		return bandGood
	default:
		return bandLow
	}
}

// SelectTreasure rolls a treasure for a quest finished at the given accuracy
// percentage. The random source is injected: roll must return a value in
// [0,1). Production passes a PRNG, tests pass a fixed sequence. The second
// return is false when the band rolled "no drop"; a perfect score always
// drops something.
func SelectTreasure(accuracy int, roll func() float64) (Reward, bool) {
	r := roll()
	band := bandFor(accuracy)
	for _, tier := range band {
		if r < tier.upto {
			if tier.rarity == "" {
				return Reward{}, false
			}
			return treasureCatalog[tier.rarity], true
		}
	}
	// roll returned a value at or above 1.0; fall through to the band's last
	// tier.
	last := band[len(band)-1]
	if last.rarity == "" {
		return Reward{}, false
	}
	return treasureCatalog[last.rarity], true
}

// TreasureByRarity exposes the drop catalog for seeding and display.
func TreasureByRarity(rarity string) (Reward, bool) {
	r, ok := treasureCatalog[rarity]
	return r, ok
}
