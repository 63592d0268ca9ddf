package progression

import "fmt"

// Milestone is a one-time celebration for reaching an exact streak length.
type Milestone struct {
	Days         int
	Message      string
	XPMultiplier float64
}

var milestones = []Milestone{
	{Days: 3, Message: "3 days in a row! You're on fire!", XPMultiplier: 1.1},
	{Days: 7, Message: "A whole week of reading! Amazing!", XPMultiplier: 1.25},
	{Days: 14, Message: "Two weeks strong! Super reader!", XPMultiplier: 1.5},
	{Days: 30, Message: "30 days! You're a reading champion!", XPMultiplier: 2.0},
	{Days: 100, Message: "100 DAYS! Legendary reader!", XPMultiplier: 3.0},
}

// MilestoneFor returns the milestone whose threshold exactly equals the
// streak length. Exact match only, so a player is congratulated once per
// milestone instead of every day past it. Query it on streak transitions,
// not on reads.
func MilestoneFor(streakLength int) (Milestone, bool) {
	for _, m := range milestones {
		if m.Days == streakLength {
			return m, true
		}
		if m.Days > streakLength {
			break
		}
	}
	return Milestone{}, false
}

// Milestones returns the full table for display (e.g. the quest dashboard's
// upcoming-milestone strip).
func Milestones() []Milestone {
	out := make([]Milestone, len(milestones))
	copy(out, milestones)
	return out
}

func (m Milestone) String() string {
	return fmt.Sprintf("%d-day milestone (x%.2f XP)", m.Days, m.XPMultiplier)
}
