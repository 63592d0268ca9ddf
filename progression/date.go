package progression

import "time"

const dayKeyLayout = "2006-01-02"

// DayKey identifies a calendar day in the player's local timezone as
// YYYY-MM-DD. Lexicographic order of keys matches chronological order.
type DayKey string

func (k DayKey) IsZero() bool {
	return k == ""
}

func (k DayKey) Time() time.Time {
	t, err := time.Parse(dayKeyLayout, string(k))
	if err != nil {
		panic("progression: malformed day key: " + string(k))
	}
	return t
}

// Today returns the calendar day key for the given instant in its own
// location. Two instants on the same local day map to the same key.
func Today(now time.Time) DayKey {
	return DayKey(now.Format(dayKeyLayout))
}

// DayDiff returns the number of calendar days from a to b, positive when b
// is later. Only the date part matters; month and year boundaries are
// handled by the calendar, not by wall-clock arithmetic.
func DayDiff(a, b DayKey) int {
	return int(b.Time().Sub(a.Time()).Hours() / 24)
}
