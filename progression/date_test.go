package progression

import (
	"testing"
	"time"
)

func TestToday_SameLocalDay(t *testing.T) {
	loc := time.FixedZone("test", 7*3600)
	morning := time.Date(2025, 3, 9, 0, 0, 1, 0, loc)
	night := time.Date(2025, 3, 9, 23, 59, 59, 0, loc)

	if Today(morning) != Today(night) {
		t.Errorf("Today(morning) = %s, Today(night) = %s, want equal", Today(morning), Today(night))
	}
	if got := Today(morning); got != "2025-03-09" {
		t.Errorf("Today() = %s, want 2025-03-09", got)
	}
}

func TestDayDiff(t *testing.T) {
	tests := []struct {
		a, b DayKey
		want int
	}{
		{"2025-03-09", "2025-03-09", 0},
		{"2025-03-09", "2025-03-10", 1},
		{"2025-03-10", "2025-03-09", -1},
		{"2025-02-28", "2025-03-01", 1},  // month boundary
		{"2024-02-28", "2024-03-01", 2},  // leap year
		{"2024-12-31", "2025-01-01", 1},  // year boundary
		{"2025-01-01", "2025-12-31", 364},
		{"2025-03-01", "2025-03-08", 7},
	}

	for _, tt := range tests {
		if got := DayDiff(tt.a, tt.b); got != tt.want {
			t.Errorf("DayDiff(%s, %s) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestDayKey_LexicographicOrder(t *testing.T) {
	// Lexicographic order of keys must match chronological order.
	days := []DayKey{"2024-12-31", "2025-01-01", "2025-01-02", "2025-02-01", "2025-10-09"}
	for i := 1; i < len(days); i++ {
		if !(days[i-1] < days[i]) {
			t.Errorf("%s should sort before %s", days[i-1], days[i])
		}
		if DayDiff(days[i-1], days[i]) <= 0 {
			t.Errorf("DayDiff(%s, %s) should be positive", days[i-1], days[i])
		}
	}
}

func TestDayKey_Time_MalformedPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Time() on malformed key should panic")
		}
	}()
	DayKey("09/03/2025").Time()
}
