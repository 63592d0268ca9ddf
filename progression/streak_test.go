package progression

import "testing"

const today = DayKey("2025-06-15")

func TestComputeStreak_FirstActivity(t *testing.T) {
	res := ComputeStreak(StreakState{}, today)

	if res.Streak != 1 {
		t.Errorf("Streak = %d, want 1", res.Streak)
	}
	if !res.Continued {
		t.Error("Continued = false, want true")
	}
	if res.Broken {
		t.Error("Broken = true, want false")
	}
	if res.LastActiveDate != today {
		t.Errorf("LastActiveDate = %s, want %s", res.LastActiveDate, today)
	}
}

func TestComputeStreak_ConsecutiveDay(t *testing.T) {
	res := ComputeStreak(StreakState{CurrentStreak: 5, LastActiveDate: "2025-06-14"}, today)

	if res.Streak != 6 {
		t.Errorf("Streak = %d, want 6", res.Streak)
	}
	if !res.Continued || res.Broken || res.FreezeConsumed {
		t.Errorf("flags = {continued:%v broken:%v freeze:%v}, want {true false false}",
			res.Continued, res.Broken, res.FreezeConsumed)
	}
}

func TestComputeStreak_SameDayIdempotent(t *testing.T) {
	state := StreakState{CurrentStreak: 5, LastActiveDate: today, FreezeTokens: 2}

	for i := 0; i < 2; i++ {
		res := ComputeStreak(state, today)
		if res.Streak != 5 {
			t.Errorf("call %d: Streak = %d, want 5", i, res.Streak)
		}
		if res.Continued || res.Broken || res.FreezeConsumed {
			t.Errorf("call %d: same-day call must set no flags", i)
		}
	}
}

func TestComputeStreak_GapBreaksWithoutFreeze(t *testing.T) {
	res := ComputeStreak(StreakState{CurrentStreak: 9, LastActiveDate: "2025-06-12"}, today)

	if res.Streak != 1 {
		t.Errorf("Streak = %d, want 1", res.Streak)
	}
	if !res.Broken {
		t.Error("Broken = false, want true")
	}
	if res.Continued || res.FreezeConsumed {
		t.Error("a broken streak must not report Continued or FreezeConsumed")
	}
}

func TestComputeStreak_FreezeBridgesOneMissedDay(t *testing.T) {
	res := ComputeStreak(StreakState{CurrentStreak: 9, LastActiveDate: "2025-06-13", FreezeTokens: 1}, today)

	if res.Streak != 10 {
		t.Errorf("Streak = %d, want 10", res.Streak)
	}
	if !res.FreezeConsumed {
		t.Error("FreezeConsumed = false, want true")
	}
	if !res.Continued || res.Broken {
		t.Error("a bridged streak must report Continued and not Broken")
	}
}

func TestComputeStreak_FreezeDoesNotBridgeLongGaps(t *testing.T) {
	// Three missed days: the token stays in the bank and the streak breaks.
	res := ComputeStreak(StreakState{CurrentStreak: 9, LastActiveDate: "2025-06-11", FreezeTokens: 3}, today)

	if !res.Broken {
		t.Error("Broken = false, want true")
	}
	if res.FreezeConsumed {
		t.Error("FreezeConsumed = true, want false: tokens bridge exactly one missed day")
	}
	if res.Streak != 1 {
		t.Errorf("Streak = %d, want 1", res.Streak)
	}
}

func TestComputeStreak_TwoDayGapWithoutTokensBreaks(t *testing.T) {
	res := ComputeStreak(StreakState{CurrentStreak: 4, LastActiveDate: "2025-06-13"}, today)

	if !res.Broken || res.Streak != 1 {
		t.Errorf("Streak = %d, Broken = %v, want 1 and true", res.Streak, res.Broken)
	}
}

func TestComputeStreak_LongestStreakMonotonic(t *testing.T) {
	// Walk a month of mixed activity; the caller-maintained longest streak
	// must never decrease.
	state := StreakState{FreezeTokens: 1}
	days := []DayKey{
		"2025-06-01", "2025-06-02", "2025-06-03", // build to 3
		"2025-06-05", // freeze bridge
		"2025-06-06",
		"2025-06-10", // break
		"2025-06-11", "2025-06-12",
	}

	prevLongest := 0
	for _, day := range days {
		res := ComputeStreak(state, day)
		state.CurrentStreak = res.Streak
		state.LastActiveDate = res.LastActiveDate
		if res.FreezeConsumed {
			state.FreezeTokens--
		}
		if res.Streak > state.LongestStreak {
			state.LongestStreak = res.Streak
		}

		if state.LongestStreak < prevLongest {
			t.Fatalf("longest streak decreased: %d -> %d on %s", prevLongest, state.LongestStreak, day)
		}
		if state.FreezeTokens < 0 {
			t.Fatalf("freeze tokens went negative on %s", day)
		}
		prevLongest = state.LongestStreak
	}

	if state.LongestStreak != 5 {
		t.Errorf("final longest streak = %d, want 5", state.LongestStreak)
	}
	if state.FreezeTokens != 0 {
		t.Errorf("freeze tokens = %d, want 0", state.FreezeTokens)
	}
}

func TestComputeStreak_NegativeStatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("negative streak state should panic")
		}
	}()
	ComputeStreak(StreakState{CurrentStreak: -1}, today)
}
