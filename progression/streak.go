package progression

// StreakState is the persisted streak snapshot for one player, as of
// LastActiveDate. An empty LastActiveDate means the player has never been
// active.
type StreakState struct {
	CurrentStreak  int
	LastActiveDate DayKey
	LongestStreak  int
	FreezeTokens   int
}

// StreakResult is the decision for one activity day. FreezeConsumed is true
// exactly when the caller must decrement the token pool by one.
type StreakResult struct {
	Streak         int
	LastActiveDate DayKey
	FreezeConsumed bool
	Broken         bool
	Continued      bool
}

// ComputeStreak decides whether today's activity continues, breaks, or
// freeze-protects the streak. It is a pure function: the caller persists the
// result and maintains LongestStreak = max(LongestStreak, Streak).
//
// Calling it again on the same day is a no-op, so the service layer can
// invoke it on every quest completion and app open without double counting.
// A freeze token bridges exactly one missed day (a 2-day gap); longer gaps
// break the streak and leave the token pool untouched.
func ComputeStreak(s StreakState, today DayKey) StreakResult {
	if s.CurrentStreak < 0 || s.LongestStreak < 0 || s.FreezeTokens < 0 {
		panic("progression: negative streak state")
	}

	if s.LastActiveDate == today {
		return StreakResult{
			Streak:         s.CurrentStreak,
			LastActiveDate: s.LastActiveDate,
		}
	}

	if s.LastActiveDate.IsZero() {
		return StreakResult{
			Streak:         1,
			LastActiveDate: today,
			Continued:      true,
		}
	}

	switch gap := DayDiff(s.LastActiveDate, today); {
	case gap == 1:
		return StreakResult{
			Streak:         s.CurrentStreak + 1,
			LastActiveDate: today,
			Continued:      true,
		}
	case gap == 2 && s.FreezeTokens > 0:
		return StreakResult{
			Streak:         s.CurrentStreak + 1,
			LastActiveDate: today,
			FreezeConsumed: true,
			Continued:      true,
		}
	default:
		return StreakResult{
			Streak:         1,
			LastActiveDate: today,
			Broken:         true,
		}
	}
}
