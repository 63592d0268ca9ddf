package progression

// LoginRewardState is the persisted 7-day login reward cycle position for
// one player. ConsecutiveDays is not capped at 7; it indexes the reward
// table modulo 7 and counts completed weeks.
type LoginRewardState struct {
	LastClaimDate       DayKey
	ConsecutiveDays     int
	TotalWeeksCompleted int
}

// DayReward is one entry of the fixed 7-day reward table.
type DayReward struct {
	Day       int
	XP        int
	IsSpecial bool
}

var rewardCycle = [7]DayReward{
	{Day: 1, XP: 10},
	{Day: 2, XP: 15},
	{Day: 3, XP: 20},
	{Day: 4, XP: 25},
	{Day: 5, XP: 30},
	{Day: 6, XP: 40},
	{Day: 7, XP: 75, IsSpecial: true},
}

// ClaimEvaluation reports what a claim today would yield, without changing
// any state. Stable for the same inputs on the same day.
type ClaimEvaluation struct {
	CanClaim        bool
	Reward          DayReward
	IsNewCycleStart bool
}

// ClaimOutcome reports what an applied claim granted.
type ClaimOutcome struct {
	Reward          DayReward
	WeekCompleted   bool
	FreezeGranted   bool
	IsNewCycleStart bool
}

// RewardCycle returns the fixed 7-entry table keyed by day-in-cycle.
func RewardCycle() []DayReward {
	out := make([]DayReward, len(rewardCycle))
	copy(out[:], rewardCycle[:])
	return out
}

// nextCycleDay is the 1..7 position the next claim lands on. A gap of more
// than one day since the last claim restarts the cycle; this ledger has its
// own reset rule and never consults the streak freeze-token pool.
func nextCycleDay(s LoginRewardState, today DayKey) (day int, newCycle bool) {
	if s.ConsecutiveDays < 0 || s.TotalWeeksCompleted < 0 {
		panic("progression: negative login reward state")
	}
	if s.LastClaimDate.IsZero() || DayDiff(s.LastClaimDate, today) > 1 {
		return 1, true
	}
	return s.ConsecutiveDays%7 + 1, false
}

// EvaluateClaim answers "can the player claim today, and what for". It is
// side-effect free; call it as often as the dashboard renders.
func EvaluateClaim(s LoginRewardState, today DayKey) ClaimEvaluation {
	day, newCycle := nextCycleDay(s, today)
	return ClaimEvaluation{
		CanClaim:        s.LastClaimDate != today,
		Reward:          rewardCycle[day-1],
		IsNewCycleStart: newCycle,
	}
}

// ApplyClaim records today's claim and returns the new state. Claiming twice
// on one day returns the state unchanged with a zero outcome; the claim gate
// is LastClaimDate != today. Completing day 7 increments the completed-week
// count and grants the cycle's bonus item, a streak freeze token.
func ApplyClaim(s LoginRewardState, today DayKey) (LoginRewardState, ClaimOutcome) {
	if s.LastClaimDate == today {
		return s, ClaimOutcome{}
	}

	day, newCycle := nextCycleDay(s, today)

	next := s
	next.LastClaimDate = today
	if newCycle {
		next.ConsecutiveDays = 1
	} else {
		next.ConsecutiveDays++
	}

	out := ClaimOutcome{
		Reward:          rewardCycle[day-1],
		IsNewCycleStart: newCycle,
	}
	if next.ConsecutiveDays > 0 && next.ConsecutiveDays%7 == 0 {
		next.TotalWeeksCompleted++
		out.WeekCompleted = true
		out.FreezeGranted = true
	}
	return next, out
}
