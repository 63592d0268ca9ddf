package progression

import "testing"

func TestEvaluateClaim_FirstEver(t *testing.T) {
	ev := EvaluateClaim(LoginRewardState{}, today)

	if !ev.CanClaim {
		t.Error("CanClaim = false, want true")
	}
	if !ev.IsNewCycleStart {
		t.Error("IsNewCycleStart = false, want true")
	}
	if ev.Reward.Day != 1 {
		t.Errorf("Reward.Day = %d, want 1", ev.Reward.Day)
	}
}

func TestEvaluateClaim_SameDayGate(t *testing.T) {
	state := LoginRewardState{LastClaimDate: today, ConsecutiveDays: 3}
	ev := EvaluateClaim(state, today)

	if ev.CanClaim {
		t.Error("CanClaim = true after claiming today, want false")
	}
}

func TestEvaluateClaim_StableWithoutApply(t *testing.T) {
	state := LoginRewardState{LastClaimDate: "2025-06-14", ConsecutiveDays: 3}

	first := EvaluateClaim(state, today)
	second := EvaluateClaim(state, today)
	if first != second {
		t.Errorf("repeated evaluation differs: %+v vs %+v", first, second)
	}
	if first.Reward.Day != 4 {
		t.Errorf("Reward.Day = %d, want 4", first.Reward.Day)
	}
}

func TestApplyClaim_ContinuesCycle(t *testing.T) {
	state := LoginRewardState{LastClaimDate: "2025-06-14", ConsecutiveDays: 2}

	next, out := ApplyClaim(state, today)
	if next.ConsecutiveDays != 3 {
		t.Errorf("ConsecutiveDays = %d, want 3", next.ConsecutiveDays)
	}
	if next.LastClaimDate != today {
		t.Errorf("LastClaimDate = %s, want %s", next.LastClaimDate, today)
	}
	if out.Reward.Day != 3 {
		t.Errorf("Reward.Day = %d, want 3", out.Reward.Day)
	}
	if out.WeekCompleted || out.FreezeGranted {
		t.Error("mid-cycle claim must not complete a week or grant a freeze")
	}
}

func TestApplyClaim_GapRestartsCycle(t *testing.T) {
	// Two missed days: the reward cycle restarts, no freeze interaction.
	state := LoginRewardState{LastClaimDate: "2025-06-12", ConsecutiveDays: 5, TotalWeeksCompleted: 2}

	next, out := ApplyClaim(state, today)
	if !out.IsNewCycleStart {
		t.Error("IsNewCycleStart = false, want true")
	}
	if next.ConsecutiveDays != 1 {
		t.Errorf("ConsecutiveDays = %d, want 1", next.ConsecutiveDays)
	}
	if next.TotalWeeksCompleted != 2 {
		t.Errorf("TotalWeeksCompleted = %d, want 2 (unchanged)", next.TotalWeeksCompleted)
	}
	if out.Reward.Day != 1 {
		t.Errorf("Reward.Day = %d, want 1", out.Reward.Day)
	}
}

func TestApplyClaim_DaySevenCompletesWeek(t *testing.T) {
	state := LoginRewardState{LastClaimDate: "2025-06-14", ConsecutiveDays: 6, TotalWeeksCompleted: 0}

	next, out := ApplyClaim(state, today)
	if next.ConsecutiveDays != 7 {
		t.Errorf("ConsecutiveDays = %d, want 7", next.ConsecutiveDays)
	}
	if next.TotalWeeksCompleted != 1 {
		t.Errorf("TotalWeeksCompleted = %d, want 1", next.TotalWeeksCompleted)
	}
	if !out.WeekCompleted {
		t.Error("WeekCompleted = false, want true")
	}
	if !out.FreezeGranted {
		t.Error("FreezeGranted = false, want true: day 7 carries the bonus item")
	}
	if !out.Reward.IsSpecial {
		t.Error("day-7 reward must be flagged special")
	}
}

func TestApplyClaim_SameDayNoOp(t *testing.T) {
	state := LoginRewardState{LastClaimDate: today, ConsecutiveDays: 4, TotalWeeksCompleted: 1}

	next, out := ApplyClaim(state, today)
	if next != state {
		t.Errorf("same-day claim mutated state: %+v", next)
	}
	if out != (ClaimOutcome{}) {
		t.Errorf("same-day claim produced an outcome: %+v", out)
	}
}

func TestApplyClaim_SecondWeekWrapsTable(t *testing.T) {
	// Day 8 of an unbroken run lands on table day 1 again.
	state := LoginRewardState{LastClaimDate: "2025-06-14", ConsecutiveDays: 7, TotalWeeksCompleted: 1}

	next, out := ApplyClaim(state, today)
	if out.Reward.Day != 1 {
		t.Errorf("Reward.Day = %d, want 1", out.Reward.Day)
	}
	if next.ConsecutiveDays != 8 {
		t.Errorf("ConsecutiveDays = %d, want 8", next.ConsecutiveDays)
	}
	if out.WeekCompleted {
		t.Error("day 8 must not complete a week")
	}
}

func TestRewardCycle_Shape(t *testing.T) {
	cycle := RewardCycle()
	if len(cycle) != 7 {
		t.Fatalf("len(cycle) = %d, want 7", len(cycle))
	}
	for i, r := range cycle {
		if r.Day != i+1 {
			t.Errorf("cycle[%d].Day = %d, want %d", i, r.Day, i+1)
		}
		if r.XP <= 0 {
			t.Errorf("cycle[%d].XP = %d, want > 0", i, r.XP)
		}
		if i > 0 && cycle[i-1].XP >= r.XP {
			t.Errorf("cycle XP not increasing at day %d", i+1)
		}
	}
	if !cycle[6].IsSpecial {
		t.Error("day 7 must be special")
	}
}
