package services

import (
	"math/rand"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/letterquest/reader_api/model"
	"github.com/letterquest/reader_api/progression"
	"github.com/letterquest/reader_api/shared"
)

func newTestStore(t *testing.T) *SqliteService {
	t.Helper()
	ds := &SqliteService{database: filepath.Join(t.TempDir(), "test.db")}
	if err := ds.Start(); err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	return ds
}

func newTestRewardService(t *testing.T) (*RewardService, *SqliteService, string) {
	t.Helper()
	ds := newTestStore(t)

	achSvc := &AchievementService{sqlSvc: ds}
	playerSvc := &PlayerService{
		sqlSvc: ds,
		achSvc: achSvc,
		rng:    rand.New(rand.NewSource(1)),
	}
	rewardSvc := &RewardService{sqlSvc: ds, playerSvc: playerSvc, achSvc: achSvc}

	user, err := ds.CreateUser(&model.User{
		Email:    "reader@example.com",
		Username: "reader",
		Role:     model.RoleParent,
		IsActive: true,
	})
	if err != nil {
		t.Fatalf("CreateUser() error: %v", err)
	}
	if err := playerSvc.InitializePlayer(user.ID); err != nil {
		t.Fatalf("InitializePlayer() error: %v", err)
	}

	return rewardSvc, ds, user.ID
}

func TestClaimDailyReward_GrantsXPBeforeRecordingClaim(t *testing.T) {
	rewardSvc, ds, userID := newTestRewardService(t)

	resp, err := rewardSvc.ClaimDailyReward(userID)
	if err != nil {
		t.Fatalf("ClaimDailyReward() error: %v", err)
	}

	if resp.XPGranted != 10 {
		t.Errorf("XPGranted = %d, want 10 (day 1)", resp.XPGranted)
	}
	if resp.ConsecutiveDays != 1 {
		t.Errorf("ConsecutiveDays = %d, want 1", resp.ConsecutiveDays)
	}

	progress, err := ds.GetPlayerProgress(userID)
	if err != nil {
		t.Fatalf("GetPlayerProgress() error: %v", err)
	}
	if progress.XP != 10 {
		t.Errorf("persisted XP = %d, want 10", progress.XP)
	}

	reward, err := ds.GetLoginReward(userID)
	if err != nil {
		t.Fatalf("GetLoginReward() error: %v", err)
	}
	if reward.LastClaimDate != string(progression.Today(time.Now())) {
		t.Errorf("LastClaimDate = %q, want today", reward.LastClaimDate)
	}
}

func TestClaimDailyReward_SecondClaimSameDayConflicts(t *testing.T) {
	rewardSvc, ds, userID := newTestRewardService(t)

	if _, err := rewardSvc.ClaimDailyReward(userID); err != nil {
		t.Fatalf("first ClaimDailyReward() error: %v", err)
	}

	_, err := rewardSvc.ClaimDailyReward(userID)
	if err == nil {
		t.Fatal("second same-day claim succeeded, want conflict")
	}
	appErr, ok := shared.GetAppError(err)
	if !ok || appErr.StatusCode != http.StatusConflict {
		t.Errorf("second claim error = %v, want 409 AppError", err)
	}

	// The double claim must not double-grant.
	progress, err := ds.GetPlayerProgress(userID)
	if err != nil {
		t.Fatalf("GetPlayerProgress() error: %v", err)
	}
	if progress.XP != 10 {
		t.Errorf("persisted XP after rejected claim = %d, want 10", progress.XP)
	}
}

func TestClaimDailyReward_WeekCompletionGrantsFreeze(t *testing.T) {
	rewardSvc, ds, userID := newTestRewardService(t)

	reward, err := ds.GetLoginReward(userID)
	if err != nil {
		t.Fatalf("GetLoginReward() error: %v", err)
	}
	reward.ConsecutiveDays = 6
	reward.LastClaimDate = string(progression.Today(time.Now().AddDate(0, 0, -1)))
	if err := ds.UpdateLoginReward(reward); err != nil {
		t.Fatalf("UpdateLoginReward() error: %v", err)
	}

	resp, err := rewardSvc.ClaimDailyReward(userID)
	if err != nil {
		t.Fatalf("ClaimDailyReward() error: %v", err)
	}

	if !resp.WeekCompleted {
		t.Error("WeekCompleted = false, want true on day 7")
	}
	if !resp.FreezeGranted {
		t.Error("FreezeGranted = false, want true on day 7")
	}
	if resp.XPGranted != 75 {
		t.Errorf("XPGranted = %d, want 75 (day 7 special)", resp.XPGranted)
	}

	progress, err := ds.GetPlayerProgress(userID)
	if err != nil {
		t.Fatalf("GetPlayerProgress() error: %v", err)
	}
	if progress.FreezeTokens != 1 {
		t.Errorf("FreezeTokens = %d, want 1", progress.FreezeTokens)
	}
	if progress.XP != 75 {
		t.Errorf("persisted XP = %d, want 75", progress.XP)
	}
}
