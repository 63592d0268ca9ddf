package shared

import (
	"errors"
	"fmt"
	"testing"
)

func TestGetAppError_Direct(t *testing.T) {
	err := NewNotFoundError(errors.New("row missing"), "Player not found")

	appErr, ok := GetAppError(err)
	if !ok {
		t.Fatal("GetAppError() = false, want true")
	}
	if appErr.StatusCode != 404 {
		t.Errorf("StatusCode = %d, want 404", appErr.StatusCode)
	}
	if appErr.Message != "Player not found" {
		t.Errorf("Message = %q", appErr.Message)
	}
}

func TestGetAppError_Wrapped(t *testing.T) {
	inner := NewBadRequestError(nil, "Invalid request")
	err := fmt.Errorf("claim reward: %w", inner)

	appErr, ok := GetAppError(err)
	if !ok {
		t.Fatal("GetAppError() should unwrap to the AppError")
	}
	if appErr.StatusCode != 400 {
		t.Errorf("StatusCode = %d, want 400", appErr.StatusCode)
	}
}

func TestGetAppError_Plain(t *testing.T) {
	if _, ok := GetAppError(errors.New("boom")); ok {
		t.Error("GetAppError() = true for a plain error, want false")
	}
}

func TestAppError_ErrorString(t *testing.T) {
	err := NewInternalError(errors.New("disk on fire"), "Failed to save progress")
	want := "Failed to save progress: disk on fire"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	bare := NewUnauthorizedError(nil, "Unauthorized")
	if bare.Error() != "Unauthorized" {
		t.Errorf("Error() = %q, want %q", bare.Error(), "Unauthorized")
	}
}
