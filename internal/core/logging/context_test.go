package logging

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestWithRunID(t *testing.T) {
	ctx := WithRunID(context.Background(), "run-123")

	if got := GetRunID(ctx); got != "run-123" {
		t.Errorf("GetRunID() = %q, want %q", got, "run-123")
	}
}

func TestWithCommand(t *testing.T) {
	ctx := WithCommand(context.Background(), "play")

	if got := GetCommand(ctx); got != "play" {
		t.Errorf("GetCommand() = %q, want %q", got, "play")
	}
}

func TestGetRunID_NotPresent(t *testing.T) {
	if got := GetRunID(context.Background()); got != "" {
		t.Errorf("GetRunID() = %q, want empty string", got)
	}
}

func TestGetCommand_NotPresent(t *testing.T) {
	if got := GetCommand(context.Background()); got != "" {
		t.Errorf("GetCommand() = %q, want empty string", got)
	}
}

func TestNewRunID(t *testing.T) {
	a, b := NewRunID(), NewRunID()

	if a == b {
		t.Fatalf("NewRunID() returned %q twice", a)
	}
	if _, err := uuid.Parse(a); err != nil {
		t.Errorf("NewRunID() = %q is not a uuid: %v", a, err)
	}
}
