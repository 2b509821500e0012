package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func TestComponent(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = prev })

	logger := Component("store")
	logger.Info().Msg("state changed")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("failed to parse log: %v", err)
	}

	if entry["cmp"] != "store" {
		t.Errorf("Component() cmp = %v, want %q", entry["cmp"], "store")
	}
	if entry["message"] != "state changed" {
		t.Errorf("Component() message = %v, want %q", entry["message"], "state changed")
	}
}

func TestComponentOf(t *testing.T) {
	var buf bytes.Buffer
	parent := zerolog.New(&buf).With().Str("run_id", "r1").Logger()

	logger := ComponentOf(parent, "tui")
	logger.Info().Msg("hi")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("failed to parse log: %v", err)
	}
	if entry["cmp"] != "tui" || entry["run_id"] != "r1" {
		t.Errorf("ComponentOf() entry = %v", entry)
	}
}
