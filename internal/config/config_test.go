package config

import (
	"errors"
	"testing"
)

func TestFromEnvMissingAPIKey(t *testing.T) {
	t.Setenv(EnvAPIKey, "")
	t.Setenv(EnvUsername, "alice")
	_, err := FromEnv()
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}
}

func TestFromEnvMissingUsername(t *testing.T) {
	t.Setenv(EnvAPIKey, "token123")
	t.Setenv(EnvUsername, "")
	_, err := FromEnv()
	if !errors.Is(err, ErrMissingUsername) {
		t.Fatalf("expected ErrMissingUsername, got %v", err)
	}
}

func TestFromEnvTrimsWhitespace(t *testing.T) {
	t.Setenv(EnvAPIKey, "  token123  ")
	t.Setenv(EnvUsername, " alice ")
	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv failed: %v", err)
	}
	if cfg.APIKey != "token123" {
		t.Errorf("APIKey = %q, want %q", cfg.APIKey, "token123")
	}
	if cfg.Username != "alice" {
		t.Errorf("Username = %q, want %q", cfg.Username, "alice")
	}
}

func TestColumnLayoutConsistent(t *testing.T) {
	if len(ColumnTitles) != len(ColumnWidths) {
		t.Fatalf("ColumnTitles has %d entries, ColumnWidths has %d", len(ColumnTitles), len(ColumnWidths))
	}
}
