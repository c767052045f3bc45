package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-connect4/internal/connect4"
)

func TestApplyEnv(t *testing.T) {
	tests := []struct {
		name          string
		width, height string
		wantW, wantH  int
		wantErr       bool
	}{
		{"unset keeps config", "", "", 7, 6, false},
		{"width only", "9", "", 9, 6, false},
		{"both", "5", "4", 5, 4, false},
		{"not a number", "wide", "", 7, 6, true},
		{"zero rejected", "0", "", 0, 6, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvBoardWidth, tt.width)
			t.Setenv(EnvBoardHeight, tt.height)

			cfg := DefaultConnect4Config()
			err := ApplyEnv(&cfg)
			if tt.wantErr {
				if !errors.Is(err, connect4.ErrConfiguration) {
					t.Fatalf("ApplyEnv() error = %v, expected ErrConfiguration", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ApplyEnv() error: %v", err)
			}
			if cfg.Board.Width != tt.wantW || cfg.Board.Height != tt.wantH {
				t.Errorf("board = %dx%d, expected %dx%d", cfg.Board.Width, cfg.Board.Height, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := EnvLogLevel + "=debug\n" + EnvBoardWidth + "=8\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write .env: %v", err)
	}

	// t.Setenv registers cleanup; the empty values are then replaced by the file
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvBoardWidth, "6")
	os.Unsetenv(EnvLogLevel)

	if err := LoadDotEnv(path, filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("LoadDotEnv() error: %v", err)
	}

	if got := GetEnv(EnvLogLevel, "info"); got != "debug" {
		t.Errorf("%s = %q, expected %q from file", EnvLogLevel, got, "debug")
	}
	// variables already set are not overridden
	if got := os.Getenv(EnvBoardWidth); got != "6" {
		t.Errorf("%s = %q, expected existing value %q", EnvBoardWidth, got, "6")
	}
}

func TestGetEnvDefault(t *testing.T) {
	t.Setenv(EnvLogFile, "")
	if got := GetEnv(EnvLogFile, "fallback"); got != "fallback" {
		t.Errorf("GetEnv() = %q, expected fallback", got)
	}
}
