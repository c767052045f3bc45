package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/vovakirdan/tui-connect4/internal/connect4"
	"github.com/vovakirdan/tui-connect4/internal/core"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "connect4.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(defaultConnect4YAML)
	if err != nil {
		t.Fatalf("Parse(embedded) error: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConnect4Config()) {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, DefaultConnect4Config())
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Board.Width != 7 || cfg.Board.Height != 6 {
		t.Errorf("default board = %dx%d, expected 7x6", cfg.Board.Width, cfg.Board.Height)
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".connect4")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("board:\n  width: 8\n  height: 7\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Board.Width != 8 || cfg.Board.Height != 7 {
		t.Errorf("board = %dx%d, expected 8x7 from user config", cfg.Board.Width, cfg.Board.Height)
	}
}

func TestLoadInvalidUserConfigIsSkipped(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".connect4")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("board:\n  width: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Board.Width != 7 {
		t.Errorf("invalid user config should be skipped, got width %d", cfg.Board.Width)
	}
}

func TestLoadCustomPartialOverride(t *testing.T) {
	path := writeConfig(t, `
board:
  width: 9
players:
  two:
    color: yellow
ui:
  announce_delay_ms: 250
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) error: %v", path, err)
	}

	if cfg.Board.Width != 9 || cfg.Board.Height != 6 {
		t.Errorf("board = %dx%d, expected 9x6", cfg.Board.Width, cfg.Board.Height)
	}
	if cfg.Players.Two.Color != "yellow" || cfg.Players.Two.Name != "Player 2" {
		t.Errorf("player two = %+v, expected yellow Player 2", cfg.Players.Two)
	}
	if cfg.Players.One.Color != "red" {
		t.Errorf("player one color = %q, expected default red", cfg.Players.One.Color)
	}
	if cfg.UI.AnnounceDelay() != 250*time.Millisecond {
		t.Errorf("AnnounceDelay() = %v, expected 250ms", cfg.UI.AnnounceDelay())
	}
}

func TestLoadCustomErrors(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		configErr bool
	}{
		{"zero width", "board:\n  width: 0\n", true},
		{"negative height", "board:\n  height: -2\n", true},
		{"unknown color", "players:\n  one:\n    color: plaid\n", false},
		{"negative delay", "ui:\n  announce_delay_ms: -1\n", false},
		{"malformed yaml", "board: [1, 2\n", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.content))
			if err == nil {
				t.Fatal("Load() error = nil, expected error")
			}
			if got := errors.Is(err, connect4.ErrConfiguration); got != tc.configErr {
				t.Errorf("errors.Is(err, ErrConfiguration) = %v, expected %v (err: %v)", got, tc.configErr, err)
			}
		})
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) error = %v, expected os.ErrNotExist", err)
	}
}

func TestPlayerStyle(t *testing.T) {
	cfg := DefaultConnect4Config()

	if s := cfg.Players.Style(connect4.Player1); s.PieceColor() != core.ColorRed {
		t.Errorf("Player1 color = %d, expected red", s.PieceColor())
	}
	if s := cfg.Players.Style(connect4.Player2); s.PieceColor() != core.ColorBlue {
		t.Errorf("Player2 color = %d, expected blue", s.PieceColor())
	}
	if r := cfg.Players.One.PieceRune(); r != '●' {
		t.Errorf("PieceRune() = %q, expected '●'", r)
	}
	if r := (PlayerStyle{}).PieceRune(); r != 'O' {
		t.Errorf("empty symbol PieceRune() = %q, expected 'O'", r)
	}
}
