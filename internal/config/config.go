// Package config provides YAML-based configuration loading for the
// Connect Four front ends.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-connect4/internal/connect4"
	"github.com/vovakirdan/tui-connect4/internal/core"
)

// Connect4Config contains all configuration for a Connect Four session.
type Connect4Config struct {
	Board   BoardConfig   `yaml:"board"`
	Players PlayersConfig `yaml:"players"`
	UI      UIConfig      `yaml:"ui"`
}

// BoardConfig defines the board dimensions of a new game.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PlayersConfig defines how each player is displayed.
type PlayersConfig struct {
	One PlayerStyle `yaml:"one"`
	Two PlayerStyle `yaml:"two"`
}

// PlayerStyle defines the display name, piece color and piece symbol of a player.
type PlayerStyle struct {
	Name   string `yaml:"name"`
	Color  string `yaml:"color"`  // core color name, e.g. "red", "bright_blue"
	Symbol string `yaml:"symbol"` // single character
}

// UIConfig defines terminal front end behavior.
type UIConfig struct {
	AnnounceDelayMS int  `yaml:"announce_delay_ms"`
	ShowHelp        bool `yaml:"show_help"`
}

// AnnounceDelay returns the delay before the end-of-game banner.
func (u UIConfig) AnnounceDelay() time.Duration {
	return time.Duration(u.AnnounceDelayMS) * time.Millisecond
}

// Style returns the style for the given player.
func (p PlayersConfig) Style(player connect4.Player) PlayerStyle {
	if player == connect4.Player2 {
		return p.Two
	}
	return p.One
}

// PieceColor returns the parsed piece color. Unknown names map to ColorDefault;
// Validate reports them.
func (s PlayerStyle) PieceColor() core.Color {
	c, _ := core.ParseColor(s.Color)
	return c
}

// PieceRune returns the first rune of the symbol, or 'O' when unset.
func (s PlayerStyle) PieceRune() rune {
	for _, r := range s.Symbol {
		return r
	}
	return 'O'
}

// Validate checks the configuration. Board size errors wrap
// connect4.ErrConfiguration.
func (c Connect4Config) Validate() error {
	if c.Board.Width < 1 || c.Board.Height < 1 {
		return fmt.Errorf("%w: board %dx%d, width and height must be at least 1",
			connect4.ErrConfiguration, c.Board.Width, c.Board.Height)
	}
	for _, p := range []struct {
		key   string
		style PlayerStyle
	}{{"one", c.Players.One}, {"two", c.Players.Two}} {
		if _, ok := core.ParseColor(p.style.Color); !ok {
			return fmt.Errorf("players.%s.color: unknown color %q", p.key, p.style.Color)
		}
	}
	if c.UI.AnnounceDelayMS < 0 {
		return fmt.Errorf("ui.announce_delay_ms: must not be negative, got %d", c.UI.AnnounceDelayMS)
	}
	return nil
}
