package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-connect4/internal/connect4"
)

//go:embed defaults/connect4.yaml
var defaultConnect4YAML []byte

// DefaultConnect4Config returns the default configuration.
// It matches the embedded defaults/connect4.yaml.
func DefaultConnect4Config() Connect4Config {
	return Connect4Config{
		Board: BoardConfig{
			Width:  connect4.DefaultWidth,
			Height: connect4.DefaultHeight,
		},
		Players: PlayersConfig{
			One: PlayerStyle{Name: "Player 1", Color: "red", Symbol: "●"},
			Two: PlayerStyle{Name: "Player 2", Color: "blue", Symbol: "●"},
		},
		UI: UIConfig{
			AnnounceDelayMS: 100,
			ShowHelp:        true,
		},
	}
}
