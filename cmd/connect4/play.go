package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-connect4/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a two-player game in the terminal.

Controls:
  Left/Right, h/l  - Select column
  1-9              - Jump to column
  Space/Enter      - Drop piece
  R                - Restart with the same board
  S                - Change board size
  ?                - Show all keys
  Q/Ctrl+C         - Quit

Examples:
  connect4 play
  connect4 play --preset mini
  connect4 play --width 10 --height 8
  connect4 play --config ./my-connect4.yaml --log-file /tmp/connect4.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addBoardFlags(playCmd)
}

func runPlay(cmd *cobra.Command, _ []string) {
	rt, cfg, err := resolveBoard(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size early so the first frame can check it
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}

	// Logging to the terminal would corrupt the display
	logger, closeLog, err := openLogger(io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	runErr := tui.Run(rt, cfg, logger)
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
