package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-connect4/internal/config"
	"github.com/vovakirdan/tui-connect4/internal/connect4"
	"github.com/vovakirdan/tui-connect4/internal/core"
	"github.com/vovakirdan/tui-connect4/internal/platform/tui"
)

var replayCmd = &cobra.Command{
	Use:   "replay <column>...",
	Short: "Apply moves to a new board and print the result",
	Long: `Drop pieces into the given columns in order, alternating players
starting with Player 1, then print the board and the game status.

Columns are numbered from 1, as on the board. A column outside the board
is an error. Moves into a full column or after the game has ended are
ignored and logged.

Examples:
  connect4 replay 1 2 1 2 1 2 1
  connect4 replay --preset mini 3 3 2 4
  connect4 replay --width 4 --height 1 1 2 3 4`,
	Args: cobra.MinimumNArgs(1),
	Run:  runReplay,
}

func init() {
	addBoardFlags(replayCmd)
}

func runReplay(cmd *cobra.Command, args []string) {
	columns, err := parseColumns(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	rt, cfg, err := resolveBoard(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := openLogger(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	e, err := connect4.New(rt.BoardW, rt.BoardH)
	if err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	replayErr := replay(e, columns, logger)

	color := term.IsTerminal(int(os.Stdout.Fd()))
	printBoard(os.Stdout, e, cfg, color)
	closeLog()

	if replayErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", replayErr)
		os.Exit(1)
	}
}

// parseColumns converts 1-based column arguments to 0-based indexes.
func parseColumns(args []string) ([]int, error) {
	columns := make([]int, 0, len(args))
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("move %d: %q is not a column number", i+1, a)
		}
		columns = append(columns, n-1)
	}
	return columns, nil
}

// replay applies columns to e in order. It stops at the first
// out-of-range column; rejected moves are logged and skipped.
func replay(e *connect4.Engine, columns []int, logger *log.Logger) error {
	for i, col := range columns {
		res, err := e.DropPiece(col)
		if err != nil {
			if errors.Is(err, connect4.ErrOutOfRange) {
				return fmt.Errorf("move %d: column %d is not on a %d-column board: %w", i+1, col+1, e.Width(), err)
			}
			return fmt.Errorf("move %d: %w", i+1, err)
		}

		if !res.Accepted {
			reason := "column full"
			if res.Status.IsOver() {
				reason = "game over"
			}
			logger.Warn("move ignored", "move", i+1, "column", col+1, "reason", reason)
			continue
		}

		logger.Debug("piece dropped", "move", i+1, "player", int(res.Player), "row", res.Row, "column", col+1)
	}
	return nil
}

// printBoard writes the board followed by a status line.
func printBoard(w io.Writer, e *connect4.Engine, cfg config.Connect4Config, color bool) {
	s := core.NewScreen(tui.BoardViewSize(e.Width(), e.Height()))

	if color {
		tui.DrawBoard(s, e, -1, tui.ThemeFromConfig(cfg.Players))
		fmt.Fprintln(w, tui.RenderScreen(s))
	} else {
		tui.DrawBoard(s, e, -1, tui.PlainTheme(cfg.Players))
		fmt.Fprintln(w, s.String())
	}

	status := e.Status()
	switch status.Kind {
	case connect4.InProgress:
		fmt.Fprintf(w, "%s to move (%d moves played)\n", e.CurrentPlayer(), e.Moves())
	default:
		fmt.Fprintf(w, "%s (%d moves)\n", status, e.Moves())
	}
}
