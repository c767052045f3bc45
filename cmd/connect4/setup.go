package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-connect4/internal/config"
	"github.com/vovakirdan/tui-connect4/internal/core"
	"github.com/vovakirdan/tui-connect4/internal/registry"
)

var (
	flagPreset string
	flagWidth  int
	flagHeight int
)

// addBoardFlags registers the board size flags on a command.
func addBoardFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagPreset, "preset", "", "Board preset (see 'connect4 presets')")
	cmd.Flags().IntVar(&flagWidth, "width", 0, "Number of columns (overrides preset and config)")
	cmd.Flags().IntVar(&flagHeight, "height", 0, "Number of rows (overrides preset and config)")
}

// openLogger builds the logger for a command. When no log file is given,
// logs go to fallback. The returned close function must be called on exit.
func openLogger(fallback io.Writer) (*log.Logger, func(), error) {
	w := fallback
	closeFn := func() {}

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file %s: %w", flagLogFile, err)
		}
		w = f
		//nolint:errcheck // Best-effort close on exit
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "connect4",
	})

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger.SetLevel(level)

	return logger, closeFn, nil
}

// resolveBoard loads the config and works out the board size.
// Precedence: --width/--height > --preset > environment > config file > defaults.
func resolveBoard(cmd *cobra.Command) (core.RuntimeConfig, config.Connect4Config, error) {
	rt := core.DefaultConfig()

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return rt, cfg, err
	}
	if err := config.ApplyEnv(&cfg); err != nil {
		return rt, cfg, err
	}
	rt.BoardW = cfg.Board.Width
	rt.BoardH = cfg.Board.Height

	if flagPreset != "" {
		p, err := registry.Lookup(flagPreset)
		if err != nil {
			return rt, cfg, fmt.Errorf("%w (run 'connect4 presets' to see available presets)", err)
		}
		rt.BoardW = p.Width
		rt.BoardH = p.Height
	}

	if cmd.Flags().Changed("width") {
		rt.BoardW = flagWidth
	}
	if cmd.Flags().Changed("height") {
		rt.BoardH = flagHeight
	}

	return rt, cfg, nil
}
