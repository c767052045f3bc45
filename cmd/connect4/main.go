// connect4 is a terminal Connect Four game for two players at one keyboard.
//
// Usage:
//
//	connect4 play              - Play a game in the terminal
//	connect4 menu              - Pick a board preset, then play
//	connect4 replay <cols...>  - Apply moves to a fresh board and print the result
//	connect4 presets           - List named board sizes
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.connect4/config.yaml, ./configs/connect4.yaml)
//	--log-level <lvl>   - debug, info, warn or error (default: info)
//	--log-file <path>   - Write logs to a file (play discards logs otherwise)
//
// Each global flag may also come from the environment or ./.env
// (CONNECT4_CONFIG, CONNECT4_LOG_LEVEL, CONNECT4_LOG_FILE). CONNECT4_BOARD_WIDTH
// and CONNECT4_BOARD_HEIGHT override the configured board size.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-connect4/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "connect4",
	Short: "Connect Four in your terminal",
	Long: `Connect Four for two players sharing a terminal.

Players take turns dropping pieces into columns. The first to line up
four pieces horizontally, vertically or diagonally wins; a full board
without a line is a tie.

Available commands:
  play     - Play a game
  menu     - Pick a board preset, then play
  replay   - Apply a list of moves and print the board
  presets  - Show named board sizes

Examples:
  connect4 play
  connect4 play --preset large
  connect4 play --width 9 --height 7
  connect4 replay 4 4 3 5 3 3 2
  connect4 presets`,
	SilenceUsage:      true,
	PersistentPreRunE: applyEnvironment,
}

// applyEnvironment loads ./.env and fills global flags the user did not set
// from CONNECT4_* variables.
func applyEnvironment(cmd *cobra.Command, _ []string) error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}

	flags := cmd.Flags()
	if !flags.Changed("config") {
		flagConfig = config.GetEnv(config.EnvConfigPath, flagConfig)
	}
	if !flags.Changed("log-level") {
		flagLogLevel = config.GetEnv(config.EnvLogLevel, flagLogLevel)
	}
	if !flags.Changed("log-file") {
		flagLogFile = config.GetEnv(config.EnvLogFile, flagLogFile)
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(presetsCmd)
}
