package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/vovakirdan/tui-connect4/internal/connect4"
)

// Environment variables read by the CLI.
const (
	EnvConfigPath  = "CONNECT4_CONFIG"
	EnvLogLevel    = "CONNECT4_LOG_LEVEL"
	EnvLogFile     = "CONNECT4_LOG_FILE"
	EnvBoardWidth  = "CONNECT4_BOARD_WIDTH"
	EnvBoardHeight = "CONNECT4_BOARD_HEIGHT"
)

// LoadDotEnv loads variables from the given .env files (./.env when none
// are given). Missing files are ignored; variables already set in the
// environment win.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return nil
}

// GetEnv returns the value of key, or defaultValue when unset or empty.
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// GetEnvAsInt returns key parsed as an integer, or defaultValue when unset.
func GetEnvAsInt(key string, defaultValue int) (int, error) {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue, fmt.Errorf("%w: %s=%q is not an integer", connect4.ErrConfiguration, key, valueStr)
	}
	return value, nil
}

// ApplyEnv overrides the board size with CONNECT4_BOARD_WIDTH and
// CONNECT4_BOARD_HEIGHT and validates the result.
func ApplyEnv(cfg *Connect4Config) error {
	w, err := GetEnvAsInt(EnvBoardWidth, cfg.Board.Width)
	if err != nil {
		return err
	}
	h, err := GetEnvAsInt(EnvBoardHeight, cfg.Board.Height)
	if err != nil {
		return err
	}
	cfg.Board.Width = w
	cfg.Board.Height = h
	return cfg.Validate()
}
