package main

import (
	"testing"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-connect4/internal/config"
)

func newBoardCmd(t *testing.T) *cobra.Command {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv(config.EnvBoardWidth, "")
	t.Setenv(config.EnvBoardHeight, "")

	flagConfig, flagPreset, flagWidth, flagHeight = "", "", 0, 0
	cmd := &cobra.Command{Use: "test"}
	addBoardFlags(cmd)
	return cmd
}

func TestResolveBoardPrecedence(t *testing.T) {
	tests := []struct {
		name         string
		env          [2]string
		flags        map[string]string
		wantW, wantH int
	}{
		{"defaults", [2]string{}, nil, 7, 6},
		{"environment", [2]string{"9", "8"}, nil, 9, 8},
		{"preset beats environment", [2]string{"9", "8"}, map[string]string{"preset": "mini"}, 5, 4},
		{"width beats preset", [2]string{}, map[string]string{"preset": "mini", "width": "10"}, 10, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := newBoardCmd(t)
			t.Setenv(config.EnvBoardWidth, tt.env[0])
			t.Setenv(config.EnvBoardHeight, tt.env[1])
			for k, v := range tt.flags {
				if err := cmd.Flags().Set(k, v); err != nil {
					t.Fatalf("Set(%s): %v", k, err)
				}
			}

			rt, _, err := resolveBoard(cmd)
			if err != nil {
				t.Fatalf("resolveBoard() error: %v", err)
			}
			if rt.BoardW != tt.wantW || rt.BoardH != tt.wantH {
				t.Errorf("board = %dx%d, expected %dx%d", rt.BoardW, rt.BoardH, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestResolveBoardUnknownPreset(t *testing.T) {
	cmd := newBoardCmd(t)
	if err := cmd.Flags().Set("preset", "nope"); err != nil {
		t.Fatal(err)
	}
	if _, _, err := resolveBoard(cmd); err == nil {
		t.Error("unknown preset should fail")
	}
}
