package main

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-connect4/internal/config"
	"github.com/vovakirdan/tui-connect4/internal/connect4"
)

func TestParseColumns(t *testing.T) {
	cols, err := parseColumns([]string{"1", "7", "3"})
	if err != nil {
		t.Fatalf("parseColumns error: %v", err)
	}
	expected := []int{0, 6, 2}
	for i := range expected {
		if cols[i] != expected[i] {
			t.Errorf("column %d = %d, expected %d", i, cols[i], expected[i])
		}
	}

	if _, err := parseColumns([]string{"1", "x"}); err == nil {
		t.Error("non-numeric column should fail")
	}
}

func TestReplayWin(t *testing.T) {
	e, err := connect4.New(7, 6)
	if err != nil {
		t.Fatal(err)
	}

	var logs bytes.Buffer
	logger := log.New(&logs)

	// the trailing move comes after the win and is ignored
	if err := replay(e, []int{0, 1, 0, 1, 0, 1, 0, 2}, logger); err != nil {
		t.Fatalf("replay error: %v", err)
	}
	if e.Status() != (connect4.GameStatus{Kind: connect4.Won, Winner: connect4.Player1}) {
		t.Errorf("status = %v, expected Player 1 won", e.Status())
	}
	if !strings.Contains(logs.String(), "game over") {
		t.Errorf("ignored move should be logged, got %q", logs.String())
	}

	var out bytes.Buffer
	printBoard(&out, e, config.DefaultConnect4Config(), false)
	if !strings.Contains(out.String(), "Player 1 won! (7 moves)") {
		t.Errorf("output missing result:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "X") || !strings.Contains(out.String(), "O") {
		t.Errorf("plain output should mark both players:\n%s", out.String())
	}
}

func TestReplayFullColumn(t *testing.T) {
	e, err := connect4.New(2, 2)
	if err != nil {
		t.Fatal(err)
	}

	var logs bytes.Buffer
	if err := replay(e, []int{0, 0, 0, 1}, log.New(&logs)); err != nil {
		t.Fatalf("replay error: %v", err)
	}
	if e.Moves() != 3 {
		t.Errorf("moves = %d, expected 3", e.Moves())
	}
	if !strings.Contains(logs.String(), "column full") {
		t.Errorf("full column should be logged, got %q", logs.String())
	}

	var out bytes.Buffer
	printBoard(&out, e, config.DefaultConnect4Config(), false)
	if !strings.Contains(out.String(), "Player 2 to move (3 moves played)") {
		t.Errorf("output missing turn:\n%s", out.String())
	}
}

func TestReplayOutOfRange(t *testing.T) {
	e, err := connect4.New(5, 4)
	if err != nil {
		t.Fatal(err)
	}

	err = replay(e, []int{0, 5}, log.New(io.Discard))
	if !errors.Is(err, connect4.ErrOutOfRange) {
		t.Fatalf("replay error = %v, expected ErrOutOfRange", err)
	}
	if !strings.Contains(err.Error(), "move 2") {
		t.Errorf("error should name the move: %v", err)
	}
	if e.Moves() != 1 {
		t.Errorf("moves = %d, expected 1", e.Moves())
	}
}

func TestReplayTie(t *testing.T) {
	e, err := connect4.New(4, 1)
	if err != nil {
		t.Fatal(err)
	}

	if err := replay(e, []int{0, 1, 2, 3}, log.New(io.Discard)); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	printBoard(&out, e, config.DefaultConnect4Config(), false)
	if !strings.Contains(out.String(), "Tie! (4 moves)") {
		t.Errorf("output missing tie:\n%s", out.String())
	}
}
