package core

// RuntimeConfig contains the settings a front end starts a game with.
type RuntimeConfig struct {
	ScreenW int // Screen width in characters
	ScreenH int // Screen height in characters
	BoardW  int // Board columns
	BoardH  int // Board rows
}

// DefaultConfig returns a RuntimeConfig for the classic 7x6 board.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		BoardW:  7,
		BoardH:  6,
	}
}
