package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
		{3, 0, 0, 0},    // single-column board
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.lo, tc.hi)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, result, tc.expected)
		}
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		name     string
		expected Color
		ok       bool
	}{
		{"red", ColorRed, true},
		{"Blue", ColorBlue, true},
		{" bright_yellow ", ColorBrightYellow, true},
		{"gray", ColorGray, true},
		{"chartreuse", ColorDefault, false},
	}

	for _, tc := range tests {
		c, ok := ParseColor(tc.name)
		if ok != tc.ok || c != tc.expected {
			t.Errorf("ParseColor(%q) = (%d, %v), expected (%d, %v)", tc.name, c, ok, tc.expected, tc.ok)
		}
	}
}

func TestColorHighlight(t *testing.T) {
	if ColorRed.Highlight() != ColorBrightRed {
		t.Error("ColorRed.Highlight() should be ColorBrightRed")
	}
	if ColorBlue.Highlight() != ColorBrightBlue {
		t.Error("ColorBlue.Highlight() should be ColorBrightBlue")
	}
	if ColorOrange.Highlight() != ColorOrange {
		t.Error("ColorOrange has no bright variant")
	}
	if ColorBrightGreen.Highlight() != ColorBrightGreen {
		t.Error("bright colors should be unchanged")
	}
}
