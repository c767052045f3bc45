package registry

import (
	"strings"
	"testing"
)

func TestBuiltinPresets(t *testing.T) {
	p, err := Lookup(DefaultPreset)
	if err != nil {
		t.Fatalf("Lookup(%q) error: %v", DefaultPreset, err)
	}
	if p.Width != 7 || p.Height != 6 {
		t.Errorf("classic = %dx%d, expected 7x6", p.Width, p.Height)
	}
}

func TestListSorted(t *testing.T) {
	list := List()
	if len(list) < 2 {
		t.Fatalf("List() returned %d presets, expected built-ins", len(list))
	}
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Errorf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("nonexistent")
	if err == nil || !strings.Contains(err.Error(), "nonexistent") {
		t.Errorf("Lookup(nonexistent) error = %v", err)
	}
}

func TestRegisterPanics(t *testing.T) {
	tests := []struct {
		name   string
		preset Preset
	}{
		{"duplicate", Preset{ID: DefaultPreset, Title: "Again", Width: 7, Height: 6}},
		{"zero width", Preset{ID: "test_zero_width", Width: 0, Height: 6}},
		{"negative height", Preset{ID: "test_negative_height", Width: 7, Height: -1}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("Register(%+v) should panic", tc.preset)
				}
			}()
			Register(tc.preset)
		})
	}

	if _, err := Lookup("test_zero_width"); err == nil {
		t.Error("invalid preset should not be registered")
	}
}

func TestRegisterCustom(t *testing.T) {
	Register(Preset{ID: "test_tall", Title: "Tall", Width: 4, Height: 10})

	p, err := Lookup("test_tall")
	if err != nil || p.Height != 10 {
		t.Errorf("Lookup(test_tall) = %+v, %v", p, err)
	}
}
