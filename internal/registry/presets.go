package registry

import "github.com/vovakirdan/tui-connect4/internal/connect4"

// DefaultPreset is the preset used when none is given.
const DefaultPreset = "classic"

func init() {
	Register(Preset{ID: DefaultPreset, Title: "Classic", Width: connect4.DefaultWidth, Height: connect4.DefaultHeight})
	Register(Preset{ID: "mini", Title: "Mini", Width: 5, Height: 4})
	Register(Preset{ID: "large", Title: "Large", Width: 8, Height: 7})
	Register(Preset{ID: "huge", Title: "Huge", Width: 9, Height: 7})
	Register(Preset{ID: "square", Title: "Square", Width: 6, Height: 6})
}
