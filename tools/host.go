package tools

import (
	"errors"

	"github.com/milk9111/roomtools/grid"
)

// SheetColumns is the fixed column count of the tile sheet.
const SheetColumns = 16

var (
	ErrNoHost          = errors.New("no host editor")
	ErrNoGrid          = errors.New("host has no room grid")
	ErrNoCatalog       = errors.New("host has no tile catalog")
	ErrNotExperimental = errors.New("experimental features are disabled")
)

// PaintTool is the state of the host's own paint tool.
type PaintTool int

const (
	PaintHostDefault PaintTool = iota
	PaintSuppressed
)

func (p PaintTool) String() string {
	switch p {
	case PaintHostDefault:
		return "HostDefault"
	case PaintSuppressed:
		return "Suppressed"
	default:
		return "Unknown"
	}
}

// TileDef is one catalog entry: a stable tile id and its animation frames.
type TileDef struct {
	ID     int
	Frames []int
}

// Catalog maps a tile-sheet position to the tile at that position. The host
// may reorder it, so ids are looked up at plot time.
type Catalog []TileDef

// ID returns the tile id at sheet index i, or false when there is none.
func (c Catalog) ID(i int) (int, bool) {
	if i < 0 || i >= len(c) {
		return 0, false
	}
	return c[i].ID, true
}

// Selections is the host state a gesture reads when it starts.
type Selections struct {
	Grid       *grid.Grid
	Foreground int
	Background int
	Catalog    Catalog
	Layers     grid.LayerMask

	// Picking is set while the host eyedropper is armed; PickedTile is the
	// sheet index it picked.
	Picking    bool
	PickedTile int
}

// Host is the room editor the tools plug into.
type Host interface {
	Selections() Selections
	// MakeCheckpoint opens an undo step; Changed closes it and notifies.
	MakeCheckpoint()
	Changed()
	RequestRedraw()
	PaintTool() PaintTool
	SetPaintTool(PaintTool)
	// SelectHostTile mirrors a picker click into the host's tile browser;
	// -1 clears it.
	SelectHostTile(index int)
}

// Phase is the kind of a pointer event.
type Phase int

const (
	PointerDown Phase = iota
	PointerMove
	PointerUp
)

func (p Phase) String() string {
	switch p {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	default:
		return "unknown"
	}
}

// PointerEvent is a pointer sample over the room canvas. X and Y are in cell
// units, so 2.5 is the middle of column 2.
type PointerEvent struct {
	Phase Phase
	X, Y  float64
}

// PointerHooks is the host extension point for pointer events.
type PointerHooks interface {
	OnAfterPointerEvent(fn func(ev PointerEvent))
}
