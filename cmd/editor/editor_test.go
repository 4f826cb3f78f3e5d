package main

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/milk9111/roomtools/grid"
	"github.com/milk9111/roomtools/levels"
)

func newTestEditor(t *testing.T) *Editor {
	t.Helper()
	room := levels.NewRoom(4, 3)
	g, err := room.Grid()
	if err != nil {
		t.Fatalf("Grid: %v", err)
	}
	return &Editor{room: room, grid: g, catalog: catalogFromRoom(room)}
}

func TestUndoRestoresCellsAndFrames(t *testing.T) {
	e := newTestEditor(t)
	e.MakeCheckpoint()
	e.grid.Set(grid.Tile, 1, 1, 2)
	e.catalog[1].Frames = []int{1, 2}
	e.Changed()
	if diff := cmp.Diff([]int{1, 2}, e.room.Tiles[1].Frames); diff != "" {
		t.Fatalf("room tiles not synced (-want +got):\n%s", diff)
	}

	e.Undo()
	if v, _ := e.grid.Get(grid.Tile, 1, 1); v != 0 {
		t.Fatalf("cell not restored: %d", v)
	}
	if diff := cmp.Diff([]int{1}, e.catalog[1].Frames); diff != "" {
		t.Fatalf("frames not restored (-want +got):\n%s", diff)
	}
	if e.room.Tilemap[1][1] != 0 {
		t.Fatalf("undo must write through to the room")
	}
	e.Undo()
}

func TestUndoStackIsBounded(t *testing.T) {
	e := newTestEditor(t)
	for i := 0; i < maxUndo+10; i++ {
		e.grid.Set(grid.Tile, 0, 0, i)
		e.MakeCheckpoint()
	}
	if len(e.undoStack) != maxUndo {
		t.Fatalf("stack holds %d, want %d", len(e.undoStack), maxUndo)
	}
	if v, _ := e.undoStack[0].grid.Get(grid.Tile, 0, 0); v != 10 {
		t.Fatalf("oldest kept checkpoint = %d, want 10", v)
	}
}

func TestCatalogFromRoomCopiesFrames(t *testing.T) {
	room := levels.NewRoom(2, 2)
	c := catalogFromRoom(room)
	c[0].Frames[0] = 9
	if room.Tiles[0].Frames[0] != 0 {
		t.Fatalf("catalog aliases room frames")
	}
	if id, ok := c.ID(1); !ok || id != 2 {
		t.Fatalf("ID(1) = %d,%v", id, ok)
	}
}

func TestLoadRoomCreatesMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.json")
	room, got := loadRoom(path, 5)
	if got != path || room.Size != 5 || len(room.Tiles) != sheetFrames {
		t.Fatalf("loadRoom = size %d, %d tiles, %q", room.Size, len(room.Tiles), got)
	}
}

func TestFramesAreMirrored(t *testing.T) {
	for f := 0; f < sheetFrames; f++ {
		for y := 0; y < sheetTilePx; y++ {
			for x := 0; x < sheetTilePx; x++ {
				if framePixel(f, x, y) != framePixel(f, sheetTilePx-1-x, y) {
					t.Fatalf("frame %d not mirrored at (%d,%d)", f, x, y)
				}
			}
		}
	}
}

func TestPaletteColorOutOfRange(t *testing.T) {
	if paletteColor(-1) != palette[0] || paletteColor(len(palette)) != palette[0] {
		t.Fatalf("out of range colors should fall back to the first entry")
	}
}

func TestHeldGestureOwnsPointerOverToolbar(t *testing.T) {
	cases := []struct {
		name    string
		pressed bool
		my      int
		want    bool
	}{
		{"toolbar_idle", false, toolbarH - 1, false},
		{"room_idle", false, toolbarH, true},
		{"toolbar_held", true, 0, true},
		{"above_window_held", true, -40, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e := newTestEditor(t)
			e.pressed = c.pressed
			if got := e.ownsPointer(c.my); got != c.want {
				t.Fatalf("ownsPointer(%d) = %v, want %v", c.my, got, c.want)
			}
		})
	}
}
