package overlay

import (
	"image"
	"testing"

	"github.com/milk9111/roomtools/grid"
)

func TestPickerIndexAt(t *testing.T) {
	// 8px tiles: each picker tile is 24px plus a 2px border, a pitch of 26.
	cases := []struct {
		name   string
		x, y   int
		want   int
		wantOK bool
	}{
		{"origin", 0, 0, 0, true},
		{"border_of_first", 25, 25, 0, true},
		{"second", 26, 0, 1, true},
		{"second_row", 0, 26, 16, true},
		{"last_column", 415, 30, 31, true},
		{"right_of_sheet", 416, 0, 0, false},
		{"left_of_sheet", -1, 0, 0, false},
		{"above_sheet", 3, -4, 0, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := PickerIndexAt(c.x, c.y, 8)
			if got != c.want || ok != c.wantOK {
				t.Fatalf("PickerIndexAt(%d,%d) = %d,%v, want %d,%v", c.x, c.y, got, ok, c.want, c.wantOK)
			}
		})
	}
}

func TestPickerTileRectRoundTrip(t *testing.T) {
	for i := 0; i < 64; i++ {
		r := PickerTileRect(i, 8)
		if r.Dx() != 24 || r.Dy() != 24 {
			t.Fatalf("tile %d size %v", i, r.Size())
		}
		c := r.Min.Add(r.Size().Div(2))
		if got, ok := PickerIndexAt(c.X, c.Y, 8); !ok || got != i {
			t.Fatalf("center of tile %d maps to %d", i, got)
		}
	}
}

func TestPickerSize(t *testing.T) {
	cases := []struct {
		n    int
		want image.Point
	}{
		{0, image.Pt(416, 26)},
		{16, image.Pt(416, 26)},
		{17, image.Pt(416, 52)},
		{256, image.Pt(416, 416)},
	}
	for _, c := range cases {
		if got := PickerSize(c.n, 8); got != c.want {
			t.Fatalf("PickerSize(%d) = %v, want %v", c.n, got, c.want)
		}
	}
}

func TestViewMapping(t *testing.T) {
	v := View{CellPx: 16, Zoom: 2, OffsetX: 10, OffsetY: 20}
	x, y := v.ToCell(10+32*2.5, 20+32)
	if x != 2.5 || y != 1 {
		t.Fatalf("ToCell = %v,%v", x, y)
	}
	if got := v.CellAt(9, 19); got != image.Pt(-1, -1) {
		t.Fatalf("CellAt left of the room = %v", got)
	}
	sx, sy, w, h := v.ScreenRect(grid.Rect{X0: 1, Y0: 2, X1: 3, Y1: 2})
	if sx != 42 || sy != 84 || w != 96 || h != 32 {
		t.Fatalf("ScreenRect = %v,%v %vx%v", sx, sy, w, h)
	}
}

func TestViewZeroZoomIsUnscaled(t *testing.T) {
	v := View{CellPx: 8}
	if got := v.CellAt(17, 8); got != image.Pt(2, 1) {
		t.Fatalf("got %v", got)
	}
}

func TestSheetRect(t *testing.T) {
	if got := SheetRect(5, 8, 32); got != image.Rect(8, 8, 16, 16) {
		t.Fatalf("got %v", got)
	}
}
