package pasteboard

import (
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/milk9111/roomtools/grid"
)

func filledGrid(size int) *grid.Grid {
	g := grid.New(size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			g.Set(grid.Tile, x, y, 1+y*size+x)
			g.Set(grid.Foreground, x, y, (x+y)%4)
			g.Set(grid.Background, x, y, 7)
		}
	}
	return g
}

func TestCopyPasteRoundTrip(t *testing.T) {
	src := filledGrid(16)
	rect := grid.NewRect(image.Pt(2, 3), image.Pt(4, 5))
	pb := Capture(src, rect)

	dst := grid.New(16)
	before := dst.Clone()
	anchor := image.Pt(12, 13)
	pb.Paste(dst, anchor, grid.AllLayers)

	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			got, _ := dst.Get(grid.Tile, x, y)
			dest := grid.NewRect(anchor, anchor.Add(image.Pt(2, 2)))
			if dest.Contains(image.Pt(x, y)) {
				want, _ := src.Get(grid.Tile, x-anchor.X+rect.X0, y-anchor.Y+rect.Y0)
				if got != want {
					t.Fatalf("dest (%d,%d): got %d, want %d", x, y, got, want)
				}
				continue
			}
			if orig, _ := before.Get(grid.Tile, x, y); got != orig {
				t.Fatalf("cell (%d,%d) outside the footprint changed: %d", x, y, got)
			}
		}
	}
}

func TestCaptureIsIndependentOfRoom(t *testing.T) {
	src := filledGrid(4)
	pb := Capture(src, grid.Full(4))
	src.Set(grid.Tile, 0, 0, 999)
	if v, _ := pb.Get(grid.Tile, 0, 0); v != 1 {
		t.Fatalf("pasteboard aliased the room: got %d", v)
	}
}

func TestPasteRespectsLayerMask(t *testing.T) {
	cases := []struct {
		name string
		mask grid.LayerMask
	}{
		{"tile_only", grid.MaskOf(grid.Tile)},
		{"colors_only", grid.MaskOf(grid.Foreground, grid.Background)},
		{"none", 0},
		{"all", grid.AllLayers},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			src := filledGrid(4)
			pb := Capture(src, grid.Full(4))
			dst := grid.New(4)
			pb.Paste(dst, image.Pt(0, 0), c.mask)
			for _, l := range grid.Layers {
				want := grid.New(4).Rows(l)
				if c.mask.Has(l) {
					want = src.Rows(l)
				}
				if diff := cmp.Diff(want, dst.Rows(l)); diff != "" {
					t.Fatalf("%s layer (-want +got):\n%s", l, diff)
				}
			}
		})
	}
}

func TestPasteSkipsAbsentSourceCells(t *testing.T) {
	src := filledGrid(4)
	// The copied rectangle hangs two cells past the room edge.
	pb := Capture(src, grid.NewRect(image.Pt(2, 2), image.Pt(5, 5)))

	dst := grid.New(8)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			dst.Set(grid.Tile, x, y, -5)
		}
	}
	pb.Paste(dst, image.Pt(0, 0), grid.AllLayers)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			got, _ := dst.Get(grid.Tile, x, y)
			if x < 2 && y < 2 {
				want, _ := src.Get(grid.Tile, x+2, y+2)
				if got != want {
					t.Fatalf("(%d,%d): got %d, want %d", x, y, got, want)
				}
				continue
			}
			if got != -5 {
				t.Fatalf("(%d,%d) had no captured source but was written: %d", x, y, got)
			}
		}
	}
}

func TestPasteNearEdgeClamps(t *testing.T) {
	src := filledGrid(4)
	pb := Capture(src, grid.Full(4))
	dst := grid.New(4)
	pb.Paste(dst, image.Pt(3, 3), grid.AllLayers)
	if v, _ := dst.Get(grid.Tile, 3, 3); v != 1 {
		t.Fatalf("anchor cell: got %d, want 1", v)
	}
	if v, _ := dst.Get(grid.Tile, 2, 2); v != 0 {
		t.Fatalf("cell before the anchor changed: %d", v)
	}
}

func TestEmptyPasteboard(t *testing.T) {
	var pb *Pasteboard
	if !pb.Empty() {
		t.Fatalf("nil pasteboard should be empty")
	}
	dst := grid.New(2)
	pb.Paste(dst, image.Pt(0, 0), grid.AllLayers)
	if _, err := pb.Marshal(); err != ErrEmpty {
		t.Fatalf("got %v, want ErrEmpty", err)
	}
}

func TestMarshalUnmarshalRegion(t *testing.T) {
	src := filledGrid(8)
	rect := grid.NewRect(image.Pt(5, 1), image.Pt(3, 2))
	pb := Capture(src, rect)
	data, err := pb.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	back, err := Unmarshal(data, 8)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if back.Rect() != rect {
		t.Fatalf("rect %+v, want %+v", back.Rect(), rect)
	}

	a, b := grid.New(8), grid.New(8)
	pb.Paste(a, image.Pt(0, 4), grid.AllLayers)
	back.Paste(b, image.Pt(0, 4), grid.AllLayers)
	for _, l := range grid.Layers {
		if diff := cmp.Diff(a.Rows(l), b.Rows(l)); diff != "" {
			t.Fatalf("%s layer differs after import (-want +got):\n%s", l, diff)
		}
	}
}

func TestUnmarshalRejectsBadInput(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"not_json", "tiles please"},
		{"zero_size", `{"x":0,"y":0,"w":0,"h":1}`},
		{"negative_origin", `{"x":-1,"y":0,"w":2,"h":2}`},
		{"origin_past_edge", `{"x":4,"y":0,"w":1,"h":1}`},
		{"origin_overflows", `{"x":9223372036854775807,"y":0,"w":9223372036854775807,"h":1}`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := Unmarshal([]byte(c.data), 4); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestUnmarshalClipsOversizedRegion(t *testing.T) {
	data := []byte(`{"x":1,"y":2,"w":20000,"h":20000,"tiles":[[5,6,7,8,9]]}`)
	pb, err := Unmarshal(data, 4)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if want := (grid.Rect{X0: 1, Y0: 2, X1: 3, Y1: 3}); pb.Rect() != want {
		t.Fatalf("rect %+v, want %+v", pb.Rect(), want)
	}

	dst := grid.New(4)
	pb.Paste(dst, image.Pt(0, 0), grid.AllLayers)
	want := [][]int{
		{5, 6, 7, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	if diff := cmp.Diff(want, dst.Rows(grid.Tile)); diff != "" {
		t.Fatalf("tile layer (-want +got):\n%s", diff)
	}
}

func TestMarshalWritesOnlyCellsInsideRoom(t *testing.T) {
	src := filledGrid(4)
	pb := Capture(src, grid.NewRect(image.Pt(-100, 2), image.Pt(1, 100)))
	data, err := pb.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	back, err := Unmarshal(data, 4)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if want := (grid.Rect{X0: 0, Y0: 2, X1: 1, Y1: 3}); back.Rect() != want {
		t.Fatalf("rect %+v, want %+v", back.Rect(), want)
	}

	off := Capture(src, grid.NewRect(image.Pt(5, 5), image.Pt(6, 6)))
	if _, err := off.Marshal(); err != ErrOffRoom {
		t.Fatalf("got %v, want ErrOffRoom", err)
	}
}
