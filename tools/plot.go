package tools

import (
	"image"

	"github.com/milk9111/roomtools/grid"
	"github.com/milk9111/roomtools/selection"
)

// plotter paints one anchor cell of a gesture.
type plotter interface {
	Plot(p image.Point)
}

// paint is the part of the host state every plot writes with.
type paint struct {
	grid    *grid.Grid
	layers  grid.LayerMask
	fg, bg  int
	catalog Catalog
	tiles   *selection.Tiles
}

func (pt paint) colors(x, y int) {
	if pt.layers.Has(grid.Foreground) {
		pt.grid.Set(grid.Foreground, x, y, pt.fg)
	}
	if pt.layers.Has(grid.Background) {
		pt.grid.Set(grid.Background, x, y, pt.bg)
	}
}

// randomPlot writes one tile drawn at random from the selection. Each call
// draws again, so a stroke or box varies cell by cell.
type randomPlot struct {
	paint
	intn func(n int) int
}

func (r randomPlot) Plot(p image.Point) {
	if n := r.tiles.Len(); n > 0 && r.layers.Has(grid.Tile) {
		pick := r.tiles.At(0)
		if n > 1 {
			pick = r.tiles.At(r.intn(n))
		}
		id, ok := r.catalog.ID(pick)
		r.grid.SetOrZero(grid.Tile, p.X, p.Y, id, ok)
	}
	r.colors(p.X, p.Y)
}

// stampPlot writes every selected tile at its sheet position relative to the
// top-left member, anchored at the plotted cell.
type stampPlot struct {
	paint
}

func (s stampPlot) Plot(p image.Point) {
	for _, m := range StampLayout(s.tiles.Indices(), s.catalog) {
		x, y := p.X+m.Col, p.Y+m.Row
		if s.layers.Has(grid.Tile) {
			s.grid.SetOrZero(grid.Tile, x, y, m.ID, m.Known)
		}
		s.colors(x, y)
	}
}

// StampCell is one member of a stamp: its sheet index, its offset from the
// stamp origin and the tile id currently at that sheet index.
type StampCell struct {
	Index    int
	Col, Row int
	ID       int
	Known    bool
}

// StampLayout places each selected sheet index at its row and column in the
// sheet, shifted so the smallest row and column are zero.
func StampLayout(indices []int, catalog Catalog) []StampCell {
	if len(indices) == 0 {
		return nil
	}
	cells := make([]StampCell, len(indices))
	minCol, minRow := 0, 0
	for i, idx := range indices {
		c := StampCell{Index: idx, Col: idx % SheetColumns, Row: idx / SheetColumns}
		c.ID, c.Known = catalog.ID(idx)
		if i == 0 || c.Col < minCol {
			minCol = c.Col
		}
		if i == 0 || c.Row < minRow {
			minRow = c.Row
		}
		cells[i] = c
	}
	for i := range cells {
		cells[i].Col -= minCol
		cells[i].Row -= minRow
	}
	return cells
}
