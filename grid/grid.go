// Package grid provides bounds-checked access to the three cell layers of a
// square room: tile ids, foreground color indices and background color indices.
package grid

import (
	"fmt"
	"strings"
)

// Layer identifies one of the parallel cell layers of a room.
type Layer int

const (
	Tile Layer = iota
	Foreground
	Background
)

// Layers lists every layer in storage order.
var Layers = [...]Layer{Tile, Foreground, Background}

func (l Layer) String() string {
	switch l {
	case Tile:
		return "Tile"
	case Foreground:
		return "Foreground"
	case Background:
		return "Background"
	default:
		return "Unknown"
	}
}

// LayerMask is a set of layers a plot operation is allowed to write.
type LayerMask uint8

const AllLayers = LayerMask(1<<Tile | 1<<Foreground | 1<<Background)

func MaskOf(layers ...Layer) LayerMask {
	var m LayerMask
	for _, l := range layers {
		m = m.With(l)
	}
	return m
}

func (m LayerMask) Has(l Layer) bool          { return m&(1<<l) != 0 }
func (m LayerMask) With(l Layer) LayerMask    { return m | 1<<l }
func (m LayerMask) Without(l Layer) LayerMask { return m &^ (1 << l) }

func (m LayerMask) String() string {
	if m == 0 {
		return "None"
	}
	var names []string
	for _, l := range Layers {
		if m.Has(l) {
			names = append(names, l.String())
		}
	}
	return strings.Join(names, "|")
}

// Grid is a square room of side Size with one [][]int per layer, indexed
// [y][x]. The storage may be owned by the host; Grid never replaces it.
type Grid struct {
	size   int
	layers [len(Layers)][][]int
}

// New allocates an empty grid of side size.
func New(size int) *Grid {
	if size < 0 {
		size = 0
	}
	g := &Grid{size: size}
	for i := range g.layers {
		g.layers[i] = makeLayer(size)
	}
	return g
}

// Wrap adopts host-owned layer storage without copying it. Every layer must
// have at least size rows of at least size cells.
func Wrap(size int, tiles, fore, back [][]int) (*Grid, error) {
	if size <= 0 {
		return nil, fmt.Errorf("grid: invalid size %d", size)
	}
	g := &Grid{size: size}
	for i, rows := range [...][][]int{tiles, fore, back} {
		if err := checkShape(rows, size); err != nil {
			return nil, fmt.Errorf("grid: %s layer: %w", Layer(i), err)
		}
		g.layers[i] = rows
	}
	return g, nil
}

func checkShape(rows [][]int, size int) error {
	if len(rows) < size {
		return fmt.Errorf("has %d rows, want %d", len(rows), size)
	}
	for y := 0; y < size; y++ {
		if len(rows[y]) < size {
			return fmt.Errorf("row %d has %d cells, want %d", y, len(rows[y]), size)
		}
	}
	return nil
}

func makeLayer(size int) [][]int {
	rows := make([][]int, size)
	for y := range rows {
		rows[y] = make([]int, size)
	}
	return rows
}

// Size returns the side length N.
func (g *Grid) Size() int { return g.size }

// In reports whether (x, y) addresses a cell.
func (g *Grid) In(x, y int) bool {
	return x >= 0 && x < g.size && y >= 0 && y < g.size
}

// Get returns the cell value and true, or false when (x, y) is out of bounds.
func (g *Grid) Get(l Layer, x, y int) (int, bool) {
	if !g.In(x, y) || !validLayer(l) {
		return 0, false
	}
	return g.layers[l][y][x], true
}

// Set writes v at (x, y). Out of bounds writes are ignored: strokes and
// stamps routinely run past the room edge.
func (g *Grid) Set(l Layer, x, y, v int) {
	if !g.In(x, y) || !validLayer(l) {
		return
	}
	g.layers[l][y][x] = v
}

// SetOrZero writes v when ok is true and 0 otherwise, so a missing value
// never leaves a foreign sentinel in the room.
func (g *Grid) SetOrZero(l Layer, x, y, v int, ok bool) {
	if !ok {
		v = 0
	}
	g.Set(l, x, y, v)
}

// Rows exposes the layer storage for rendering and saving. Callers must not
// replace rows.
func (g *Grid) Rows(l Layer) [][]int {
	if !validLayer(l) {
		return nil
	}
	return g.layers[l]
}

// Clone returns a deep copy that shares no storage with g.
func (g *Grid) Clone() *Grid {
	c := &Grid{size: g.size}
	for i, rows := range g.layers {
		c.layers[i] = make([][]int, len(rows))
		for y := range rows {
			c.layers[i][y] = make([]int, len(rows[y]))
			copy(c.layers[i][y], rows[y])
		}
	}
	return c
}

// CopyFrom overwrites g's cells with src's, in place. Both grids must have
// the same size; other sizes copy the overlapping cells only.
func (g *Grid) CopyFrom(src *Grid) {
	for _, l := range Layers {
		for y := 0; y < g.size && y < src.size; y++ {
			copy(g.layers[l][y][:g.size], src.layers[l][y][:src.size])
		}
	}
}

func validLayer(l Layer) bool {
	return l >= 0 && int(l) < len(Layers)
}
