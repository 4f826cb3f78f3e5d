// Package overlay draws what the region tools show on top of the room: the
// selection box of the box and copy tools, and the tile picker.
package overlay

import (
	"image"
	"math"

	"github.com/milk9111/roomtools/grid"
	"github.com/milk9111/roomtools/tools"
)

// Picker layout. Tiles are drawn PickerZoom times their size with a
// PickerBorder pixel gap, PickerColumns to a row like the tile sheet.
const (
	PickerZoom    = 3
	PickerBorder  = 2
	PickerColumns = tools.SheetColumns
)

// View maps room cells to screen pixels.
type View struct {
	CellPx  int
	Zoom    float64
	OffsetX float64
	OffsetY float64
}

func (v View) scale() float64 {
	z := v.Zoom
	if z == 0 {
		z = 1
	}
	return z * float64(v.CellPx)
}

// ToCell converts a screen position to room position in cell units.
func (v View) ToCell(sx, sy float64) (float64, float64) {
	s := v.scale()
	return (sx - v.OffsetX) / s, (sy - v.OffsetY) / s
}

// CellAt returns the cell under a screen position.
func (v View) CellAt(sx, sy float64) image.Point {
	x, y := v.ToCell(sx, sy)
	return image.Pt(int(math.Floor(x)), int(math.Floor(y)))
}

// ScreenRect returns the screen rectangle covering every cell of r.
func (v View) ScreenRect(r grid.Rect) (x, y, w, h float32) {
	s := v.scale()
	x = float32(float64(r.X0)*s + v.OffsetX)
	y = float32(float64(r.Y0)*s + v.OffsetY)
	w = float32(float64(r.Dx()) * s)
	h = float32(float64(r.Dy()) * s)
	return x, y, w, h
}

// pickerPitch is the distance between two picker tiles.
func pickerPitch(tilePx int) int { return PickerBorder + tilePx*PickerZoom }

// PickerIndexAt returns the sheet index under a click at (px, py) in picker
// pixels. Clicks left of, above or right of the sheet hit nothing.
func PickerIndexAt(px, py, tilePx int) (int, bool) {
	if px < 0 || py < 0 || tilePx <= 0 {
		return 0, false
	}
	p := pickerPitch(tilePx)
	tx, ty := px/p, py/p
	if tx >= PickerColumns {
		return 0, false
	}
	return ty*PickerColumns + tx, true
}

// PickerTileRect is where sheet index i is drawn in the picker.
func PickerTileRect(i, tilePx int) image.Rectangle {
	p := pickerPitch(tilePx)
	x, y := (i%PickerColumns)*p, (i/PickerColumns)*p
	size := tilePx * PickerZoom
	return image.Rect(x, y, x+size, y+size)
}

// PickerSize is the pixel size of a picker showing n tiles.
func PickerSize(n, tilePx int) image.Point {
	rows := (n + PickerColumns - 1) / PickerColumns
	p := pickerPitch(tilePx)
	return image.Pt(PickerColumns*p, max(rows, 1)*p)
}

// SheetRect is the source rectangle of frame index f in a sheet image of
// the given width.
func SheetRect(f, tilePx, sheetW int) image.Rectangle {
	cols := max(sheetW/tilePx, 1)
	x, y := (f%cols)*tilePx, (f/cols)*tilePx
	return image.Rect(x, y, x+tilePx, y+tilePx)
}
