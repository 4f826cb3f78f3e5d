// Package pasteboard holds the copy buffer of the region tools: a private
// snapshot of all three room layers and the rectangle that was copied.
package pasteboard

import (
	"image"

	"github.com/milk9111/roomtools/grid"
)

// Pasteboard is read-only once captured; every copy makes a new one.
type Pasteboard struct {
	layers *grid.Grid
	rect   grid.Rect
}

// Capture deep-copies g and remembers r as the region to paste. Later edits
// to g do not reach the pasteboard.
func Capture(g *grid.Grid, r grid.Rect) *Pasteboard {
	return &Pasteboard{layers: g.Clone(), rect: r}
}

// Empty reports whether nothing has been captured.
func (p *Pasteboard) Empty() bool { return p == nil || p.layers == nil }

// Rect returns the captured source rectangle.
func (p *Pasteboard) Rect() grid.Rect { return p.rect }

// Get reads a captured cell; ok is false outside the captured room.
func (p *Pasteboard) Get(l grid.Layer, x, y int) (int, bool) {
	if p.Empty() {
		return 0, false
	}
	return p.layers.Get(l, x, y)
}

// Paste replays the captured rectangle with its origin at anchor.
func (p *Pasteboard) Paste(dst *grid.Grid, anchor image.Point, layers grid.LayerMask) {
	p.PasteRect(dst, anchor, p.rect, layers)
}

// PasteRect copies every cell of src into dst, shifted so src's origin lands
// on anchor. Only layers in the mask are written, and a source cell that was
// not captured leaves its destination untouched.
func (p *Pasteboard) PasteRect(dst *grid.Grid, anchor image.Point, src grid.Rect, layers grid.LayerMask) {
	if p.Empty() || layers == 0 {
		return
	}
	dx, dy := anchor.X-src.X0, anchor.Y-src.Y0
	src.Each(func(x, y int) {
		for _, l := range grid.Layers {
			if !layers.Has(l) {
				continue
			}
			if v, ok := p.layers.Get(l, x, y); ok {
				dst.Set(l, x+dx, y+dy, v)
			}
		}
	})
}
