package main

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/roomtools/overlay"
	"github.com/milk9111/roomtools/tools"
)

// TilesetPanel is the tile picker shown while the tools window is open. It
// renders into its own image and only redraws when asked to.
type TilesetPanel struct {
	Origin image.Point
	picker overlay.Picker
	img    *ebiten.Image
}

func NewTilesetPanel(sheet *ebiten.Image, origin image.Point) *TilesetPanel {
	return &TilesetPanel{
		Origin: origin,
		picker: overlay.Picker{Sheet: sheet, TilePx: sheetTilePx},
	}
}

// Rect is the screen area of the picker for the catalog.
func (p *TilesetPanel) Rect(catalog tools.Catalog) image.Rectangle {
	return image.Rectangle{Min: p.Origin, Max: p.Origin.Add(p.picker.Size(catalog))}
}

// IndexAt returns the sheet index under the cursor.
func (p *TilesetPanel) IndexAt(mx, my int) (int, bool) {
	return overlay.PickerIndexAt(mx-p.Origin.X, my-p.Origin.Y, sheetTilePx)
}

// Draw blits the picker, rendering it again first when stale is set.
func (p *TilesetPanel) Draw(screen *ebiten.Image, stale bool, sel tools.Selections, selected []int, keepColors bool) {
	size := p.picker.Size(sel.Catalog)
	if p.img == nil || p.img.Bounds().Size() != size {
		p.img = ebiten.NewImage(size.X, size.Y)
		stale = true
	}
	if stale {
		p.img.Clear()
		p.picker.Draw(p.img, sel.Catalog, selected, paletteColor(sel.Foreground), paletteColor(sel.Background), keepColors)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(p.Origin.X), float64(p.Origin.Y))
	screen.DrawImage(p.img, op)
}
