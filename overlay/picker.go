package overlay

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/colorm"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/roomtools/tools"
	"golang.org/x/image/colornames"
)

// Picker renders the tile catalog as a clickable sheet.
type Picker struct {
	Sheet  *ebiten.Image
	TilePx int
}

// Size is the pixel size of the picker for the catalog.
func (p *Picker) Size(catalog tools.Catalog) image.Point {
	return PickerSize(len(catalog), p.TilePx)
}

// Draw renders every catalog entry by its first frame at its sheet position,
// then outlines the selected indices. With keepColors the sheet keeps its own
// colors on black; otherwise tiles are drawn in fg over bg, the way they
// appear in the room.
func (p *Picker) Draw(dst *ebiten.Image, catalog tools.Catalog, selected []int, fg, bg color.Color, keepColors bool) {
	size := p.Size(catalog)
	if keepColors {
		bg = colornames.Black
	}
	vector.FillRect(dst, 0, 0, float32(size.X), float32(size.Y), bg, false)

	var cm colorm.ColorM
	if !keepColors {
		cm = Tint(fg)
	}
	sheetW := p.Sheet.Bounds().Dx()
	for i, def := range catalog {
		if len(def.Frames) == 0 {
			continue
		}
		src := p.Sheet.SubImage(SheetRect(def.Frames[0], p.TilePx, sheetW)).(*ebiten.Image)
		at := PickerTileRect(i, p.TilePx)
		op := &colorm.DrawImageOptions{}
		op.GeoM.Scale(PickerZoom, PickerZoom)
		op.GeoM.Translate(float64(at.Min.X), float64(at.Min.Y))
		colorm.DrawImage(dst, src, cm, op)
	}

	for _, i := range selected {
		at := PickerTileRect(i, p.TilePx)
		vector.StrokeRect(dst, float32(at.Min.X+2), float32(at.Min.Y+2),
			float32(at.Dx()-3), float32(at.Dy()-3), strokeWidth, SelectionColor, false)
	}
}

// Tint paints every opaque pixel in c, keeping the source alpha.
func Tint(c color.Color) colorm.ColorM {
	r, g, b, _ := c.RGBA()
	var cm colorm.ColorM
	cm.Scale(0, 0, 0, 1)
	cm.Translate(float64(r)/0xffff, float64(g)/0xffff, float64(b)/0xffff, 0)
	return cm
}
