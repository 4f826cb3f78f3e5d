package main

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/colorm"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/roomtools/grid"
	"github.com/milk9111/roomtools/overlay"
	"github.com/milk9111/roomtools/tools"
)

// animTicks is how many updates each animation frame is shown.
const animTicks = 15

// Canvas is the room view: pan and zoom state plus room rendering.
type Canvas struct {
	View   overlay.View
	Bounds image.Rectangle

	panning bool
	lastMX  int
	lastMY  int
}

func NewCanvas(cellPx int, bounds image.Rectangle) *Canvas {
	return &Canvas{
		View: overlay.View{
			CellPx:  cellPx,
			Zoom:    1,
			OffsetX: float64(bounds.Min.X + 16),
			OffsetY: float64(bounds.Min.Y + 16),
		},
		Bounds: bounds,
	}
}

func (c *Canvas) Contains(mx, my int) bool {
	return image.Pt(mx, my).In(c.Bounds)
}

// ToCell maps a cursor position to room position in cell units.
func (c *Canvas) ToCell(mx, my int) (float64, float64) {
	return c.View.ToCell(float64(mx), float64(my))
}

// UpdateView handles wheel zoom and middle-button pan.
func (c *Canvas) UpdateView(mx, my int) {
	if c.Contains(mx, my) {
		_, wy := ebiten.Wheel()
		if wy != 0 {
			// local canvas coordinate before zoom
			localX := (float64(mx) - c.View.OffsetX) / c.View.Zoom
			localY := (float64(my) - c.View.OffsetY) / c.View.Zoom
			factor := 1.1
			if wy < 0 {
				factor = 1.0 / 1.1
			}
			newZoom := c.View.Zoom * factor
			if newZoom < 0.25 {
				newZoom = 0.25
			}
			if newZoom > 8.0 {
				newZoom = 8.0
			}
			c.View.Zoom = newZoom
			// keep the point under the cursor fixed
			c.View.OffsetX = float64(mx) - localX*c.View.Zoom
			c.View.OffsetY = float64(my) - localY*c.View.Zoom
		}
	}

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle) {
		if !c.panning {
			c.panning = true
			c.lastMX, c.lastMY = mx, my
		}
		c.View.OffsetX += float64(mx - c.lastMX)
		c.View.OffsetY += float64(my - c.lastMY)
		c.lastMX, c.lastMY = mx, my
	} else {
		c.panning = false
	}
}

// Draw renders every cell: the background color, then the tile's current
// animation frame tinted with the foreground color.
func (c *Canvas) Draw(screen *ebiten.Image, g *grid.Grid, catalog tools.Catalog, sheet *ebiten.Image, tick int) {
	dst := screen.SubImage(c.Bounds).(*ebiten.Image)
	index := make(map[int]int, len(catalog))
	for i, def := range catalog {
		if _, seen := index[def.ID]; !seen {
			index[def.ID] = i
		}
	}
	sheetW := sheet.Bounds().Dx()
	scale := c.View.Zoom * float64(c.View.CellPx) / sheetTilePx

	for y := 0; y < g.Size(); y++ {
		for x := 0; x < g.Size(); x++ {
			sx, sy, w, h := c.View.ScreenRect(grid.Rect{X0: x, Y0: y, X1: x, Y1: y})
			back, _ := g.Get(grid.Background, x, y)
			vector.FillRect(dst, sx, sy, w, h, paletteColor(back), false)

			id, _ := g.Get(grid.Tile, x, y)
			i, ok := index[id]
			if id == 0 || !ok || len(catalog[i].Frames) == 0 {
				continue
			}
			frames := catalog[i].Frames
			frame := frames[(tick/animTicks)%len(frames)]
			src := sheet.SubImage(overlay.SheetRect(frame, sheetTilePx, sheetW)).(*ebiten.Image)

			fore, _ := g.Get(grid.Foreground, x, y)
			cm := overlay.Tint(paletteColor(fore))
			op := &colorm.DrawImageOptions{}
			op.GeoM.Scale(scale, scale)
			op.GeoM.Translate(float64(sx), float64(sy))
			colorm.DrawImage(dst, src, cm, op)
		}
	}
}
