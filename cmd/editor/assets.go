package main

import (
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"
)

const (
	// sheetTilePx is the pixel size of one frame in the tile sheet.
	sheetTilePx = 8
	// sheetFrames is the frame count of the built-in sheet.
	sheetFrames = 64
)

// palette is the room color palette; foreground and background cells index
// into it.
var palette = []color.Color{
	colornames.Black,
	colornames.White,
	colornames.Tomato,
	colornames.Gold,
	colornames.Mediumseagreen,
	colornames.Steelblue,
	colornames.Orchid,
	colornames.Slategray,
}

func paletteColor(i int) color.Color {
	if i < 0 || i >= len(palette) {
		return palette[0]
	}
	return palette[i]
}

// LoadSheet loads a PNG tile sheet of sheetTilePx frames.
func LoadSheet(path string) (*ebiten.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		return nil, err
	}
	return ebiten.NewImageFromImage(img), nil
}

// newSheet draws n white frames on transparent, eight to a row. Frame 0 is
// a solid block; the rest are mirrored patterns picked from the frame index.
func newSheet(n int) *ebiten.Image {
	const cols = 8
	rows := max((n+cols-1)/cols, 1)
	img := image.NewRGBA(image.Rect(0, 0, cols*sheetTilePx, rows*sheetTilePx))
	for f := 0; f < n; f++ {
		ox, oy := (f%cols)*sheetTilePx, (f/cols)*sheetTilePx
		for y := 0; y < sheetTilePx; y++ {
			for x := 0; x < sheetTilePx; x++ {
				if framePixel(f, x, y) {
					img.Set(ox+x, oy+y, color.White)
				}
			}
		}
	}
	return ebiten.NewImageFromImage(img)
}

func framePixel(f, x, y int) bool {
	if f == 0 {
		return true
	}
	h := uint32(f) * 2654435761
	h ^= h >> 13
	half := min(x, sheetTilePx-1-x)
	return h>>uint((y*4+half)%32)&1 == 1
}
