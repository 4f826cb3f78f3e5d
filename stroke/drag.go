package stroke

import (
	"image"
	"math"
)

// Drag holds the samples of a single pointer gesture, in grid cells. It is
// created on pointer-down and dropped on pointer-up.
type Drag struct {
	samples []image.Point
}

// Cell floors a position expressed in cell units. Positions left of or above
// the room map to negative cells.
func Cell(x, y float64) image.Point {
	return image.Pt(int(math.Floor(x)), int(math.Floor(y)))
}

func NewDrag(x, y float64) *Drag {
	return &Drag{samples: []image.Point{Cell(x, y)}}
}

// Add records the next pointer sample.
func (d *Drag) Add(x, y float64) image.Point {
	p := Cell(x, y)
	d.samples = append(d.samples, p)
	return p
}

func (d *Drag) Len() int { return len(d.samples) }

func (d *Drag) First() image.Point { return d.samples[0] }

func (d *Drag) Last() image.Point { return d.samples[len(d.samples)-1] }

// Segment returns the previous and latest samples. With a single sample both
// are the starting cell.
func (d *Drag) Segment() (image.Point, image.Point) {
	if len(d.samples) < 2 {
		return d.samples[0], d.samples[0]
	}
	return d.samples[len(d.samples)-2], d.samples[len(d.samples)-1]
}

// Samples returns a copy of every recorded cell.
func (d *Drag) Samples() []image.Point {
	out := make([]image.Point, len(d.samples))
	copy(out, d.samples)
	return out
}
