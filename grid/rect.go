package grid

import "image"

// Rect is an inclusive cell rectangle. Build it with NewRect so X0<=X1 and
// Y0<=Y1 always hold.
type Rect struct {
	X0, Y0 int
	X1, Y1 int
}

// NewRect returns the normalized rectangle spanning a and b in any order.
func NewRect(a, b image.Point) Rect {
	r := Rect{X0: a.X, Y0: a.Y, X1: b.X, Y1: b.Y}
	if r.X0 > r.X1 {
		r.X0, r.X1 = r.X1, r.X0
	}
	if r.Y0 > r.Y1 {
		r.Y0, r.Y1 = r.Y1, r.Y0
	}
	return r
}

// Full covers every cell of a room of side size.
func Full(size int) Rect {
	return Rect{X0: 0, Y0: 0, X1: size - 1, Y1: size - 1}
}

func (r Rect) Origin() image.Point { return image.Pt(r.X0, r.Y0) }

func (r Rect) Dx() int { return r.X1 - r.X0 + 1 }
func (r Rect) Dy() int { return r.Y1 - r.Y0 + 1 }

func (r Rect) Contains(p image.Point) bool {
	return p.X >= r.X0 && p.X <= r.X1 && p.Y >= r.Y0 && p.Y <= r.Y1
}

// Each calls fn for every cell, column by column as the paint loop does.
func (r Rect) Each(fn func(x, y int)) {
	for x := r.X0; x <= r.X1; x++ {
		for y := r.Y0; y <= r.Y1; y++ {
			fn(x, y)
		}
	}
}

// Translate moves the rectangle so its origin lands on p.
func (r Rect) Translate(p image.Point) Rect {
	dx, dy := p.X-r.X0, p.Y-r.Y0
	return Rect{X0: r.X0 + dx, Y0: r.Y0 + dy, X1: r.X1 + dx, Y1: r.Y1 + dy}
}

// Intersect returns the cells r and s share; ok is false when they share none.
func (r Rect) Intersect(s Rect) (Rect, bool) {
	out := Rect{
		X0: max(r.X0, s.X0), Y0: max(r.Y0, s.Y0),
		X1: min(r.X1, s.X1), Y1: min(r.Y1, s.Y1),
	}
	if out.X0 > out.X1 || out.Y0 > out.Y1 {
		return Rect{}, false
	}
	return out, true
}
