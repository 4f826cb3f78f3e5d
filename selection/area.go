// Package selection holds the two selections the region tools work with: a
// rectangle of room cells and an ordered set of tile-sheet indices.
package selection

import (
	"image"

	"github.com/milk9111/roomtools/grid"
)

// Area tracks the rectangle dragged out by the box and copy tools. Selecting
// is true only while such a drag is in progress and drives the overlay.
type Area struct {
	rect      grid.Rect
	selecting bool
}

// Begin anchors a new rectangle at p without showing it yet.
func (a *Area) Begin(p image.Point) {
	a.rect = grid.NewRect(p, p)
	a.selecting = false
}

// Update normalizes the rectangle spanned by p0 and p1 and shows it.
func (a *Area) Update(p0, p1 image.Point) grid.Rect {
	a.rect = grid.NewRect(p0, p1)
	a.selecting = true
	return a.rect
}

// Commit hides the overlay and returns the final rectangle.
func (a *Area) Commit() grid.Rect {
	a.selecting = false
	return a.rect
}

func (a *Area) Rect() grid.Rect { return a.rect }

func (a *Area) Selecting() bool { return a.selecting }
