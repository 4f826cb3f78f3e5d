// Package stroke turns pointer samples into connected runs of grid cells.
package stroke

import "image"

// Line returns the cells of the Bresenham line from a to b, both inclusive.
// The result only depends on the two endpoints.
func Line(a, b image.Point) []image.Point {
	x0, y0 := a.X, a.Y
	dx := abs(b.X - x0)
	dy := -abs(b.Y - y0)
	sx := 1
	if x0 >= b.X {
		sx = -1
	}
	sy := 1
	if y0 >= b.Y {
		sy = -1
	}
	points := make([]image.Point, 0, max(dx, -dy)+1)
	err := dx + dy
	for {
		points = append(points, image.Pt(x0, y0))
		if x0 == b.X && y0 == b.Y {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
	return points
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
