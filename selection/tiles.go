package selection

import "slices"

// Tiles is an ordered selection of tile-sheet indices. In single mode it never
// holds more than one index; in multi mode clicks toggle membership and the
// insertion order is kept for stamping and animation.
type Tiles struct {
	indices []int
	multi   bool
}

// SetSingle replaces the selection with i.
func (t *Tiles) SetSingle(i int) {
	t.indices = append(t.indices[:0], i)
}

// Toggle adds i when absent and removes it when present.
func (t *Tiles) Toggle(i int) {
	if at := slices.Index(t.indices, i); at >= 0 {
		t.indices = slices.Delete(t.indices, at, at+1)
		return
	}
	t.indices = append(t.indices, i)
}

// Click applies a picker click according to the current mode.
func (t *Tiles) Click(i int) {
	if t.multi {
		t.Toggle(i)
		return
	}
	t.SetSingle(i)
}

// SetMulti switches mode. Leaving multi mode with several tiles selected
// clears the selection, since none of them is more "current" than another.
// It reports whether the selection was cleared.
func (t *Tiles) SetMulti(on bool) bool {
	t.multi = on
	if !on && len(t.indices) > 1 {
		t.Clear()
		return true
	}
	return false
}

func (t *Tiles) Multi() bool { return t.multi }

func (t *Tiles) Clear() { t.indices = t.indices[:0] }

func (t *Tiles) Len() int { return len(t.indices) }

func (t *Tiles) Contains(i int) bool { return slices.Contains(t.indices, i) }

// Indices returns a copy of the selection in insertion order.
func (t *Tiles) Indices() []int { return slices.Clone(t.indices) }

// At returns the n-th selected index.
func (t *Tiles) At(n int) int { return t.indices[n] }
