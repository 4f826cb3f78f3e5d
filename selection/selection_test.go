package selection

import (
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/milk9111/roomtools/grid"
)

func TestAreaUpdateIsOrderIndependent(t *testing.T) {
	cases := []struct {
		name   string
		p0, p1 image.Point
	}{
		{"down_right", image.Pt(1, 1), image.Pt(4, 3)},
		{"up_left", image.Pt(9, 9), image.Pt(2, 0)},
		{"same", image.Pt(5, 5), image.Pt(5, 5)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var a, b Area
			ra := a.Update(c.p0, c.p1)
			rb := b.Update(c.p1, c.p0)
			if ra != rb {
				t.Fatalf("got %+v and %+v", ra, rb)
			}
			if ra.X0 > ra.X1 || ra.Y0 > ra.Y1 {
				t.Fatalf("not normalized: %+v", ra)
			}
		})
	}
}

func TestAreaSelectingLifecycle(t *testing.T) {
	var a Area
	a.Begin(image.Pt(2, 2))
	if a.Selecting() {
		t.Fatalf("Begin must not show the overlay")
	}
	a.Update(image.Pt(2, 2), image.Pt(0, 3))
	if !a.Selecting() {
		t.Fatalf("Update must show the overlay")
	}
	r := a.Commit()
	if a.Selecting() {
		t.Fatalf("Commit must hide the overlay")
	}
	if want := (grid.Rect{X0: 0, Y0: 2, X1: 2, Y1: 3}); r != want || a.Rect() != want {
		t.Fatalf("got %+v, want %+v", r, want)
	}
}

func TestSetSingleKeepsOneElement(t *testing.T) {
	var s Tiles
	s.SetSingle(3)
	s.SetSingle(7)
	if diff := cmp.Diff([]int{7}, s.Indices()); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestToggleTwiceRestores(t *testing.T) {
	var s Tiles
	s.SetMulti(true)
	s.Toggle(1)
	s.Toggle(5)
	before := s.Indices()
	s.Toggle(9)
	s.Toggle(9)
	if diff := cmp.Diff(before, s.Indices()); diff != "" {
		t.Fatalf("toggle pair changed selection (-want +got):\n%s", diff)
	}
	s.Toggle(1)
	s.Toggle(1)
	if diff := cmp.Diff([]int{5, 1}, s.Indices()); diff != "" {
		t.Fatalf("re-added index should go last (-want +got):\n%s", diff)
	}
}

func TestClickDispatchesOnMode(t *testing.T) {
	var s Tiles
	s.Click(2)
	s.Click(4)
	if s.Len() != 1 || s.At(0) != 4 {
		t.Fatalf("single mode click: %v", s.Indices())
	}
	s.SetMulti(true)
	s.Click(6)
	s.Click(8)
	s.Click(4)
	if diff := cmp.Diff([]int{6, 8}, s.Indices()); diff != "" {
		t.Fatalf("multi mode clicks (-want +got):\n%s", diff)
	}
}

func TestLeavingMultiClearsSeveral(t *testing.T) {
	cases := []struct {
		name    string
		picks   []int
		cleared bool
		left    int
	}{
		{"none", nil, false, 0},
		{"one", []int{3}, false, 1},
		{"two", []int{3, 4}, true, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var s Tiles
			s.SetMulti(true)
			for _, p := range c.picks {
				s.Click(p)
			}
			if got := s.SetMulti(false); got != c.cleared {
				t.Fatalf("cleared=%v, want %v", got, c.cleared)
			}
			if s.Len() != c.left {
				t.Fatalf("left %d, want %d", s.Len(), c.left)
			}
		})
	}
}

func TestIndicesIsACopy(t *testing.T) {
	var s Tiles
	s.SetSingle(1)
	got := s.Indices()
	got[0] = 99
	if !s.Contains(1) || s.Contains(99) {
		t.Fatalf("Indices leaked internal storage")
	}
}
