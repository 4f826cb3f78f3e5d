package tools

import (
	"fmt"
	"log"
	"slices"
)

// ClickPicker handles a click on the tile picker at sheet index i. Clicks
// past the end of the catalog are ignored. It reports whether the selection
// changed.
func (s *Session) ClickPicker(i int) bool {
	sel := s.host.Selections()
	if i < 0 || i >= len(sel.Catalog) {
		return false
	}
	s.tiles.Click(i)
	if s.opts.Experimental {
		log.Printf("Selected tiles: %v", s.tiles.Indices())
	}
	s.host.SelectHostTile(i)
	s.host.RequestRedraw()
	return true
}

// SetMultiSelect switches between single and multi tile selection.
func (s *Session) SetMultiSelect(on bool) {
	if s.tiles.SetMulti(on) {
		s.host.SelectHostTile(-1)
	}
	s.host.RequestRedraw()
}

// Animate turns the selected tiles into one animation: the n-th selected
// tile gets the whole selection as frames, rotated left by n, so they play
// out of phase. It only works while the catalog is in sheet order.
func (s *Session) Animate() error {
	if !s.opts.Experimental {
		return fmt.Errorf("tools: animate: %w", ErrNotExperimental)
	}
	catalog := s.host.Selections().Catalog
	anim := s.tiles.Indices()
	s.host.MakeCheckpoint()
	defer s.host.Changed()
	for n, idx := range anim {
		if idx < 0 || idx >= len(catalog) {
			continue
		}
		catalog[idx].Frames = slices.Concat(anim[n:], anim[:n])
	}
	return nil
}
