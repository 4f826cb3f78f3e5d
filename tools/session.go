package tools

import (
	"fmt"
	"image"
	"log"
	"math/rand/v2"

	"github.com/milk9111/roomtools/config"
	"github.com/milk9111/roomtools/grid"
	"github.com/milk9111/roomtools/pasteboard"
	"github.com/milk9111/roomtools/selection"
	"github.com/milk9111/roomtools/stroke"
)

// Session is the state of the region tools for one editor: the active tool,
// the selections, the pasteboard and the gesture in progress. It is created
// when the tools window is first opened and lives as long as the host.
//
// A Session is driven from the host's event loop and is not safe for
// concurrent use.
type Session struct {
	host  Host
	opts  config.Options
	tool  Tool
	open  bool
	area  selection.Area
	tiles selection.Tiles
	board *pasteboard.Pasteboard

	gesture  *gesture
	handling bool
	intn     func(n int) int

	// OnToolChange is called when the session switches tool on its own, such
	// as arming paste after a copy, so the toolbar can follow silently.
	OnToolChange func(t Tool)
}

// gesture is the state of one pointer drag, dropped on pointer-up.
type gesture struct {
	tool       Tool
	drag       *stroke.Drag
	sel        Selections
	plot       plotter
	checkpoint bool
}

// NewSession checks that host provides what the tools need. A host without a
// room grid or tile catalog cannot be worked around per gesture.
func NewSession(host Host, opts config.Options) (*Session, error) {
	if host == nil {
		return nil, fmt.Errorf("tools: new session: %w", ErrNoHost)
	}
	sel := host.Selections()
	if sel.Grid == nil {
		return nil, fmt.Errorf("tools: new session: %w", ErrNoGrid)
	}
	if sel.Catalog == nil {
		return nil, fmt.Errorf("tools: new session: %w", ErrNoCatalog)
	}
	return &Session{
		host: host,
		opts: opts,
		tool: ToolDraw,
		intn: rand.IntN,
	}, nil
}

// Attach registers the session for the host's pointer events.
func (s *Session) Attach(hooks PointerHooks) {
	hooks.OnAfterPointerEvent(s.HandlePointer)
}

func (s *Session) Options() config.Options { return s.opts }

// SetOptions applies reloaded options.
func (s *Session) SetOptions(o config.Options) {
	s.opts = o
	s.host.RequestRedraw()
}

// Open shows the tools and takes over the pointer from the host paint tool.
func (s *Session) Open() {
	s.open = true
	s.host.SetPaintTool(PaintSuppressed)
	s.host.RequestRedraw()
}

// Close hides the tools, ends any gesture in progress and gives the pointer
// back to the host paint tool.
func (s *Session) Close() {
	s.finish()
	s.open = false
	s.host.SetPaintTool(PaintHostDefault)
	s.host.RequestRedraw()
}

func (s *Session) IsOpen() bool { return s.open }

// Active reports whether pointer events are handled by the tools: the window
// is open and the host paint tool is still suppressed.
func (s *Session) Active() bool {
	return s.open && s.host.PaintTool() == PaintSuppressed
}

func (s *Session) Tool() Tool { return s.tool }

// SetTool selects a tool from the tool-select input.
func (s *Session) SetTool(t Tool) {
	if !t.Valid() {
		return
	}
	s.finish()
	s.tool = t
	if s.open {
		s.host.SetPaintTool(PaintSuppressed)
	}
	log.Printf("Switched to %s tool", t)
}

func (s *Session) armTool(t Tool) {
	s.tool = t
	if s.OnToolChange != nil {
		s.OnToolChange(t)
	}
}

// Area returns the selection rectangle and whether the overlay should show it.
func (s *Session) Area() (grid.Rect, bool) {
	return s.area.Rect(), s.area.Selecting()
}

// SelectedTiles returns the selected sheet indices in selection order.
func (s *Session) SelectedTiles() []int { return s.tiles.Indices() }

func (s *Session) MultiSelect() bool { return s.tiles.Multi() }

func (s *Session) Pasteboard() *pasteboard.Pasteboard { return s.board }

// LoadPasteboard replaces the pasteboard, such as one read from the system
// clipboard, and arms the paste tool.
func (s *Session) LoadPasteboard(pb *pasteboard.Pasteboard) {
	if pb.Empty() {
		return
	}
	s.finish()
	s.board = pb
	s.armTool(ToolPasteArea)
}

// HandlePointer is the pointer hook. Events delivered while a previous event
// is still being handled are dropped.
func (s *Session) HandlePointer(ev PointerEvent) {
	if s.handling {
		log.Printf("Dropped re-entrant pointer %s", ev.Phase)
		return
	}
	s.handling = true
	defer func() { s.handling = false }()

	switch ev.Phase {
	case PointerDown:
		s.pointerDown(ev.X, ev.Y)
	case PointerMove:
		s.pointerMove(ev.X, ev.Y)
	case PointerUp:
		s.pointerUp(ev.X, ev.Y)
	}
}

func (s *Session) pointerDown(x, y float64) {
	// A down without the matching up must not leak into this gesture.
	s.finish()

	sel := s.host.Selections()
	if sel.Picking {
		// A picked id missing from the catalog leaves the selection alone.
		if sel.PickedTile >= 0 && sel.PickedTile < len(sel.Catalog) {
			s.tiles.SetSingle(sel.PickedTile)
		}
		s.host.RequestRedraw()
		return
	}
	if !s.Active() || sel.Grid == nil {
		return
	}

	g := &gesture{tool: s.tool, drag: stroke.NewDrag(x, y), sel: sel}
	start := g.drag.First()
	switch g.tool {
	case ToolPasteArea:
		s.host.MakeCheckpoint()
		defer s.host.Changed()
		if !s.board.Empty() {
			s.board.Paste(sel.Grid, start, sel.Layers)
		}
		s.host.RequestRedraw()
	case ToolDraw, ToolStamp:
		g.plot = s.plotter(g)
		s.begin(g)
		g.plot.Plot(start)
		s.host.RequestRedraw()
	case ToolBox:
		g.plot = s.plotter(g)
		s.begin(g)
		s.area.Begin(start)
	case ToolCopyArea:
		s.gesture = g
		s.area.Begin(start)
	}
}

func (s *Session) pointerMove(x, y float64) {
	g := s.gesture
	if g == nil {
		return
	}
	last := g.drag.Add(x, y)
	switch g.tool {
	case ToolDraw, ToolStamp:
		from, to := g.drag.Segment()
		for _, c := range stroke.Line(from, to) {
			g.plot.Plot(c)
		}
	case ToolBox, ToolCopyArea:
		s.area.Update(g.drag.First(), last)
	}
	s.host.RequestRedraw()
}

func (s *Session) pointerUp(x, y float64) {
	g := s.gesture
	if g == nil {
		return
	}
	defer s.finish()

	last := g.drag.Add(x, y)
	switch g.tool {
	case ToolDraw, ToolStamp:
		from, to := g.drag.Segment()
		for _, c := range stroke.Line(from, to) {
			g.plot.Plot(c)
		}
	case ToolBox:
		s.area.Update(g.drag.First(), last)
		r := s.area.Commit()
		r.Each(func(x, y int) { g.plot.Plot(image.Pt(x, y)) })
	case ToolCopyArea:
		s.area.Update(g.drag.First(), last)
		r := s.area.Commit()
		s.board = pasteboard.Capture(g.sel.Grid, r)
		log.Printf("Copied %dx%d area at (%d,%d)", r.Dx(), r.Dy(), r.X0, r.Y0)
		s.armTool(ToolPasteArea)
	}
}

// begin opens the undo checkpoint of a mutating gesture.
func (s *Session) begin(g *gesture) {
	s.host.MakeCheckpoint()
	g.checkpoint = true
	s.gesture = g
}

// finish drops the current gesture, closing its checkpoint if it opened one.
func (s *Session) finish() {
	g := s.gesture
	if g == nil {
		return
	}
	s.gesture = nil
	s.area.Commit()
	if g.checkpoint {
		s.host.Changed()
	}
	s.host.RequestRedraw()
}

func (s *Session) plotter(g *gesture) plotter {
	pt := paint{
		grid:    g.sel.Grid,
		layers:  g.sel.Layers,
		fg:      g.sel.Foreground,
		bg:      g.sel.Background,
		catalog: g.sel.Catalog,
		tiles:   &s.tiles,
	}
	if g.tool == ToolStamp {
		return stampPlot{paint: pt}
	}
	return randomPlot{paint: pt, intn: s.intn}
}
