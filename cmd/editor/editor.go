package main

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"os"
	"slices"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/roomtools/config"
	"github.com/milk9111/roomtools/grid"
	"github.com/milk9111/roomtools/levels"
	"github.com/milk9111/roomtools/overlay"
	"github.com/milk9111/roomtools/tools"
	"golang.org/x/image/colornames"
)

const (
	toolbarH  = 52
	maxUndo   = 100
	panelGap  = 16
	statusPad = 8
)

// roomSnapshot is one undo step: the room cells and every tile's frames.
type roomSnapshot struct {
	grid   *grid.Grid
	frames [][]int
}

// Editor is the Ebiten game hosting a room and the region tools.
type Editor struct {
	room     *levels.Room
	roomPath string
	grid     *grid.Grid
	catalog  tools.Catalog
	sheet    *ebiten.Image

	fg, bg     int
	layers     grid.LayerMask
	paintTool  tools.PaintTool
	hostTile   int
	picking    bool
	pickedTile int

	session *tools.Session
	canvas  *Canvas
	panel   *TilesetPanel
	ui      *ebitenui.UI
	toolBar *ToolBar
	toggles *Toggles
	face    text.Face
	options *config.Watcher

	undoStack []roomSnapshot
	dirty     bool
	redraw    bool
	tick      int

	pressed      bool
	hostPainting bool
	lastMX       int
	lastMY       int

	pointerHooks []func(tools.PointerEvent)
	redrawHooks  []func(*ebiten.Image)
}

// NewEditor builds the editor around room and starts the region tools on it.
func NewEditor(room *levels.Room, roomPath string, sheet *ebiten.Image, opts config.Options, cellPx int) (*Editor, error) {
	g, err := room.Grid()
	if err != nil {
		return nil, err
	}
	e := &Editor{
		room:      room,
		roomPath:  roomPath,
		grid:      g,
		catalog:   catalogFromRoom(room),
		sheet:     sheet,
		fg:        1,
		layers:    grid.AllLayers,
		paintTool: tools.PaintHostDefault,
		hostTile:  0,
		face:      newFontFace(),
		redraw:    true,
	}

	e.session, err = tools.NewSession(e, opts)
	if err != nil {
		return nil, fmt.Errorf("start tools: %w", err)
	}
	e.session.Attach(e)

	roomPx := g.Size() * cellPx
	e.canvas = NewCanvas(cellPx, image.Rect(0, toolbarH, roomPx+2*panelGap, toolbarH+roomPx+2*panelGap))
	e.panel = NewTilesetPanel(sheet, image.Pt(e.canvas.Bounds.Max.X+panelGap, toolbarH+panelGap))
	overlay.Attach(e, e.session, &e.canvas.View)

	e.ui, e.toolBar, e.toggles = BuildEditorUI(e.face, UIHandlers{
		OnToolSelected: e.selectTool,
		OnWindow:       e.setWindow,
		OnMulti:        e.session.SetMultiSelect,
		OnLayer:        e.setLayer,
		OnPick:         e.setPicking,
		OnAnimate:      e.animate,
		OnUndo:         e.Undo,
		OnSave:         e.save,
	}, e.session.Tool(), e.layers, false)
	e.session.OnToolChange = e.toolBar.SetTool
	return e, nil
}

func catalogFromRoom(room *levels.Room) tools.Catalog {
	c := make(tools.Catalog, len(room.Tiles))
	for i, t := range room.Tiles {
		c[i] = tools.TileDef{ID: t.ID, Frames: slices.Clone(t.Frames)}
	}
	return c
}

// syncRoomTiles copies catalog frames back into the room for saving.
func (e *Editor) syncRoomTiles() {
	for i, def := range e.catalog {
		if i < len(e.room.Tiles) {
			e.room.Tiles[i].Frames = slices.Clone(def.Frames)
		}
	}
}

func (e *Editor) Selections() tools.Selections {
	return tools.Selections{
		Grid:       e.grid,
		Foreground: e.fg,
		Background: e.bg,
		Catalog:    e.catalog,
		Layers:     e.layers,
		Picking:    e.picking,
		PickedTile: e.pickedTile,
	}
}

func (e *Editor) MakeCheckpoint() { e.pushUndo() }

func (e *Editor) Changed() {
	e.dirty = true
	e.syncRoomTiles()
	e.redraw = true
}

func (e *Editor) RequestRedraw() { e.redraw = true }

func (e *Editor) PaintTool() tools.PaintTool { return e.paintTool }

func (e *Editor) SetPaintTool(p tools.PaintTool) { e.paintTool = p }

func (e *Editor) SelectHostTile(index int) { e.hostTile = index }

func (e *Editor) OnAfterPointerEvent(fn func(ev tools.PointerEvent)) {
	e.pointerHooks = append(e.pointerHooks, fn)
}

func (e *Editor) OnAfterRedraw(fn func(screen *ebiten.Image)) {
	e.redrawHooks = append(e.redrawHooks, fn)
}

func (e *Editor) pushUndo() {
	snapshot := roomSnapshot{grid: e.grid.Clone(), frames: make([][]int, len(e.catalog))}
	for i, def := range e.catalog {
		snapshot.frames[i] = slices.Clone(def.Frames)
	}
	if len(e.undoStack) >= maxUndo {
		e.undoStack = e.undoStack[1:]
	}
	e.undoStack = append(e.undoStack, snapshot)
}

func (e *Editor) Undo() {
	if len(e.undoStack) == 0 {
		return
	}
	idx := len(e.undoStack) - 1
	snapshot := e.undoStack[idx]
	e.undoStack = e.undoStack[:idx]
	e.grid.CopyFrom(snapshot.grid)
	for i := range e.catalog {
		if i < len(snapshot.frames) {
			e.catalog[i].Frames = snapshot.frames[i]
		}
	}
	e.Changed()
}

func (e *Editor) selectTool(t tools.Tool) {
	if !e.session.IsOpen() {
		e.setWindow(true)
	}
	e.session.SetTool(t)
	e.toolBar.SetTool(t)
}

func (e *Editor) setWindow(open bool) {
	if open {
		e.session.Open()
	} else {
		e.session.Close()
	}
	e.toggles.Window.Set(open)
}

func (e *Editor) setLayer(l grid.Layer, on bool) {
	if on {
		e.layers = e.layers.With(l)
	} else {
		e.layers = e.layers.Without(l)
	}
	log.Printf("Painting layers: %s", e.layers)
}

func (e *Editor) setPicking(on bool) {
	e.picking = on
	e.toggles.Pick.Set(on)
}

func (e *Editor) setMulti(on bool) {
	e.session.SetMultiSelect(on)
	e.toggles.Multi.Set(on)
}

func (e *Editor) animate() {
	if err := e.session.Animate(); err != nil {
		log.Printf("Animate failed: %v", err)
	}
}

func (e *Editor) dispatchPointer(phase tools.Phase, mx, my int) {
	x, y := e.canvas.ToCell(mx, my)
	ev := tools.PointerEvent{Phase: phase, X: x, Y: y}
	for _, fn := range e.pointerHooks {
		fn(ev)
	}
}

// pickAt arms the eyedropper result with the catalog index of the tile
// under the cursor.
func (e *Editor) pickAt(mx, my int) {
	p := e.canvas.View.CellAt(float64(mx), float64(my))
	id, ok := e.grid.Get(grid.Tile, p.X, p.Y)
	if !ok {
		return
	}
	e.pickedTile = slices.IndexFunc(e.catalog, func(d tools.TileDef) bool { return d.ID == id })
	e.hostTile = e.pickedTile
}

// hostPaint is the host's own brush: the selected host tile with the active
// colors on every enabled layer.
func (e *Editor) hostPaint(mx, my int) {
	p := e.canvas.View.CellAt(float64(mx), float64(my))
	if e.layers.Has(grid.Tile) {
		id, ok := e.catalog.ID(e.hostTile)
		e.grid.SetOrZero(grid.Tile, p.X, p.Y, id, ok)
	}
	if e.layers.Has(grid.Foreground) {
		e.grid.Set(grid.Foreground, p.X, p.Y, e.fg)
	}
	if e.layers.Has(grid.Background) {
		e.grid.Set(grid.Background, p.X, p.Y, e.bg)
	}
}

func (e *Editor) handlePointer(mx, my int) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if e.session.IsOpen() && image.Pt(mx, my).In(e.panel.Rect(e.catalog)) {
			if i, ok := e.panel.IndexAt(mx, my); ok {
				e.session.ClickPicker(i)
			}
			return
		}
		if !e.canvas.Contains(mx, my) {
			return
		}
		e.pressed = true
		e.lastMX, e.lastMY = mx, my
		switch {
		case e.picking:
			e.pickAt(mx, my)
		case e.paintTool == tools.PaintHostDefault:
			e.pushUndo()
			e.hostPainting = true
			e.hostPaint(mx, my)
		}
		e.dispatchPointer(tools.PointerDown, mx, my)
		if e.picking {
			e.setPicking(false)
		}
		return
	}
	if !e.pressed {
		return
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if mx == e.lastMX && my == e.lastMY {
			return
		}
		e.lastMX, e.lastMY = mx, my
		if e.hostPainting {
			e.hostPaint(mx, my)
		}
		e.dispatchPointer(tools.PointerMove, mx, my)
		return
	}
	e.pressed = false
	e.dispatchPointer(tools.PointerUp, mx, my)
	if e.hostPainting {
		e.hostPainting = false
		e.Changed()
	}
}

func (e *Editor) handleKeys() {
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl)
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		os.Exit(0)
	}
	if ctrl {
		switch {
		case inpututil.IsKeyJustPressed(ebiten.KeyZ):
			e.Undo()
		case inpututil.IsKeyJustPressed(ebiten.KeyS):
			e.save()
		case inpututil.IsKeyJustPressed(ebiten.KeyC):
			e.exportPasteboard()
		case inpututil.IsKeyJustPressed(ebiten.KeyV):
			e.importPasteboard()
		}
		return
	}

	digits := []ebiten.Key{ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4, ebiten.KeyDigit5}
	for i, k := range digits {
		if inpututil.IsKeyJustPressed(k) {
			e.selectTool(tools.Tools[i])
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		e.setWindow(!e.session.IsOpen())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		e.setMulti(!e.session.MultiSelect())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyI) {
		e.setPicking(!e.picking)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		// Back to the host brush without closing the tools.
		e.paintTool = tools.PaintHostDefault
		log.Println("Switched to host brush")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		e.animate()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		e.fg = (e.fg + 1) % len(palette)
		e.redraw = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		e.bg = (e.bg + 1) % len(palette)
		e.redraw = true
	}
}

// pollOptions applies options reloaded from disk.
func (e *Editor) pollOptions() {
	if e.options == nil {
		return
	}
	select {
	case o := <-e.options.Events:
		e.session.SetOptions(o)
		log.Printf("Reloaded options: keepColors=%v experimental=%v", o.KeepColors, o.Experimental)
	case err := <-e.options.Errors:
		log.Printf("Options reload failed: %v", err)
	default:
	}
}

func (e *Editor) Update() error {
	e.tick++
	e.pollOptions()
	e.handleKeys()
	if e.ui != nil {
		e.ui.Update()
	}
	mx, my := ebiten.CursorPosition()
	if !e.ownsPointer(my) {
		return nil
	}
	if my >= toolbarH {
		e.canvas.UpdateView(mx, my)
	}
	e.handlePointer(mx, my)
	return nil
}

// ownsPointer reports whether the room gets the pointer at screen row my.
// The toolbar owns its strip, except that a held gesture keeps the pointer
// until release wherever the cursor is.
func (e *Editor) ownsPointer(my int) bool {
	return e.pressed || my >= toolbarH
}

func (e *Editor) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Dimgray)
	e.canvas.Draw(screen, e.grid, e.catalog, e.sheet, e.tick)
	for _, fn := range e.redrawHooks {
		fn(screen)
	}
	if e.session.IsOpen() {
		e.panel.Draw(screen, e.redraw, e.Selections(), e.session.SelectedTiles(), e.session.Options().KeepColors)
	}
	e.redraw = false
	e.drawStatus(screen)
	if e.ui != nil {
		e.ui.Draw(screen)
	}
}

func (e *Editor) drawStatus(screen *ebiten.Image) {
	mode := "host brush"
	if e.session.Active() {
		mode = e.session.Tool().String()
	}
	msg := fmt.Sprintf("%s  layers:%s  fg:%d bg:%d  tile:%d  undo:%d", mode, e.layers, e.fg, e.bg, e.hostTile, len(e.undoStack))
	if e.dirty {
		msg += "  (unsaved)"
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(statusPad, float64(screen.Bounds().Dy()-24))
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, msg, e.face, op)
}

func (e *Editor) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
