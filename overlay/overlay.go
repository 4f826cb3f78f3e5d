package overlay

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/roomtools/tools"
)

// SelectionColor outlines the dragged rectangle and the picked tiles.
var SelectionColor = color.RGBA{R: 255, G: 100, B: 100, A: 255}

const strokeWidth = 4

// RedrawHooks is the host extension point called after each room redraw.
type RedrawHooks interface {
	OnAfterRedraw(fn func(screen *ebiten.Image))
}

// Overlay draws the selection box of a session over the room.
type Overlay struct {
	session *tools.Session
	view    *View
}

// Attach registers an overlay for s with the host. view is read on every
// redraw so pan and zoom are followed.
func Attach(hooks RedrawHooks, s *tools.Session, view *View) *Overlay {
	o := &Overlay{session: s, view: view}
	hooks.OnAfterRedraw(o.Draw)
	return o
}

// Draw strokes the selection rectangle while a box or copy drag is running.
func (o *Overlay) Draw(screen *ebiten.Image) {
	r, showing := o.session.Area()
	if !showing || !o.session.IsOpen() {
		return
	}
	x, y, w, h := o.view.ScreenRect(r)
	vector.StrokeRect(screen, x, y, w, h, strokeWidth, SelectionColor, false)
}
