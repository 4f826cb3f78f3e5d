package pasteboard

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"os"
	"sync"

	"github.com/milk9111/roomtools/grid"
	"golang.design/x/clipboard"
)

var (
	initOnce sync.Once
	initErr  error

	ErrNoDisplay = errors.New("pasteboard: clipboard requires DISPLAY or WAYLAND_DISPLAY")
	ErrEmpty     = errors.New("pasteboard: nothing captured")
	ErrOffRoom   = errors.New("pasteboard: region lies outside the room")
)

// region is the clipboard text form: the captured rectangle only, rows of
// cells per layer, with its origin so a re-import pastes the same shape.
type region struct {
	X          int     `json:"x"`
	Y          int     `json:"y"`
	W          int     `json:"w"`
	H          int     `json:"h"`
	Tiles      [][]int `json:"tiles"`
	Foreground [][]int `json:"foreground"`
	Background [][]int `json:"background"`
}

func ensureInit() error {
	initOnce.Do(func() {
		if os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == "" {
			initErr = ErrNoDisplay
			return
		}
		initErr = clipboard.Init()
	})
	return initErr
}

// Marshal encodes the captured region as JSON text. Only the part of the
// rectangle inside the room is written; cells past the edge were never
// captured.
func (p *Pasteboard) Marshal() ([]byte, error) {
	if p.Empty() {
		return nil, ErrEmpty
	}
	in, ok := p.rect.Intersect(grid.Full(p.layers.Size()))
	if !ok {
		return nil, ErrOffRoom
	}
	r := region{X: in.X0, Y: in.Y0, W: in.Dx(), H: in.Dy()}
	dst := [...]*[][]int{&r.Tiles, &r.Foreground, &r.Background}
	for i, l := range grid.Layers {
		rows := make([][]int, r.H)
		for y := range rows {
			rows[y] = make([]int, r.W)
			for x := range rows[y] {
				rows[y][x], _ = p.layers.Get(l, in.X0+x, in.Y0+y)
			}
		}
		*dst[i] = rows
	}
	return json.Marshal(r)
}

// Unmarshal decodes a region produced by Marshal into a pasteboard for a room
// of side size. The origin must lie inside the room; the rest of the region
// is clipped to the room edge.
func Unmarshal(data []byte, size int) (*Pasteboard, error) {
	var r region
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("pasteboard: decode region: %w", err)
	}
	if r.W <= 0 || r.H <= 0 {
		return nil, fmt.Errorf("pasteboard: decode region: invalid size %dx%d", r.W, r.H)
	}
	origin := image.Pt(r.X, r.Y)
	if !grid.Full(size).Contains(origin) {
		return nil, fmt.Errorf("pasteboard: decode region at %v: %w", origin, ErrOffRoom)
	}
	// min keeps X+W inside the room, so it cannot overflow.
	w, h := min(r.W, size-r.X), min(r.H, size-r.Y)
	g := grid.New(size)
	for i, rows := range [...][][]int{r.Tiles, r.Foreground, r.Background} {
		for y := 0; y < h && y < len(rows); y++ {
			for x := 0; x < w && x < len(rows[y]); x++ {
				g.Set(grid.Layers[i], r.X+x, r.Y+y, rows[y][x])
			}
		}
	}
	rect := grid.Rect{X0: r.X, Y0: r.Y, X1: r.X + w - 1, Y1: r.Y + h - 1}
	return &Pasteboard{layers: g, rect: rect}, nil
}

// WriteClipboard publishes the captured region to the system clipboard.
func (p *Pasteboard) WriteClipboard() error {
	data, err := p.Marshal()
	if err != nil {
		return err
	}
	if err := ensureInit(); err != nil {
		return err
	}
	clipboard.Write(clipboard.FmtText, data)
	return nil
}

// ReadClipboard builds a pasteboard from region text on the system clipboard.
func ReadClipboard(size int) (*Pasteboard, error) {
	if err := ensureInit(); err != nil {
		return nil, err
	}
	data := clipboard.Read(clipboard.FmtText)
	if len(data) == 0 {
		return nil, fmt.Errorf("pasteboard: clipboard does not contain text")
	}
	return Unmarshal(data, size)
}
