package levels

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/milk9111/roomtools/grid"
)

//go:embed *.json
var LevelsFS embed.FS

// Room is a room file: three square layers of side Size and the tile
// catalog in sheet order.
type Room struct {
	Size    int     `json:"size"`
	Tilemap [][]int `json:"tilemap"`
	Foremap [][]int `json:"foremap"`
	Backmap [][]int `json:"backmap"`
	Tiles   []Tile  `json:"tiles"`
}

// Tile is a catalog entry: a stable id and the sheet frames it animates
// through.
type Tile struct {
	ID     int   `json:"id"`
	Frames []int `json:"frames"`
}

// NewRoom returns an empty room with one tile per frame of a sheet of
// nTiles frames.
func NewRoom(size, nTiles int) *Room {
	r := &Room{
		Size:    size,
		Tilemap: square(size),
		Foremap: square(size),
		Backmap: square(size),
		Tiles:   make([]Tile, nTiles),
	}
	for i := range r.Tiles {
		r.Tiles[i] = Tile{ID: i + 1, Frames: []int{i}}
	}
	return r
}

func square(size int) [][]int {
	rows := make([][]int, size)
	for y := range rows {
		rows[y] = make([]int, size)
	}
	return rows
}

// Grid wraps the room layers for editing. Writes through the grid land in
// the room.
func (r *Room) Grid() (*grid.Grid, error) {
	g, err := grid.Wrap(r.Size, r.Tilemap, r.Foremap, r.Backmap)
	if err != nil {
		return nil, fmt.Errorf("room grid: %w", err)
	}
	return g, nil
}

func LoadRoomFromFS(name string) (*Room, error) {
	data, err := fs.ReadFile(LevelsFS, name)
	if err != nil {
		return nil, fmt.Errorf("read room: %w", err)
	}
	return decodeRoom(data)
}

// LoadRoom reads a room file from disk.
func LoadRoom(path string) (*Room, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read room: %w", err)
	}
	return decodeRoom(data)
}

func decodeRoom(data []byte) (*Room, error) {
	var r Room
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("unmarshal room: %w", err)
	}
	if _, err := r.Grid(); err != nil {
		return nil, err
	}
	return &r, nil
}

// Save writes the room as indented JSON, creating the directory if needed.
func (r *Room) Save(path string) error {
	if path == "" {
		return fmt.Errorf("empty save path")
	}
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
