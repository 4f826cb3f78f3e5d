package main

import (
	"errors"
	"flag"
	"io/fs"
	"log"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/roomtools/config"
	"github.com/milk9111/roomtools/levels"
)

func main() {
	roomPath := flag.String("room", "", "Room file to edit; created on save if missing (default: built-in start room saved to levels/room.json)")
	size := flag.Int("size", 16, "Side of a new room in cells")
	optionsPath := flag.String("options", "", "Optional YAML or JSON tool options file, reloaded when it changes")
	sheetPath := flag.String("sheet", "", "Optional PNG tile sheet of 8px frames")
	cellPx := flag.Int("cell", 32, "Cell size in pixels at zoom 1")
	flag.Parse()

	log.Println("Editor starting...")

	sheet := newSheet(sheetFrames)
	if *sheetPath != "" {
		img, err := LoadSheet(*sheetPath)
		if err != nil {
			log.Printf("Failed to load sheet %s: %v", *sheetPath, err)
		} else {
			sheet = img
		}
	}

	room, path := loadRoom(*roomPath, *size)

	opts := config.Default()
	var watcher *config.Watcher
	if *optionsPath != "" {
		o, err := config.Load(*optionsPath)
		if err != nil {
			log.Printf("Failed to read options: %v", err)
		} else {
			opts = o
		}
		watcher, err = config.NewWatcher(*optionsPath)
		if err != nil {
			log.Printf("Options reload disabled: %v", err)
		} else {
			defer watcher.Close()
		}
	}

	e, err := NewEditor(room, path, sheet, opts, *cellPx)
	if err != nil {
		log.Fatalf("Failed to start editor: %v", err)
	}
	e.options = watcher

	ebiten.SetWindowSize(1280, 800)
	ebiten.SetWindowTitle("Room editor")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(e); err != nil {
		log.Fatal(err)
	}
}

func loadRoom(path string, size int) (*levels.Room, string) {
	if path == "" {
		room, err := levels.LoadRoomFromFS("start.json")
		if err != nil {
			log.Printf("Failed to load start room: %v", err)
			room = levels.NewRoom(size, sheetFrames)
		}
		return room, filepath.Join("levels", "room.json")
	}
	room, err := levels.LoadRoom(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("Creating %dx%d room %s", size, size, path)
		return levels.NewRoom(size, sheetFrames), path
	}
	if err != nil {
		log.Fatalf("Failed to load room %s: %v", path, err)
	}
	return room, path
}
