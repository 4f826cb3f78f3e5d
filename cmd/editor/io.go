package main

import (
	"log"

	"github.com/milk9111/roomtools/pasteboard"
)

func (e *Editor) save() {
	e.syncRoomTiles()
	if err := e.room.Save(e.roomPath); err != nil {
		log.Printf("Save failed: %v", err)
		return
	}
	e.dirty = false
	log.Printf("Saved room: %s", e.roomPath)
}

// exportPasteboard puts the last copied area on the system clipboard.
func (e *Editor) exportPasteboard() {
	if err := e.session.Pasteboard().WriteClipboard(); err != nil {
		log.Printf("Clipboard export failed: %v", err)
		return
	}
	r := e.session.Pasteboard().Rect()
	log.Printf("Exported %dx%d area to clipboard", r.Dx(), r.Dy())
}

// importPasteboard loads an area from the system clipboard and arms paste.
func (e *Editor) importPasteboard() {
	pb, err := pasteboard.ReadClipboard(e.grid.Size())
	if err != nil {
		log.Printf("Clipboard import failed: %v", err)
		return
	}
	if !e.session.IsOpen() {
		e.setWindow(true)
	}
	e.session.LoadPasteboard(pb)
	r := pb.Rect()
	log.Printf("Imported %dx%d area from clipboard", r.Dx(), r.Dy())
}
