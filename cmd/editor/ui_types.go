package main

import (
	"github.com/ebitenui/ebitenui/widget"
	"github.com/milk9111/roomtools/tools"
)

// ToolBar contains the radio-group state for the region tool buttons.
type ToolBar struct {
	group   *widget.RadioGroup
	buttons []*widget.Button

	// suppress keeps programmatic selection from echoing back as a click.
	suppress bool
}

func (tb *ToolBar) SetTool(t tools.Tool) {
	idx := int(t)
	if tb == nil || tb.group == nil || idx < 0 || idx >= len(tb.buttons) {
		return
	}
	tb.suppress = true
	tb.group.SetActive(tb.buttons[idx])
	tb.suppress = false
}

// Toggle is an on/off button whose label shows its state.
type Toggle struct {
	btn   *widget.Button
	label string
	on    bool
}

func (t *Toggle) Set(on bool) {
	if t == nil {
		return
	}
	t.on = on
	if text := t.btn.Text(); text != nil {
		text.Label = toggleLabel(t.label, on)
	}
}

func (t *Toggle) On() bool { return t != nil && t.on }

func toggleLabel(label string, on bool) string {
	if on {
		return label + ": On"
	}
	return label + ": Off"
}

// Toggles are the switches next to the tool buttons.
type Toggles struct {
	Window *Toggle
	Multi  *Toggle
	Tile   *Toggle
	Fore   *Toggle
	Back   *Toggle
	Pick   *Toggle
}
