// Package tools implements the region-editing tools of the room editor: the
// tool state machine driven by pointer gestures and the per-tool plotting.
package tools

import (
	"fmt"
	"strings"
)

// Tool is the active region tool.
type Tool int

const (
	ToolDraw Tool = iota
	ToolBox
	ToolStamp
	ToolCopyArea
	ToolPasteArea
)

// Tools lists the tools in toolbar order.
var Tools = []Tool{ToolDraw, ToolBox, ToolStamp, ToolCopyArea, ToolPasteArea}

func (t Tool) String() string {
	switch t {
	case ToolDraw:
		return "Draw"
	case ToolBox:
		return "Box"
	case ToolStamp:
		return "Stamp"
	case ToolCopyArea:
		return "Copy"
	case ToolPasteArea:
		return "Paste"
	default:
		return "Unknown"
	}
}

// Name is the identifier used by the tool-select input.
func (t Tool) Name() string {
	switch t {
	case ToolDraw:
		return "draw"
	case ToolBox:
		return "box"
	case ToolStamp:
		return "stamp"
	case ToolCopyArea:
		return "copy-area"
	case ToolPasteArea:
		return "paste-area"
	default:
		return ""
	}
}

func (t Tool) Valid() bool { return t >= ToolDraw && t <= ToolPasteArea }

// ParseTool maps a tool identifier such as "copy-area" to its Tool.
func ParseTool(name string) (Tool, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, t := range Tools {
		if t.Name() == n {
			return t, nil
		}
	}
	return 0, fmt.Errorf("tools: unknown tool %q", name)
}
