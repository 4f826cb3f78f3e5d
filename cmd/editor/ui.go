package main

import (
	"bytes"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/roomtools/grid"
	"github.com/milk9111/roomtools/tools"
	"golang.org/x/image/font/gofont/goregular"
)

// UIHandlers are the editor callbacks wired to the toolbar.
type UIHandlers struct {
	OnToolSelected func(tool tools.Tool)
	OnWindow       func(open bool)
	OnMulti        func(on bool)
	OnLayer        func(l grid.Layer, on bool)
	OnPick         func(on bool)
	OnAnimate      func()
	OnUndo         func()
	OnSave         func()
}

func newFontFace() text.Face {
	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic("Failed to load font: " + err.Error())
	}
	return &text.GoTextFace{Source: s, Size: 14}
}

func BuildEditorUI(
	fontFace text.Face,
	h UIHandlers,
	initialTool tools.Tool,
	initialLayers grid.LayerMask,
	windowOpen bool,
) (*ebitenui.UI, *ToolBar, *Toggles) {
	ui := &ebitenui.UI{}
	ui.PrimaryTheme = newEditorTheme(&fontFace)
	theme := ui.PrimaryTheme

	toolbarContainer, toolBar := buildToolBar(&fontFace, h.OnToolSelected, initialTool)

	switches := widget.NewContainer(
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
				widget.RowLayoutOpts.Spacing(6),
			),
		),
	)
	toggles := &Toggles{}
	toggles.Window = newToggle(switches, theme, &fontFace, "Tools", windowOpen, h.OnWindow)
	toggles.Multi = newToggle(switches, theme, &fontFace, "Multi", false, h.OnMulti)
	toggles.Tile = newToggle(switches, theme, &fontFace, "Tile", initialLayers.Has(grid.Tile), func(on bool) {
		h.OnLayer(grid.Tile, on)
	})
	toggles.Fore = newToggle(switches, theme, &fontFace, "Fg", initialLayers.Has(grid.Foreground), func(on bool) {
		h.OnLayer(grid.Foreground, on)
	})
	toggles.Back = newToggle(switches, theme, &fontFace, "Bg", initialLayers.Has(grid.Background), func(on bool) {
		h.OnLayer(grid.Background, on)
	})
	toggles.Pick = newToggle(switches, theme, &fontFace, "Pick", false, h.OnPick)
	newActionButton(switches, theme, &fontFace, "Animate", h.OnAnimate)
	newActionButton(switches, theme, &fontFace, "Undo", h.OnUndo)
	newActionButton(switches, theme, &fontFace, "Save", h.OnSave)

	top := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(theme.PanelTheme.BackgroundImage),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
				widget.RowLayoutOpts.Spacing(16),
			),
		),
	)
	top.AddChild(toolbarContainer)
	top.AddChild(switches)

	// Root container: anchor layout, toolbar across the top
	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	top.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionStart,
		VerticalPosition:   widget.AnchorLayoutPositionStart,
		StretchHorizontal:  true,
	}
	root.AddChild(top)
	ui.Container = root

	return ui, toolBar, toggles
}
