package main

import (
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/roomtools/tools"
)

func buildToolBar(fontFace *text.Face, onToolSelected func(tool tools.Tool), initialTool tools.Tool) (*widget.Container, *ToolBar) {
	img, textColor := toolButtonImage(), toolButtonText()

	toolbar := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(300, 40),
		),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
				widget.RowLayoutOpts.Spacing(6),
			),
		),
	)

	tb := &ToolBar{}
	for _, t := range tools.Tools {
		btn := widget.NewButton(
			widget.ButtonOpts.Image(img),
			widget.ButtonOpts.Text(t.String(), fontFace, textColor),
			widget.ButtonOpts.ToggleMode(),
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(56, 36),
			),
		)
		tb.buttons = append(tb.buttons, btn)
		toolbar.AddChild(btn)
	}

	elements := make([]widget.RadioGroupElement, 0, len(tb.buttons))
	for _, b := range tb.buttons {
		elements = append(elements, b)
	}

	tb.group = widget.NewRadioGroup(
		widget.RadioGroupOpts.Elements(elements...),
		widget.RadioGroupOpts.ChangedHandler(func(args *widget.RadioGroupChangedEventArgs) {
			if onToolSelected == nil || tb.suppress {
				return
			}
			for idx, b := range tb.buttons {
				if args.Active == b {
					onToolSelected(tools.Tools[idx])
					return
				}
			}
		}),
	)

	tb.SetTool(initialTool)
	return toolbar, tb
}

// newToggle adds a button that flips between "<label>: On" and "<label>: Off".
func newToggle(parent *widget.Container, theme *widget.Theme, fontFace *text.Face, label string, on bool, onToggle func(on bool)) *Toggle {
	tg := &Toggle{label: label}
	tg.btn = widget.NewButton(
		widget.ButtonOpts.Image(theme.ButtonTheme.Image),
		widget.ButtonOpts.Text(toggleLabel(label, on), fontFace, theme.ButtonTheme.TextColor),
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(72, 36),
		),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			tg.Set(!tg.on)
			if onToggle != nil {
				onToggle(tg.on)
			}
		}),
	)
	tg.on = on
	parent.AddChild(tg.btn)
	return tg
}

func newActionButton(parent *widget.Container, theme *widget.Theme, fontFace *text.Face, label string, onClick func()) {
	parent.AddChild(widget.NewButton(
		widget.ButtonOpts.Image(theme.ButtonTheme.Image),
		widget.ButtonOpts.Text(label, fontFace, theme.ButtonTheme.TextColor),
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(72, 36),
		),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if onClick != nil {
				onClick()
			}
		}),
	))
}
