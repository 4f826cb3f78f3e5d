package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/colornames"
)

// Toolbar palette. The strip sits over the room, so it stays darker than any
// tile tint.
var (
	stripColor     = color.RGBA{32, 34, 40, 255}
	buttonIdle     = color.RGBA{72, 76, 88, 255}
	buttonHover    = color.RGBA{92, 98, 112, 255}
	buttonDown     = color.RGBA{54, 58, 68, 255}
	buttonDisabled = color.RGBA{48, 48, 52, 255}
	buttonText     = color.RGBA{230, 230, 236, 255}
)

// solidNineSlice returns a solid color *image.NineSlice for widget backgrounds.
func solidNineSlice(c color.Color) *image.NineSlice {
	return image.NewNineSliceColor(c)
}

// newEditorTheme styles the on/off toggles and action buttons. Tool buttons
// use toolButtonImage instead so the active tool reads as selected.
func newEditorTheme(fontFace *text.Face) *widget.Theme {
	return &widget.Theme{
		PanelTheme: &widget.PanelParams{
			BackgroundImage: solidNineSlice(stripColor),
		},
		ButtonTheme: &widget.ButtonParams{
			Image: &widget.ButtonImage{
				Idle:     solidNineSlice(buttonIdle),
				Hover:    solidNineSlice(buttonHover),
				Pressed:  solidNineSlice(buttonDown),
				Disabled: solidNineSlice(buttonDisabled),
			},
			TextFace: fontFace,
			TextColor: &widget.ButtonTextColor{
				Idle:     buttonText,
				Hover:    color.White,
				Pressed:  buttonText,
				Disabled: color.Gray{Y: 128},
			},
		},
	}
}

// toolButtonImage is for the radio group: a toggle-mode button stays pressed
// while its tool is active, so pressed is drawn as the selected state.
func toolButtonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:         solidNineSlice(buttonIdle),
		Hover:        solidNineSlice(buttonHover),
		Pressed:      solidNineSlice(colornames.Steelblue),
		PressedHover: solidNineSlice(colornames.Cornflowerblue),
		Disabled:     solidNineSlice(buttonDisabled),
	}
}

func toolButtonText() *widget.ButtonTextColor {
	return &widget.ButtonTextColor{
		Idle:     buttonText,
		Hover:    color.White,
		Pressed:  color.White,
		Disabled: color.Gray{Y: 128},
	}
}
