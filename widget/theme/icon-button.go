package theme

import (
	"image/color"

	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
)

// IconButton applies defaults before rendering a `material.IconButtonStyle` to reduce noise.
// The main paramaters for each button are the state and icon.
// Color, size and inset are often the same.
// This wrapper reduces noise by defaulting those things.
type IconButton struct {
	Button      *widget.Clickable
	Icon        *widget.Icon
	Description string
	Size        unit.Dp
	Inset       layout.Inset
	// Background and Color override the theme's contrast colors when
	// non-zero.
	Background color.NRGBA
	Color      color.NRGBA
}

const DefaultIconButtonWidthDp = 24

func (btn IconButton) Layout(gtx C, th *Theme) D {
	if btn.Size == 0 {
		btn.Size = unit.Dp(DefaultIconButtonWidthDp)
	}
	if btn.Inset == (layout.Inset{}) {
		btn.Inset = layout.UniformInset(unit.Dp(12))
	}
	if btn.Background == (color.NRGBA{}) {
		btn.Background = th.Palette.ContrastBg
	}
	if btn.Color == (color.NRGBA{}) {
		btn.Color = th.Palette.ContrastFg
	}
	return material.IconButtonStyle{
		Background:  btn.Background,
		Color:       btn.Color,
		Icon:        btn.Icon,
		Size:        btn.Size,
		Inset:       btn.Inset,
		Button:      btn.Button,
		Description: btn.Description,
	}.Layout(gtx)
}
