package theme

import (
	"image"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"github.com/katib-dev/katib-console/icons"
)

// BannerStyle renders a full-width message strip with a dismiss button.
// Reveal in [0,1] controls how much of its height is shown.
type BannerStyle struct {
	*Theme
	Text    string
	Role    string
	Dismiss *widget.Clickable
	Reveal  float32
}

func Banner(th *Theme, dismiss *widget.Clickable, text string) BannerStyle {
	return BannerStyle{
		Theme:   th,
		Text:    text,
		Dismiss: dismiss,
		Reveal:  1,
	}
}

func (b BannerStyle) Layout(gtx C) D {
	style := b.Styles.Get("banner")
	role := b.Role
	if role == "" {
		role = style.Color
	}
	palette := b.Theme.Role(role)
	padding := unit.Dp(style.PaddingX)
	if padding == 0 {
		padding = unit.Dp(defaultBarPadding)
	}

	macro := op.Record(gtx.Ops)
	gtx.Constraints.Min.X = gtx.Constraints.Max.X
	gtx.Constraints.Min.Y = gtx.Dp(unit.Dp(style.Height))
	dims := layout.Stack{}.Layout(gtx,
		layout.Expanded(func(gtx C) D {
			return DrawRect(gtx, palette.Bg, gtx.Constraints.Min, 0)
		}),
		layout.Stacked(func(gtx C) D {
			return layout.Inset{Left: padding, Right: padding}.Layout(gtx, func(gtx C) D {
				return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
					layout.Flexed(1, func(gtx C) D {
						label := material.Body1(b.Theme.Theme, b.Text)
						label.Color = palette.Fg
						return label.Layout(gtx)
					}),
					layout.Rigid(func(gtx C) D {
						return IconButton{
							Button:      b.Dismiss,
							Icon:        icons.ClearIcon,
							Description: "Dismiss",
							Size:        unit.Dp(18),
							Inset:       layout.UniformInset(unit.Dp(6)),
							Background:  palette.Bg,
							Color:       palette.Fg,
						}.Layout(gtx, b.Theme)
					}),
				)
			})
		}),
	)
	call := macro.Stop()

	reveal := b.Reveal
	if reveal < 0 {
		reveal = 0
	} else if reveal > 1 {
		reveal = 1
	}
	size := image.Point{X: dims.Size.X, Y: int(float32(dims.Size.Y) * reveal)}
	defer clip.Rect{Max: size}.Push(gtx.Ops).Pop()
	call.Add(gtx.Ops)
	return D{Size: size}
}
