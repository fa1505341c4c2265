package theme

import (
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
)

// DrawRect fills a size rectangle with background, rounding every corner
// by radii pixels when radii is non-zero.
func DrawRect(gtx C, background color.NRGBA, size image.Point, radii int) D {
	bounds := image.Rectangle{Max: size}
	if radii != 0 {
		paint.FillShape(gtx.Ops, background, clip.UniformRRect(bounds, radii).Op(gtx.Ops))
	} else {
		paint.FillShape(gtx.Ops, background, clip.Rect(bounds).Op())
	}
	return layout.Dimensions{Size: size}
}
