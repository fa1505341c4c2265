package theme

import (
	"image/color"

	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/widget/material"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

var (
	indigo      = color.NRGBA{R: 63, G: 81, B: 181, A: 255}
	lightIndigo = color.NRGBA{R: 117, G: 125, B: 232, A: 255}
	darkIndigo  = color.NRGBA{G: 41, B: 132, A: 255}
	pink        = color.NRGBA{R: 245, G: 0, B: 87, A: 255}
	lightPink   = color.NRGBA{R: 255, G: 89, B: 131, A: 255}
	darkPink    = color.NRGBA{R: 187, G: 0, B: 47, A: 255}
	white       = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	lightGray   = color.NRGBA{R: 245, G: 245, B: 245, A: 255}
	gray        = color.NRGBA{R: 48, G: 48, B: 48, A: 255}
	darkGray    = color.NRGBA{R: 33, G: 33, B: 33, A: 255}
	black       = color.NRGBA{A: 255}
)

// New constructs a Theme. The dark variant swaps the background swatches
// and text colors but keeps the primary and secondary colors.
func New(dark bool, styles Styles) *Theme {
	gioTheme := material.NewTheme(gofont.Collection())
	var t Theme
	t.Theme = gioTheme
	t.Dark = dark
	t.Styles = styles
	t.Primary = Colors{
		Default: material.Palette{Bg: indigo, Fg: white, ContrastBg: indigo, ContrastFg: white},
		Light:   material.Palette{Bg: lightIndigo, Fg: black, ContrastBg: lightIndigo, ContrastFg: black},
		Dark:    material.Palette{Bg: darkIndigo, Fg: white, ContrastBg: darkIndigo, ContrastFg: white},
	}
	t.Secondary = Colors{
		Default: material.Palette{Bg: pink, Fg: white, ContrastBg: pink, ContrastFg: white},
		Light:   material.Palette{Bg: lightPink, Fg: black, ContrastBg: lightPink, ContrastFg: black},
		Dark:    material.Palette{Bg: darkPink, Fg: white, ContrastBg: darkPink, ContrastFg: white},
	}
	if dark {
		t.Background = Colors{
			Default: material.Palette{Bg: gray, Fg: white},
			Light:   material.Palette{Bg: darkGray, Fg: white},
			Dark:    material.Palette{Bg: black, Fg: white},
		}
	} else {
		t.Background = Colors{
			Default: material.Palette{Bg: lightGray, Fg: black},
			Light:   material.Palette{Bg: white, Fg: black},
			Dark:    material.Palette{Bg: darkGray, Fg: white},
		}
	}
	t.Theme.Palette.Bg = t.Background.Light.Bg
	t.Theme.Palette.Fg = t.Background.Light.Fg
	t.Theme.Palette.ContrastBg = t.Primary.Default.Bg
	t.Theme.Palette.ContrastFg = t.Primary.Default.Fg
	return &t
}

type Theme struct {
	*material.Theme
	Dark       bool
	Primary    Colors
	Secondary  Colors
	Background Colors
	Styles     Styles
}

type Colors struct {
	Default, Light, Dark material.Palette
}

// Role returns the palette named by a style color role. Unknown roles
// resolve to the primary palette.
func (t *Theme) Role(role string) material.Palette {
	switch role {
	case "secondary":
		return t.Secondary.Default
	case "default", "inherit":
		return t.Background.Default
	default:
		return t.Primary.Default
	}
}
