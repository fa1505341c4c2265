package theme

import (
	"image"

	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget/material"
	"github.com/katib-dev/katib-console/icons"
	consoleWidget "github.com/katib-dev/katib-console/widget"
)

const (
	defaultBarHeightDp = 56
	defaultBarPadding  = 16
)

// HeaderStyle renders a HeaderBar by walking its view tree and looking
// up each node's style by name.
type HeaderStyle struct {
	*Theme
	State *consoleWidget.HeaderBar
}

func Header(th *Theme, state *consoleWidget.HeaderBar) HeaderStyle {
	return HeaderStyle{
		Theme: th,
		State: state,
	}
}

func (h HeaderStyle) Layout(gtx C) D {
	h.State.Layout(gtx)
	tree := h.State.Tree()
	return h.layoutNode(gtx, tree, material.Palette{})
}

func (h HeaderStyle) layoutNode(gtx C, n consoleWidget.Node, parent material.Palette) D {
	switch n.Kind {
	case consoleWidget.KindBar:
		return h.layoutBar(gtx, n)
	case consoleWidget.KindTrigger:
		return h.layoutTrigger(gtx, n, parent)
	}
	return D{}
}

func (h HeaderStyle) layoutBar(gtx C, n consoleWidget.Node) D {
	style := h.Styles.Get(n.Name)
	role := n.Props["color"]
	if role == "" {
		role = style.Color
	}
	palette := h.Role(role)
	height := style.Height
	if height == 0 {
		height = defaultBarHeightDp
	}
	padding := style.PaddingX
	if padding == 0 {
		padding = defaultBarPadding
	}
	size := image.Point{
		X: gtx.Constraints.Max.X,
		Y: gtx.Constraints.Constrain(image.Pt(0, gtx.Dp(unit.Dp(height)))).Y,
	}
	gtx.Constraints = layout.Exact(size)
	DrawRect(gtx, palette.Bg, size, 0)
	children := make([]layout.FlexChild, len(n.Children))
	for i := range n.Children {
		child := n.Children[i]
		children[i] = layout.Rigid(func(gtx C) D {
			return h.layoutNode(gtx, child, palette)
		})
	}
	layout.Inset{
		Left:  unit.Dp(padding),
		Right: unit.Dp(padding),
	}.Layout(gtx, func(gtx C) D {
		return layout.W.Layout(gtx, func(gtx C) D {
			return layout.Flex{Alignment: layout.Middle}.Layout(gtx, children...)
		})
	})
	return D{Size: size}
}

func (h HeaderStyle) layoutTrigger(gtx C, n consoleWidget.Node, parent material.Palette) D {
	style := h.Styles.Get(n.Name)
	return style.Margin().Layout(gtx, func(gtx C) D {
		return IconButton{
			Button:      &h.State.Trigger,
			Icon:        icons.MenuIcon,
			Description: n.Label,
			Size:        unit.Dp(style.Size),
			Background:  parent.Bg,
			Color:       parent.Fg,
		}.Layout(gtx, h.Theme)
	})
}
