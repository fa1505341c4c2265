package theme

import (
	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget/material"
	consoleWidget "github.com/katib-dev/katib-console/widget"
)

type TextFormStyle struct {
	State *consoleWidget.TextForm
	// internal widget separation distance
	layout.Inset
	SubmitButton material.ButtonStyle
	EditorHint   string
	*Theme
}

func TextForm(th *Theme, state *consoleWidget.TextForm, submitText, formHint string) TextFormStyle {
	return TextFormStyle{
		State:        state,
		Inset:        layout.UniformInset(unit.Dp(8)),
		SubmitButton: material.Button(th.Theme, &state.SubmitButton, submitText),
		EditorHint:   formHint,
		Theme:        th,
	}
}

func (t TextFormStyle) Layout(gtx layout.Context) layout.Dimensions {
	t.State.Layout(gtx)
	return layout.Flex{
		Alignment: layout.Middle,
	}.Layout(gtx,
		layout.Flexed(1, func(gtx C) D {
			gtx.Constraints.Min.X = gtx.Constraints.Max.X
			return t.State.TextField.Layout(gtx, t.Theme.Theme, t.EditorHint)
		}),
		layout.Rigid(func(gtx C) D {
			return layout.Inset{
				Left: t.Inset.Left,
			}.Layout(gtx, t.SubmitButton.Layout)
		}),
	)
}
