package main

import (
	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget/material"
	"gioui.org/x/component"
)

type Section struct {
	*material.Theme
	Heading string
	Items   []layout.Widget
}

var sectionInset = layout.UniformInset(unit.Dp(8))
var itemInset = layout.Inset{
	Left:   unit.Dp(8),
	Right:  unit.Dp(8),
	Top:    unit.Dp(2),
	Bottom: unit.Dp(2),
}

func (s Section) Layout(gtx C) D {
	items := make([]layout.FlexChild, len(s.Items)+1)
	items[0] = layout.Rigid(component.SubheadingDivider(s.Theme, s.Heading).Layout)
	for i := range s.Items {
		items[i+1] = layout.Rigid(s.Items[i])
	}
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx, items...)
}

type SimpleSectionItem struct {
	*material.Theme
	Control layout.Widget
	Context string
}

func (s SimpleSectionItem) Layout(gtx C) D {
	return layout.Inset{
		Top:    unit.Dp(4),
		Bottom: unit.Dp(4),
	}.Layout(gtx, func(gtx C) D {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			layout.Rigid(func(gtx C) D {
				return s.Control(gtx)
			}),
			layout.Rigid(func(gtx C) D {
				if s.Context == "" {
					return D{}
				}
				return itemInset.Layout(gtx, material.Body2(s.Theme, s.Context).Layout)
			}),
		)
	})
}

// layoutSections lays out sections as a scrolling list of surfaces.
func layoutSections(gtx C, th *material.Theme, list *layout.List, sections []Section) D {
	list.Axis = layout.Vertical
	return list.Layout(gtx, len(sections), func(gtx C, index int) D {
		return sectionInset.Layout(gtx, func(gtx C) D {
			return component.Surface(th).Layout(gtx, func(gtx C) D {
				gtx.Constraints.Min.X = gtx.Constraints.Max.X
				return itemInset.Layout(gtx, func(gtx C) D {
					sections[index].Theme = th
					return sections[index].Layout(gtx)
				})
			})
		})
	})
}
