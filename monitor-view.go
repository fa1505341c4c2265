package main

import (
	"fmt"

	"gioui.org/layout"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"gioui.org/x/component"
	"github.com/katib-dev/katib-console/core"
	"github.com/katib-dev/katib-console/icons"
	"github.com/katib-dev/katib-console/store"
	consoleTheme "github.com/katib-dev/katib-console/widget/theme"
)

// MonitorView lists the experiments of one kind in the configured
// namespace.
type MonitorView struct {
	core.App
	ID          store.PageID
	Name        string
	Description string
	Icon        *widget.Icon

	layout.List
}

var _ Page = &MonitorView{}

func NewMonitorView(app core.App, id store.PageID, name, description string, icon *widget.Icon) *MonitorView {
	return &MonitorView{
		App:         app,
		ID:          id,
		Name:        name,
		Description: description,
		Icon:        icon,
	}
}

func (m *MonitorView) NavItem() component.NavItem {
	return component.NavItem{
		Tag:  m.ID,
		Name: m.Name,
		Icon: m.Icon,
	}
}

func (m *MonitorView) Layout(gtx C, th *consoleTheme.Theme) D {
	namespace := m.Settings().Namespace()
	sections := []Section{
		{
			Heading: m.Name,
			Items: []layout.Widget{
				func(gtx C) D {
					return itemInset.Layout(gtx, material.Body1(th.Theme, m.Description).Layout)
				},
			},
		},
		{
			Heading: "Experiments",
			Items: []layout.Widget{
				func(gtx C) D {
					msg := fmt.Sprintf("No experiments found in namespace %q.", namespace)
					return itemInset.Layout(gtx, material.Body2(th.Theme, msg).Layout)
				},
			},
		},
	}
	return layoutSections(gtx, th.Theme, &m.List, sections)
}

// TemplatesView lists the trial templates available to new experiments.
type TemplatesView struct {
	core.App
	layout.List
}

var _ Page = &TemplatesView{}

func NewTemplatesView(app core.App) *TemplatesView {
	return &TemplatesView{App: app}
}

func (t *TemplatesView) NavItem() component.NavItem {
	return component.NavItem{
		Tag:  TrialTemplateID,
		Name: "Trial Templates",
		Icon: icons.TemplateIcon,
	}
}

func (t *TemplatesView) Layout(gtx C, th *consoleTheme.Theme) D {
	namespace := t.Settings().Namespace()
	sections := []Section{
		{
			Heading: "Trial Templates",
			Items: []layout.Widget{
				SimpleSectionItem{
					Theme: th.Theme,
					Control: func(gtx C) D {
						msg := fmt.Sprintf("No trial templates found in namespace %q.", namespace)
						return itemInset.Layout(gtx, material.Body1(th.Theme, msg).Layout)
					},
					Context: "Trial templates are ConfigMaps labelled for Katib.",
				}.Layout,
			},
		},
	}
	return layoutSections(gtx, th.Theme, &t.List, sections)
}
