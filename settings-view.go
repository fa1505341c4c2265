package main

import (
	"gioui.org/layout"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"gioui.org/x/component"
	"github.com/katib-dev/katib-console/core"
	"github.com/katib-dev/katib-console/icons"
	consoleWidget "github.com/katib-dev/katib-console/widget"
	consoleTheme "github.com/katib-dev/katib-console/widget/theme"
)

var VersionString = "git"

// SettingsView is a page for manipulating application settings.
type SettingsView struct {
	core.App
	loaded bool

	layout.List
	NamespaceForm  consoleWidget.TextForm
	DarkModeSwitch widget.Bool
}

var _ Page = &SettingsView{}

func NewSettingsView(app core.App) *SettingsView {
	return &SettingsView{App: app}
}

// NavItem returns a navigation element for this page.
func (c *SettingsView) NavItem() component.NavItem {
	return component.NavItem{
		Tag:  SettingsID,
		Name: "Settings",
		Icon: icons.SettingsIcon,
	}
}

// Update applies changes made through the form widgets.
func (c *SettingsView) Update(gtx layout.Context) {
	if !c.loaded {
		c.loaded = true
		c.NamespaceForm.SetValue(c.Settings().Namespace())
		c.DarkModeSwitch.Value = c.Settings().DarkMode()
	}
	settingsChanged := false
	if c.DarkModeSwitch.Changed() {
		c.Settings().SetDarkMode(c.DarkModeSwitch.Value)
		c.Theme().SetDarkMode(c.DarkModeSwitch.Value)
		settingsChanged = true
	}
	if c.NamespaceForm.Submitted() {
		c.Settings().SetNamespace(c.NamespaceForm.Value())
		c.NamespaceForm.SetValue(c.Settings().Namespace())
		settingsChanged = true
	}
	if settingsChanged {
		c.Settings().PersistAsync(func(err error) {
			c.Banners().Add(&core.MessageBanner{
				Priority: core.Error,
				Text:     "Settings could not be saved: " + err.Error(),
			})
		})
	}
}

// Layout the settings page.
func (c *SettingsView) Layout(gtx C, th *consoleTheme.Theme) D {
	c.Update(gtx)
	sections := []Section{
		{
			Heading: "Cluster",
			Items: []layout.Widget{
				SimpleSectionItem{
					Theme: th.Theme,
					Control: func(gtx C) D {
						return itemInset.Layout(gtx, consoleTheme.TextForm(th, &c.NamespaceForm, "Apply", "Namespace").Layout)
					},
					Context: "Experiments and trial templates are listed from this namespace.",
				}.Layout,
			},
		},
		{
			Heading: "User Interface",
			Items: []layout.Widget{
				SimpleSectionItem{
					Theme: th.Theme,
					Control: func(gtx C) D {
						return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
							layout.Rigid(func(gtx C) D {
								return itemInset.Layout(gtx, material.Switch(th.Theme, &c.DarkModeSwitch, "Dark Mode").Layout)
							}),
							layout.Rigid(func(gtx C) D {
								return itemInset.Layout(gtx, material.Body1(th.Theme, "Dark Mode").Layout)
							}),
						)
					},
				}.Layout,
			},
		},
		{
			Heading: "About",
			Items: []layout.Widget{
				func(gtx C) D {
					return itemInset.Layout(gtx, material.Body1(th.Theme, "version: "+VersionString).Layout)
				},
				func(gtx C) D {
					return itemInset.Layout(gtx, material.Body2(th.Theme, "data: "+c.Settings().DataPath()).Layout)
				},
			},
		},
	}
	return layoutSections(gtx, th.Theme, &c.List, sections)
}
