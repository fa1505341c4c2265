package main

import (
	"gioui.org/layout"
	"gioui.org/x/component"
	"github.com/katib-dev/katib-console/store"
	consoleTheme "github.com/katib-dev/katib-console/widget/theme"
)

// Page is a top-level screen reachable from the navigation menu. The Tag
// of its NavItem must be a store.PageID.
type Page interface {
	NavItem() component.NavItem
	Layout(gtx layout.Context, th *consoleTheme.Theme) layout.Dimensions
}

// Page identifiers.
const (
	HPMonitorID     store.PageID = "hp-monitor"
	NASMonitorID    store.PageID = "nas-monitor"
	TrialTemplateID store.PageID = "trial-templates"
	SettingsID      store.PageID = "settings"
	DocsID          store.PageID = "docs"
)

// DocsURL is the external documentation opened from the menu.
const DocsURL = "https://www.kubeflow.org/docs/components/katib/"
