package widget

import (
	"gioui.org/layout"
	"gioui.org/widget"
)

// Style keys of the header's view tree.
const (
	HeaderBarName   = "appBar"
	MenuTriggerName = "menuButton"
)

// MenuTriggerLabel is the accessible description of the menu trigger.
const MenuTriggerLabel = "Open navigation menu"

// MenuOpener is the capability to request that the navigation menu
// become visible.
type MenuOpener interface {
	RequestOpenMenu()
}

// MenuOpenerFunc adapts a plain function into a MenuOpener.
type MenuOpenerFunc func()

// RequestOpenMenu calls f.
func (f MenuOpenerFunc) RequestOpenMenu() {
	f()
}

// HeaderBar holds the theme-independent state of the top app bar. The
// bar carries a single trigger that asks for the navigation menu to open.
// It never reads whether the menu is already open.
type HeaderBar struct {
	opener  MenuOpener
	Trigger widget.Clickable
}

// NewHeaderBar constructs a HeaderBar that requests the menu through
// opener. A nil opener is a wiring mistake and panics.
func NewHeaderBar(opener MenuOpener) *HeaderBar {
	if opener == nil {
		panic("widget: NewHeaderBar requires a MenuOpener")
	}
	return &HeaderBar{opener: opener}
}

// Activate requests that the navigation menu open. It is what a click on
// the trigger does.
func (h *HeaderBar) Activate() {
	h.opener.RequestOpenMenu()
}

// Layout processes pending clicks on the trigger, activating once per
// click. It draws nothing.
func (h *HeaderBar) Layout(gtx layout.Context) layout.Dimensions {
	for h.Trigger.Clicked() {
		h.Activate()
	}
	return layout.Dimensions{}
}

// Tree describes the header as a view tree: a static bar in the primary
// color holding the menu trigger.
func (h *HeaderBar) Tree() Node {
	return Bar(HeaderBarName,
		Props{
			"position": "static",
			"color":    "primary",
		},
		Trigger(MenuTriggerName, MenuTriggerLabel),
	)
}
