package widget

import (
	"log"

	"gioui.org/layout"
	"gioui.org/widget"
	"gioui.org/x/component"
	"github.com/katib-dev/katib-console/store"
)

// StateSource is the part of the store the navigation menu relies upon.
type StateSource interface {
	store.Dispatcher
	State() store.State
	Subscribe(func(store.State)) (cancel func())
}

// NavMenu binds a modal navigation drawer to the shared UI state. The
// drawer becomes visible when the state says the menu is open and hides
// when it says closed. User interactions with the drawer are reported
// back to the store as actions rather than applied directly.
type NavMenu struct {
	*component.ModalNavDrawer
	modal  *component.ModalLayer
	source StateSource
	cancel func()

	// OpenLink opens an external destination. If nil, external
	// destinations are logged and ignored.
	OpenLink func(url string) error

	links map[store.PageID]string
	// want mirrors the latest state delivered by the store.
	want store.State
	// shown reports whether the drawer was asked to appear and has not
	// been asked to leave since.
	shown bool
}

// NewNavMenu constructs a NavMenu drawing into modal and subscribes it to
// source.
func NewNavMenu(modal *component.ModalLayer, title, subtitle string, source StateSource) *NavMenu {
	m := &NavMenu{
		ModalNavDrawer: component.NewModalNav(modal, title, subtitle),
		modal:          modal,
		source:         source,
		links:          make(map[store.PageID]string),
		want:           source.State(),
	}
	m.cancel = source.Subscribe(func(s store.State) {
		m.want = s
	})
	return m
}

// AddPage adds a destination that navigates to page.
func (m *NavMenu) AddPage(page store.PageID, name string, icon *widget.Icon) {
	m.AddNavItem(component.NavItem{
		Tag:  page,
		Name: name,
		Icon: icon,
	})
}

// AddLink adds a destination that opens url outside of the application.
func (m *NavMenu) AddLink(id store.PageID, name, url string, icon *widget.Icon) {
	m.links[id] = url
	m.AddNavItem(component.NavItem{
		Tag:  id,
		Name: name,
		Icon: icon,
	})
}

// Visible reports whether the drawer is currently requested to be on
// screen.
func (m *NavMenu) Visible() bool {
	return m.shown
}

// Update reconciles the drawer with the latest state and converts user
// interactions into actions. It reports whether the drawer was asked to
// appear during this call.
func (m *NavMenu) Update(gtx layout.Context) (opened bool) {
	if m.NavDestinationChanged() {
		m.selectDestination()
	}
	switch {
	case m.want.MenuOpen && !m.shown:
		m.Appear(gtx.Now)
		m.shown = true
		opened = true
	case !m.want.MenuOpen && m.shown:
		m.Disappear(gtx.Now)
		m.shown = false
	case m.shown && m.dismissed():
		// The user closed the drawer with the scrim or a drag.
		m.shown = false
		m.source.Dispatch(store.SetMenu{Open: false})
	}
	return opened
}

func (m *NavMenu) dismissed() bool {
	return m.modal.State == component.Disappearing || m.modal.State == component.Invisible
}

func (m *NavMenu) selectDestination() {
	tag, ok := m.CurrentNavDestination().(store.PageID)
	if !ok {
		return
	}
	url, external := m.links[tag]
	if !external {
		if tag == m.want.Page {
			// The user picked the page already shown.
			m.source.Dispatch(store.SetMenu{Open: false})
			return
		}
		m.source.Dispatch(store.Navigate{Page: tag})
		return
	}
	// External links never become the current page.
	m.SetPage(m.want.Page)
	m.source.Dispatch(store.SetMenu{Open: false})
	if m.OpenLink == nil {
		log.Printf("no link handler, ignoring %s", url)
		return
	}
	if err := m.OpenLink(url); err != nil {
		log.Printf("failed opening %s: %v", url, err)
	}
}

// SetPage highlights the destination for page without reporting it as a
// user selection.
func (m *NavMenu) SetPage(page store.PageID) {
	m.SetNavDestination(page)
	m.NavDestinationChanged()
}

// Close removes the menu's store subscription.
func (m *NavMenu) Close() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
}
