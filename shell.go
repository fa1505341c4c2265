package main

import (
	"log"
	"time"

	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op/paint"
	"gioui.org/widget"
	"gioui.org/x/component"
	"github.com/katib-dev/katib-console/anim"
	"github.com/katib-dev/katib-console/core"
	"github.com/katib-dev/katib-console/store"
	consoleWidget "github.com/katib-dev/katib-console/widget"
	consoleTheme "github.com/katib-dev/katib-console/widget/theme"
)

// Shell lays out the header, the navigation menu, the current page and
// any banner. It owns no UI state of its own beyond widget state: which
// page is shown and whether the menu is open live in the store.
type Shell struct {
	app   core.App
	store *store.Store

	header *consoleWidget.HeaderBar
	menu   *consoleWidget.NavMenu
	modal  *component.ModalLayer

	pages   map[store.PageID]Page
	current store.PageID

	banner        core.Banner
	bannerReveal  anim.Normal
	DismissBanner widget.Clickable
}

// NewShell constructs a Shell whose header requests the menu through st.
func NewShell(app core.App, st *store.Store, title, subtitle string) *Shell {
	modal := component.NewModal()
	s := &Shell{
		app:     app,
		store:   st,
		header:  consoleWidget.NewHeaderBar(store.MenuRequester{Dispatcher: st}),
		menu:    consoleWidget.NewNavMenu(modal, title, subtitle, st),
		modal:   modal,
		pages:   make(map[store.PageID]Page),
		current: st.State().Page,
		bannerReveal: anim.Normal{
			Duration: 200 * time.Millisecond,
		},
	}
	return s
}

// RegisterPage adds a page and its navigation menu entry.
func (s *Shell) RegisterPage(p Page) {
	item := p.NavItem()
	id, ok := item.Tag.(store.PageID)
	if !ok {
		log.Printf("ignoring page with tag %v of type %T", item.Tag, item.Tag)
		return
	}
	s.pages[id] = p
	s.menu.AddPage(id, item.Name, item.Icon)
	if id == s.current {
		s.menu.SetPage(id)
	}
}

// AddLink adds a navigation menu entry that opens url with openLink.
func (s *Shell) AddLink(item component.NavItem, url string, openLink func(string) error) {
	id, ok := item.Tag.(store.PageID)
	if !ok {
		log.Printf("ignoring link with tag %v of type %T", item.Tag, item.Tag)
		return
	}
	s.menu.OpenLink = openLink
	s.menu.AddLink(id, item.Name, url, item.Icon)
}

// HandleBack closes the navigation menu in response to the platform back
// command, if the menu is open.
func (s *Shell) HandleBack(event *system.CommandEvent) {
	if s.menu.Visible() {
		s.store.Dispatch(store.SetMenu{Open: false})
		event.Cancel = true
	}
}

func (s *Shell) Layout(gtx layout.Context) layout.Dimensions {
	s.store.Flush()
	if s.menu.Update(gtx) {
		s.app.Haptic().Buzz()
	}
	s.switchTo(s.store.State().Page)
	if s.DismissBanner.Clicked() && s.banner != nil {
		s.banner.Cancel()
	}

	th := s.app.Theme().Current()
	paint.Fill(gtx.Ops, th.Palette.Bg)
	layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(consoleTheme.Header(th, s.header).Layout),
		layout.Rigid(func(gtx C) D {
			return s.layoutBanner(gtx, th)
		}),
		layout.Flexed(1, func(gtx C) D {
			page, ok := s.pages[s.current]
			if !ok {
				return D{Size: gtx.Constraints.Min}
			}
			return page.Layout(gtx, th)
		}),
	)
	s.modal.Layout(gtx, th.Theme)
	return layout.Dimensions{Size: gtx.Constraints.Max}
}

func (s *Shell) switchTo(page store.PageID) {
	if page == s.current {
		return
	}
	if _, ok := s.pages[page]; !ok {
		log.Printf("no page registered for %q", page)
		return
	}
	s.current = page
	s.menu.SetPage(page)
	settings := s.app.Settings()
	settings.SetLastPage(string(page))
	settings.PersistAsync(func(err error) {
		log.Printf("failed saving settings: %v", err)
		s.app.Banners().Add(&core.MessageBanner{
			Priority: core.Error,
			Text:     "Settings could not be saved.",
		})
	})
}

// Close waits for pending settings writes and detaches the menu from the
// store.
func (s *Shell) Close() {
	s.app.Settings().Wait()
	s.menu.Close()
}

func (s *Shell) layoutBanner(gtx C, th *consoleTheme.Theme) D {
	top := s.app.Banners().Top()
	if top != s.banner {
		s.banner = top
		s.bannerReveal.Start(gtx.Now)
	}
	if top == nil {
		return D{}
	}
	text := ""
	role := "secondary"
	if msg, ok := top.(*core.MessageBanner); ok {
		text = msg.Text
		if msg.Priority < core.Warn {
			role = "primary"
		}
	}
	style := consoleTheme.Banner(th, &s.DismissBanner, text)
	style.Role = role
	style.Reveal = s.bannerReveal.Eased(gtx)
	return style.Layout(gtx)
}
