package widget

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"
	"time"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/x/component"
	"github.com/katib-dev/katib-console/store"
)

func newMenuContext() layout.Context {
	return layout.Context{
		Ops: new(op.Ops),
		Now: time.Now(),
	}
}

func TestNavMenuFollowsStore(t *testing.T) {
	s := store.New("experiments", nil)
	modal := component.NewModal()
	m := NewNavMenu(modal, "Katib", "Console", s)
	defer m.Close()
	gtx := newMenuContext()

	if m.Update(gtx) {
		t.Fatalf("menu opened without a request")
	}
	if m.Visible() {
		t.Fatalf("menu visible initially")
	}

	h := NewHeaderBar(store.MenuRequester{Dispatcher: s})
	h.Activate()
	// Not flushed yet, so the drawer must stay hidden.
	if m.Update(gtx) || m.Visible() {
		t.Fatalf("menu reacted before the store applied the request")
	}
	s.Flush()
	if !m.Update(gtx) {
		t.Fatalf("menu did not report opening")
	}
	if !m.Visible() || !modal.Visible() {
		t.Fatalf("menu not visible after open request")
	}
	// Further requests keep it open without re-opening.
	h.Activate()
	s.Flush()
	if m.Update(gtx) {
		t.Errorf("menu re-opened while open")
	}
	if !m.Visible() {
		t.Errorf("menu hidden by a repeated open request")
	}

	s.Dispatch(store.Navigate{Page: "templates"})
	s.Flush()
	m.Update(gtx)
	if m.Visible() {
		t.Errorf("menu still visible after navigation")
	}
}

func TestNavMenuReportsDismissal(t *testing.T) {
	s := store.New("experiments", nil)
	modal := component.NewModal()
	m := NewNavMenu(modal, "Katib", "Console", s)
	defer m.Close()
	gtx := newMenuContext()

	s.Dispatch(store.SetMenu{Open: true})
	s.Flush()
	m.Update(gtx)

	// Simulate the user tapping the scrim.
	modal.Disappear(gtx.Now)
	m.Update(gtx)
	if m.Visible() {
		t.Fatalf("menu still considered visible after dismissal")
	}
	if s.Pending() != 1 {
		t.Fatalf("expected a close action to be queued, got %d pending", s.Pending())
	}
	s.Flush()
	if s.State().MenuOpen {
		t.Errorf("store still has the menu open after dismissal")
	}

	// The header can open it again.
	NewHeaderBar(store.MenuRequester{Dispatcher: s}).Activate()
	s.Flush()
	if !m.Update(gtx) {
		t.Errorf("menu did not reopen")
	}
}

func TestNavMenuCloseUnsubscribes(t *testing.T) {
	s := store.New("experiments", nil)
	m := NewNavMenu(component.NewModal(), "Katib", "Console", s)
	m.Close()
	m.Close()
	s.Dispatch(store.SetMenu{Open: true})
	s.Flush()
	if m.Update(newMenuContext()) {
		t.Errorf("closed menu still follows the store")
	}
}

func TestNavMenuSelectDestination(t *testing.T) {
	const docsURL = "https://example.com/docs"
	type testcase struct {
		name string
		pick store.PageID
		// openLink replaces the menu's link handler when set.
		openLink  func(string) error
		noHandler bool
		wantState store.State
		wantOpen  []string
		wantLog   string
	}
	var opened []string
	record := func(url string) error {
		opened = append(opened, url)
		return nil
	}
	for _, tc := range []testcase{
		{
			name:      "other page",
			pick:      "templates",
			wantState: store.State{Page: "templates"},
		},
		{
			name:      "current page",
			pick:      "experiments",
			wantState: store.State{Page: "experiments"},
		},
		{
			name:      "external link",
			pick:      "docs",
			openLink:  record,
			wantState: store.State{Page: "experiments"},
			wantOpen:  []string{docsURL},
		},
		{
			name: "external link failure",
			pick: "docs",
			openLink: func(string) error {
				return errors.New("no browser")
			},
			wantState: store.State{Page: "experiments"},
			wantLog:   "no browser",
		},
		{
			name:      "external link without handler",
			pick:      "docs",
			noHandler: true,
			wantState: store.State{Page: "experiments"},
			wantLog:   "no link handler",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			opened = nil
			var logs bytes.Buffer
			prev := log.Writer()
			log.SetOutput(&logs)
			defer log.SetOutput(prev)

			s := store.New("experiments", nil)
			m := NewNavMenu(component.NewModal(), "Katib", "Console", s)
			defer m.Close()
			m.AddPage("experiments", "Experiments", nil)
			m.AddPage("templates", "Templates", nil)
			m.AddLink("docs", "Documentation", docsURL, nil)
			m.SetPage("experiments")
			if tc.openLink != nil {
				m.OpenLink = tc.openLink
			}
			if tc.noHandler {
				m.OpenLink = nil
			}
			gtx := newMenuContext()

			s.Dispatch(store.SetMenu{Open: true})
			s.Flush()
			m.Update(gtx)

			m.SetNavDestination(tc.pick)
			m.Update(gtx)
			if s.Pending() != 1 {
				t.Fatalf("expected exactly one queued action, got %d", s.Pending())
			}
			s.Flush()
			if got := s.State(); got != tc.wantState {
				t.Errorf("expected state %+v, got %+v", tc.wantState, got)
			}
			if m.want != tc.wantState {
				t.Errorf("menu did not follow the store: %+v", m.want)
			}
			if got := m.CurrentNavDestination(); got != tc.wantState.Page {
				t.Errorf("expected %q highlighted, got %v", tc.wantState.Page, got)
			}
			if strings.Join(opened, ",") != strings.Join(tc.wantOpen, ",") {
				t.Errorf("expected links %v opened, got %v", tc.wantOpen, opened)
			}
			if tc.wantLog != "" && !strings.Contains(logs.String(), tc.wantLog) {
				t.Errorf("expected log containing %q, got %q", tc.wantLog, logs.String())
			}

			// The selection was consumed, so the next frame queues nothing.
			m.Update(gtx)
			if m.Visible() {
				t.Errorf("menu still visible after choosing a destination")
			}
			if s.Pending() != 0 {
				t.Errorf("selection reported twice, %d actions queued", s.Pending())
			}
		})
	}
}
