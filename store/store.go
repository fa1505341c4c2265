/*
Package store holds the shared user interface state of the console.

Components never mutate the state directly. They submit actions with
Dispatch, and the owner of the UI goroutine applies them with Flush at
the start of each frame.
*/
package store

import (
	"sync"
)

// PageID identifies a top-level page of the console.
type PageID string

// State is the process-wide UI state. The zero value has the navigation
// menu closed.
type State struct {
	// MenuOpen reports whether the navigation menu should be visible.
	MenuOpen bool
	// Page is the page currently displayed.
	Page PageID
}

// Action is a request to change the State.
type Action interface {
	isAction()
}

// SetMenu requests that the navigation menu be opened or closed.
type SetMenu struct {
	Open bool
}

// Navigate requests a switch to another page. Navigating always closes
// the navigation menu.
type Navigate struct {
	Page PageID
}

// Reset restores the initial state.
type Reset struct{}

func (SetMenu) isAction()  {}
func (Navigate) isAction() {}
func (Reset) isAction()    {}

// Reduce computes the state that results from applying action to state.
// initial is the state Reset returns to.
func Reduce(initial, state State, action Action) State {
	switch action := action.(type) {
	case SetMenu:
		state.MenuOpen = action.Open
	case Navigate:
		state.Page = action.Page
		state.MenuOpen = false
	case Reset:
		return initial
	}
	return state
}

// Dispatcher accepts actions.
type Dispatcher interface {
	Dispatch(Action)
}

// MenuRequester adapts a Dispatcher into the capability of requesting
// that the navigation menu open.
type MenuRequester struct {
	Dispatcher
}

// RequestOpenMenu dispatches a request to open the navigation menu. It
// never inspects the current state, so repeated calls request the same
// thing.
func (m MenuRequester) RequestOpenMenu() {
	m.Dispatch(SetMenu{Open: true})
}

// Store owns a State and serializes changes to it. Dispatch is safe for
// concurrent use. Flush, State and Subscribe are meant for the UI
// goroutine, though they are also safe to call concurrently.
type Store struct {
	mu          sync.Mutex
	initial     State
	state       State
	pending     []Action
	subscribers map[int]func(State)
	nextSub     int
	invalidate  func()
}

var _ Dispatcher = &Store{}

// New constructs a Store whose initial state displays the given page with
// the menu closed. invalidate, if non-nil, is called after every Dispatch
// so that the UI schedules a frame in which to Flush.
func New(start PageID, invalidate func()) *Store {
	initial := State{Page: start}
	return &Store{
		initial:     initial,
		state:       initial,
		subscribers: make(map[int]func(State)),
		invalidate:  invalidate,
	}
}

// Dispatch queues an action. The action takes effect on the next Flush.
func (s *Store) Dispatch(action Action) {
	s.mu.Lock()
	s.pending = append(s.pending, action)
	invalidate := s.invalidate
	s.mu.Unlock()
	if invalidate != nil {
		invalidate()
	}
}

// Pending returns the number of queued actions.
func (s *Store) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Flush applies every queued action in order. If the resulting state
// differs from the state before the flush, subscribers are notified once
// with the new state and Flush returns true.
func (s *Store) Flush() bool {
	s.mu.Lock()
	if len(s.pending) == 0 {
		s.mu.Unlock()
		return false
	}
	before := s.state
	for _, action := range s.pending {
		s.state = Reduce(s.initial, s.state, action)
	}
	s.pending = s.pending[:0]
	after := s.state
	subs := make([]func(State), 0, len(s.subscribers))
	for i := 0; i < s.nextSub; i++ {
		if fn, ok := s.subscribers[i]; ok {
			subs = append(subs, fn)
		}
	}
	s.mu.Unlock()
	if before == after {
		return false
	}
	for _, fn := range subs {
		fn(after)
	}
	return true
}

// State returns the current state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers fn to be called with the new state after every
// Flush that changes it. Subscribers are called in registration order.
// The returned function removes the subscription.
func (s *Store) Subscribe(fn func(State)) (cancel func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.subscribers[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subscribers, id)
	}
}
