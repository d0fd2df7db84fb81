package filters

import (
	"sync"

	"github.com/oklog/ulid/v2"
)

// Scope names the filter context a change applies to.
type Scope string

const (
	ScopeUsers Scope = "users"
	ScopePosts Scope = "posts"
)

// UserFilter is the filter context of the user view.
type UserFilter struct {
	SearchTerm string
}

// PostFilter is the filter context of the post view.
type PostFilter struct {
	SearchTerm string

	// SelectedUserID restricts posts to one owner. Nil means every owner.
	SelectedUserID *int
}

// State is a copy of both filter contexts.
type State struct {
	Users UserFilter
	Posts PostFilter
}

// Listener is notified after every change with the new state and the scope
// that changed.
type Listener func(state State, changed Scope)

type subscription struct {
	id       ulid.ULID
	listener Listener
}

// Store holds the user and post filter contexts.
//
// Setters replace the value and notify every subscriber synchronously, in
// subscription order, after the store's lock is released; a listener may read
// the store or change it again. The store applies no rate limiting; callers
// debounce keystrokes themselves (see Debouncer).
type Store struct {
	mu    sync.Mutex
	state State
	subs  []subscription
}

// NewStore creates a store with empty filters.
func NewStore() *Store {
	return &Store{}
}

// State returns a copy of the current filters.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// UserFilter returns the user filter context.
func (s *Store) UserFilter() UserFilter {
	return s.State().Users
}

// PostFilter returns the post filter context.
func (s *Store) PostFilter() PostFilter {
	return s.State().Posts
}

// SetUserSearchTerm replaces the user search term.
func (s *Store) SetUserSearchTerm(term string) {
	s.update(ScopeUsers, func(st *State) { st.Users.SearchTerm = term })
}

// SetPostSearchTerm replaces the post search term.
func (s *Store) SetPostSearchTerm(term string) {
	s.update(ScopePosts, func(st *State) { st.Posts.SearchTerm = term })
}

// SetSelectedUserID replaces the post owner selector. Nil clears it.
func (s *Store) SetSelectedUserID(id *int) {
	s.update(ScopePosts, func(st *State) { st.Posts.SelectedUserID = cloneID(id) })
}

// Subscribe registers l and returns its handle and a function that removes
// it. The remove function may be called more than once.
func (s *Store) Subscribe(l Listener) (ulid.ULID, func()) {
	id := ulid.Make()

	s.mu.Lock()
	s.subs = append(s.subs, subscription{id: id, listener: l})
	s.mu.Unlock()

	return id, func() { s.Unsubscribe(id) }
}

// Unsubscribe removes the listener registered under id. It reports whether
// one was found.
func (s *Store) Unsubscribe(id ulid.ULID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, sub := range s.subs {
		if sub.id == id {
			s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
			return true
		}
	}
	return false
}

// Subscribers returns the number of registered listeners.
func (s *Store) Subscribers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}

func (s *Store) update(scope Scope, apply func(*State)) {
	s.mu.Lock()
	apply(&s.state)
	state := s.snapshotLocked()
	subs := make([]subscription, len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, sub := range subs {
		sub.listener(state, scope)
	}
}

func (s *Store) snapshotLocked() State {
	st := s.state
	st.Posts.SelectedUserID = cloneID(s.state.Posts.SelectedUserID)
	return st
}

func cloneID(id *int) *int {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}
