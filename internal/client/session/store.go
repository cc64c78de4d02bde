// Package session holds the client's authentication state: who is logged in,
// and a subscribable stream of the logged-in flag.
package session

import (
	"sync"

	"github.com/hisarandre/P5-yoga-app/internal/model"
)

type subscriber struct {
	id int
	fn func(bool)
}

// Store is the single source of truth for the current identity. Subscribers
// receive the current logged-in value synchronously on subscription, then one
// notification per LogIn/LogOut, in registration order.
type Store struct {
	mu          sync.Mutex
	logged      bool
	info        model.SessionInformation
	hasInfo     bool
	subscribers []subscriber
	nextID      int
}

func NewStore() *Store {
	return &Store{}
}

// LogIn replaces the stored identity wholesale and notifies subscribers.
func (s *Store) LogIn(info model.SessionInformation) {
	s.mu.Lock()
	s.logged = true
	s.info = info
	s.hasInfo = true
	subs := append([]subscriber(nil), s.subscribers...)
	s.mu.Unlock()

	for _, sub := range subs {
		sub.fn(true)
	}
}

func (s *Store) LogOut() {
	s.mu.Lock()
	s.logged = false
	s.info = model.SessionInformation{}
	s.hasInfo = false
	subs := append([]subscriber(nil), s.subscribers...)
	s.mu.Unlock()

	for _, sub := range subs {
		sub.fn(false)
	}
}

func (s *Store) IsLogged() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.logged
}

// Information returns the current identity, if any.
func (s *Store) Information() (model.SessionInformation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.info, s.hasInfo
}

// Token reports the current bearer token. Satisfies gateway.TokenSource.
func (s *Store) Token() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.hasInfo {
		return "", false
	}
	return s.info.Token, true
}

// Subscribe registers fn and immediately invokes it with the current value.
// The returned function removes the subscription; it is safe to call more
// than once.
func (s *Store) Subscribe(fn func(bool)) func() {
	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.subscribers = append(s.subscribers, subscriber{id: id, fn: fn})
	current := s.logged
	s.mu.Unlock()

	fn(current)

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subscribers {
			if sub.id == id {
				s.subscribers = append(s.subscribers[:i], s.subscribers[i+1:]...)
				return
			}
		}
	}
}
