package auth

import (
	"sync"

	"github.com/alexanderramin/lancer/internal/domain"
)

// Session tracks the currently authenticated identity and fans out
// state-change events. Until the first event arrives IsResolving
// reports true and CurrentIdentity must be treated as unknown, not as
// "signed out".
type Session struct {
	mu        sync.Mutex
	identity  *domain.Identity
	resolving bool
	closed    bool
	listeners map[int]func(*domain.Identity)
	nextID    int
}

func NewSession() *Session {
	return &Session{
		resolving: true,
		listeners: make(map[int]func(*domain.Identity)),
	}
}

// CurrentIdentity returns the active identity, or nil when signed out
// (or still resolving; check IsResolving to distinguish).
func (s *Session) CurrentIdentity() *domain.Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.identity
}

// IsResolving reports whether the first auth-state event is still pending.
func (s *Session) IsResolving() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resolving
}

// Subscribe registers a listener for identity changes and returns a
// cancel func. The listener fires on every subsequent state event,
// including the initial resolution. After cancel (or Close) a pending
// callback is a no-op.
func (s *Session) Subscribe(fn func(*domain.Identity)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

// Close drops all listeners. Subsequent events are discarded.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.listeners = make(map[int]func(*domain.Identity))
}

// set records the identity (nil for signed out), clears the resolving
// flag and notifies listeners. Called by the Service on every
// login/logout/restore event.
func (s *Session) set(identity *domain.Identity) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.identity = identity
	s.resolving = false
	fns := make([]func(*domain.Identity), 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	// Listeners run outside the lock so they may call back into the session.
	for _, fn := range fns {
		fn(identity)
	}
}
