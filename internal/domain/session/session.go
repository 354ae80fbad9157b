package session

import (
	"errors"
	"slices"
	"sync"
	"time"

	"maya-connect/internal/domain/user"
)

var ErrEmptyToken = errors.New("session requires an access token")

// Session is the explicit current-user context handed to whatever needs it.
// Invalidate is the single sign-out point; afterwards every accessor reports
// an anonymous, unauthenticated session.
type Session struct {
	mu          sync.Mutex
	accessToken string
	user        user.Profile
	expiresAt   time.Time
	invalidated bool
	listeners   []listener
	nextID      uint64
	done        chan struct{}
}

type listener struct {
	id uint64
	f  func()
}

// New builds a session. A zero expiresAt means the token carries no expiry.
func New(accessToken string, profile user.Profile, expiresAt time.Time) (*Session, error) {
	if accessToken == "" {
		return nil, ErrEmptyToken
	}
	return &Session{
		accessToken: accessToken,
		user:        profile,
		expiresAt:   expiresAt,
		done:        make(chan struct{}),
	}, nil
}

func (s *Session) IsAuthenticated(now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.invalidated {
		return false
	}
	return s.expiresAt.IsZero() || now.Before(s.expiresAt)
}

// AccessToken returns "" once the session has been invalidated.
func (s *Session) AccessToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.invalidated {
		return ""
	}
	return s.accessToken
}

func (s *Session) CurrentUser() user.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.invalidated {
		return user.Profile{}
	}
	return s.user
}

func (s *Session) ExpiresAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.expiresAt
}

// Done is closed when the session is invalidated.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// OnInvalidate registers f to run once on invalidation. On an already
// invalidated session f runs immediately. The returned func unregisters f;
// owners that outlive their interest in the session must call it.
func (s *Session) OnInvalidate(f func()) (unregister func()) {
	s.mu.Lock()
	if s.invalidated {
		s.mu.Unlock()
		f()
		return func() {}
	}
	s.nextID++
	id := s.nextID
	s.listeners = append(s.listeners, listener{id: id, f: f})
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.listeners = slices.DeleteFunc(s.listeners, func(l listener) bool { return l.id == id })
	}
}

// Listeners is the number of registered invalidation listeners.
func (s *Session) Listeners() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.listeners)
}

// Invalidate reports whether this call performed the invalidation.
func (s *Session) Invalidate() bool {
	s.mu.Lock()
	if s.invalidated {
		s.mu.Unlock()
		return false
	}
	s.invalidated = true
	listeners := s.listeners
	s.listeners = nil
	close(s.done)
	s.mu.Unlock()

	for _, l := range listeners {
		l.f()
	}
	return true
}
