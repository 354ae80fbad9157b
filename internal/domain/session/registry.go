package session

import "sync"

// Registry tracks live sessions by access token so a logout on one request
// reaches the streams opened by others with the same token.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*Session)}
}

// Attach returns the live session for s's token, registering s if there is none.
func (r *Registry) Attach(s *Session) *Session {
	token := s.AccessToken()
	if token == "" {
		return s
	}

	r.mu.Lock()
	if live, ok := r.sessions[token]; ok {
		r.mu.Unlock()
		return live
	}
	r.sessions[token] = s
	r.mu.Unlock()

	s.OnInvalidate(func() { r.remove(token, s) })
	return s
}

func (r *Registry) Lookup(token string) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[token]
	return s, ok
}

// Invalidate signs out the session registered under token, if any.
func (r *Registry) Invalidate(token string) bool {
	s, ok := r.Lookup(token)
	if !ok {
		return false
	}
	return s.Invalidate()
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

func (r *Registry) remove(token string, s *Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.sessions[token] == s {
		delete(r.sessions, token)
	}
}
