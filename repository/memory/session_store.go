// Package memory implements an in-memory session store for tests and for
// runs where persistence is disabled.
package memory

import (
	"sync"

	"github.com/linkfeed/cli/domain"
	"github.com/linkfeed/cli/repository"
)

// SessionStore holds the session pair in memory only.
type SessionStore struct {
	mu       sync.Mutex
	token    string
	identity *domain.Identity
}

var _ repository.SessionStore = (*SessionStore)(nil)

// New creates an empty in-memory session store.
func New() *SessionStore {
	return &SessionStore{}
}

// Save replaces both values.
func (s *SessionStore) Save(token string, identity *domain.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	if identity == nil {
		s.identity = nil
		return nil
	}
	copied := *identity
	s.identity = &copied
	return nil
}

// Load returns the current pair.
func (s *SessionStore) Load() (string, *domain.Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.identity == nil {
		return s.token, nil, nil
	}
	copied := *s.identity
	return s.token, &copied, nil
}

// Clear removes both values.
func (s *SessionStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.identity = nil
	return nil
}

// Close is a no-op for the in-memory store.
func (s *SessionStore) Close() error {
	return nil
}
