package repository

import "github.com/linkfeed/cli/domain"

// SessionStore persists the bearer token and the cached identity record
// across process runs. The two values live under independent keys: callers
// must treat a store holding only one of them as unauthenticated material.
type SessionStore interface {
	// Save writes both values durably. A nil identity removes the cached record.
	Save(token string, identity *domain.Identity) error
	// Load returns the last saved pair. A stored identity that fails to parse
	// is reported as absent, not as an error.
	Load() (string, *domain.Identity, error)
	// Clear removes both values.
	Clear() error
	Close() error
}
