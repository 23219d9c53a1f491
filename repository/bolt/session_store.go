// Package bolt stores the client session in a local BoltDB file, playing the
// role browser local storage plays for the web client.
package bolt

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"
	"go.uber.org/zap"

	"github.com/linkfeed/cli/domain"
	"github.com/linkfeed/cli/repository"
)

const (
	bucketSession = "session"

	keyToken = "token"
	keyUser  = "user"
)

// SessionStore wraps BoltDB to persist the bearer token and cached identity.
type SessionStore struct {
	db     *bbolt.DB
	logger *zap.Logger
}

var _ repository.SessionStore = (*SessionStore)(nil)

// Open initializes the BoltDB file and ensures the session bucket exists.
func Open(path string, logger *zap.Logger) (*SessionStore, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}

	if err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketSession))
		return err
	}); err != nil {
		db.Close()
		return nil, err
	}

	return &SessionStore{db: db, logger: logger}, nil
}

// Save writes the token and identity under their independent keys.
func (s *SessionStore) Save(token string, identity *domain.Identity) error {
	if s == nil || s.db == nil {
		return bbolt.ErrDatabaseNotOpen
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(bucketSession))
		if err := b.Put([]byte(keyToken), []byte(token)); err != nil {
			return err
		}
		if identity == nil {
			return b.Delete([]byte(keyUser))
		}
		payload, err := json.Marshal(identity)
		if err != nil {
			return err
		}
		return b.Put([]byte(keyUser), payload)
	})
}

// Load returns the last saved pair. A corrupted identity record is logged and
// reported as absent so a stale store can never block startup.
func (s *SessionStore) Load() (string, *domain.Identity, error) {
	if s == nil || s.db == nil {
		return "", nil, bbolt.ErrDatabaseNotOpen
	}

	var (
		token    string
		identity *domain.Identity
	)
	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(bucketSession))
		if raw := b.Get([]byte(keyToken)); raw != nil {
			token = string(raw)
		}
		if raw := b.Get([]byte(keyUser)); raw != nil {
			var parsed domain.Identity
			if err := json.Unmarshal(raw, &parsed); err != nil {
				s.logger.Warn("stored identity unparsable, treating as absent", zap.Error(err))
				return nil
			}
			identity = &parsed
		}
		return nil
	})
	if err != nil {
		return "", nil, err
	}
	return token, identity, nil
}

// Clear removes both keys.
func (s *SessionStore) Clear() error {
	if s == nil || s.db == nil {
		return bbolt.ErrDatabaseNotOpen
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(bucketSession))
		if err := b.Delete([]byte(keyToken)); err != nil {
			return err
		}
		return b.Delete([]byte(keyUser))
	})
}

// Close releases the underlying database file.
func (s *SessionStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
