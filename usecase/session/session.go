// Package session owns the in-memory session lifecycle: bootstrap from the
// persisted store, login/signup/logout, and the current-identity decision.
// It is the only component that writes session storage.
package session

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/linkfeed/cli/api/client"
	"github.com/linkfeed/cli/domain"
	"github.com/linkfeed/cli/pkg/credential"
	"github.com/linkfeed/cli/repository"
)

// AuthAPI is the slice of the gateway facade the manager needs.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*client.LoginResult, error)
	Signup(ctx context.Context, name, email, password string) (*domain.Identity, error)
	Me(ctx context.Context) (*domain.Identity, error)
}

// Manager orchestrates authentication state for the whole process.
type Manager struct {
	store  repository.SessionStore
	api    AuthAPI
	logger *zap.Logger

	mu      sync.RWMutex
	session domain.Session
}

// New builds a manager in the loading state; Bootstrap resolves it.
func New(store repository.SessionStore, api AuthAPI, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		store:   store,
		api:     api,
		logger:  logger,
		session: domain.Session{Status: domain.StatusLoading},
	}
}

// Bootstrap restores the session from the persisted store. It runs once per
// process: repeat calls return the already-resolved session unchanged. It
// always completes, treating a corrupted or unreadable store as empty.
func (m *Manager) Bootstrap() domain.Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.session.Status != domain.StatusLoading {
		return m.session
	}

	token, identity, err := m.store.Load()
	if err != nil {
		m.logger.Warn("session store unreadable, starting unauthenticated", zap.Error(err))
		token, identity = "", nil
	}

	if token != "" && identity != nil {
		m.session = domain.Session{Token: token, Identity: identity, Status: domain.StatusAuthenticated}
	} else {
		// the raw token is kept so requests still carry it; presence of
		// either value alone never authenticates
		m.session = domain.Session{Token: token, Status: domain.StatusUnauthenticated}
	}
	return m.session
}

// Login exchanges credentials for a session. Identity resolution order: an
// explicit user object in the response wins, then the decoded token payload,
// then whatever identity the store already holds. A response with no
// credential at all is fatal to the attempt and leaves both the in-memory
// session and the persisted store untouched.
func (m *Manager) Login(ctx context.Context, email, password string) (domain.Session, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return m.Current(), domain.ErrMissingLogin
	}

	res, err := m.api.Login(ctx, email, password)
	if err != nil {
		return m.Current(), err
	}

	identity := res.User
	if identity == nil {
		decoded, decodeErr := credential.Decode(res.Token)
		if decodeErr != nil {
			m.logger.Warn("credential payload undecodable, identity unknown", zap.Error(decodeErr))
			_, identity, _ = m.store.Load()
		} else {
			identity = decoded
		}
	}

	if err := m.store.Save(res.Token, identity); err != nil {
		m.logger.Warn("failed to persist session", zap.Error(err))
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.session = domain.Session{Token: res.Token, Identity: identity, Status: domain.StatusUnauthenticated}
	if identity != nil {
		m.session.Status = domain.StatusAuthenticated
	}
	return m.session, nil
}

// Signup creates an account. It establishes no session; callers follow up
// with Login, matching the platform's two-step flow.
func (m *Manager) Signup(ctx context.Context, name, email, password string) (*domain.Identity, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" || password == "" {
		return nil, domain.ErrMissingSignup
	}
	return m.api.Signup(ctx, name, email, password)
}

// Logout clears the persisted store and resets the in-memory session. It has
// no remote effect and always succeeds.
func (m *Manager) Logout() {
	if err := m.store.Clear(); err != nil {
		m.logger.Warn("failed to clear session store", zap.Error(err))
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session = domain.Session{Status: domain.StatusUnauthenticated}
}

// Me fetches the authoritative profile from the user service. It does not
// mutate the session; display refreshes only.
func (m *Manager) Me(ctx context.Context) (*domain.Identity, error) {
	return m.api.Me(ctx)
}

// Current returns a snapshot of the session.
func (m *Manager) Current() domain.Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.session
}

// Token implements client.TokenProvider.
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.session.Token
}

var _ client.TokenProvider = (*Manager)(nil)
