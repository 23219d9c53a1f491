package domain

// AuthStatus describes the lifecycle stage of the client session.
type AuthStatus string

const (
	// StatusLoading is the transient startup state, left exactly once per
	// process after the persisted session has been inspected.
	StatusLoading AuthStatus = "loading"

	StatusUnauthenticated AuthStatus = "unauthenticated"
	StatusAuthenticated   AuthStatus = "authenticated"
)

// Session is the in-memory authentication state shared by every command.
// Status is StatusAuthenticated exactly when Identity is non-nil; a token
// with no resolvable identity keeps the session unauthenticated even though
// the bearer credential is still attached to outgoing requests.
type Session struct {
	Token    string     `json:"token,omitempty"`
	Identity *Identity  `json:"identity,omitempty"`
	Status   AuthStatus `json:"status"`
}

// IsAuthenticated reports whether the session holds a resolved identity.
func (s Session) IsAuthenticated() bool {
	return s.Status == StatusAuthenticated && s.Identity != nil
}
