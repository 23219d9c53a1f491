package transport

import (
	"encoding/json"

	"github.com/linkfeed/cli/domain"
)

// ErrorBody is the error payload the platform services emit on non-2xx
// responses: {"timestamp": ..., "error": "...", "status": "..."}.
type ErrorBody struct {
	Timestamp string `json:"timestamp"`
	Message   string `json:"error"`
	Status    string `json:"status"`
}

// UserPayload is a server user object as it appears in signup responses,
// /users/core/me, and the optional user field of a login response. The id
// arrives as a JSON number.
type UserPayload struct {
	ID    json.Number `json:"id"`
	Email string      `json:"email"`
	Name  string      `json:"name"`
}

// Identity converts the payload into the client-side identity record.
func (u *UserPayload) Identity() *domain.Identity {
	if u == nil {
		return nil
	}
	return &domain.Identity{
		ID:    u.ID.String(),
		Email: u.Email,
		Name:  u.Name,
	}
}

// LoginPayload is the object form of a login response. The user field is
// optional; the bare-string form bypasses this type entirely.
type LoginPayload struct {
	Token string       `json:"token"`
	User  *UserPayload `json:"user"`
}
