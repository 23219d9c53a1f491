package domain

// Identity is the minimal user profile cached client-side. It is derived
// either from a user object in a login response or from the bearer token's
// payload, and is only ever display material; the server re-authenticates
// every request from the token itself.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
}
