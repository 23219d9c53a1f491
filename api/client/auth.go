package client

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/linkfeed/cli/api/transport"
	"github.com/linkfeed/cli/domain"
)

// LoginResult is a login response normalized at the gateway boundary. User is
// nil for the bare-token form; the session layer decides how to resolve the
// identity in that case.
type LoginResult struct {
	Token string
	User  *domain.Identity
}

// Login exchanges credentials for a bearer token. The gateway answers in
// one of three shapes: the raw token text, a JSON string,
// or an object with a token field and an optional user object. Anything else
// is a malformed response and fatal to the attempt.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	body, err := c.post(ctx, "/users/auth/login", transport.LoginRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return nil, err
	}
	return normalizeLogin(body)
}

func normalizeLogin(body []byte) (*LoginResult, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, domain.ErrNoCredential
	}

	switch trimmed[0] {
	case '{':
		var payload transport.LoginPayload
		if err := json.Unmarshal(trimmed, &payload); err != nil {
			return nil, domain.WrapError(domain.ErrCodeMalformed, "unparsable login response", err)
		}
		if payload.Token == "" {
			return nil, domain.ErrNoCredential
		}
		return &LoginResult{Token: payload.Token, User: payload.User.Identity()}, nil
	case '"':
		var token string
		if err := json.Unmarshal(trimmed, &token); err != nil || token == "" {
			return nil, domain.ErrNoCredential
		}
		return &LoginResult{Token: token}, nil
	default:
		// raw token text, the user service's native form
		return &LoginResult{Token: string(trimmed)}, nil
	}
}

// Signup creates an account and returns the created profile. It does not
// establish a session; callers log in afterwards.
func (c *Client) Signup(ctx context.Context, name, email, password string) (*domain.Identity, error) {
	body, err := c.post(ctx, "/users/auth/signup", transport.SignupRequest{
		Name:     name,
		Email:    email,
		Password: password,
	})
	if err != nil {
		return nil, err
	}
	var user transport.UserPayload
	if err := json.Unmarshal(body, &user); err != nil {
		return nil, domain.WrapError(domain.ErrCodeMalformed, "unparsable signup response", err)
	}
	return user.Identity(), nil
}

// Me fetches the authenticated profile from the user service. The session
// bootstrap never calls this; it exists for explicit refreshes.
func (c *Client) Me(ctx context.Context) (*domain.Identity, error) {
	body, err := c.get(ctx, "/users/core/me")
	if err != nil {
		return nil, err
	}
	var user transport.UserPayload
	if err := json.Unmarshal(body, &user); err != nil {
		return nil, domain.WrapError(domain.ErrCodeMalformed, "unparsable profile response", err)
	}
	return user.Identity(), nil
}
