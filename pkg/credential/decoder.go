// Package credential extracts display-only identity hints from a bearer
// token's payload segment. The signature is deliberately not verified: the
// client holds no signing secret, and authorization is decided exclusively by
// the server's accept/reject of subsequent requests.
package credential

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v4"

	"github.com/linkfeed/cli/domain"
)

var parser = jwt.NewParser()

// Decode parses the middle segment of a three-segment token and maps the
// subject and email claims into an identity record. A failure is classified
// as ErrCodeDecode and is never fatal to the token itself: the caller keeps
// the raw credential and runs with an unknown identity.
func Decode(token string) (*domain.Identity, error) {
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, domain.WrapError(domain.ErrCodeDecode, "credential payload cannot be decoded", err)
	}

	sub, err := subjectClaim(claims)
	if err != nil {
		return nil, domain.WrapError(domain.ErrCodeDecode, "credential payload has no subject", err)
	}

	identity := &domain.Identity{ID: sub}
	if email, ok := claims["email"].(string); ok {
		identity.Email = email
	}
	return identity, nil
}

// subjectClaim tolerates both string and numeric subjects; the user service
// writes the numeric user id as the subject.
func subjectClaim(claims jwt.MapClaims) (string, error) {
	raw, ok := claims["sub"]
	if !ok {
		return "", fmt.Errorf("sub claim missing")
	}
	switch v := raw.(type) {
	case string:
		if v == "" {
			return "", fmt.Errorf("sub claim empty")
		}
		return v, nil
	case float64:
		return strconv.FormatInt(int64(v), 10), nil
	case json.Number:
		return v.String(), nil
	default:
		return "", fmt.Errorf("sub claim has unexpected type %T", raw)
	}
}
