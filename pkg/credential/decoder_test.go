package credential

import (
	"encoding/base64"
	"encoding/json"
	"testing"

	"github.com/linkfeed/cli/domain"
)

func makeToken(t *testing.T, payload map[string]any) string {
	t.Helper()
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	return header + "." + base64.RawURLEncoding.EncodeToString(body) + ".sig"
}

func TestDecodeSubjectAndEmail(t *testing.T) {
	token := makeToken(t, map[string]any{"sub": "42", "email": "a@b.com"})

	identity, err := Decode(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if identity.ID != "42" {
		t.Errorf("expected id 42, got %q", identity.ID)
	}
	if identity.Email != "a@b.com" {
		t.Errorf("expected email a@b.com, got %q", identity.Email)
	}
}

func TestDecodeNumericSubject(t *testing.T) {
	token := makeToken(t, map[string]any{"sub": 7})

	identity, err := Decode(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if identity.ID != "7" {
		t.Errorf("expected id 7, got %q", identity.ID)
	}
	if identity.Email != "" {
		t.Errorf("expected empty email, got %q", identity.Email)
	}
}

func TestDecodeRejectsMalformedTokens(t *testing.T) {
	cases := map[string]string{
		"not a jwt":          "not-a-jwt",
		"two segments":       "abc.def",
		"bad base64 payload": "abc.!!!.ghi",
		"payload not json": "abc." +
			base64.RawURLEncoding.EncodeToString([]byte("hello")) + ".ghi",
		"missing subject": makeToken(t, map[string]any{"email": "a@b.com"}),
		"empty subject":   makeToken(t, map[string]any{"sub": ""}),
	}

	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			identity, err := Decode(token)
			if err == nil {
				t.Fatalf("expected error, got identity %+v", identity)
			}
			if !domain.IsDomainError(err, domain.ErrCodeDecode) {
				t.Errorf("expected DECODE classification, got %v", err)
			}
		})
	}
}
