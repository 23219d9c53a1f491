package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/linkfeed/cli/domain"
)

func newTestClient(t *testing.T, token string, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := New(Config{BaseURL: srv.URL}, TokenFunc(func() string { return token }), nil)
	return c, srv
}

func TestHeadersWithToken(t *testing.T) {
	var (
		gotAuth      string
		gotRequestID string
	)
	c, _ := newTestClient(t, "abc.def.ghi", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-Id")
		w.Write([]byte(`[]`))
	})

	if _, err := c.ListPosts(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "Bearer abc.def.ghi" {
		t.Errorf("expected bearer header, got %q", gotAuth)
	}
	if gotRequestID == "" {
		t.Error("expected X-Request-Id to be set")
	}
}

func TestHeadersAnonymous(t *testing.T) {
	var gotAuth string
	var sawAuth bool
	c, _ := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, sawAuth = r.Header["Authorization"]
		w.Write([]byte(`[]`))
	})

	if _, err := c.ListPosts(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sawAuth {
		t.Errorf("expected no Authorization header, got %q", gotAuth)
	}
}

func TestStatusClassification(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
		code   domain.ErrorCode
		msg    string
	}{
		{"unauthorized", http.StatusUnauthorized, `{"error":"token expired","status":"UNAUTHORIZED"}`, domain.ErrCodeUnauthorized, "token expired"},
		{"not found", http.StatusNotFound, ``, domain.ErrCodeNotFound, ""},
		{"server error", http.StatusInternalServerError, `{"error":"boom"}`, domain.ErrCodeRemote, "boom"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			})

			_, err := c.ListPosts(context.Background())
			if err == nil {
				t.Fatal("expected error")
			}
			if !domain.IsDomainError(err, tc.code) {
				t.Errorf("expected code %s, got %v", tc.code, err)
			}
			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("expected APIError in chain, got %v", err)
			}
			if apiErr.StatusCode != tc.status {
				t.Errorf("expected status %d, got %d", tc.status, apiErr.StatusCode)
			}
			if apiErr.Message != tc.msg {
				t.Errorf("expected message %q, got %q", tc.msg, apiErr.Message)
			}
		})
	}
}

func TestTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()
	c := New(Config{BaseURL: srv.URL}, nil, nil)

	_, err := c.ListPosts(context.Background())
	if !domain.IsDomainError(err, domain.ErrCodeTransport) {
		t.Errorf("expected TRANSPORT classification, got %v", err)
	}
}

func TestNormalizeLogin(t *testing.T) {
	t.Run("raw token text", func(t *testing.T) {
		res, err := normalizeLogin([]byte("eyJ.header.sig"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Token != "eyJ.header.sig" || res.User != nil {
			t.Errorf("unexpected result %+v", res)
		}
	})

	t.Run("json string token", func(t *testing.T) {
		res, err := normalizeLogin([]byte(`"abc.def.ghi"`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Token != "abc.def.ghi" {
			t.Errorf("expected token abc.def.ghi, got %q", res.Token)
		}
	})

	t.Run("object with token and user", func(t *testing.T) {
		res, err := normalizeLogin([]byte(`{"token":"t","user":{"id":1,"email":"x@x.com"}}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Token != "t" {
			t.Errorf("expected token t, got %q", res.Token)
		}
		if res.User == nil || res.User.ID != "1" || res.User.Email != "x@x.com" {
			t.Errorf("unexpected user %+v", res.User)
		}
	})

	t.Run("object without token is malformed", func(t *testing.T) {
		_, err := normalizeLogin([]byte(`{"user":{"id":1}}`))
		if !domain.IsDomainError(err, domain.ErrCodeMalformed) {
			t.Errorf("expected MALFORMED classification, got %v", err)
		}
	})

	t.Run("empty body is malformed", func(t *testing.T) {
		_, err := normalizeLogin([]byte("  "))
		if !domain.IsDomainError(err, domain.ErrCodeMalformed) {
			t.Errorf("expected MALFORMED classification, got %v", err)
		}
	})
}

func TestPreflightValidationIssuesNoRequest(t *testing.T) {
	var calls atomic.Int32
	c, _ := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(`{}`))
	})

	if _, err := c.CreatePost(context.Background(), "   ", domain.VisibilityPublic, 1); !domain.IsDomainError(err, domain.ErrCodeInvalid) {
		t.Errorf("expected INVALID for empty content, got %v", err)
	}
	if _, err := c.SearchUsers(context.Background(), ""); !domain.IsDomainError(err, domain.ErrCodeInvalid) {
		t.Errorf("expected INVALID for empty query, got %v", err)
	}
	if got := calls.Load(); got != 0 {
		t.Errorf("expected no remote calls, got %d", got)
	}
}

func TestNotificationStubsDegradeQuietly(t *testing.T) {
	c := New(Config{BaseURL: "http://localhost:0"}, nil, nil)

	ok, err := c.MarkNotificationRead(context.Background(), 7)
	if err != nil || ok {
		t.Errorf("expected neutral (false, nil), got (%v, %v)", ok, err)
	}
	count, err := c.UnreadNotificationCount(context.Background())
	if err != nil || count != 0 {
		t.Errorf("expected neutral (0, nil), got (%d, %v)", count, err)
	}
}
