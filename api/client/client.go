// Package client is the single point of contact with the platform gateway.
// Every remote call in the repository goes through Client.do: one attempt per
// call, bearer header injected from the current session, no retry, no backoff.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/linkfeed/cli/api/transport"
	"github.com/linkfeed/cli/domain"
	"github.com/linkfeed/cli/pkg/logger"
)

// TokenProvider supplies the current bearer credential. An empty string means
// no Authorization header is attached.
type TokenProvider interface {
	Token() string
}

// TokenFunc adapts a plain function to the TokenProvider interface.
type TokenFunc func() string

func (f TokenFunc) Token() string { return f() }

// Config holds the gateway endpoint settings.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client is the API gateway facade shared by all remote-call wrappers.
type Client struct {
	http    *fasthttp.Client
	baseURL string
	timeout time.Duration
	tokens  TokenProvider
	logger  *zap.Logger
}

// New builds the facade. A nil token provider behaves as anonymous.
func New(cfg Config, tokens TokenProvider, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		http: &fasthttp.Client{
			Name:            "linkfeed-cli",
			ReadTimeout:     timeout,
			WriteTimeout:    timeout,
			MaxConnsPerHost: 8,
		},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		timeout: timeout,
		tokens:  tokens,
		logger:  log,
	}
}

// APIError carries the HTTP status and the optional server-supplied message
// of a non-2xx response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("server returned %d", e.StatusCode)
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	return c.do(ctx, fasthttp.MethodGet, path, nil)
}

func (c *Client) post(ctx context.Context, path string, body any) ([]byte, error) {
	return c.do(ctx, fasthttp.MethodPost, path, body)
}

func (c *Client) del(ctx context.Context, path string) ([]byte, error) {
	return c.do(ctx, fasthttp.MethodDelete, path, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body any) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, domain.WrapError(domain.ErrCodeTransport, "request aborted", err)
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.baseURL + path)
	req.Header.SetMethod(method)
	req.Header.Set("Accept", "application/json")

	requestID := logger.RequestID(ctx)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	req.Header.Set("X-Request-Id", requestID)

	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, domain.WrapError(domain.ErrCodeInternal, "encode request body", err)
		}
		req.Header.SetContentType("application/json")
		req.SetBody(payload)
	}

	log := c.logger.With(
		zap.String("method", method),
		zap.String("path", path),
		zap.String("request_id", requestID),
	)

	if err := c.http.DoTimeout(req, resp, c.timeout); err != nil {
		log.Warn("request failed", zap.Error(err))
		return nil, domain.WrapError(domain.ErrCodeTransport, "request failed", err)
	}

	status := resp.StatusCode()
	out := append([]byte(nil), resp.Body()...)
	log.Debug("request completed", zap.Int("status", status))

	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		return nil, classifyStatus(status, out)
	}
	return out, nil
}

// classifyStatus maps a non-2xx response onto the domain error taxonomy,
// keeping the APIError reachable through errors.As.
func classifyStatus(status int, body []byte) error {
	apiErr := &APIError{StatusCode: status, Message: remoteMessage(body)}
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return domain.WrapError(domain.ErrCodeUnauthorized, "request rejected", apiErr)
	case status == http.StatusNotFound:
		return domain.WrapError(domain.ErrCodeNotFound, "resource not found", apiErr)
	default:
		return domain.WrapError(domain.ErrCodeRemote, "request failed remotely", apiErr)
	}
}

// remoteMessage extracts the optional error message from the platform's
// {timestamp, error, status} body. Any other body shape is ignored.
func remoteMessage(body []byte) string {
	var parsed transport.ErrorBody
	if err := json.Unmarshal(body, &parsed); err != nil {
		return ""
	}
	return parsed.Message
}
