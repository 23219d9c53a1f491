package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/linkfeed/cli/domain"
)

func (c *Client) listPeople(ctx context.Context, path string) ([]domain.Person, error) {
	body, err := c.get(ctx, path)
	if err != nil {
		return nil, err
	}
	var people []domain.Person
	if err := json.Unmarshal(body, &people); err != nil {
		return nil, domain.WrapError(domain.ErrCodeMalformed, "unparsable connections response", err)
	}
	return people, nil
}

// FirstDegree returns the user's accepted connections.
func (c *Client) FirstDegree(ctx context.Context) ([]domain.Person, error) {
	return c.listPeople(ctx, "/connections/core/first-degree")
}

// ReceivedRequests returns pending requests addressed to the user.
func (c *Client) ReceivedRequests(ctx context.Context) ([]domain.Person, error) {
	return c.listPeople(ctx, "/connections/core/received-requests")
}

// SentRequests returns pending requests the user has sent.
func (c *Client) SentRequests(ctx context.Context) ([]domain.Person, error) {
	return c.listPeople(ctx, "/connections/core/sent-requests")
}

// SuggestedConnections returns people the user may want to connect with.
func (c *Client) SuggestedConnections(ctx context.Context) ([]domain.Person, error) {
	return c.listPeople(ctx, "/connections/core/suggested-connections")
}

// SearchUsers looks up people by name. An empty query is rejected before any
// remote call.
func (c *Client) SearchUsers(ctx context.Context, query string) ([]domain.Person, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domain.ErrEmptyQuery
	}
	return c.listPeople(ctx, "/connections/core/search?query="+url.QueryEscape(query))
}

// The four connection mutations are addressed by the target user's id, not a
// connection-record id.

func (c *Client) RequestConnection(ctx context.Context, userID int64) error {
	_, err := c.post(ctx, fmt.Sprintf("/connections/core/request/%d", userID), nil)
	return err
}

func (c *Client) AcceptConnection(ctx context.Context, userID int64) error {
	_, err := c.post(ctx, fmt.Sprintf("/connections/core/accept/%d", userID), nil)
	return err
}

func (c *Client) RejectConnection(ctx context.Context, userID int64) error {
	_, err := c.post(ctx, fmt.Sprintf("/connections/core/reject/%d", userID), nil)
	return err
}

func (c *Client) RemoveConnection(ctx context.Context, userID int64) error {
	_, err := c.post(ctx, fmt.Sprintf("/connections/core/remove-connection/%d", userID), nil)
	return err
}
