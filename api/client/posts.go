package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/linkfeed/cli/api/transport"
	"github.com/linkfeed/cli/domain"
)

// CreatePost publishes a post. Empty content is rejected before any remote
// call; an unknown visibility falls back to PUBLIC.
func (c *Client) CreatePost(ctx context.Context, content, visibility string, authorID int64) (*domain.Post, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, domain.ErrEmptyContent
	}
	if visibility != domain.VisibilityPublic && visibility != domain.VisibilityConnections {
		visibility = domain.VisibilityPublic
	}

	body, err := c.post(ctx, "/posts/core", transport.CreatePostRequest{
		Content:    content,
		Visibility: visibility,
		AuthorID:   authorID,
	})
	if err != nil {
		return nil, err
	}
	var created domain.Post
	if err := json.Unmarshal(body, &created); err != nil {
		return nil, domain.WrapError(domain.ErrCodeMalformed, "unparsable post response", err)
	}
	return &created, nil
}

// ListPosts returns the feed for the authenticated user.
func (c *Client) ListPosts(ctx context.Context) ([]domain.Post, error) {
	body, err := c.get(ctx, "/posts/core/users/allPosts")
	if err != nil {
		return nil, err
	}
	var posts []domain.Post
	if err := json.Unmarshal(body, &posts); err != nil {
		return nil, domain.WrapError(domain.ErrCodeMalformed, "unparsable feed response", err)
	}
	return posts, nil
}

// GetPost fetches a single post by id.
func (c *Client) GetPost(ctx context.Context, id int64) (*domain.Post, error) {
	body, err := c.get(ctx, fmt.Sprintf("/posts/core/%d", id))
	if err != nil {
		return nil, err
	}
	var post domain.Post
	if err := json.Unmarshal(body, &post); err != nil {
		return nil, domain.WrapError(domain.ErrCodeMalformed, "unparsable post response", err)
	}
	return &post, nil
}

// LikePost and UnlikePost hit two distinct endpoints; the platform has no
// idempotent toggle, so callers pick the operation from the state transition.

func (c *Client) LikePost(ctx context.Context, id int64) error {
	_, err := c.post(ctx, fmt.Sprintf("/posts/likes/%d/like", id), nil)
	return err
}

func (c *Client) UnlikePost(ctx context.Context, id int64) error {
	_, err := c.del(ctx, fmt.Sprintf("/posts/likes/%d/unlike", id))
	return err
}
