package client

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/linkfeed/cli/domain"
)

// ListNotifications returns the user's latest notifications.
func (c *Client) ListNotifications(ctx context.Context) ([]domain.Notification, error) {
	body, err := c.get(ctx, "/notification/core/users/allNotifications")
	if err != nil {
		return nil, err
	}
	var notifications []domain.Notification
	if err := json.Unmarshal(body, &notifications); err != nil {
		return nil, domain.WrapError(domain.ErrCodeMalformed, "unparsable notifications response", err)
	}
	return notifications, nil
}

// MarkNotificationRead is a deliberate stub. The notification service is fed
// by asynchronous events and exposes no read-state endpoints, so this returns
// a neutral unconfirmed result instead of an error.
func (c *Client) MarkNotificationRead(ctx context.Context, id int64) (bool, error) {
	c.logger.Debug("mark-as-read has no server endpoint", zap.Int64("notification_id", id))
	return false, nil
}

// UnreadNotificationCount is a deliberate stub for the same reason.
func (c *Client) UnreadNotificationCount(ctx context.Context) (int, error) {
	c.logger.Debug("unread-count has no server endpoint")
	return 0, nil
}
