// Package interact applies reversible actions optimistically: the local state
// change is published before the remote call resolves, and rolled back to the
// exact pre-action value if the call fails.
package interact

import (
	"context"

	"go.uber.org/zap"
)

// LikeState is the locally mirrored like flag and counter of one post.
type LikeState struct {
	Liked bool
	Count int
}

// PostsAPI is the slice of the gateway facade the controller needs for likes.
// Like and unlike are two distinct endpoints; the controller picks one from
// the state transition, never from the new value alone.
type PostsAPI interface {
	LikePost(ctx context.Context, id int64) error
	UnlikePost(ctx context.Context, id int64) error
}

// NotificationsAPI covers the read-state stub.
type NotificationsAPI interface {
	MarkNotificationRead(ctx context.Context, id int64) (bool, error)
}

// Controller coordinates optimistic updates. It does not serialize concurrent
// actions on the same entity; callers disable the triggering control while an
// action is in flight.
type Controller struct {
	posts         PostsAPI
	notifications NotificationsAPI
	logger        *zap.Logger
}

// New builds a controller.
func New(posts PostsAPI, notifications NotificationsAPI, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{
		posts:         posts,
		notifications: notifications,
		logger:        logger,
	}
}

// ToggleLike flips the like state of a post. The new state is published
// synchronously before the remote call; on failure the state captured at call
// time is republished and returned along with the error. On success the
// optimistic value stands, no re-fetch.
func (c *Controller) ToggleLike(ctx context.Context, postID int64, current LikeState, publish func(LikeState)) (LikeState, error) {
	if publish == nil {
		publish = func(LikeState) {}
	}
	previous := current

	next := LikeState{Liked: !current.Liked}
	if next.Liked {
		next.Count = current.Count + 1
	} else {
		next.Count = current.Count - 1
	}
	publish(next)

	var err error
	if next.Liked {
		err = c.posts.LikePost(ctx, postID)
	} else {
		err = c.posts.UnlikePost(ctx, postID)
	}
	if err != nil {
		c.logger.Warn("like toggle rejected, reverting",
			zap.Int64("post_id", postID),
			zap.Bool("attempted_liked", next.Liked),
			zap.Error(err))
		publish(previous)
		return previous, err
	}
	return next, nil
}

// MarkRead sets a notification's local read flag. The server endpoint does
// not exist; the stub reports an unconfirmed result, and an unconfirmed
// action is reverted so local state never claims a server-side effect.
func (c *Controller) MarkRead(ctx context.Context, notificationID int64, read bool, publish func(bool)) (bool, error) {
	if publish == nil {
		publish = func(bool) {}
	}
	if read {
		return true, nil
	}
	previous := read

	publish(true)

	ok, err := c.notifications.MarkNotificationRead(ctx, notificationID)
	if err != nil {
		publish(previous)
		return previous, err
	}
	if !ok {
		c.logger.Debug("mark-as-read unconfirmed by server", zap.Int64("notification_id", notificationID))
		publish(previous)
		return previous, nil
	}
	return true, nil
}
