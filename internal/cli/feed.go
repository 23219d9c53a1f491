package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/linkfeed/cli/domain"
	"github.com/linkfeed/cli/usecase/interact"
)

func newFeedCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "feed",
		Short: "List the post feed",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireSession(); err != nil {
				return err
			}
			posts, err := a.api.ListPosts(a.ctx())
			if err != nil {
				return err
			}
			if len(posts) == 0 {
				fmt.Println("No posts yet.")
				return nil
			}
			self := a.selfID()
			for i := range posts {
				printPost(&posts[i], self)
			}
			return nil
		},
	}
}

func newPostCmd(a *app) *cobra.Command {
	var visibility string

	cmd := &cobra.Command{
		Use:   "post <content>",
		Short: "Publish a post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireSession(); err != nil {
				return err
			}
			created, err := a.api.CreatePost(a.ctx(), args[0], visibility, a.selfID())
			if err != nil {
				return err
			}
			fmt.Printf("Posted #%d\n", created.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&visibility, "visibility", domain.VisibilityPublic, "PUBLIC or CONNECTIONS")
	return cmd
}

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <post-id>",
		Short: "Show a single post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireSession(); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			post, err := a.api.GetPost(a.ctx(), id)
			if err != nil {
				return err
			}
			printPost(post, a.selfID())
			return nil
		},
	}
}

func newLikeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "like <post-id>",
		Short: "Like a post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.toggleLike(args[0], true)
		},
	}
}

func newUnlikeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "unlike <post-id>",
		Short: "Remove a like from a post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.toggleLike(args[0], false)
		},
	}
}

func (a *app) toggleLike(arg string, wantLiked bool) error {
	if err := a.requireSession(); err != nil {
		return err
	}
	id, err := parseID(arg)
	if err != nil {
		return err
	}

	ctx := a.ctx()
	post, err := a.api.GetPost(ctx, id)
	if err != nil {
		return err
	}

	current := interact.LikeState{
		Liked: post.LikedBy(a.selfID()),
		Count: post.LikesCount(),
	}
	if current.Liked == wantLiked {
		if wantLiked {
			fmt.Printf("Already liked (%d likes)\n", current.Count)
		} else {
			fmt.Printf("Not liked (%d likes)\n", current.Count)
		}
		return nil
	}

	final, err := a.interactions.ToggleLike(ctx, id, current, func(s interact.LikeState) {
		fmt.Printf("%s  %d likes\n", likeMark(s.Liked), s.Count)
	})
	if err != nil {
		fmt.Printf("Reverted to %d likes\n", final.Count)
		return err
	}
	return nil
}

func likeMark(liked bool) string {
	if liked {
		return "liked"
	}
	return "unliked"
}

func printPost(post *domain.Post, self int64) {
	author := post.AuthorName
	if author == "" {
		author = fmt.Sprintf("user %d", post.AuthorID)
	}
	marker := ""
	if post.LikedBy(self) {
		marker = "  (liked by you)"
	}
	fmt.Printf("#%d  %s  %s\n", post.ID, author, relativeTime(post.CreatedAt))
	fmt.Printf("    %s\n", post.Content)
	fmt.Printf("    %d likes%s\n", post.LikesCount(), marker)
}

// relativeTime renders timestamps the way the feed does: coarse buckets for
// the recent past, a plain date beyond a week.
func relativeTime(ts domain.Time) string {
	if ts.IsZero() {
		return ""
	}
	elapsed := time.Since(ts.Time)
	switch {
	case elapsed < time.Hour:
		return "just now"
	case elapsed < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(elapsed.Hours()))
	case elapsed < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(elapsed.Hours()/24))
	default:
		return ts.Format("2006-01-02")
	}
}
