package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/linkfeed/cli/domain"
)

func newConnectionsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "connections",
		Aliases: []string{"conn"},
		Short:   "Manage connections",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.listPeople("Connections", a.api.FirstDegree)
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List first-degree connections",
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.listPeople("Connections", a.api.FirstDegree)
			},
		},
		&cobra.Command{
			Use:   "received",
			Short: "List received connection requests",
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.listPeople("Received requests", a.api.ReceivedRequests)
			},
		},
		&cobra.Command{
			Use:   "sent",
			Short: "List sent connection requests",
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.listPeople("Sent requests", a.api.SentRequests)
			},
		},
		&cobra.Command{
			Use:   "suggested",
			Short: "List suggested connections",
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.listPeople("Suggestions", a.api.SuggestedConnections)
			},
		},
		&cobra.Command{
			Use:   "search <query>",
			Short: "Search people by name",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.listPeople("Results", func(ctx context.Context) ([]domain.Person, error) {
					return a.api.SearchUsers(ctx, args[0])
				})
			},
		},
		a.connectionMutationCmd("request", "Send a connection request", "Request sent",
			func(ctx context.Context, userID int64) error { return a.api.RequestConnection(ctx, userID) }),
		a.connectionMutationCmd("accept", "Accept a connection request", "Request accepted",
			func(ctx context.Context, userID int64) error { return a.api.AcceptConnection(ctx, userID) }),
		a.connectionMutationCmd("reject", "Reject a connection request", "Request rejected",
			func(ctx context.Context, userID int64) error { return a.api.RejectConnection(ctx, userID) }),
		a.connectionMutationCmd("remove", "Remove a connection", "Connection removed",
			func(ctx context.Context, userID int64) error { return a.api.RemoveConnection(ctx, userID) }),
	)
	return cmd
}

func (a *app) listPeople(title string, fetch func(ctx context.Context) ([]domain.Person, error)) error {
	if err := a.requireSession(); err != nil {
		return err
	}
	people, err := fetch(a.ctx())
	if err != nil {
		return err
	}
	if len(people) == 0 {
		fmt.Printf("%s: none\n", title)
		return nil
	}
	fmt.Printf("%s:\n", title)
	for _, p := range people {
		fmt.Printf("  %-6d %s\n", p.UserID, p.Name)
	}
	return nil
}

// connectionMutationCmd builds one of the four mutations; all of them are
// addressed by the target user's id.
func (a *app) connectionMutationCmd(use, short, done string, call func(ctx context.Context, userID int64) error) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <user-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireSession(); err != nil {
				return err
			}
			userID, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := call(a.ctx(), userID); err != nil {
				return err
			}
			fmt.Println(done)
			return nil
		},
	}
}
