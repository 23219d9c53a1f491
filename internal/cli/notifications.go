package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/linkfeed/cli/domain"
)

func newNotificationsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "notifications",
		Aliases: []string{"notif"},
		Short:   "Show notifications",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.listNotifications()
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List the latest notifications",
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.listNotifications()
			},
		},
		&cobra.Command{
			Use:   "read <notification-id>",
			Short: "Mark a notification as read",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := a.requireSession(); err != nil {
					return err
				}
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				confirmed, err := a.interactions.MarkRead(a.ctx(), id, false, nil)
				if err != nil {
					return err
				}
				if !confirmed {
					fmt.Println("The server keeps no read state; the notification stays unread")
					return nil
				}
				fmt.Println("Marked as read")
				return nil
			},
		},
		&cobra.Command{
			Use:   "read-all",
			Short: "Mark every notification as read",
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := a.requireSession(); err != nil {
					return err
				}
				ctx := a.ctx()
				notifications, err := a.api.ListNotifications(ctx)
				if err != nil {
					return err
				}
				confirmedAll := len(notifications) > 0
				for _, n := range notifications {
					confirmed, err := a.interactions.MarkRead(ctx, n.ID, n.Read, nil)
					if err != nil {
						return err
					}
					if !confirmed {
						confirmedAll = false
					}
				}
				if !confirmedAll {
					fmt.Println("The server keeps no read state; notifications stay unread")
					return nil
				}
				fmt.Println("All notifications marked as read")
				return nil
			},
		},
	)
	return cmd
}

func (a *app) listNotifications() error {
	if err := a.requireSession(); err != nil {
		return err
	}
	notifications, err := a.api.ListNotifications(a.ctx())
	if err != nil {
		return err
	}
	if len(notifications) == 0 {
		fmt.Println("No notifications.")
		return nil
	}
	for _, n := range notifications {
		printNotification(n)
	}
	return nil
}

func printNotification(n domain.Notification) {
	fmt.Printf("#%-6d %s  %s\n", n.ID, relativeTime(n.CreatedAt), n.Message)
}
