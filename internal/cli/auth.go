package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLoginCmd(a *app) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate against the platform",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.sessions.Login(a.ctx(), email, password)
			if err != nil {
				return err
			}
			if s.Identity != nil {
				fmt.Printf("Logged in as %s\n", displayName(s.Identity.Name, s.Identity.Email, s.Identity.ID))
				return nil
			}
			fmt.Println("Logged in (identity unknown; the server accepted the credentials)")
			return nil
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newSignupCmd(a *app) *cobra.Command {
	var name, email, password string

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an account",
		Long:  "Create an account. Signing up does not log you in; follow with linkfeed login.",
		RunE: func(cmd *cobra.Command, args []string) error {
			created, err := a.sessions.Signup(a.ctx(), name, email, password)
			if err != nil {
				return err
			}
			fmt.Printf("Account created for %s; run: linkfeed login\n", displayName(created.Name, created.Email, created.ID))
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "display name")
	cmd.Flags().StringVarP(&email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Drop the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			a.sessions.Logout()
			fmt.Println("Logged out")
			return nil
		},
	}
}

func newWhoamiCmd(a *app) *cobra.Command {
	var remote bool

	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if remote {
				if err := a.requireSession(); err != nil {
					return err
				}
				identity, err := a.sessions.Me(a.ctx())
				if err != nil {
					return err
				}
				fmt.Printf("%s (id %s)\n", displayName(identity.Name, identity.Email, identity.ID), identity.ID)
				return nil
			}

			s := a.sessions.Current()
			switch {
			case s.IsAuthenticated():
				fmt.Printf("%s (id %s)\n", displayName(s.Identity.Name, s.Identity.Email, s.Identity.ID), s.Identity.ID)
			case s.Token != "":
				fmt.Println("Logged in, identity unknown (try: linkfeed whoami --remote)")
			default:
				fmt.Println("Not logged in")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&remote, "remote", false, "fetch the profile from the server instead of the local session")
	return cmd
}

func displayName(name, email, id string) string {
	if name != "" {
		return name
	}
	if email != "" {
		return email
	}
	return "user " + id
}
