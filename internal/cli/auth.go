package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/taskdeck/taskdeck/internal/app"
	"github.com/taskdeck/taskdeck/internal/usecase"
)

// newLoginCommand creates the login command.
func newLoginCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Name  string
		Email string
	}

	cmd := &cobra.Command{
		Use:     "login",
		Short:   "Start a local session",
		GroupID: groupAuth,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := c.RestoreSessionUseCase().Execute(cmd.Context()); err != nil {
				return err
			}

			out, err := c.LoginUseCase().Execute(cmd.Context(), usecase.LoginInput{
				Name:  opts.Name,
				Email: opts.Email,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s <%s>\n", out.User.Name, out.User.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Name, "name", "", "Display name (required)")
	cmd.Flags().StringVar(&opts.Email, "email", "", "Email address (required)")

	return cmd
}

// newLogoutCommand creates the logout command.
func newLogoutCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "logout",
		Short:   "Clear the local session",
		GroupID: groupAuth,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := c.RestoreSessionUseCase().Execute(cmd.Context()); err != nil {
				return err
			}
			if err := c.LogoutUseCase().Execute(cmd.Context()); err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}

// newWhoamiCommand creates the whoami command.
func newWhoamiCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "whoami",
		Short:   "Show the current session",
		GroupID: groupAuth,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.RestoreSessionUseCase().Execute(cmd.Context())
			if err != nil {
				return err
			}

			if !out.Authenticated {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Not logged in")
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s <%s>\n", out.User.Name, out.User.Email)
			return nil
		},
	}
}
