// Package cli provides the command-line interface for taskdeck.
package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/taskdeck/taskdeck/internal/app"
	"github.com/taskdeck/taskdeck/internal/tui"
)

// Command group IDs.
const (
	groupTask = "task"
	groupAuth = "auth"
)

// NewRootCommand creates the root command for taskdeck.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "taskdeck",
		Short: "Task management in the terminal",
		Long: `taskdeck is a terminal task manager: tasks organized by project
and tag, with due-date filtering, derived statistics and a local
session. Running taskdeck without a subcommand opens the interactive
board.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		RunE: func(*cobra.Command, []string) error {
			return launchTUI(c)
		},
	}

	root.AddGroup(
		&cobra.Group{ID: groupTask, Title: "Task Commands:"},
		&cobra.Group{ID: groupAuth, Title: "Session Commands:"},
	)

	root.AddCommand(
		newListCommand(c),
		newAddCommand(c),
		newEditCommand(c),
		newDeleteCommand(c),
		newStatsCommand(c),
		newLoginCommand(c),
		newLogoutCommand(c),
		newWhoamiCommand(c),
	)

	return root
}

// launchTUI starts the interactive board.
func launchTUI(c *app.Container) error {
	model := tui.New(c)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
