package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"github.com/taskdeck/taskdeck/internal/app"
	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/usecase"
)

const dateLayout = "2006-01-02"

// parseDate parses a YYYY-MM-DD flag value in local time.
func parseDate(value string) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", value)
	}
	return t, nil
}

// newListCommand creates the list command for displaying tasks.
func newListCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Status    string
		DateRange string
		TagIDs    []int
		ProjectID int
		JSON      bool
	}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks",
		Long: `List tasks ordered by ascending due date.

Filters combine with AND; the tag filter matches tasks sharing at
least one of the given tags.

Examples:
  # All tasks
  taskdeck list

  # Open tasks in project 2 due this week
  taskdeck list --project 2 --status todo --due week

  # Tasks carrying tag 1 or tag 5
  taskdeck list --tag 1 --tag 5`,
		GroupID: groupTask,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter := domain.FilterState{
				TagIDs:    opts.TagIDs,
				Status:    domain.Status(opts.Status),
				DateRange: domain.DateRange(opts.DateRange),
			}
			if opts.ProjectID > 0 {
				filter.ProjectID = &opts.ProjectID
			}
			if filter.Status != "" && !filter.Status.IsValid() {
				return domain.ErrInvalidStatus
			}
			if filter.DateRange != "" && !filter.DateRange.IsValid() {
				return fmt.Errorf("invalid date range %q (want today, week or overdue)", opts.DateRange)
			}

			out, err := c.ListTasksUseCase().Execute(cmd.Context(), usecase.ListTasksInput{Filter: filter})
			if err != nil {
				return err
			}

			if opts.JSON {
				return printTasksJSON(cmd.OutOrStdout(), out.Tasks)
			}

			board, err := c.LoadBoardUseCase().Execute(cmd.Context())
			if err != nil {
				return err
			}
			printTaskTable(cmd.OutOrStdout(), out.Tasks, board.Projects, c.Clock.Now())
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "\n%d tasks, %d in progress, %d completed\n",
				out.Stats.Total, out.Stats.InProgress, out.Stats.Completed)
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.ProjectID, "project", 0, "Filter by project ID")
	cmd.Flags().IntSliceVar(&opts.TagIDs, "tag", nil, "Filter by tag ID (can specify multiple)")
	cmd.Flags().StringVar(&opts.Status, "status", "", "Filter by status (todo, in-progress, done)")
	cmd.Flags().StringVar(&opts.DateRange, "due", "", "Filter by due-date bucket (today, week, overdue)")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output as JSON")

	return cmd
}

func printTasksJSON(w io.Writer, tasks []*domain.Task) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(tasks)
}

func printTaskTable(w io.Writer, tasks []*domain.Task, projects []*domain.Project, now time.Time) {
	// Dangling project references render as "-"; deleting a project does
	// not cascade to its tasks.
	names := make(map[int]string, len(projects))
	for _, p := range projects {
		names[p.ID] = p.Name
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "ID\tTITLE\tPROJECT\tSTATUS\tDUE")
	for _, t := range tasks {
		project := names[t.ProjectID]
		if project == "" {
			project = "-"
		}
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			t.ID, t.Title, project, t.Status.Display(), domain.FormatDueDate(t.DueDate, now))
	}
	_ = tw.Flush()
}

// newAddCommand creates the add command for creating tasks.
func newAddCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Title       string
		Description string
		Due         string
		Status      string
		TagIDs      []int
		ProjectID   int
	}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new task",
		Long: `Create a new task.

Examples:
  # Minimal task
  taskdeck add --title "Ship report" --project 3 --due 2025-03-01

  # Task with tags and an initial status
  taskdeck add --title "Fix crash" --project 2 --due 2025-02-20 \
    --tag 1 --tag 5 --status in-progress`,
		GroupID: groupTask,
		RunE: func(cmd *cobra.Command, _ []string) error {
			draft := domain.TaskDraft{
				Title:       opts.Title,
				Description: opts.Description,
				ProjectID:   opts.ProjectID,
				TagIDs:      opts.TagIDs,
				Status:      domain.Status(opts.Status),
			}
			if opts.Due != "" {
				due, err := parseDate(opts.Due)
				if err != nil {
					return err
				}
				draft.DueDate = due
			}

			out, err := c.CreateTaskUseCase().Execute(cmd.Context(), usecase.CreateTaskInput{Draft: draft})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created task #%d\n", out.Task.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Title, "title", "", "Task title (required)")
	cmd.Flags().StringVar(&opts.Description, "body", "", "Task description")
	cmd.Flags().IntVar(&opts.ProjectID, "project", 0, "Project ID (required)")
	cmd.Flags().IntSliceVar(&opts.TagIDs, "tag", nil, "Tag ID (can specify multiple)")
	cmd.Flags().StringVar(&opts.Due, "due", "", "Due date, YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&opts.Status, "status", "", "Initial status (default: todo)")

	return cmd
}

// newEditCommand creates the edit command for patching tasks.
func newEditCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Title       string
		Description string
		Due         string
		Status      string
		TagIDs      []int
		ProjectID   int
	}

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit an existing task",
		Long: `Edit a task. Only the provided flags change; everything else is
left as is.

Examples:
  # Mark task 4 done
  taskdeck edit 4 --status done

  # Move task 2 to another project and push the due date
  taskdeck edit 2 --project 3 --due 2025-03-15`,
		GroupID: groupTask,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}

			var patch domain.TaskPatch
			if cmd.Flags().Changed("title") {
				patch.Title = &opts.Title
			}
			if cmd.Flags().Changed("body") {
				patch.Description = &opts.Description
			}
			if cmd.Flags().Changed("project") {
				patch.ProjectID = &opts.ProjectID
			}
			if cmd.Flags().Changed("tag") {
				patch.TagIDs = &opts.TagIDs
			}
			if cmd.Flags().Changed("status") {
				status := domain.Status(opts.Status)
				patch.Status = &status
			}
			if cmd.Flags().Changed("due") {
				due, err := parseDate(opts.Due)
				if err != nil {
					return err
				}
				patch.DueDate = &due
			}

			out, err := c.UpdateTaskUseCase().Execute(cmd.Context(), usecase.UpdateTaskInput{
				TaskID: id,
				Patch:  patch,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated task #%d\n", out.Task.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Title, "title", "", "New title")
	cmd.Flags().StringVar(&opts.Description, "body", "", "New description")
	cmd.Flags().IntVar(&opts.ProjectID, "project", 0, "New project ID")
	cmd.Flags().IntSliceVar(&opts.TagIDs, "tag", nil, "Replacement tag set")
	cmd.Flags().StringVar(&opts.Due, "due", "", "New due date, YYYY-MM-DD")
	cmd.Flags().StringVar(&opts.Status, "status", "", "New status")

	return cmd
}

// newDeleteCommand creates the del command for removing tasks.
func newDeleteCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "del <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a task",
		GroupID: groupTask,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}

			out, err := c.DeleteTaskUseCase().Execute(cmd.Context(), usecase.DeleteTaskInput{TaskID: id})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted task #%d\n", out.TaskID)
			return nil
		},
	}

	return cmd
}

// newStatsCommand creates the stats command.
func newStatsCommand(c *app.Container) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "stats",
		Short:   "Show task statistics",
		GroupID: groupTask,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ListTasksUseCase().Execute(cmd.Context(), usecase.ListTasksInput{})
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(out.Stats)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Total:       %d\n", out.Stats.Total)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "In Progress: %d\n", out.Stats.InProgress)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Completed:   %d\n", out.Stats.Completed)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")

	return cmd
}

func parseTaskID(arg string) (int, error) {
	var id int
	if _, err := fmt.Sscanf(arg, "%d", &id); err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid task ID %q", arg)
	}
	return id, nil
}
