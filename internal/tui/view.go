package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/taskdeck/taskdeck/internal/domain"
)

// View renders the current screen.
func (m *Model) View() string {
	var body string
	switch m.mode {
	case modeRestoring:
		body = m.styles.Muted.Render("Restoring session...")
	case modeLogin:
		body = m.viewLogin()
	case modeForm:
		body = m.viewForm()
	case modeConfirmDelete:
		body = m.viewConfirm()
	default:
		body = m.viewList()
	}

	sections := []string{m.viewHeader(), body}
	if toasts := m.viewToasts(); toasts != "" {
		sections = append(sections, toasts)
	}
	if m.mode == modeList {
		sections = append(sections, m.help.View(m.keys))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}

func (m *Model) viewHeader() string {
	title := m.styles.Title.Render("Taskdeck")
	if !m.authenticated {
		return title
	}
	who := m.styles.Muted.Render(fmt.Sprintf("%s <%s>", m.user.Name, m.user.Email))
	return lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", who)
}

func (m *Model) viewLogin() string {
	var b strings.Builder
	b.WriteString(m.styles.Header.Render("Log in") + "\n\n")
	labels := []string{"Name", "Email"}
	for i, in := range m.loginForm {
		b.WriteString(m.styles.FormLabel.Render(labels[i]))
		b.WriteString(in.View())
		b.WriteString("\n")
	}
	b.WriteString("\n" + m.styles.Muted.Render("enter: log in • tab: next field • esc: quit"))
	return b.String()
}

func (m *Model) viewForm() string {
	heading := "New task"
	if m.editingID != 0 {
		heading = fmt.Sprintf("Edit task #%d", m.editingID)
	}

	var b strings.Builder
	b.WriteString(m.styles.Header.Render(heading) + "\n\n")
	labels := []string{"Title", "Body", "Project", "Tags", "Due", "Status"}
	for i, in := range m.form {
		b.WriteString(m.styles.FormLabel.Render(labels[i]))
		b.WriteString(in.View())
		b.WriteString("\n")
	}
	b.WriteString("\n" + m.styles.Muted.Render("enter: save • tab: next field • esc: cancel"))
	return b.String()
}

func (m *Model) viewConfirm() string {
	prompt := fmt.Sprintf("Delete task #%d? (y/n)", m.confirmID)
	return m.styles.Overdue.Render(prompt)
}

func (m *Model) viewList() string {
	var b strings.Builder

	if bar := m.viewFilterBar(); bar != "" {
		b.WriteString(bar + "\n")
	}

	switch {
	case m.loading:
		b.WriteString(m.styles.Muted.Render("Loading tasks...") + "\n")
	case len(m.tasks) == 0:
		b.WriteString(m.styles.Muted.Render("No tasks match.") + "\n")
	default:
		now := m.container.Clock.Now()
		names := make(map[int]string, len(m.projects))
		for _, p := range m.projects {
			names[p.ID] = p.Name
		}
		for i, t := range m.tasks {
			b.WriteString(m.viewTaskRow(t, names[t.ProjectID], i == m.cursor, now) + "\n")
		}
	}

	b.WriteString("\n" + m.styles.Muted.Render(fmt.Sprintf(
		"%d tasks • %d in progress • %d completed",
		m.stats.Total, m.stats.InProgress, m.stats.Completed)))
	return b.String()
}

func (m *Model) viewTaskRow(t *domain.Task, project string, selected bool, now time.Time) string {
	cursor := "  "
	rowStyle := m.styles.Normal
	if selected {
		cursor = "> "
		rowStyle = m.styles.Selected
	}
	if project == "" {
		project = "-"
	}

	due := domain.FormatDueDate(t.DueDate, now)
	dueStyle := m.styles.Muted
	if domain.IsOverdue(t.DueDate, now) && t.Status != domain.StatusDone {
		dueStyle = m.styles.Overdue
	}

	return cursor + rowStyle.Render(fmt.Sprintf("#%-3d %-32s", t.ID, t.Title)) +
		" " + m.styles.StatusStyle(t.Status).Render(fmt.Sprintf("%-11s", t.Status.Display())) +
		" " + m.styles.Muted.Render(fmt.Sprintf("%-12s", project)) +
		" " + dueStyle.Render(due)
}

func (m *Model) viewFilterBar() string {
	if m.filter.IsEmpty() {
		return ""
	}

	var parts []string
	if m.filter.ProjectID != nil {
		name := fmt.Sprintf("#%d", *m.filter.ProjectID)
		for _, p := range m.projects {
			if p.ID == *m.filter.ProjectID {
				name = p.Name
				break
			}
		}
		parts = append(parts, "project: "+name)
	}
	if len(m.filter.TagIDs) > 0 {
		parts = append(parts, "tags: "+joinIDs(m.filter.TagIDs))
	}
	if m.filter.Status != "" {
		parts = append(parts, "status: "+string(m.filter.Status))
	}
	if m.filter.DateRange != "" {
		parts = append(parts, "due: "+string(m.filter.DateRange))
	}
	return m.styles.FilterActive.Render("Filters: " + strings.Join(parts, " • "))
}

func (m *Model) viewToasts() string {
	active := m.container.Notifications.Active()
	if len(active) == 0 {
		return ""
	}

	lines := make([]string, 0, len(active))
	for _, n := range active {
		text := n.Title
		if n.Description != "" {
			text += "\n" + n.Description
		}
		lines = append(lines, m.styles.ToastStyle(n.Variant).Render(text))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
