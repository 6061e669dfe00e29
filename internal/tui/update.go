package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/notify"
)

const formDateLayout = "2006-01-02"

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case MsgSessionRestored:
		m.user = msg.User
		m.authenticated = msg.Authenticated
		if msg.Authenticated {
			m.mode = modeList
		} else {
			m.openLoginForm()
		}
		return m, nil

	case MsgLoggedIn:
		m.user = msg.User
		m.authenticated = true
		m.mode = modeList
		return m, tea.Batch(
			m.notify(notify.Spec{
				Title:    fmt.Sprintf("Welcome, %s", msg.User.Name),
				Variant:  notify.VariantSuccess,
				Duration: notify.DefaultDuration,
			}),
			m.loadTasksCmd(),
		)

	case MsgLoggedOut:
		m.user = domain.User{}
		m.authenticated = false
		m.openLoginForm()
		return m, m.notify(notify.Spec{
			Title:    "Logged out",
			Duration: notify.DefaultDuration,
		})

	case MsgBoardLoaded:
		m.projects = msg.Projects
		m.tags = msg.Tags
		return m, m.loadTasksCmd()

	case MsgTasksLoaded:
		m.tasks = msg.Tasks
		m.stats = msg.Stats
		m.loading = false
		if m.cursor >= len(m.tasks) {
			m.cursor = len(m.tasks) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}
		return m, nil

	case MsgTaskCreated:
		m.mode = modeList
		return m, tea.Batch(
			m.notify(notify.Spec{
				Title:    fmt.Sprintf("Created task #%d", msg.TaskID),
				Variant:  notify.VariantSuccess,
				Duration: notify.DefaultDuration,
			}),
			m.loadTasksCmd(),
		)

	case MsgTaskUpdated:
		if m.mode == modeForm {
			m.mode = modeList
		}
		return m, tea.Batch(
			m.notify(notify.Spec{
				Title:    fmt.Sprintf("Updated task #%d", msg.TaskID),
				Variant:  notify.VariantSuccess,
				Duration: notify.DefaultDuration,
			}),
			m.loadTasksCmd(),
		)

	case MsgTaskDeleted:
		m.mode = modeList
		return m, tea.Batch(
			m.notify(notify.Spec{
				Title:    fmt.Sprintf("Deleted task #%d", msg.TaskID),
				Variant:  notify.VariantDestructive,
				Duration: notify.DefaultDuration,
			}),
			m.loadTasksCmd(),
		)

	case MsgError:
		m.loading = false
		return m, m.notify(notify.Spec{
			Title:       "Something went wrong",
			Description: msg.Err.Error(),
			Variant:     notify.VariantDestructive,
			Duration:    notify.DefaultDuration,
		})

	case MsgToastTick:
		// Keep ticking while anything is on screen.
		if len(m.container.Notifications.Active()) > 0 {
			return m, m.toastTickCmd()
		}
		return m, nil
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Quit works everywhere except inside text inputs, where "q" must type.
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.mode {
	case modeLogin:
		return m.handleLoginKey(msg)
	case modeForm:
		return m.handleFormKey(msg)
	case modeConfirmDelete:
		return m.handleConfirmKey(msg)
	case modeList:
		return m.handleListKey(msg)
	}
	return m, nil
}

func (m *Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.tasks)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.New):
		m.openTaskForm(nil)

	case key.Matches(msg, m.keys.Edit):
		if t := m.selectedTask(); t != nil {
			m.openTaskForm(t)
		}

	case key.Matches(msg, m.keys.Delete):
		if t := m.selectedTask(); t != nil {
			m.confirmID = t.ID
			m.mode = modeConfirmDelete
		}

	case key.Matches(msg, m.keys.Toggle):
		if t := m.selectedTask(); t != nil {
			next := nextStatus(t.Status)
			patch := domain.TaskPatch{Status: &next}
			return m, m.updateTaskCmd(t.ID, patch)
		}

	case key.Matches(msg, m.keys.FilterProject):
		m.cycleProjectFilter()
		m.loading = true
		return m, m.loadTasksCmd()

	case key.Matches(msg, m.keys.FilterStatus):
		m.filter.Status = nextStatusFilter(m.filter.Status)
		m.loading = true
		return m, m.loadTasksCmd()

	case key.Matches(msg, m.keys.FilterDate):
		m.filter.DateRange = nextDateRange(m.filter.DateRange)
		m.loading = true
		return m, m.loadTasksCmd()

	case key.Matches(msg, m.keys.ClearFilters):
		m.filter = domain.FilterState{}
		m.loading = true
		return m, m.loadTasksCmd()

	case key.Matches(msg, m.keys.Refresh):
		m.loading = true
		return m, tea.Batch(m.loadBoardCmd(), m.loadTasksCmd())

	case key.Matches(msg, m.keys.Logout):
		return m, m.logoutCmd()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

func (m *Model) handleLoginKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Tab), key.Matches(msg, m.keys.Down):
		m.loginFocus = (m.loginFocus + 1) % loginFieldCount
		m.focusLoginField()
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.loginFocus = (m.loginFocus + loginFieldCount - 1) % loginFieldCount
		m.focusLoginField()
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		name := strings.TrimSpace(m.loginForm[loginFieldName].Value())
		email := strings.TrimSpace(m.loginForm[loginFieldEmail].Value())
		return m, m.loginCmd(name, email)
	}

	var cmd tea.Cmd
	m.loginForm[m.loginFocus], cmd = m.loginForm[m.loginFocus].Update(msg)
	return m, cmd
}

func (m *Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = modeList
		return m, nil

	case key.Matches(msg, m.keys.Tab), key.Matches(msg, m.keys.Down):
		m.formFocus = (m.formFocus + 1) % fieldCount
		m.focusFormField()
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.formFocus = (m.formFocus + fieldCount - 1) % fieldCount
		m.focusFormField()
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		return m.submitTaskForm()
	}

	var cmd tea.Cmd
	m.form[m.formFocus], cmd = m.form[m.formFocus].Update(msg)
	return m, cmd
}

func (m *Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		id := m.confirmID
		m.confirmID = 0
		return m, m.deleteTaskCmd(id)
	case "n", "esc", "q":
		m.confirmID = 0
		m.mode = modeList
	}
	return m, nil
}

// --- Forms ---

func newInput(placeholder string, limit int) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = limit
	return in
}

func (m *Model) openLoginForm() {
	m.mode = modeLogin
	m.loginForm = []textinput.Model{
		newInput("Ada Lovelace", 64),
		newInput("ada@example.com", 128),
	}
	m.loginFocus = loginFieldName
	m.focusLoginField()
}

// openTaskForm prepares the form for creating (task == nil) or editing.
func (m *Model) openTaskForm(task *domain.Task) {
	m.mode = modeForm
	m.form = []textinput.Model{
		newInput("Title", 128),
		newInput("Description", 512),
		newInput("Project ID", 8),
		newInput("Tag IDs, comma separated", 64),
		newInput("YYYY-MM-DD", 10),
		newInput("todo, in-progress or done", 16),
	}
	m.formFocus = fieldTitle
	m.editingID = 0

	if task != nil {
		m.editingID = task.ID
		m.form[fieldTitle].SetValue(task.Title)
		m.form[fieldBody].SetValue(task.Description)
		m.form[fieldProject].SetValue(strconv.Itoa(task.ProjectID))
		m.form[fieldTags].SetValue(joinIDs(task.TagIDs))
		m.form[fieldDue].SetValue(task.DueDate.Format(formDateLayout))
		m.form[fieldStatus].SetValue(string(task.Status))
	}
	m.focusFormField()
}

func (m *Model) focusFormField() {
	for i := range m.form {
		if i == m.formFocus {
			m.form[i].Focus()
		} else {
			m.form[i].Blur()
		}
	}
}

func (m *Model) focusLoginField() {
	for i := range m.loginForm {
		if i == m.loginFocus {
			m.loginForm[i].Focus()
		} else {
			m.loginForm[i].Blur()
		}
	}
}

func (m *Model) submitTaskForm() (tea.Model, tea.Cmd) {
	title := strings.TrimSpace(m.form[fieldTitle].Value())
	body := strings.TrimSpace(m.form[fieldBody].Value())
	projectRaw := strings.TrimSpace(m.form[fieldProject].Value())
	tagsRaw := strings.TrimSpace(m.form[fieldTags].Value())
	dueRaw := strings.TrimSpace(m.form[fieldDue].Value())
	statusRaw := strings.TrimSpace(m.form[fieldStatus].Value())

	projectID := 0
	if projectRaw != "" {
		id, err := strconv.Atoi(projectRaw)
		if err != nil {
			return m, m.formError("Project must be a number")
		}
		projectID = id
	}

	tagIDs, err := parseIDs(tagsRaw)
	if err != nil {
		return m, m.formError("Tags must be comma-separated numbers")
	}

	var due time.Time
	if dueRaw != "" {
		due, err = time.ParseInLocation(formDateLayout, dueRaw, time.Local)
		if err != nil {
			return m, m.formError("Due date must be YYYY-MM-DD")
		}
	}

	if m.editingID == 0 {
		draft := domain.TaskDraft{
			Title:       title,
			Description: body,
			ProjectID:   projectID,
			TagIDs:      tagIDs,
			DueDate:     due,
			Status:      domain.Status(statusRaw),
		}
		return m, m.createTaskCmd(draft)
	}

	status := domain.Status(statusRaw)
	patch := domain.TaskPatch{
		Title:       &title,
		Description: &body,
		ProjectID:   &projectID,
		TagIDs:      &tagIDs,
		Status:      &status,
	}
	if !due.IsZero() {
		patch.DueDate = &due
	}
	return m, m.updateTaskCmd(m.editingID, patch)
}

func (m *Model) formError(title string) tea.Cmd {
	return m.notify(notify.Spec{
		Title:    title,
		Variant:  notify.VariantDestructive,
		Duration: notify.DefaultDuration,
	})
}

// --- Filter cycling ---

func (m *Model) cycleProjectFilter() {
	if len(m.projects) == 0 {
		return
	}
	if m.filter.ProjectID == nil {
		id := m.projects[0].ID
		m.filter.ProjectID = &id
		return
	}
	for i, p := range m.projects {
		if p.ID == *m.filter.ProjectID {
			if i+1 < len(m.projects) {
				id := m.projects[i+1].ID
				m.filter.ProjectID = &id
			} else {
				m.filter.ProjectID = nil
			}
			return
		}
	}
	m.filter.ProjectID = nil
}

func nextStatus(s domain.Status) domain.Status {
	switch s {
	case domain.StatusTodo:
		return domain.StatusInProgress
	case domain.StatusInProgress:
		return domain.StatusDone
	default:
		return domain.StatusTodo
	}
}

func nextStatusFilter(s domain.Status) domain.Status {
	switch s {
	case "":
		return domain.StatusTodo
	case domain.StatusTodo:
		return domain.StatusInProgress
	case domain.StatusInProgress:
		return domain.StatusDone
	default:
		return ""
	}
}

func nextDateRange(r domain.DateRange) domain.DateRange {
	switch r {
	case "":
		return domain.DateRangeToday
	case domain.DateRangeToday:
		return domain.DateRangeWeek
	case domain.DateRangeWeek:
		return domain.DateRangeOverdue
	default:
		return ""
	}
}

// --- Helpers ---

func parseIDs(raw string) ([]int, error) {
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		id, err := strconv.Atoi(p)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func joinIDs(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}
