package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/notify"
)

// Colors defines the color palette for the TUI.
var Colors = struct {
	Primary    lipgloss.Color
	Muted      lipgloss.Color
	Error      lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Selected   lipgloss.Color
	Todo       lipgloss.Color
	InProgress lipgloss.Color
	Done       lipgloss.Color
}{
	Primary:    lipgloss.Color("#8B5CF6"), // Purple
	Muted:      lipgloss.Color("#636E72"), // Gray
	Error:      lipgloss.Color("#EF4444"), // Red
	Success:    lipgloss.Color("#10B981"), // Green
	Warning:    lipgloss.Color("#F59E0B"), // Amber
	Selected:   lipgloss.Color("#FFEAA7"), // Yellow
	Todo:       lipgloss.Color("#3B82F6"), // Blue
	InProgress: lipgloss.Color("#F59E0B"), // Amber
	Done:       lipgloss.Color("#10B981"), // Green
}

// Styles holds the lipgloss styles used across views.
type Styles struct {
	Title        lipgloss.Style
	Header       lipgloss.Style
	Muted        lipgloss.Style
	Selected     lipgloss.Style
	Normal       lipgloss.Style
	Overdue      lipgloss.Style
	FilterActive lipgloss.Style
	FormLabel    lipgloss.Style
	ToastDefault lipgloss.Style
	ToastSuccess lipgloss.Style
	ToastError   lipgloss.Style
}

// DefaultStyles returns the default styles.
func DefaultStyles() Styles {
	toast := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	return Styles{
		Title:        lipgloss.NewStyle().Bold(true).Foreground(Colors.Primary),
		Header:       lipgloss.NewStyle().Bold(true),
		Muted:        lipgloss.NewStyle().Foreground(Colors.Muted),
		Selected:     lipgloss.NewStyle().Foreground(Colors.Selected).Bold(true),
		Normal:       lipgloss.NewStyle(),
		Overdue:      lipgloss.NewStyle().Foreground(Colors.Error),
		FilterActive: lipgloss.NewStyle().Foreground(Colors.Warning).Bold(true),
		FormLabel:    lipgloss.NewStyle().Foreground(Colors.Muted).Width(10),
		ToastDefault: toast.Foreground(Colors.Primary).BorderForeground(Colors.Primary),
		ToastSuccess: toast.Foreground(Colors.Success).BorderForeground(Colors.Success),
		ToastError:   toast.Foreground(Colors.Error).BorderForeground(Colors.Error),
	}
}

// StatusStyle returns the style for a task status.
func (s Styles) StatusStyle(status domain.Status) lipgloss.Style {
	switch status {
	case domain.StatusInProgress:
		return lipgloss.NewStyle().Foreground(Colors.InProgress)
	case domain.StatusDone:
		return lipgloss.NewStyle().Foreground(Colors.Done)
	default:
		return lipgloss.NewStyle().Foreground(Colors.Todo)
	}
}

// ToastStyle returns the style for a notification variant.
func (s Styles) ToastStyle(variant notify.Variant) lipgloss.Style {
	switch variant {
	case notify.VariantSuccess:
		return s.ToastSuccess
	case notify.VariantDestructive:
		return s.ToastError
	default:
		return s.ToastDefault
	}
}
