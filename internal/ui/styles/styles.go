package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/todo/internal/domain"
)

// Styles holds all the UI styles
type Styles struct {
	// Header line above the task table
	Header     lipgloss.Style
	HeaderInfo lipgloss.Style

	// Task fields
	TaskID          lipgloss.Style
	TaskDescription lipgloss.Style
	TaskDue         lipgloss.Style
	TaskDone        lipgloss.Style

	// Status bar
	StatusBar   lipgloss.Style
	StatusMode  lipgloss.Style
	StatusHint  lipgloss.Style
	StatusInfo  lipgloss.Style
	StatusDirty lipgloss.Style

	// Overlays
	Overlay        lipgloss.Style
	OverlayTitle   lipgloss.Style
	MenuItem       lipgloss.Style
	MenuItemActive lipgloss.Style
	MenuKey        lipgloss.Style
	Separator      lipgloss.Style

	// Toasts
	ToastInfo    lipgloss.Style
	ToastSuccess lipgloss.Style
	ToastWarning lipgloss.Style
	ToastError   lipgloss.Style
}

// New creates a new Styles instance with Catppuccin Macchiato theme
func New() *Styles {
	return &Styles{
		Header: lipgloss.NewStyle().
			Foreground(Lavender).
			Bold(true).
			Padding(0, 1),

		HeaderInfo: lipgloss.NewStyle().
			Foreground(Overlay1),

		TaskID: lipgloss.NewStyle().
			Foreground(Overlay1).
			Bold(true),

		TaskDescription: lipgloss.NewStyle().
			Foreground(Text),

		TaskDue: lipgloss.NewStyle().
			Foreground(Subtext0),

		TaskDone: lipgloss.NewStyle().
			Foreground(Overlay0).
			Strikethrough(true),

		StatusBar: lipgloss.NewStyle().
			Background(Surface0).
			Foreground(Subtext0).
			Padding(0, 1),

		StatusMode: lipgloss.NewStyle().
			Background(Blue).
			Foreground(Base).
			Bold(true).
			Padding(0, 1),

		StatusHint: lipgloss.NewStyle().
			Foreground(Overlay1),

		StatusInfo: lipgloss.NewStyle().
			Foreground(Subtext0),

		StatusDirty: lipgloss.NewStyle().
			Foreground(Peach).
			Bold(true),

		Overlay: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Surface2).
			Background(Base).
			Padding(1, 2),

		OverlayTitle: lipgloss.NewStyle().
			Foreground(Text).
			Bold(true).
			MarginBottom(1),

		MenuItem: lipgloss.NewStyle().
			Foreground(Text),

		MenuItemActive: lipgloss.NewStyle().
			Foreground(Blue).
			Bold(true),

		MenuKey: lipgloss.NewStyle().
			Foreground(Yellow).
			Bold(true),

		Separator: lipgloss.NewStyle().
			Foreground(Surface1),

		ToastInfo: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Blue).
			Foreground(Blue).
			Padding(0, 1),

		ToastSuccess: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Green).
			Foreground(Green).
			Padding(0, 1),

		ToastWarning: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Yellow).
			Foreground(Yellow).
			Padding(0, 1),

		ToastError: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Red).
			Foreground(Red).
			Padding(0, 1),
	}
}

// PriorityBadge returns the badge style for a priority
func (s *Styles) PriorityBadge(p domain.Priority) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(Base).
		Background(PriorityColor(p)).
		Padding(0, 1).
		Bold(true)
}

// StatusLabel returns the text style for a status
func (s *Styles) StatusLabel(status domain.Status) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(StatusColor(status))
}
