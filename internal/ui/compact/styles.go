package compact

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/todo/internal/domain"
	"github.com/riordanpawley/todo/internal/ui/styles"
)

// Styles holds the styling for the compact list view
type Styles struct {
	// Table structure
	HeaderCell lipgloss.Style
	Separator  lipgloss.Style

	// Row styles
	Row       lipgloss.Style
	RowActive lipgloss.Style

	// Column styles
	ColID           lipgloss.Style
	ColDue          lipgloss.Style
	DescriptionDone lipgloss.Style

	// Status colors
	StatusTodo       lipgloss.Style
	StatusInProgress lipgloss.Style
	StatusDone       lipgloss.Style

	// Priority colors
	PriorityHigh   lipgloss.Style
	PriorityMedium lipgloss.Style
	PriorityLow    lipgloss.Style

	// Indicators
	Cursor lipgloss.Style
}

// NewStyles creates a new Styles instance with Catppuccin Macchiato theme
func NewStyles() *Styles {
	return &Styles{
		HeaderCell: lipgloss.NewStyle().
			Foreground(styles.Text).
			Bold(true),

		Separator: lipgloss.NewStyle().
			Foreground(styles.Surface1),

		Row: lipgloss.NewStyle().
			Foreground(styles.Text),

		RowActive: lipgloss.NewStyle().
			Foreground(styles.Text).
			Background(styles.Surface0),

		ColID: lipgloss.NewStyle().
			Foreground(styles.Overlay1).
			Bold(true),

		ColDue: lipgloss.NewStyle().
			Foreground(styles.Subtext0),

		DescriptionDone: lipgloss.NewStyle().
			Foreground(styles.Overlay0).
			Strikethrough(true),

		StatusTodo: lipgloss.NewStyle().
			Foreground(styles.StatusColor(domain.StatusTodo)),

		StatusInProgress: lipgloss.NewStyle().
			Foreground(styles.StatusColor(domain.StatusInProgress)),

		StatusDone: lipgloss.NewStyle().
			Foreground(styles.StatusColor(domain.StatusDone)),

		PriorityHigh: lipgloss.NewStyle().
			Foreground(styles.PriorityColor(domain.PriorityHigh)).
			Bold(true),

		PriorityMedium: lipgloss.NewStyle().
			Foreground(styles.PriorityColor(domain.PriorityMedium)),

		PriorityLow: lipgloss.NewStyle().
			Foreground(styles.PriorityColor(domain.PriorityLow)),

		Cursor: lipgloss.NewStyle().
			Foreground(styles.Blue).
			Bold(true),
	}
}
