package overlay

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/todo/internal/ui/styles"
)

// Styles holds all overlay-specific styles
type Styles struct {
	// Title is the overlay title style
	Title lipgloss.Style
	// Label is a form field label
	Label lipgloss.Style
	// LabelFocused is the label of the field that has focus
	LabelFocused lipgloss.Style
	// MenuItem is the default menu item style
	MenuItem lipgloss.Style
	// MenuItemActive is the highlighted/selected menu item style
	MenuItemActive lipgloss.Style
	// MenuKey is the style for keybinding hints
	MenuKey lipgloss.Style
	// MenuHeader is the style for menu section headers
	MenuHeader lipgloss.Style
	// Separator is the style for divider lines
	Separator lipgloss.Style
	// Footer is the style for overlay footer text
	Footer lipgloss.Style
	// SearchBar is the full-width search prompt
	SearchBar lipgloss.Style
	// MatchCount is the match counter next to the search prompt
	MatchCount lipgloss.Style
}

// New creates a new Styles instance using the Catppuccin Macchiato theme
func New() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Foreground(styles.Text).
			Bold(true).
			MarginBottom(1),

		Label: lipgloss.NewStyle().
			Foreground(styles.Teal).
			Width(13).
			Align(lipgloss.Right),

		LabelFocused: lipgloss.NewStyle().
			Foreground(styles.Blue).
			Bold(true).
			Width(13).
			Align(lipgloss.Right),

		MenuItem: lipgloss.NewStyle().
			Foreground(styles.Text),

		MenuItemActive: lipgloss.NewStyle().
			Foreground(styles.Blue).
			Bold(true),

		MenuKey: lipgloss.NewStyle().
			Foreground(styles.Yellow).
			Bold(true),

		MenuHeader: lipgloss.NewStyle().
			Foreground(styles.Subtext1).
			Bold(true),

		Separator: lipgloss.NewStyle().
			Foreground(styles.Surface1),

		Footer: lipgloss.NewStyle().
			Foreground(styles.Subtext0).
			MarginTop(1),

		SearchBar: lipgloss.NewStyle().
			Foreground(styles.Text).
			Background(styles.Mantle),

		MatchCount: lipgloss.NewStyle().
			Foreground(styles.Overlay1).
			Background(styles.Mantle),
	}
}
