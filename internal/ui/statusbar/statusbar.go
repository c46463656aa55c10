// Package statusbar renders the bottom line of the interactive console
package statusbar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/todo/internal/types"
	"github.com/riordanpawley/todo/internal/ui/styles"
)

// Info is the right-hand summary of the task list
type Info struct {
	Path    string
	Dirty   bool
	Shown   int
	Total   int
	Filter  string // empty when no filter is active
	SortKey string // empty when unsorted
}

// StatusBar represents the status bar at the bottom of the TUI
type StatusBar struct {
	mode   types.Mode
	width  int
	styles *styles.Styles
	info   Info
}

// New creates a new StatusBar with the given mode, width, and styles
func New(mode types.Mode, width int, styles *styles.Styles) StatusBar {
	return StatusBar{
		mode:   mode,
		width:  width,
		styles: styles,
	}
}

// WithInfo returns a copy of the status bar showing info
func (sb StatusBar) WithInfo(info Info) StatusBar {
	sb.info = info
	return sb
}

// Render renders the status bar as a string
func (sb StatusBar) Render() string {
	modeBadge := sb.styles.StatusMode.Render(sb.mode.String())

	hints := GetHints(sb.mode)
	left := modeBadge
	if hints != "" {
		separator := sb.styles.StatusHint.Render(" │ ")
		left = lipgloss.JoinHorizontal(lipgloss.Left, modeBadge, separator, sb.styles.StatusHint.Render(hints))
	}

	right := sb.renderInfo()
	gap := sb.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	content := left
	if right != "" && gap > 0 {
		content = left + strings.Repeat(" ", gap) + right
	}

	return sb.styles.StatusBar.Width(sb.width).Render(content)
}

func (sb StatusBar) renderInfo() string {
	if sb.info.Path == "" {
		return ""
	}

	var parts []string
	if sb.info.Filter != "" {
		parts = append(parts, "filter: "+sb.info.Filter)
	}
	if sb.info.SortKey != "" {
		parts = append(parts, "sort: "+sb.info.SortKey)
	}
	parts = append(parts, fmt.Sprintf("%d/%d", sb.info.Shown, sb.info.Total))

	info := sb.styles.StatusInfo.Render(strings.Join(parts, "  ") + "  " + sb.info.Path)
	if sb.info.Dirty {
		info += sb.styles.StatusDirty.Render(" [+]")
	}
	return info
}
