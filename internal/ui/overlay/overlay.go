// Package overlay provides the modal dialogs drawn over the task table
package overlay

import tea "github.com/charmbracelet/bubbletea"

// Overlay represents a modal overlay component
type Overlay interface {
	tea.Model
	Title() string
	// Size returns the box size; a zero width means a full-width bar
	Size() (width, height int)
}

// CloseOverlayMsg signals that the overlay should be closed
type CloseOverlayMsg struct{}

// SelectionMsg is sent when a dialog settles on an answer
type SelectionMsg struct {
	Key   string
	Value any
}

func closeOverlay() tea.Msg {
	return CloseOverlayMsg{}
}
