package overlay

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// ConfirmDialog asks a yes/no question about a pending action
type ConfirmDialog struct {
	title   string
	message string
	payload any
	styles  *Styles
	yes     bool
}

// ConfirmResult is the Value of the SelectionMsg a ConfirmDialog emits.
// Payload is handed back untouched so the caller knows what was confirmed.
type ConfirmResult struct {
	Confirmed bool
	Payload   any
}

// NewConfirmDialog creates a dialog that defaults to No
func NewConfirmDialog(title, message string, payload any) *ConfirmDialog {
	return &ConfirmDialog{
		title:   title,
		message: message,
		payload: payload,
		styles:  New(),
	}
}

// Init initializes the dialog
func (c *ConfirmDialog) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (c *ConfirmDialog) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch keyMsg.String() {
	case "y", "Y":
		return c, c.answer(true)
	case "n", "N", "esc":
		return c, c.answer(false)
	case "enter":
		return c, c.answer(c.yes)
	case "left", "h":
		c.yes = true
	case "right", "l":
		c.yes = false
	case "tab":
		c.yes = !c.yes
	}
	return c, nil
}

func (c *ConfirmDialog) answer(confirmed bool) tea.Cmd {
	key := "no"
	if confirmed {
		key = "yes"
	}
	result := ConfirmResult{Confirmed: confirmed, Payload: c.payload}
	return tea.Batch(
		closeOverlay,
		func() tea.Msg { return SelectionMsg{Key: key, Value: result} },
	)
}

// View renders the dialog
func (c *ConfirmDialog) View() string {
	var b strings.Builder

	if c.message != "" {
		b.WriteString(c.styles.MenuItem.Render(c.message))
		b.WriteString("\n\n")
	}

	yesStyle, noStyle := c.styles.MenuItem, c.styles.MenuItemActive
	if c.yes {
		yesStyle, noStyle = noStyle, yesStyle
	}
	b.WriteString(yesStyle.Render("[Y] Yes"))
	b.WriteString("    ")
	b.WriteString(noStyle.Render("[N] No"))
	b.WriteString("\n\n")

	b.WriteString(c.styles.Footer.Render("← → / Tab: Switch • Enter: Confirm • Esc: Cancel"))

	return b.String()
}

// Title returns the dialog title
func (c *ConfirmDialog) Title() string {
	return c.title
}

// Size returns the dialog dimensions
func (c *ConfirmDialog) Size() (width, height int) {
	messageLines := len(strings.Split(c.message, "\n"))
	return 60, messageLines + 6
}
