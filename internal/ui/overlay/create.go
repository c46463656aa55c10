package overlay

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/todo/internal/domain"
)

// TaskCreatedMsg is emitted when the add form is submitted
type TaskCreatedMsg struct {
	Description string
	DueDate     string
	Priority    domain.Priority
}

// CreateTaskOverlay is the form behind the add key
type CreateTaskOverlay struct {
	description textinput.Model
	dueDate     textinput.Model
	priority    domain.Priority
	focusIndex  int
	styles      *Styles
}

const (
	focusDescription = iota
	focusDueDate
	focusPriority
	focusSubmit
	focusCount
)

// NewCreateTaskOverlay creates an empty form with medium priority selected
func NewCreateTaskOverlay() *CreateTaskOverlay {
	desc := textinput.New()
	desc.Placeholder = "What needs doing..."
	desc.CharLimit = 200
	desc.Width = 50
	desc.Focus()

	due := textinput.New()
	due.Placeholder = "YYYY-MM-DD (optional)"
	due.CharLimit = 32
	due.Width = 24

	return &CreateTaskOverlay{
		description: desc,
		dueDate:     due,
		priority:    domain.PriorityMedium,
		focusIndex:  focusDescription,
		styles:      New(),
	}
}

// Init initializes the overlay
func (c *CreateTaskOverlay) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (c *CreateTaskOverlay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return c, closeOverlay

		case "ctrl+s":
			return c, c.submit()

		case "enter":
			if c.focusIndex == focusSubmit || c.focusIndex == focusPriority {
				return c, c.submit()
			}
			c.setFocus(c.focusIndex + 1)
			return c, nil

		case "tab", "down":
			c.setFocus(c.focusIndex + 1)
			return c, nil

		case "shift+tab", "up":
			c.setFocus(c.focusIndex - 1)
			return c, nil
		}

		if c.focusIndex == focusPriority {
			switch keyMsg.String() {
			case "1", "l":
				c.priority = domain.PriorityLow
			case "2", "m":
				c.priority = domain.PriorityMedium
			case "3", "h":
				c.priority = domain.PriorityHigh
			case "left":
				if c.priority > domain.PriorityLow {
					c.priority--
				}
			case "right":
				if c.priority < domain.PriorityHigh {
					c.priority++
				}
			}
			return c, nil
		}
	}

	var cmd tea.Cmd
	switch c.focusIndex {
	case focusDescription:
		c.description, cmd = c.description.Update(msg)
	case focusDueDate:
		c.dueDate, cmd = c.dueDate.Update(msg)
	}
	return c, cmd
}

func (c *CreateTaskOverlay) setFocus(index int) {
	c.focusIndex = (index + focusCount) % focusCount

	c.description.Blur()
	c.dueDate.Blur()
	switch c.focusIndex {
	case focusDescription:
		c.description.Focus()
	case focusDueDate:
		c.dueDate.Focus()
	}
}

// submit emits TaskCreatedMsg and closes the form.
// Validation is left to the receiver so every rejection surfaces the same way.
func (c *CreateTaskOverlay) submit() tea.Cmd {
	created := TaskCreatedMsg{
		Description: strings.TrimSpace(c.description.Value()),
		DueDate:     strings.TrimSpace(c.dueDate.Value()),
		Priority:    c.priority,
	}
	return tea.Batch(
		func() tea.Msg { return created },
		closeOverlay,
	)
}

// View renders the form
func (c *CreateTaskOverlay) View() string {
	var b strings.Builder

	b.WriteString(c.label("Description:", focusDescription))
	b.WriteString("  ")
	b.WriteString(c.description.View())
	b.WriteString("\n\n")

	b.WriteString(c.label("Due date:", focusDueDate))
	b.WriteString("  ")
	b.WriteString(c.dueDate.View())
	b.WriteString("\n\n")

	b.WriteString(c.label("Priority:", focusPriority))
	b.WriteString("  ")
	b.WriteString(c.renderPrioritySelector())
	b.WriteString("\n\n")

	b.WriteString(c.styles.Separator.Render(strings.Repeat("─", 60)))
	b.WriteString("\n\n")

	submitStyle := c.styles.MenuItem
	if c.focusIndex == focusSubmit {
		submitStyle = c.styles.MenuItemActive
	}
	b.WriteString(submitStyle.Render("[ Add Task ]"))
	b.WriteString("\n\n")

	hints := []string{
		c.styles.MenuKey.Render("Tab") + " " + c.styles.Footer.Render("Next field"),
		c.styles.MenuKey.Render("1/2/3") + " " + c.styles.Footer.Render("Priority"),
		c.styles.MenuKey.Render("Ctrl+S") + " " + c.styles.Footer.Render("Submit"),
		c.styles.MenuKey.Render("Esc") + " " + c.styles.Footer.Render("Cancel"),
	}
	b.WriteString(c.styles.Footer.Render(strings.Join(hints, " • ")))

	return b.String()
}

func (c *CreateTaskOverlay) label(text string, index int) string {
	if c.focusIndex == index {
		return c.styles.LabelFocused.Render(text)
	}
	return c.styles.Label.Render(text)
}

func (c *CreateTaskOverlay) renderPrioritySelector() string {
	parts := make([]string, 0, len(domain.Priorities()))
	for i, p := range domain.Priorities() {
		style := c.styles.MenuItem
		indicator := " "
		if p == c.priority {
			style = c.styles.MenuItemActive
			indicator = "●"
		}
		parts = append(parts, style.Render(fmt.Sprintf("[%s%d %s]", indicator, i+1, p)))
	}
	return strings.Join(parts, " ")
}

// Title returns the overlay title
func (c *CreateTaskOverlay) Title() string {
	return "Add Task"
}

// Size returns the overlay dimensions
func (c *CreateTaskOverlay) Size() (width, height int) {
	return 70, 16
}
