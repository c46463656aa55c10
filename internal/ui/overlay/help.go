package overlay

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// HelpGroup is a titled section of the help screen
type HelpGroup struct {
	Name     string
	Bindings []key.Binding
}

// HelpOverlay displays the keybinding reference
type HelpOverlay struct {
	groups     []HelpGroup
	styles     *Styles
	scroll     int
	viewHeight int
}

const helpViewHeight = 20

// NewHelpOverlay creates a help screen listing the given groups
func NewHelpOverlay(groups []HelpGroup) *HelpOverlay {
	return &HelpOverlay{
		groups:     groups,
		styles:     New(),
		viewHeight: helpViewHeight,
	}
}

// Init initializes the overlay
func (h *HelpOverlay) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (h *HelpOverlay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return h, nil
	}

	switch keyMsg.String() {
	case "esc", "q", "?":
		return h, closeOverlay
	case "j", "down":
		h.scroll = min(h.scroll+1, h.maxScroll())
	case "k", "up":
		h.scroll = max(h.scroll-1, 0)
	case "g":
		h.scroll = 0
	case "G":
		h.scroll = h.maxScroll()
	}
	return h, nil
}

// lines renders every group, one binding per line
func (h *HelpOverlay) lines() []string {
	var lines []string
	for i, group := range h.groups {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, h.styles.MenuHeader.Render(group.Name+":"))
		for _, b := range group.Bindings {
			if !b.Enabled() {
				continue
			}
			help := b.Help()
			lines = append(lines, "  "+h.styles.MenuKey.Render(padRight(help.Key, 10))+h.styles.MenuItem.Render(help.Desc))
		}
	}
	return lines
}

func (h *HelpOverlay) maxScroll() int {
	return max(0, len(h.lines())-h.viewHeight)
}

// View renders the help overlay
func (h *HelpOverlay) View() string {
	lines := h.lines()
	end := min(h.scroll+h.viewHeight, len(lines))
	result := strings.Join(lines[h.scroll:end], "\n")

	if h.maxScroll() > 0 {
		result += "\n\n" + h.styles.Footer.Render("[j/k to scroll, g/G to jump]")
	}
	return result
}

// Title returns the overlay title
func (h *HelpOverlay) Title() string {
	return "Help"
}

// Size returns the overlay dimensions
func (h *HelpOverlay) Size() (width, height int) {
	return 50, helpViewHeight + 4
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s + " "
	}
	return s + strings.Repeat(" ", width-len(s))
}
