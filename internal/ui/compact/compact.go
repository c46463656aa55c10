// Package compact renders the task table of the interactive console
package compact

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/todo/internal/domain"
)

// CompactView is a scrolling table of tasks with a cursor
type CompactView struct {
	tasks  []domain.Task
	cursor int
	styles *Styles
	width  int
	height int

	// Scrolling state
	scrollOffset int

	emptyHint string
}

// NewCompactView creates a new CompactView with the given tasks and dimensions
func NewCompactView(tasks []domain.Task, width, height int) *CompactView {
	return &CompactView{
		tasks:     tasks,
		styles:    NewStyles(),
		width:     width,
		height:    height,
		emptyHint: "Press 'a' to add a task",
	}
}

// SetTasks updates the task list
func (cv *CompactView) SetTasks(tasks []domain.Task) {
	cv.tasks = tasks
	// Clamp cursor to valid range
	if cv.cursor >= len(cv.tasks) {
		cv.cursor = max(0, len(cv.tasks)-1)
	}
	cv.ensureCursorVisible()
}

// SetEmptyHint replaces the text shown under "No tasks"
func (cv *CompactView) SetEmptyHint(hint string) {
	cv.emptyHint = hint
}

// SetCursor sets the cursor position
func (cv *CompactView) SetCursor(index int) {
	switch {
	case index < 0:
		cv.cursor = 0
	case index >= len(cv.tasks):
		cv.cursor = max(0, len(cv.tasks)-1)
	default:
		cv.cursor = index
	}
	cv.ensureCursorVisible()
}

// GetCursor returns the current cursor position
func (cv *CompactView) GetCursor() int {
	return cv.cursor
}

// SetDimensions updates the view dimensions
func (cv *CompactView) SetDimensions(width, height int) {
	cv.width = width
	cv.height = height
	cv.ensureCursorVisible()
}

// Render renders the full compact view
func (cv *CompactView) Render() string {
	if len(cv.tasks) == 0 {
		return cv.renderEmptyState()
	}

	var b strings.Builder

	b.WriteString(cv.renderHeader())
	b.WriteString("\n")
	b.WriteString(cv.renderSeparator())
	b.WriteString("\n")

	visibleRows := cv.calculateVisibleRows()
	startIdx := cv.scrollOffset
	endIdx := min(startIdx+visibleRows, len(cv.tasks))

	for i := startIdx; i < endIdx; i++ {
		b.WriteString(cv.renderRow(i, cv.tasks[i]))
		if i < endIdx-1 {
			b.WriteString("\n")
		}
	}

	if endIdx < len(cv.tasks) {
		b.WriteString("\n")
		b.WriteString(cv.styles.Separator.Render(
			fmt.Sprintf(" ↓ %d more tasks ↓ ", len(cv.tasks)-endIdx),
		))
	}

	return b.String()
}

// renderEmptyState renders the empty state
func (cv *CompactView) renderEmptyState() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(cv.styles.Row.GetForeground()).
		Italic(true).
		Align(lipgloss.Center).
		Width(cv.width).
		Height(cv.height / 2)

	return emptyStyle.Render("No tasks to display\n\n" + cv.emptyHint)
}

// renderHeader renders the table header
func (cv *CompactView) renderHeader() string {
	widths := cv.calculateColumnWidths()

	cells := []string{
		cv.styles.HeaderCell.Width(widths.cursor).Render(""),
		cv.styles.HeaderCell.Width(widths.id).Render("ID"),
		cv.styles.HeaderCell.Width(widths.description).Render("Description"),
		cv.styles.HeaderCell.Width(widths.status).Render("Status"),
		cv.styles.HeaderCell.Width(widths.priority).Render("Priority"),
		cv.styles.HeaderCell.Width(widths.due).Render("Due"),
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

// renderSeparator renders the separator line
func (cv *CompactView) renderSeparator() string {
	return cv.styles.Separator.Render(strings.Repeat("─", max(cv.width, 1)))
}

// renderRow renders a single task row
func (cv *CompactView) renderRow(index int, task domain.Task) string {
	isActive := index == cv.cursor

	rowStyle := cv.styles.Row
	if isActive {
		rowStyle = cv.styles.RowActive
	}

	widths := cv.calculateColumnWidths()

	cells := []string{
		cv.renderCursorCell(isActive, rowStyle, widths.cursor),
		cv.renderIDCell(task.ID, rowStyle, widths.id),
		cv.renderDescriptionCell(task, rowStyle, widths.description),
		cv.renderStatusCell(task.Status, rowStyle, widths.status),
		cv.renderPriorityCell(task.Priority, rowStyle, widths.priority),
		cv.renderDueCell(task.DueDate, rowStyle, widths.due),
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func (cv *CompactView) renderCursorCell(isActive bool, rowStyle lipgloss.Style, width int) string {
	indicator := "  "
	if isActive {
		indicator = cv.styles.Cursor.Render("▶ ")
	}
	return rowStyle.Width(width).Render(indicator)
}

func (cv *CompactView) renderIDCell(id int, rowStyle lipgloss.Style, width int) string {
	return rowStyle.
		Width(width).
		Foreground(cv.styles.ColID.GetForeground()).
		Bold(true).
		Render(strconv.Itoa(id))
}

func (cv *CompactView) renderDescriptionCell(task domain.Task, rowStyle lipgloss.Style, width int) string {
	style := rowStyle
	if task.Status == domain.StatusDone {
		style = cv.styles.DescriptionDone.Inherit(rowStyle)
	}
	return style.Width(width).Render(truncateString(task.Description, width-1))
}

// renderStatusCell renders the status with color and abbreviation
func (cv *CompactView) renderStatusCell(status domain.Status, rowStyle lipgloss.Style, width int) string {
	var abbrev string
	style := rowStyle

	switch status {
	case domain.StatusTodo:
		abbrev = "todo"
		style = cv.styles.StatusTodo.Inherit(rowStyle)
	case domain.StatusInProgress:
		abbrev = "doing"
		style = cv.styles.StatusInProgress.Inherit(rowStyle)
	case domain.StatusDone:
		abbrev = "done"
		style = cv.styles.StatusDone.Inherit(rowStyle)
	default:
		abbrev = "????"
	}

	return style.Width(width).Render(abbrev)
}

// renderPriorityCell renders the priority with color
func (cv *CompactView) renderPriorityCell(priority domain.Priority, rowStyle lipgloss.Style, width int) string {
	style := rowStyle

	switch priority {
	case domain.PriorityHigh:
		style = cv.styles.PriorityHigh.Inherit(rowStyle)
	case domain.PriorityMedium:
		style = cv.styles.PriorityMedium.Inherit(rowStyle)
	case domain.PriorityLow:
		style = cv.styles.PriorityLow.Inherit(rowStyle)
	}

	return style.Width(width).Render(priority.String())
}

func (cv *CompactView) renderDueCell(due string, rowStyle lipgloss.Style, width int) string {
	if due == "" {
		due = "-"
	}
	return cv.styles.ColDue.Inherit(rowStyle).Width(width).Render(truncateString(due, width))
}

// columnWidths holds the calculated column widths
type columnWidths struct {
	cursor      int
	id          int
	description int
	status      int
	priority    int
	due         int
}

// calculateColumnWidths gives the description whatever the fixed columns leave
func (cv *CompactView) calculateColumnWidths() columnWidths {
	const (
		cursorWidth   = 2
		idWidth       = 6
		statusWidth   = 7
		priorityWidth = 9
		dueWidth      = 12
	)

	fixedWidth := cursorWidth + idWidth + statusWidth + priorityWidth + dueWidth

	return columnWidths{
		cursor:      cursorWidth,
		id:          idWidth,
		description: max(20, cv.width-fixedWidth),
		status:      statusWidth,
		priority:    priorityWidth,
		due:         dueWidth,
	}
}

// calculateVisibleRows calculates how many rows can fit in the visible area
func (cv *CompactView) calculateVisibleRows() int {
	// header + separator + scroll indicator
	return max(1, cv.height-3)
}

// ensureCursorVisible adjusts scroll offset to keep cursor visible
func (cv *CompactView) ensureCursorVisible() {
	visibleRows := cv.calculateVisibleRows()

	if cv.cursor < cv.scrollOffset {
		cv.scrollOffset = cv.cursor
	}
	if cv.cursor >= cv.scrollOffset+visibleRows {
		cv.scrollOffset = cv.cursor - visibleRows + 1
	}

	maxOffset := max(0, len(cv.tasks)-visibleRows)
	cv.scrollOffset = min(max(cv.scrollOffset, 0), maxOffset)
}

// truncateString truncates a string to fit within the given width
// If truncated, adds "..." at the end
func truncateString(s string, width int) string {
	if width <= 3 {
		return strings.Repeat(".", max(min(width, 3), 0))
	}

	runes := []rune(s)
	if len(runes) <= width {
		return s
	}

	return string(runes[:width-3]) + "..."
}
