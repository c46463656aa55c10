// Package app contains the main application model and TEA implementation.
package app

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/todo/internal/config"
	"github.com/riordanpawley/todo/internal/domain"
	"github.com/riordanpawley/todo/internal/services/tasks"
	"github.com/riordanpawley/todo/internal/types"
	"github.com/riordanpawley/todo/internal/ui/compact"
	"github.com/riordanpawley/todo/internal/ui/overlay"
	"github.com/riordanpawley/todo/internal/ui/statusbar"
	"github.com/riordanpawley/todo/internal/ui/styles"
	"github.com/riordanpawley/todo/internal/ui/toast"
)

// Re-export Mode type and constants for convenience
type Mode = types.Mode

const (
	ModeNormal  = types.ModeNormal
	ModeSearch  = types.ModeSearch
	ModeAdd     = types.ModeAdd
	ModeConfirm = types.ModeConfirm
	ModeHelp    = types.ModeHelp
)

// Re-export Toast type and constants for convenience
type Toast = types.Toast
type ToastLevel = types.ToastLevel

const (
	ToastInfo    = types.ToastInfo
	ToastSuccess = types.ToastSuccess
	ToastWarning = types.ToastWarning
	ToastError   = types.ToastError
)

const tickInterval = 500 * time.Millisecond

// Model is the interactive console. All store mutations happen inside Update.
type Model struct {
	// Core data
	svc *tasks.Service

	// View state over the store
	filter  domain.Filter
	sortKey domain.SortField
	cursor  int

	// UI state
	overlayStack *overlay.Stack
	table        *compact.CompactView
	keys         KeyMap
	loading      bool
	spinner      spinner.Model

	// Toasts
	toasts   []Toast
	toastTTL time.Duration

	// Terminal size
	width  int
	height int

	styles *styles.Styles
	config *config.Config
	logger *slog.Logger
}

// New creates the application model over svc.
// A nil config falls back to DefaultConfig, a nil logger to slog.Default.
func New(svc *tasks.Service, cfg *config.Config, logger *slog.Logger) Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = slog.Default()
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(styles.Blue)

	return Model{
		svc:          svc,
		overlayStack: overlay.NewStack(),
		table:        compact.NewCompactView(nil, 0, 0),
		keys:         DefaultKeyMap(),
		loading:      true,
		spinner:      s,
		toasts:       []Toast{},
		toastTTL:     time.Duration(cfg.UI.ToastSeconds) * time.Second,
		styles:       styles.New(),
		config:       cfg,
		logger:       logger,
	}
}

// Init returns the initial command for the application
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.loadTasksCmd(),
		tickEvery(tickInterval),
	)
}

// Message types

type tasksLoadedMsg struct {
	report tasks.LoadReport
	err    error
}

type tickMsg time.Time

// loadTasksCmd reads the task file. Keys are ignored until it reports back.
func (m Model) loadTasksCmd() tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		report, err := svc.Load()
		return tasksLoadedMsg{report: report, err: err}
	}
}

func tickEvery(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetDimensions(m.width, m.tableHeight())
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tasksLoadedMsg:
		return m.handleLoaded(msg)

	case tickMsg:
		m.expireToasts()
		return m, tickEvery(tickInterval)

	case tea.KeyMsg:
		if m.loading {
			if key.Matches(msg, m.keys.Quit, m.keys.ForceQuit) {
				return m, tea.Quit
			}
			return m, nil
		}
		if key.Matches(msg, m.keys.ForceQuit) {
			return m.forceQuit()
		}
		if !m.overlayStack.IsEmpty() {
			return m.handleOverlayKey(msg)
		}
		return m.handleKey(msg)

	// Overlay messages
	case overlay.CloseOverlayMsg:
		m.overlayStack.Pop()
		return m, nil

	case overlay.SelectionMsg:
		return m.handleSelection(msg)

	case overlay.SearchMsg:
		m.filter.Keyword = msg.Query
		m.refreshTable()
		if search, ok := m.overlayStack.Current().(*overlay.SearchOverlay); ok {
			search.SetMatchCount(len(m.visibleTasks()))
		}
		return m, nil

	case overlay.TaskCreatedMsg:
		return m.handleTaskCreated(msg)
	}

	return m, nil
}

func (m Model) handleLoaded(msg tasksLoadedMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	m.refreshTable()

	switch {
	case msg.err != nil:
		m.addToast(ToastError, fmt.Sprintf("Could not read %s: %v", m.svc.Path(), msg.err))
	case !msg.report.Found:
		m.addToast(ToastInfo, fmt.Sprintf("No task file yet, %s will be created on save", m.svc.Path()))
	case msg.report.Skipped > 0:
		m.addToast(ToastWarning, fmt.Sprintf("Loaded %d tasks, skipped %d malformed lines", msg.report.Loaded, msg.report.Skipped))
	default:
		m.addToast(ToastSuccess, fmt.Sprintf("Loaded %d tasks", msg.report.Loaded))
	}
	return m, nil
}

// handleKey processes keyboard input in NORMAL mode
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := m.visibleTasks()

	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.svc.Dirty() {
			if err := m.svc.Save(); err != nil {
				m.addToast(ToastError, fmt.Sprintf("Save failed, not quitting: %v", err))
				return m, nil
			}
		}
		return m, tea.Quit

	case key.Matches(msg, m.keys.Refresh):
		return m, tea.ClearScreen

	case key.Matches(msg, m.keys.Down):
		m.moveCursor(m.cursor+1, len(visible))
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(m.cursor-1, len(visible))
	case key.Matches(msg, m.keys.Top):
		m.moveCursor(0, len(visible))
	case key.Matches(msg, m.keys.Bottom):
		m.moveCursor(len(visible)-1, len(visible))

	case key.Matches(msg, m.keys.Add):
		return m, m.overlayStack.Push(overlay.NewCreateTaskOverlay())

	case key.Matches(msg, m.keys.Delete):
		task, ok := m.currentTask()
		if !ok {
			m.addToast(ToastWarning, "No task selected")
			return m, nil
		}
		if m.config.UI.ConfirmDelete {
			dialog := overlay.NewConfirmDialog(
				"Delete task",
				fmt.Sprintf("Delete task %d %q?", task.ID, task.Description),
				task.ID,
			)
			return m, m.overlayStack.Push(dialog)
		}
		m.removeTask(task.ID)

	case key.Matches(msg, m.keys.Cycle):
		task, ok := m.currentTask()
		if !ok {
			m.addToast(ToastWarning, "No task selected")
			return m, nil
		}
		if next, ok := m.svc.CycleStatus(task.ID); ok {
			m.addToast(ToastInfo, fmt.Sprintf("Task %d is now %s", task.ID, next))
		} else {
			m.addToast(ToastWarning, fmt.Sprintf("Task %d not found", task.ID))
		}
		m.refreshTable()

	case key.Matches(msg, m.keys.SetTodo):
		m.setStatus(domain.StatusTodo)
	case key.Matches(msg, m.keys.SetDoing):
		m.setStatus(domain.StatusInProgress)
	case key.Matches(msg, m.keys.SetDone):
		m.setStatus(domain.StatusDone)

	case key.Matches(msg, m.keys.SortPrio):
		m.svc.SortByPriority()
		m.sortKey = domain.SortByPriority
		m.refreshTable()
		m.addToast(ToastInfo, "Sorted by priority")
	case key.Matches(msg, m.keys.SortDue):
		m.svc.SortByDueDate()
		m.sortKey = domain.SortByDueDate
		m.refreshTable()
		m.addToast(ToastInfo, "Sorted by due date")

	case key.Matches(msg, m.keys.Search):
		search := overlay.NewSearchOverlay(m.filter.Keyword)
		search.SetMatchCount(len(visible))
		return m, m.overlayStack.Push(search)

	case key.Matches(msg, m.keys.Filter):
		m.filter.CycleStatus()
		m.refreshTable()

	case key.Matches(msg, m.keys.ClearQuery):
		if m.filter.IsActive() {
			m.filter.Clear()
			m.refreshTable()
		}

	case key.Matches(msg, m.keys.Save):
		m.save()

	case key.Matches(msg, m.keys.Help):
		return m, m.overlayStack.Push(overlay.NewHelpOverlay(m.keys.HelpGroups()))
	}

	return m, nil
}

// forceQuit saves pending changes and leaves even when the save fails
func (m Model) forceQuit() (tea.Model, tea.Cmd) {
	if m.svc.Dirty() {
		if err := m.svc.Save(); err != nil {
			m.logger.Error("save on exit failed", "path", m.svc.Path(), "error", err)
		}
	}
	return m, tea.Quit
}

// handleOverlayKey routes keyboard messages to the overlay stack
func (m Model) handleOverlayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cmd := m.overlayStack.Update(msg)
	return m, cmd
}

// handleSelection acts on an answered dialog
func (m Model) handleSelection(msg overlay.SelectionMsg) (tea.Model, tea.Cmd) {
	result, ok := msg.Value.(overlay.ConfirmResult)
	if !ok || !result.Confirmed {
		return m, nil
	}
	if id, ok := result.Payload.(int); ok {
		m.removeTask(id)
	}
	return m, nil
}

func (m Model) handleTaskCreated(msg overlay.TaskCreatedMsg) (tea.Model, tea.Cmd) {
	id, err := m.svc.Add(msg.Description, msg.Priority, msg.DueDate)
	if err != nil {
		m.addToast(ToastError, fmt.Sprintf("Task not added: %v", err))
		return m, nil
	}

	m.refreshTable()
	for i, t := range m.visibleTasks() {
		if t.ID == id {
			m.moveCursor(i, len(m.visibleTasks()))
			break
		}
	}
	m.addToast(ToastSuccess, fmt.Sprintf("Added task %d", id))
	return m, nil
}

func (m *Model) removeTask(id int) {
	if !m.svc.Remove(id) {
		m.addToast(ToastWarning, fmt.Sprintf("Task %d not found", id))
		return
	}
	m.refreshTable()
	m.addToast(ToastSuccess, fmt.Sprintf("Deleted task %d", id))
}

func (m *Model) setStatus(status domain.Status) {
	task, ok := m.currentTask()
	if !ok {
		m.addToast(ToastWarning, "No task selected")
		return
	}
	if !m.svc.SetStatus(task.ID, status) {
		m.addToast(ToastWarning, fmt.Sprintf("Task %d not found", task.ID))
		return
	}
	m.refreshTable()
	m.addToast(ToastInfo, fmt.Sprintf("Task %d is now %s", task.ID, status))
}

func (m *Model) save() {
	if err := m.svc.Save(); err != nil {
		m.addToast(ToastError, fmt.Sprintf("Save failed: %v", err))
		return
	}
	m.addToast(ToastSuccess, fmt.Sprintf("Saved %d tasks to %s", m.svc.Store().Len(), m.svc.Path()))
}

// visibleTasks returns the store order narrowed by the active filter
func (m Model) visibleTasks() []domain.Task {
	return m.svc.Store().Query(m.filter)
}

// currentTask returns the task under the cursor
func (m Model) currentTask() (domain.Task, bool) {
	visible := m.visibleTasks()
	if m.cursor < 0 || m.cursor >= len(visible) {
		return domain.Task{}, false
	}
	return visible[m.cursor], true
}

func (m *Model) moveCursor(index, n int) {
	m.cursor = max(0, min(index, n-1))
	m.table.SetCursor(m.cursor)
}

// refreshTable pushes the current view of the store into the table
func (m *Model) refreshTable() {
	visible := m.visibleTasks()
	m.table.SetTasks(visible)
	if m.filter.IsActive() {
		m.table.SetEmptyHint("No task matches the current filter. Esc clears it.")
	} else {
		m.table.SetEmptyHint("Press a to add one.")
	}
	m.moveCursor(m.cursor, len(visible))
}

// tableHeight leaves room for the header and status bar
func (m Model) tableHeight() int {
	return max(0, m.height-2)
}

// mode derives the status bar mode from the open overlay
func (m Model) mode() Mode {
	switch m.overlayStack.Current().(type) {
	case *overlay.SearchOverlay:
		return ModeSearch
	case *overlay.CreateTaskOverlay:
		return ModeAdd
	case *overlay.ConfirmDialog:
		return ModeConfirm
	case *overlay.HelpOverlay:
		return ModeHelp
	default:
		return ModeNormal
	}
}

// addToast adds a toast notification to the list
func (m *Model) addToast(level ToastLevel, message string) {
	ttl := m.toastTTL
	if level == ToastError {
		ttl *= 2
	}
	m.toasts = append(m.toasts, types.NewToast(level, message, ttl))
	m.logger.Debug("toast", "level", level.String(), "message", message)
}

// expireToasts removes expired toasts from the list
func (m *Model) expireToasts() {
	now := time.Now()
	filtered := make([]Toast, 0, len(m.toasts))
	for _, t := range m.toasts {
		if !t.Expired(now) {
			filtered = append(filtered, t)
		}
	}
	m.toasts = filtered
}

// View renders the current state as a string
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}
	if m.loading {
		return m.renderLoading()
	}

	var toastView string
	if len(m.toasts) > 0 {
		toastView = toast.New(m.styles).Render(m.toasts, m.width)
	}
	available := m.height - lineCount(toastView)

	current := m.overlayStack.Current()
	var view string
	if w, _ := sizeOf(current); current != nil && w > 0 {
		view = m.renderModal(current, available)
	} else {
		var bar string
		if current != nil {
			bar = current.View()
		}
		sb := statusbar.New(m.mode(), m.width, m.styles).WithInfo(m.statusInfo())
		bodyHeight := max(0, available-1-lineCount(bar))

		body := lipgloss.JoinVertical(lipgloss.Left, m.renderHeader(), m.table.Render())
		body = lipgloss.Place(m.width, bodyHeight, lipgloss.Left, lipgloss.Top, clampLines(body, bodyHeight))

		parts := []string{body, sb.Render()}
		if bar != "" {
			parts = append(parts, bar)
		}
		view = lipgloss.JoinVertical(lipgloss.Left, parts...)
	}

	if toastView != "" {
		view = lipgloss.JoinVertical(lipgloss.Left, view, toastView)
	}
	return view
}

func (m Model) renderHeader() string {
	title := m.styles.Header.Render("todo")
	info := m.styles.HeaderInfo.Render(fmt.Sprintf(" %s", m.svc.Path()))
	return lipgloss.JoinHorizontal(lipgloss.Left, title, info)
}

// renderModal centers a boxed overlay in the given height
func (m Model) renderModal(current overlay.Overlay, height int) string {
	overlayView := current.View()
	overlayWidth, overlayHeight := current.Size()

	if title := current.Title(); title != "" {
		overlayView = lipgloss.JoinVertical(lipgloss.Left, m.styles.OverlayTitle.Render(title), overlayView)
	}
	overlayView = m.styles.Overlay.
		Width(min(overlayWidth, max(m.width-4, 10))).
		Height(min(overlayHeight, max(height-2, 1))).
		Render(overlayView)

	return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, clampLines(overlayView, height))
}

func sizeOf(o overlay.Overlay) (int, int) {
	if o == nil {
		return 0, 0
	}
	return o.Size()
}

func lineCount(s string) int {
	if s == "" {
		return 0
	}
	return strings.Count(s, "\n") + 1
}

// clampLines keeps the first n lines of s
func clampLines(s string, n int) string {
	if n <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) <= n {
		return s
	}
	return strings.Join(lines[:n], "\n")
}

func (m Model) renderLoading() string {
	content := fmt.Sprintf("%s Loading %s", m.spinner.View(), m.svc.Path())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m Model) statusInfo() statusbar.Info {
	var filter []string
	if m.filter.Status != 0 {
		filter = append(filter, "status="+m.filter.Status.String())
	}
	if m.filter.Keyword != "" {
		filter = append(filter, fmt.Sprintf("keyword=%q", m.filter.Keyword))
	}

	return statusbar.Info{
		Path:    m.svc.Path(),
		Dirty:   m.svc.Dirty(),
		Shown:   len(m.visibleTasks()),
		Total:   m.svc.Store().Len(),
		Filter:  strings.Join(filter, " "),
		SortKey: string(m.sortKey),
	}
}
