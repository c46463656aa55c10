package domain

import "strings"

// Filter represents task filtering state
type Filter struct {
	Status  Status // zero value matches every status
	Keyword string // case-sensitive substring of the description
}

// IsActive returns true if any filter is active
func (f Filter) IsActive() bool {
	return f.Status != 0 || f.Keyword != ""
}

// Apply filters a list of tasks, preserving order.
// The result is always a fresh slice.
func (f Filter) Apply(tasks []Task) []Task {
	result := make([]Task, 0, len(tasks))
	for _, task := range tasks {
		if f.Matches(task) {
			result = append(result, task)
		}
	}
	return result
}

// Matches returns true if the task passes all active filters
func (f Filter) Matches(t Task) bool {
	if f.Status != 0 && t.Status != f.Status {
		return false
	}

	// strings.Contains treats "" as a match, so an empty keyword keeps everything
	return strings.Contains(t.Description, f.Keyword)
}

// CycleStatus advances the status filter: all → todo → in progress → done → all
func (f *Filter) CycleStatus() {
	switch f.Status {
	case 0:
		f.Status = StatusTodo
	case StatusDone:
		f.Status = 0
	default:
		f.Status = f.Status.Next()
	}
}

// Clear resets all filters
func (f *Filter) Clear() {
	f.Status = 0
	f.Keyword = ""
}
