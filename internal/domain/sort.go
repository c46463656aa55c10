package domain

import "sort"

// SortField represents a field to sort by
type SortField string

const (
	SortNone       SortField = ""
	SortByPriority SortField = "priority"
	SortByDueDate  SortField = "date"
)

// ParseSortField maps user input to a SortField
func ParseSortField(s string) (SortField, bool) {
	switch s {
	case "", "none":
		return SortNone, true
	case "priority", "prio", "p":
		return SortByPriority, true
	case "date", "due", "d":
		return SortByDueDate, true
	default:
		return SortNone, false
	}
}

// Apply returns a stably sorted copy of tasks.
// Priority sorts highest first, due date sorts earliest first.
func (f SortField) Apply(tasks []Task) []Task {
	result := make([]Task, len(tasks))
	copy(result, tasks)

	switch f {
	case SortByPriority:
		SortPriorityDesc(result)
	case SortByDueDate:
		SortDueDateAsc(result)
	}

	return result
}

// SortPriorityDesc sorts tasks in place, High first, keeping the relative order of ties
func SortPriorityDesc(tasks []Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].Priority > tasks[j].Priority
	})
}

// SortDueDateAsc sorts tasks in place by due date, keeping the relative order of ties
func SortDueDateAsc(tasks []Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].DueDate < tasks[j].DueDate
	})
}
