package domain

import "fmt"

// Task is a single to-do item
type Task struct {
	ID          int      `json:"id"`
	Description string   `json:"description"`
	Status      Status   `json:"status"`
	Priority    Priority `json:"priority"`
	DueDate     string   `json:"due_date"` // YYYY-MM-DD, compared lexicographically
}

// Status represents the lifecycle stage of a task
type Status int

const (
	StatusTodo Status = iota + 1
	StatusInProgress
	StatusDone
)

// Statuses returns every status in lifecycle order
func Statuses() []Status {
	return []Status{StatusTodo, StatusInProgress, StatusDone}
}

// Valid reports whether s is one of the known statuses
func (s Status) Valid() bool {
	return s >= StatusTodo && s <= StatusDone
}

// Next returns the following status, wrapping Done back to Todo
func (s Status) Next() Status {
	switch s {
	case StatusTodo:
		return StatusInProgress
	case StatusInProgress:
		return StatusDone
	default:
		return StatusTodo
	}
}

// Token returns the persisted representation
func (s Status) Token() string {
	switch s {
	case StatusTodo:
		return "A_FAIRE"
	case StatusInProgress:
		return "EN_COURS"
	case StatusDone:
		return "TERMINEE"
	default:
		return ""
	}
}

// String returns the display string
func (s Status) String() string {
	switch s {
	case StatusTodo:
		return "todo"
	case StatusInProgress:
		return "in progress"
	case StatusDone:
		return "done"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// ParseStatus maps a persisted token back to a Status
func ParseStatus(token string) (Status, error) {
	for _, s := range Statuses() {
		if s.Token() == token {
			return s, nil
		}
	}
	return 0, fmt.Errorf("status %q: %w", token, ErrUnknownToken)
}

// Priority represents task urgency (higher value = more urgent)
type Priority int

const (
	PriorityLow Priority = iota + 1
	PriorityMedium
	PriorityHigh
)

// Priorities returns every priority from lowest to highest
func Priorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh}
}

// Valid reports whether p is one of the known priorities
func (p Priority) Valid() bool {
	return p >= PriorityLow && p <= PriorityHigh
}

// Token returns the persisted representation
func (p Priority) Token() string {
	switch p {
	case PriorityLow:
		return "BASSE"
	case PriorityMedium:
		return "MOYENNE"
	case PriorityHigh:
		return "HAUTE"
	default:
		return ""
	}
}

// String returns the display string
func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "low"
	case PriorityMedium:
		return "medium"
	case PriorityHigh:
		return "high"
	default:
		return fmt.Sprintf("Priority(%d)", int(p))
	}
}

// ParsePriority maps a persisted token back to a Priority
func ParsePriority(token string) (Priority, error) {
	for _, p := range Priorities() {
		if p.Token() == token {
			return p, nil
		}
	}
	return 0, fmt.Errorf("priority %q: %w", token, ErrUnknownToken)
}
