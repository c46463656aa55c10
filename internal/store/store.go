// Package store holds the in-memory task collection and its id counter.
package store

import (
	"fmt"
	"math"
	"strings"

	"github.com/riordanpawley/todo/internal/domain"
)

// reservedInDate lists characters the task file cannot hold in an unquoted field
const reservedInDate = ";\"\r\n"

// Store owns an insertion-ordered list of tasks and hands out ids.
// Every query returns a copy; callers only change state through the methods below.
// A Store is not safe for concurrent use.
type Store struct {
	tasks  []domain.Task
	nextID int
}

// New creates an empty store whose first id is 1
func New() *Store {
	return &Store{
		tasks:  make([]domain.Task, 0),
		nextID: 1,
	}
}

// Add appends a new Todo task and returns its id
func (s *Store) Add(description string, priority domain.Priority, dueDate string) (int, error) {
	if strings.TrimSpace(description) == "" {
		return 0, &domain.InputError{Field: "description", Message: "must not be empty"}
	}
	if strings.ContainsAny(description, "\r\n") {
		return 0, &domain.InputError{Field: "description", Message: "must be a single line"}
	}
	if !priority.Valid() {
		return 0, &domain.InputError{Field: "priority", Message: priority.String()}
	}
	if strings.ContainsAny(dueDate, reservedInDate) {
		return 0, &domain.InputError{Field: "due date", Message: fmt.Sprintf("must not contain any of %q", reservedInDate)}
	}

	id := s.nextID
	if s.index(id) >= 0 {
		// only reachable once a loaded id has pinned the counter at math.MaxInt
		return 0, fmt.Errorf("id counter exhausted at %d", id)
	}
	s.tasks = append(s.tasks, domain.Task{
		ID:          id,
		Description: description,
		Status:      domain.StatusTodo,
		Priority:    priority,
		DueDate:     dueDate,
	})
	s.nextID++

	return id, nil
}

// Remove deletes the task with the given id and reports whether one existed
func (s *Store) Remove(id int) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	return true
}

// SetStatus updates a task's status and reports whether the task was found
func (s *Store) SetStatus(id int, status domain.Status) bool {
	if !status.Valid() {
		return false
	}
	i := s.index(id)
	if i < 0 {
		return false
	}
	s.tasks[i].Status = status
	return true
}

// Get returns a copy of the task with the given id
func (s *Store) Get(id int) (domain.Task, bool) {
	i := s.index(id)
	if i < 0 {
		return domain.Task{}, false
	}
	return s.tasks[i], true
}

// List returns every task in current order
func (s *Store) List() []domain.Task {
	result := make([]domain.Task, len(s.tasks))
	copy(result, s.tasks)
	return result
}

// Len returns the number of tasks
func (s *Store) Len() int {
	return len(s.tasks)
}

// NextID returns the id the next Add will assign
func (s *Store) NextID() int {
	return s.nextID
}

// SortByPriorityDescending reorders the collection, High first
func (s *Store) SortByPriorityDescending() {
	domain.SortPriorityDesc(s.tasks)
}

// SortByDueDateAscending reorders the collection, earliest due date first
func (s *Store) SortByDueDateAscending() {
	domain.SortDueDateAsc(s.tasks)
}

// FindByKeyword returns tasks whose description contains keyword (case-sensitive).
// An empty keyword matches every task.
func (s *Store) FindByKeyword(keyword string) []domain.Task {
	return domain.Filter{Keyword: keyword}.Apply(s.tasks)
}

// FilterByStatus returns tasks with exactly the given status
func (s *Store) FilterByStatus(status domain.Status) []domain.Task {
	if !status.Valid() {
		return []domain.Task{}
	}
	return domain.Filter{Status: status}.Apply(s.tasks)
}

// Query applies a combined filter, used by views that search and filter at once
func (s *Store) Query(f domain.Filter) []domain.Task {
	return f.Apply(s.tasks)
}

// Replace swaps in a freshly loaded collection.
// The counter only moves forward: it ends at the largest of its current value,
// nextID, and one past the highest loaded id (saturating at math.MaxInt).
func (s *Store) Replace(tasks []domain.Task, nextID int) {
	loaded := make([]domain.Task, len(tasks))
	copy(loaded, tasks)

	for _, t := range loaded {
		if t.ID == math.MaxInt {
			nextID = math.MaxInt
			continue
		}
		if t.ID+1 > nextID {
			nextID = t.ID + 1
		}
	}

	s.tasks = loaded
	if nextID > s.nextID {
		s.nextID = nextID
	}
}

func (s *Store) index(id int) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}
