// Package tasks ties the in-memory store to the task file
package tasks

import (
	"errors"
	"log/slog"

	"github.com/riordanpawley/todo/internal/codec"
	"github.com/riordanpawley/todo/internal/domain"
	"github.com/riordanpawley/todo/internal/store"
)

// File is the task file the service reads and rewrites
type File interface {
	codec.Source
	codec.Sink
}

// LoadReport summarizes what Load found in the task file
type LoadReport struct {
	Found   bool // false when the file did not exist yet
	Loaded  int
	Skipped int
}

// Service owns a store and keeps it in sync with a task file
type Service struct {
	store  *store.Store
	file   File
	logger *slog.Logger
	dirty  bool
}

// NewService creates a service with an empty store
func NewService(file File, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		store:  store.New(),
		file:   file,
		logger: logger,
	}
}

// Store returns the underlying store for read access
func (s *Service) Store() *store.Store {
	return s.store
}

// Path returns the task file location
func (s *Service) Path() string {
	return s.file.Name()
}

// Dirty reports whether there are changes not yet saved
func (s *Service) Dirty() bool {
	return s.dirty
}

// Load replaces the store content with the task file.
// A missing file leaves an empty store and is not an error. When the file
// cannot be read the store is left untouched.
func (s *Service) Load() (LoadReport, error) {
	s.logger.Debug("loading tasks", "path", s.file.Name())

	result, err := codec.Load(s.file)
	if errors.Is(err, domain.ErrSourceNotFound) {
		s.logger.Info("no task file yet, starting empty", "path", s.file.Name())
		s.store.Replace(nil, 1)
		s.dirty = false
		return LoadReport{}, nil
	}
	if err != nil {
		s.logger.Error("failed to load tasks", "path", s.file.Name(), "error", err)
		return LoadReport{}, err
	}

	for _, skipped := range result.Skipped {
		s.logger.Warn("skipping malformed line",
			"path", s.file.Name(),
			"line", skipped.Line,
			"reason", skipped.Err)
	}

	s.store.Replace(result.Tasks, result.NextID)
	s.dirty = false

	report := LoadReport{
		Found:   true,
		Loaded:  len(result.Tasks),
		Skipped: len(result.Skipped),
	}
	s.logger.Info("tasks loaded", "path", s.file.Name(), "loaded", report.Loaded, "skipped", report.Skipped)
	return report, nil
}

// Save rewrites the task file from the current store content
func (s *Service) Save() error {
	tasks := s.store.List()
	if err := codec.Save(s.file, tasks); err != nil {
		s.logger.Error("failed to save tasks", "path", s.file.Name(), "error", err)
		return err
	}
	s.dirty = false
	s.logger.Debug("tasks saved", "path", s.file.Name(), "count", len(tasks))
	return nil
}

// Add creates a task and returns its id
func (s *Service) Add(description string, priority domain.Priority, dueDate string) (int, error) {
	id, err := s.store.Add(description, priority, dueDate)
	if err != nil {
		s.logger.Debug("rejected new task", "error", err)
		return 0, err
	}
	s.dirty = true
	s.logger.Debug("task added", "id", id, "priority", priority.String())
	return id, nil
}

// Remove deletes a task, reporting whether it existed
func (s *Service) Remove(id int) bool {
	if !s.store.Remove(id) {
		s.logger.Debug("remove: task not found", "id", id)
		return false
	}
	s.dirty = true
	s.logger.Debug("task removed", "id", id)
	return true
}

// SetStatus changes a task's status, reporting whether it existed
func (s *Service) SetStatus(id int, status domain.Status) bool {
	if !s.store.SetStatus(id, status) {
		s.logger.Debug("set status: task not found", "id", id, "status", status.String())
		return false
	}
	s.dirty = true
	s.logger.Debug("task status changed", "id", id, "status", status.String())
	return true
}

// CycleStatus advances a task to its next status and returns it
func (s *Service) CycleStatus(id int) (domain.Status, bool) {
	task, ok := s.store.Get(id)
	if !ok {
		return 0, false
	}
	next := task.Status.Next()
	return next, s.SetStatus(id, next)
}

// SortByPriority orders the store High first
func (s *Service) SortByPriority() {
	s.store.SortByPriorityDescending()
	s.dirty = true
}

// SortByDueDate orders the store by earliest due date
func (s *Service) SortByDueDate() {
	s.store.SortByDueDateAscending()
	s.dirty = true
}
