// Package cli implements the td command: one-shot edits of the task file.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/riordanpawley/todo/internal/config"
	"github.com/riordanpawley/todo/internal/domain"
	"github.com/riordanpawley/todo/internal/services/tasks"
	"github.com/riordanpawley/todo/internal/storage"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Dependencies holds everything the CLI commands need
type Dependencies struct {
	Config *config.Config
	Fs     afero.Fs
	Out    io.Writer
	Err    io.Writer
	Logger *slog.Logger
}

// service opens the configured task file
func (d *Dependencies) service() *tasks.Service {
	file := storage.New(d.Fs, d.Config.Storage.Path, storage.WithBackup(d.Config.Storage.Backup))
	return tasks.NewService(file, d.Logger)
}

// load opens the task file and reads it. A missing file is an empty list.
func (d *Dependencies) load() (*tasks.Service, error) {
	svc := d.service()
	report, err := svc.Load()
	if err != nil {
		return nil, err
	}
	if report.Skipped > 0 {
		fmt.Fprintf(d.Err, "warning: skipped %d malformed lines in %s\n", report.Skipped, svc.Path())
	}
	return svc, nil
}

// mutate loads the task file, applies fn and saves the result
func (d *Dependencies) mutate(fn func(svc *tasks.Service) error) error {
	svc, err := d.load()
	if err != nil {
		return err
	}
	if err := fn(svc); err != nil {
		return err
	}
	return svc.Save()
}

// ListOptions narrows and orders the list command output
type ListOptions struct {
	Status  string
	Keyword string
	Sort    string
}

// AddCommand appends a task and prints its id
func AddCommand(deps *Dependencies, description, priority, dueDate string) error {
	p, err := parsePriority(priority)
	if err != nil {
		return err
	}

	var id int
	err = deps.mutate(func(svc *tasks.Service) error {
		id, err = svc.Add(description, p, dueDate)
		return err
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(deps.Out, "✓ Added task %d\n", id)
	return nil
}

// ListCommand prints the tasks as a table
func ListCommand(deps *Dependencies, opts ListOptions) error {
	var filter domain.Filter
	if opts.Status != "" {
		s, err := parseStatus(opts.Status)
		if err != nil {
			return err
		}
		filter.Status = s
	}
	filter.Keyword = opts.Keyword

	sortField, ok := domain.ParseSortField(opts.Sort)
	if !ok {
		return fmt.Errorf("unknown sort key %q: want priority or date", opts.Sort)
	}

	svc, err := deps.load()
	if err != nil {
		return err
	}

	list := sortField.Apply(svc.Store().Query(filter))
	if len(list) == 0 {
		if filter.IsActive() {
			fmt.Fprintln(deps.Out, "No matching tasks")
		} else {
			fmt.Fprintln(deps.Out, "No tasks")
		}
		return nil
	}

	w := tabwriter.NewWriter(deps.Out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTATUS\tPRIORITY\tDUE\tDESCRIPTION")
	fmt.Fprintln(w, "--\t------\t--------\t---\t-----------")
	for _, t := range list {
		due := t.DueDate
		if due == "" {
			due = "-"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", t.ID, t.Status, t.Priority, due, t.Description)
	}
	return w.Flush()
}

// RemoveCommand deletes a task
func RemoveCommand(deps *Dependencies, idArg string) error {
	id, err := parseID(idArg)
	if err != nil {
		return err
	}

	err = deps.mutate(func(svc *tasks.Service) error {
		if !svc.Remove(id) {
			return notFound(id)
		}
		return nil
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(deps.Out, "✓ Removed task %d\n", id)
	return nil
}

// StatusCommand moves a task to another status
func StatusCommand(deps *Dependencies, idArg, statusArg string) error {
	id, err := parseID(idArg)
	if err != nil {
		return err
	}
	status, err := parseStatus(statusArg)
	if err != nil {
		return err
	}

	err = deps.mutate(func(svc *tasks.Service) error {
		if !svc.SetStatus(id, status) {
			return notFound(id)
		}
		return nil
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(deps.Out, "✓ Task %d is now %s\n", id, status)
	return nil
}

// SortCommand reorders the task file itself
func SortCommand(deps *Dependencies, key string) error {
	field, ok := domain.ParseSortField(key)
	if !ok || field == domain.SortNone {
		return fmt.Errorf("unknown sort key %q: want priority or date", key)
	}

	err := deps.mutate(func(svc *tasks.Service) error {
		switch field {
		case domain.SortByPriority:
			svc.SortByPriority()
		case domain.SortByDueDate:
			svc.SortByDueDate()
		}
		return nil
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(deps.Out, "✓ Sorted %s by %s\n", deps.Config.Storage.Path, field)
	return nil
}

// ConfigCommand prints the merged configuration and where it came from
func ConfigCommand(deps *Dependencies) error {
	data, err := yaml.Marshal(deps.Config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	fmt.Fprintln(deps.Out, "# Merged configuration (defaults, files, TODO_* environment)")
	if len(deps.Config.Files) == 0 {
		fmt.Fprintln(deps.Out, "# No config files found")
	}
	for _, f := range deps.Config.Files {
		fmt.Fprintf(deps.Out, "# %s\n", f)
	}
	_, err = deps.Out.Write(data)
	return err
}

func notFound(id int) error {
	return fmt.Errorf("task %d not found", id)
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid task id %q", s)
	}
	return id, nil
}

// parsePriority accepts display names, their initials and file tokens
func parsePriority(s string) (domain.Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low", "l", "1":
		return domain.PriorityLow, nil
	case "", "medium", "m", "2":
		return domain.PriorityMedium, nil
	case "high", "h", "3":
		return domain.PriorityHigh, nil
	}
	if p, err := domain.ParsePriority(strings.ToUpper(s)); err == nil {
		return p, nil
	}
	return 0, &domain.InputError{Field: "priority", Message: fmt.Sprintf("%q: want low, medium or high", s)}
}

// parseStatus accepts display names, short forms and file tokens
func parseStatus(s string) (domain.Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "todo", "t":
		return domain.StatusTodo, nil
	case "doing", "in-progress", "in_progress", "progress", "p":
		return domain.StatusInProgress, nil
	case "done", "d":
		return domain.StatusDone, nil
	}
	if st, err := domain.ParseStatus(strings.ToUpper(s)); err == nil {
		return st, nil
	}
	return 0, &domain.InputError{Field: "status", Message: fmt.Sprintf("%q: want todo, doing or done", s)}
}
