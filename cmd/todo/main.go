// Package main provides the entry point for the todo console.
//
// Usage:
//
//	todo [task-file]
//
// The task file defaults to storage.path from the configuration (taches.csv).
// Logs go to log.file because the console owns the terminal.
package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/todo/internal/app"
	"github.com/riordanpawley/todo/internal/config"
	"github.com/riordanpawley/todo/internal/logging"
	"github.com/riordanpawley/todo/internal/services/tasks"
	"github.com/riordanpawley/todo/internal/storage"
	"github.com/spf13/afero"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if len(os.Args) > 1 {
		cfg.Storage.Path = os.Args[1]
	}

	logger, closeLog, err := logging.SetupFile(afero.NewOsFs(), cfg.Log, "todo")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		logger, closeLog = logging.Discard(), func() error { return nil }
	}
	defer closeLog()
	slog.SetDefault(logger)

	logger.Info("starting", "path", cfg.Storage.Path, "config_files", cfg.Files)

	file := storage.NewOsFile(cfg.Storage.Path, storage.WithBackup(cfg.Storage.Backup))
	svc := tasks.NewService(file, logger)

	p := tea.NewProgram(app.New(svc, cfg, logger), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error("program failed", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		closeLog()
		os.Exit(1)
	}
	logger.Info("stopped", "dirty", svc.Dirty())
}
