// Package storage provides the task file on top of an afero filesystem.
package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

const (
	tmpSuffix    = ".tmp"
	backupSuffix = ".bak"
)

// File is a task file on an afero filesystem. Writes go to a temporary file
// that replaces the real one on Close, so an interrupted save leaves the
// previous content in place.
type File struct {
	fs     afero.Fs
	path   string
	backup bool
}

// Option configures a File
type Option func(*File)

// WithBackup keeps the previous content in <path>.bak on every save
func WithBackup(enabled bool) Option {
	return func(f *File) {
		f.backup = enabled
	}
}

// New creates a File for path on fs
func New(fs afero.Fs, path string, opts ...Option) *File {
	f := &File{fs: fs, path: path}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// NewOsFile creates a File on the real filesystem
func NewOsFile(path string, opts ...Option) *File {
	return New(afero.NewOsFs(), path, opts...)
}

// Name returns the file path
func (f *File) Name() string {
	return f.path
}

// BackupPath returns where the previous content is kept when backups are enabled
func (f *File) BackupPath() string {
	return f.path + backupSuffix
}

// Exists reports whether the file is present
func (f *File) Exists() (bool, error) {
	return afero.Exists(f.fs, f.path)
}

// Open opens the file for reading
func (f *File) Open() (io.ReadCloser, error) {
	return f.fs.Open(f.path)
}

// Create opens a temporary sibling for writing; Close commits it
func (f *File) Create() (io.WriteCloser, error) {
	if dir := filepath.Dir(f.path); dir != "." && dir != "" {
		if err := f.fs.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	tmp := f.path + tmpSuffix
	out, err := f.fs.OpenFile(tmp, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}

	return &atomicWriter{file: f, out: out, tmp: tmp}, nil
}

// atomicWriter writes to tmp and renames it over the target on Close
type atomicWriter struct {
	file   *File
	out    afero.File
	tmp    string
	closed bool
}

func (w *atomicWriter) Write(p []byte) (int, error) {
	return w.out.Write(p)
}

// Close flushes the temporary file and moves it into place
func (w *atomicWriter) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	if err := w.out.Sync(); err != nil {
		_ = w.out.Close()
		_ = w.file.fs.Remove(w.tmp)
		return fmt.Errorf("sync %s: %w", w.tmp, err)
	}
	if err := w.out.Close(); err != nil {
		_ = w.file.fs.Remove(w.tmp)
		return fmt.Errorf("close %s: %w", w.tmp, err)
	}

	if w.file.backup {
		if err := w.file.copyToBackup(); err != nil {
			_ = w.file.fs.Remove(w.tmp)
			return err
		}
	}

	if err := w.file.fs.Rename(w.tmp, w.file.path); err != nil {
		_ = w.file.fs.Remove(w.tmp)
		return fmt.Errorf("replace %s: %w", w.file.path, err)
	}
	return nil
}

// Abort drops everything written so far and leaves the target untouched
func (w *atomicWriter) Abort() error {
	if w.closed {
		return nil
	}
	w.closed = true

	closeErr := w.out.Close()
	removeErr := w.file.fs.Remove(w.tmp)
	return errors.Join(closeErr, removeErr)
}

func (f *File) copyToBackup() error {
	exists, err := f.Exists()
	if err != nil || !exists {
		return err
	}

	data, err := afero.ReadFile(f.fs, f.path)
	if err != nil {
		return fmt.Errorf("read %s for backup: %w", f.path, err)
	}
	if err := afero.WriteFile(f.fs, f.BackupPath(), data, 0o644); err != nil {
		return fmt.Errorf("write backup %s: %w", f.BackupPath(), err)
	}
	return nil
}
