package codec

import (
	"fmt"
	"io"

	"github.com/riordanpawley/todo/internal/domain"
)

// Source is a task file that can be read
type Source interface {
	Name() string
	Exists() (bool, error)
	Open() (io.ReadCloser, error)
}

// Sink is a task file that can be (re)written
type Sink interface {
	Name() string
	Create() (io.WriteCloser, error)
}

// aborter is implemented by writers that can drop a partial write
// instead of committing it on Close
type aborter interface {
	Abort() error
}

// FileError represents a failure to reach the task file itself
type FileError struct {
	Op   string // Operation: "stat", "open", "read", "create", "write", "close"
	Path string
	Kind error // domain.ErrSourceUnavailable or domain.ErrSourceNotFound
	Err  error // Underlying error, may be nil
}

func (e *FileError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("task file %s [%s]: %v: %v", e.Op, e.Path, e.Kind, e.Err)
	}
	return fmt.Sprintf("task file %s [%s]: %v", e.Op, e.Path, e.Kind)
}

func (e *FileError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// Load decodes the task file behind src.
// A missing file yields domain.ErrSourceNotFound so callers can start empty;
// any other failure to read yields domain.ErrSourceUnavailable.
func Load(src Source) (*Result, error) {
	exists, err := src.Exists()
	if err != nil {
		return nil, &FileError{Op: "stat", Path: src.Name(), Kind: domain.ErrSourceUnavailable, Err: err}
	}
	if !exists {
		return nil, &FileError{Op: "stat", Path: src.Name(), Kind: domain.ErrSourceNotFound}
	}

	rc, err := src.Open()
	if err != nil {
		return nil, &FileError{Op: "open", Path: src.Name(), Kind: domain.ErrSourceUnavailable, Err: err}
	}
	defer rc.Close()

	result, err := Decode(rc)
	if err != nil {
		return nil, &FileError{Op: "read", Path: src.Name(), Kind: domain.ErrSourceUnavailable, Err: err}
	}
	return result, nil
}

// Save encodes tasks into dst. If encoding fails the partial output is
// discarded when the writer supports it.
func Save(dst Sink, tasks []domain.Task) error {
	for _, t := range tasks {
		if err := validate(t); err != nil {
			return err
		}
	}

	w, err := dst.Create()
	if err != nil {
		return &FileError{Op: "create", Path: dst.Name(), Kind: domain.ErrSourceUnavailable, Err: err}
	}

	if err := Encode(w, tasks); err != nil {
		if a, ok := w.(aborter); ok {
			_ = a.Abort()
		} else {
			_ = w.Close()
		}
		return &FileError{Op: "write", Path: dst.Name(), Kind: domain.ErrSourceUnavailable, Err: err}
	}

	if err := w.Close(); err != nil {
		return &FileError{Op: "close", Path: dst.Name(), Kind: domain.ErrSourceUnavailable, Err: err}
	}
	return nil
}
