// Package codec reads and writes the task file format.
//
// Each task is one line of five ';'-separated fields:
//
//	<id>;"<description>";<STATUS>;<PRIORITY>;<YYYY-MM-DD>
//
// The description is always written quoted, with embedded quotes doubled.
// Status tokens are A_FAIRE, EN_COURS and TERMINEE; priority tokens are
// BASSE, MOYENNE and HAUTE. Decoding is best effort: a bad line is skipped
// and reported in Result.Skipped while the rest of the file still loads.
// A due date that could not be written back unquoted counts as a bad line.
//
// Quotes are escaped by doubling only. Older files that escaped them with a
// backslash (\" and \\) do not decode the same way.
package codec

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/riordanpawley/todo/internal/domain"
)

const fieldCount = 5

// RecordError describes a line that could not be decoded
type RecordError struct {
	Line int    // 1-based line number
	Text string // Raw line content
	Err  error  // Reason the line was rejected
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("line %d: %v: %v", e.Line, domain.ErrMalformedRecord, e.Err)
}

// Unwrap matches both ErrMalformedRecord and the specific reason
func (e *RecordError) Unwrap() []error {
	return []error{domain.ErrMalformedRecord, e.Err}
}

// Result is the outcome of decoding a task file
type Result struct {
	Tasks   []domain.Task
	NextID  int // one past the highest decoded id, at least 1
	Skipped []*RecordError
}

// Encode writes one line per task. The output depends only on the input,
// so the same tasks in the same order always produce identical bytes.
func Encode(w io.Writer, tasks []domain.Task) error {
	for _, t := range tasks {
		if err := validate(t); err != nil {
			return err
		}
	}

	bw := bufio.NewWriter(w)
	for _, t := range tasks {
		bw.WriteString(formatRecord(t))
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write tasks: %w", err)
	}
	return nil
}

// EncodeString returns the encoded form of tasks
func EncodeString(tasks []domain.Task) (string, error) {
	var b strings.Builder
	if err := Encode(&b, tasks); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Decode parses a task file. Malformed lines are collected in Result.Skipped;
// the returned error is non-nil only when r itself fails.
func Decode(r io.Reader) (*Result, error) {
	result := &Result{
		Tasks:  make([]domain.Task, 0),
		NextID: 1,
	}
	seen := make(map[int]bool)

	br := bufio.NewReader(r)
	lineNum := 0
	for {
		raw, readErr := br.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return nil, fmt.Errorf("read line %d: %w: %w", lineNum+1, domain.ErrSourceUnavailable, readErr)
		}
		if raw == "" && readErr != nil {
			break
		}
		lineNum++

		line := strings.TrimRight(raw, "\r\n")
		if strings.TrimSpace(line) != "" {
			task, err := parseRecord(line)
			if err == nil && seen[task.ID] {
				err = fmt.Errorf("duplicate id %d", task.ID)
			}
			if err != nil {
				result.Skipped = append(result.Skipped, &RecordError{Line: lineNum, Text: line, Err: err})
			} else {
				seen[task.ID] = true
				result.Tasks = append(result.Tasks, task)
				if task.ID+1 > result.NextID {
					result.NextID = task.ID + 1
				}
			}
		}

		if readErr != nil {
			break
		}
	}

	return result, nil
}

// DecodeString parses an in-memory task file
func DecodeString(s string) *Result {
	// strings.Reader never fails, so neither does Decode
	result, _ := Decode(strings.NewReader(s))
	return result
}

func formatRecord(t domain.Task) string {
	return strings.Join([]string{
		strconv.Itoa(t.ID),
		quoteField(t.Description),
		t.Status.Token(),
		t.Priority.Token(),
		t.DueDate,
	}, string(delimiter))
}

func parseRecord(line string) (domain.Task, error) {
	fields, err := splitRecord(line)
	if err != nil {
		return domain.Task{}, err
	}
	if len(fields) != fieldCount {
		return domain.Task{}, fmt.Errorf("expected %d fields, got %d", fieldCount, len(fields))
	}

	id, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return domain.Task{}, fmt.Errorf("id %q: not an integer", fields[0])
	}
	if id <= 0 {
		return domain.Task{}, fmt.Errorf("id %d: must be positive", id)
	}
	if id == math.MaxInt {
		return domain.Task{}, fmt.Errorf("id %d: no id can follow it", id)
	}

	status, err := domain.ParseStatus(strings.TrimSpace(fields[2]))
	if err != nil {
		return domain.Task{}, err
	}
	priority, err := domain.ParsePriority(strings.TrimSpace(fields[3]))
	if err != nil {
		return domain.Task{}, err
	}

	// Encode writes the due date unquoted, so only accept what it can write back
	if strings.ContainsAny(fields[4], reservedInDate) {
		return domain.Task{}, fmt.Errorf("due date %q: contains a reserved character", fields[4])
	}

	return domain.Task{
		ID:          id,
		Description: fields[1],
		Status:      status,
		Priority:    priority,
		DueDate:     fields[4],
	}, nil
}

// validate rejects tasks the format cannot represent
func validate(t domain.Task) error {
	switch {
	case t.ID <= 0:
		return fmt.Errorf("task %d: %w", t.ID, &domain.InputError{Field: "id", Message: "must be positive"})
	case !t.Status.Valid():
		return fmt.Errorf("task %d: %w", t.ID, &domain.InputError{Field: "status", Message: t.Status.String()})
	case !t.Priority.Valid():
		return fmt.Errorf("task %d: %w", t.ID, &domain.InputError{Field: "priority", Message: t.Priority.String()})
	case strings.ContainsAny(t.Description, "\r\n"):
		return fmt.Errorf("task %d: %w", t.ID, &domain.InputError{Field: "description", Message: "contains a line break"})
	case strings.ContainsAny(t.DueDate, reservedInDate):
		return fmt.Errorf("task %d: %w", t.ID, &domain.InputError{Field: "due date", Message: "contains a reserved character"})
	}
	return nil
}
