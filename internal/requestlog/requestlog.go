package requestlog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// timestampLayout is UTC ISO-8601 with millisecond precision, one timestamp
// per logged line.
const timestampLayout = "2006-01-02T15:04:05.000Z"

// Event is one observed request. The path excludes the query string.
type Event struct {
	Method string
	Path   string
}

// Sink persists formatted request lines. Implementations own timestamping.
type Sink interface {
	Append(ev Event) error
	Close() error
}

// FileSink appends one timestamped line per event to an append-only text
// file:
//
//	2025-01-02T15:04:05.000Z - GET - /todos
type FileSink struct {
	f   *os.File
	now func() time.Time
}

// NewFileSink opens (or creates) the log file at path for appending. The
// parent directory is created if needed.
func NewFileSink(path string) (*FileSink, error) {
	if path == "" {
		return nil, errors.New("requestlog: path is required")
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	return &FileSink{f: f, now: time.Now}, nil
}

// Append writes one line for ev.
func (s *FileSink) Append(ev Event) error {
	line := fmt.Sprintf("%s - %s - %s\n", s.now().UTC().Format(timestampLayout), ev.Method, ev.Path)
	_, err := s.f.WriteString(line)
	return err
}

// Close closes the underlying file.
func (s *FileSink) Close() error {
	if s == nil || s.f == nil {
		return nil
	}
	return s.f.Close()
}
