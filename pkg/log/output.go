package log

import (
	"io"
	"os"
	"sync"
)

// ConsoleOutput writes formatted entries to a writer, stderr by default.
// Writes are serialized so concurrent loggers do not interleave lines.
type ConsoleOutput struct {
	// Writer receives formatted entries. Nil means os.Stderr.
	Writer io.Writer

	mu sync.Mutex
}

// NewConsoleOutput returns a ConsoleOutput writing to stderr.
func NewConsoleOutput() *ConsoleOutput {
	return &ConsoleOutput{Writer: os.Stderr}
}

// Write writes one formatted entry.
func (o *ConsoleOutput) Write(_ *Entry, formattedEntry []byte) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	w := o.Writer
	if w == nil {
		w = os.Stderr
	}
	_, err := w.Write(formattedEntry)
	return err
}

// Close implements Output. Console output has nothing to close.
func (o *ConsoleOutput) Close() error { return nil }
