// Package telemetry records per-frame simulation statistics as CSV and
// condenses windows of frames into logged summaries.
package telemetry

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"mad-snow/internal/snow"
)

// Writer appends FrameStats rows to a CSV stream.
type Writer struct {
	out           io.Writer
	closer        io.Closer
	headerWritten bool
}

// NewWriter wraps out. The header is written with the first row.
func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out}
}

// Create opens path for writing, creating parent directories.
// Returns nil if path is empty (output disabled).
func Create(path string) (*Writer, error) {
	if path == "" {
		return nil, nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating telemetry directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", path, err)
	}
	return &Writer{out: f, closer: f}, nil
}

// Write appends one row.
func (w *Writer) Write(stats snow.FrameStats) error {
	if w == nil {
		return nil
	}
	records := []snow.FrameStats{stats}
	if !w.headerWritten {
		if err := gocsv.Marshal(records, w.out); err != nil {
			return fmt.Errorf("writing telemetry: %w", err)
		}
		w.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, w.out); err != nil {
		return fmt.Errorf("writing telemetry: %w", err)
	}
	return nil
}

// Close closes the underlying file when the Writer opened it.
func (w *Writer) Close() error {
	if w == nil || w.closer == nil {
		return nil
	}
	return w.closer.Close()
}
