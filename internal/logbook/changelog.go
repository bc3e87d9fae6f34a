package logbook

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// ChangeLog records every rejection and substitution as structured CSV with
// the columns original, replacement, reason. Downstream tooling diffs word
// list revisions from this file.
type ChangeLog struct {
	path string
	mu   sync.Mutex
	file *os.File
	w    *csv.Writer
	rows int
}

// NewChangeLog creates the CSV file and writes the header row.
func NewChangeLog(path string) (*ChangeLog, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("logbook: ensure changelog dir: %w", err)
	}
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("logbook: create changelog: %w", err)
	}
	w := csv.NewWriter(file)
	if err := w.Write([]string{"original", "replacement", "reason"}); err != nil {
		file.Close()
		return nil, fmt.Errorf("logbook: write changelog header: %w", err)
	}
	return &ChangeLog{path: path, file: file, w: w}, nil
}

// Path returns the changelog file location.
func (c *ChangeLog) Path() string {
	if c == nil {
		return ""
	}
	return c.path
}

// Record appends one substitution row. An empty replacement records a plain
// removal.
func (c *ChangeLog) Record(original, replacement, reason string) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.w.Write([]string{original, replacement, reason}); err != nil {
		return fmt.Errorf("logbook: write changelog row: %w", err)
	}
	c.rows++
	return nil
}

// Rows returns how many substitution rows have been recorded.
func (c *ChangeLog) Rows() int {
	if c == nil {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rows
}

// Close flushes buffered rows and closes the file.
func (c *ChangeLog) Close() error {
	if c == nil || c.file == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.w.Flush()
	if err := c.w.Error(); err != nil {
		c.file.Close()
		return fmt.Errorf("logbook: flush changelog: %w", err)
	}
	return c.file.Close()
}
