// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package state persists the small amount of state formgen keeps between
// runs: the time of the last update check, stored as a single RFC 3339
// timestamp in a plain-text file.
package state

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pdiddy/formgen/internal/logger"
)

// CheckFile records when the update feed was last consulted.
type CheckFile struct {
	path string
}

// NewCheckFile returns a CheckFile stored at path. The file need not exist.
func NewCheckFile(path string) *CheckFile {
	return &CheckFile{path: path}
}

// LastCheck returns the recorded time. A missing, empty, or unparseable file
// is not an error; it yields the zero time so the next check runs.
func (f *CheckFile) LastCheck() (time.Time, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return time.Time{}, nil
		}
		return time.Time{}, fmt.Errorf("reading check state %s: %w", f.path, err)
	}

	value := strings.TrimSpace(string(data))
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		logger.Warn("ignoring malformed check state", logger.Fields{"path": f.path, "value": value})
		return time.Time{}, nil
	}
	return t, nil
}

// Due reports whether at least interval has passed since the last check.
// Read errors count as due.
func (f *CheckFile) Due(now time.Time, interval time.Duration) bool {
	last, err := f.LastCheck()
	if err != nil {
		logger.Warn("could not read check state", logger.Fields{"error": err.Error()})
		return true
	}
	return last.IsZero() || now.Sub(last) >= interval
}

// Record stores now as the last check time, creating parent directories.
func (f *CheckFile) Record(now time.Time) error {
	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating state directory: %w", err)
		}
	}
	if err := os.WriteFile(f.path, []byte(now.Format(time.RFC3339)+"\n"), 0o644); err != nil {
		return fmt.Errorf("writing check state: %w", err)
	}
	return nil
}
