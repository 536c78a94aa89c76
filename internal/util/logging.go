// Package util provides logging setup, path resolution, and small
// shared helpers.
package util

import (
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// NewLogger builds the application logger writing to w. Components
// receive it by value; tests pass io.Discard.
func NewLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(w).With().Timestamp().Logger()
}

// OpenLogFile opens (creating if needed) the append-only log file under
// dir. stdout belongs to the TUI, so all logging goes here.
func OpenLogFile(dir, name string) (*os.File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(dir, name), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
}
