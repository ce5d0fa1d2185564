// Package logging sets up the file logger. The terminal belongs to the game
// while it runs, so log output never goes to stdout or stderr.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
)

// DefaultRelPath is the log file location under the XDG state directory.
const DefaultRelPath = "flappy/flappy.log"

// Options controls where and how much the game logs.
type Options struct {
	Path  string // Empty means the XDG state file
	Level string // debug, info, warn, error, fatal
}

// Path resolves the log file location, creating parent directories.
func Path(custom string) (string, error) {
	if custom == "" {
		path, err := xdg.StateFile(DefaultRelPath)
		if err != nil {
			return "", fmt.Errorf("could not get log path: %w", err)
		}
		return path, nil
	}

	if err := os.MkdirAll(filepath.Dir(custom), 0o755); err != nil {
		return "", fmt.Errorf("could not create log directory: %w", err)
	}
	return custom, nil
}

// New opens the log file and returns a logger writing to it.
// The caller must close the returned io.Closer when done.
func New(opts Options) (*log.Logger, io.Closer, error) {
	level := log.InfoLevel
	if opts.Level != "" {
		parsed, err := log.ParseLevel(opts.Level)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
		}
		level = parsed
	}

	path, err := Path(opts.Path)
	if err != nil {
		return nil, nil, err
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	return NewWriter(f, level), f, nil
}

// NewWriter creates a logger writing to w.
func NewWriter(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "flappy",
		Level:           level,
	})
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return NewWriter(io.Discard, log.FatalLevel)
}
