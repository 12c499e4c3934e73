// Package logging sets up the diagnostic log. The terminal belongs to the UI,
// so log lines go to a file or nowhere.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// Logger wraps a logrus logger together with the file it writes to.
type Logger struct {
	*logrus.Logger
	file *os.File
}

// New opens (or creates) path for appending and returns a logger at level.
// An empty path returns a logger that discards everything.
func New(path, level string) (*Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}

	log := logrus.New()
	log.SetLevel(lvl)
	log.SetFormatter(&logrus.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	})

	if path == "" {
		log.SetOutput(io.Discard)
		return &Logger{Logger: log}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("logging: ensure log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("logging: open log file: %w", err)
	}
	log.SetOutput(f)
	return &Logger{Logger: log, file: f}, nil
}

// Close releases the file handle.
func (l *Logger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	return l.file.Close()
}
