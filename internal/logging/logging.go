package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// DefaultLevel keeps stderr quiet unless something is worth a warning.
const DefaultLevel = "warn"

// New returns a logger writing to w at the named level (debug, info, warn,
// error). An empty level means DefaultLevel.
func New(w io.Writer, level string) (*log.Logger, error) {
	level = strings.TrimSpace(level)
	if level == "" {
		level = DefaultLevel
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	return log.NewWithOptions(w, log.Options{
		Prefix:          "hari",
		Level:           lvl,
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	}), nil
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}
