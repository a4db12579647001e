// Package logging builds the process slog logger on a charmbracelet/log handler
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/KirkDiggler/rpg-targeting/internal/errors"
)

// Options configures the logger
type Options struct {
	Level  string
	Format string
	Prefix string
	Writer io.Writer
}

// New returns a slog logger writing through charmbracelet/log.
// Writer defaults to stderr, Format to text and Level to info.
func New(opts Options) (*slog.Logger, error) {
	level := log.InfoLevel
	if opts.Level != "" {
		parsed, err := log.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, errors.InvalidFieldf("log.level", "unknown log level %q", opts.Level)
		}
		level = parsed
	}

	formatter, err := formatterFor(opts.Format)
	if err != nil {
		return nil, err
	}

	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}

	handler := log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          opts.Prefix,
		Formatter:       formatter,
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
	})

	return slog.New(handler), nil
}

func formatterFor(format string) (log.Formatter, error) {
	switch strings.ToLower(format) {
	case "", "text":
		return log.TextFormatter, nil
	case "json":
		return log.JSONFormatter, nil
	case "logfmt":
		return log.LogfmtFormatter, nil
	default:
		return 0, errors.InvalidFieldf("log.format", "unknown log format %q", format)
	}
}
