// Package logging configures the process-wide logrus logger. The terminal is
// owned by the TUI, so output normally goes to a file.
package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Options selects where and how log lines are written
type Options struct {
	Level  string // logrus level name, "info" when empty
	Format string // "json" or "text"
	File   string // empty or "-" discards output
}

// Init configures the standard logrus logger and returns a cleanup func
func Init(opts Options) (func(), error) {
	logger := logrus.StandardLogger()

	level := logrus.InfoLevel
	if opts.Level != "" {
		parsed, err := logrus.ParseLevel(opts.Level)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid log level %q", opts.Level)
		}
		level = parsed
	}
	logger.SetLevel(level)

	switch opts.Format {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		logger.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	}

	if opts.File == "" || opts.File == "-" {
		logger.SetOutput(io.Discard)
		return func() {}, nil
	}

	if err := os.MkdirAll(filepath.Dir(opts.File), 0755); err != nil {
		return nil, errors.Wrap(err, "failed to create log directory")
	}
	f, err := os.OpenFile(opts.File, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0666)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open log file")
	}
	logger.SetOutput(f)

	return func() {
		logger.SetOutput(io.Discard)
		_ = f.Close()
	}, nil
}
