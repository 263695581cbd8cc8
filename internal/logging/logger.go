// Package logging sets up structured logging for the application: an slog handler that
// writes to stdout and to a size-rotated log file, plus the process-level panic boundary.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// LogFileName is the name of the active log file inside Options.Dir
const LogFileName = "ytgrab.log"

// Options configures the logger
type Options struct {
	Level      string
	Dir        string // empty disables the file sink
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	AddSource  bool
	Stdout     io.Writer // defaults to os.Stdout
}

// New builds a logger and installs it as slog's default. The returned closer flushes
// and closes the rotating file; it is never nil. A bad level is reported but still
// yields a usable info-level logger.
func New(opt *Options) (*slog.Logger, io.Closer, error) {
	if opt == nil {
		return nil, nopCloser{}, fmt.Errorf("logger options are required")
	}

	level, levelErr := ParseLevel(opt.Level)

	stdout := opt.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}

	var (
		out    io.Writer = stdout
		closer io.Closer = nopCloser{}
	)

	if opt.Dir != "" {
		if err := os.MkdirAll(opt.Dir, 0o755); err != nil {
			return nil, closer, fmt.Errorf("create log dir: %w", err)
		}

		rotator := &lumberjack.Logger{
			Filename:   filepath.Join(opt.Dir, LogFileName),
			MaxSize:    opt.MaxSizeMB,
			MaxBackups: opt.MaxBackups,
			MaxAge:     opt.MaxAgeDays,
		}
		out = io.MultiWriter(stdout, rotator)
		closer = rotator
	}

	log := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{
		AddSource: opt.AddSource,
		Level:     level,
	}))
	slog.SetDefault(log)

	return log, closer, levelErr
}

// ParseLevel converts a string level to slog.Level
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level: %q", level)
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
