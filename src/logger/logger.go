// Blueprint for new Go projects
// Author: Christi Mahu – https://christimahu.dev
// Part of the dev repo: https://github.com/christimahu/dev/
// This file is part of a minimal idiomatic Go blueprint for creating new applications.
//
// logger.go - Builds the zerolog logger from LogConfig. Diagnostics go to
// standard error unless configured otherwise, keeping standard output free
// for the conversation itself.

package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/christimahu/dev/blueprints/techsupport/src/config"
)

// New returns a logger configured by cfg. The returned io.Closer releases the
// log file, if one was opened; it is safe to call for other outputs.
func New(cfg config.LogConfig) (zerolog.Logger, io.Closer, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("invalid log level '%s': %w", cfg.Level, err)
	}

	timeFormat, err := parseTimeFormat(cfg.TimeFormat)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, err
	}
	zerolog.TimeFieldFormat = timeFormat

	var (
		output io.Writer
		closer io.Closer = nopCloser{}
	)
	switch strings.ToLower(cfg.Output) {
	case "", "stderr":
		output = os.Stderr
	case "stdout":
		output = os.Stdout
	case "file":
		if err := os.MkdirAll(filepath.Dir(cfg.FilePath), 0o755); err != nil {
			return zerolog.Nop(), nopCloser{}, fmt.Errorf("failed to create log directory: %w", err)
		}
		file, err := os.OpenFile(cfg.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return zerolog.Nop(), nopCloser{}, fmt.Errorf("failed to open log file '%s': %w", cfg.FilePath, err)
		}
		output, closer = file, file
	default:
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("invalid log output '%s'", cfg.Output)
	}

	switch strings.ToLower(cfg.Format) {
	case "", "console":
		output = zerolog.ConsoleWriter{Out: output, TimeFormat: time.RFC3339}
	case "json":
	default:
		closer.Close()
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("invalid log format '%s'", cfg.Format)
	}

	return zerolog.New(output).Level(level).With().Timestamp().Logger(), closer, nil
}

func parseTimeFormat(name string) (string, error) {
	switch strings.ToLower(name) {
	case "", "rfc3339":
		return time.RFC3339, nil
	case "unix":
		return zerolog.TimeFormatUnix, nil
	case "iso8601":
		return "2006-01-02T15:04:05.000Z07:00", nil
	default:
		return "", fmt.Errorf("invalid log time format '%s'", name)
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
