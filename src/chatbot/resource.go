// Blueprint for new Go projects
// Author: Christi Mahu – https://christimahu.dev
// Part of the dev repo: https://github.com/christimahu/dev/
// This file is part of a minimal idiomatic Go blueprint for creating new applications.
//
// resource.go - Opening resource files and reporting failures. Loaders never
// fail their callers; problems are logged and the store degrades instead.

package chatbot

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

var (
	// ErrResourceNotFound means a resource file could not be opened.
	ErrResourceNotFound = errors.New("resource not found")
	// ErrResourceUnreadable means a resource file was opened but reading it failed.
	ErrResourceUnreadable = errors.New("resource unreadable")
)

// readResource opens path and hands its contents to parse.
func readResource(path string, parse func(r io.Reader) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrResourceNotFound, path, err)
	}
	defer f.Close()

	if err := parse(f); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrResourceUnreadable, path, err)
	}
	return nil
}

// reportResourceError writes the diagnostic for a failed load of path.
func reportResourceError(log zerolog.Logger, path string, err error) {
	msg := "A problem was encountered reading " + path
	if errors.Is(err, ErrResourceNotFound) {
		msg = "Unable to open " + path
	}
	log.Error().Err(err).Str("resource", path).Msg(msg)
}
