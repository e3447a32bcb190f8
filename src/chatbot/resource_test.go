// Blueprint for new Go projects
// Author: Christi Mahu – https://christimahu.dev
// Part of the dev repo: https://github.com/christimahu/dev/
// This file is part of a minimal idiomatic Go blueprint for creating new applications.
//
// resource_test.go - Tests for loading resource files from disk, including
// the degraded results when a file is missing.

package chatbot

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFile creates name under dir with content and returns its path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// logEntries decodes the JSON log lines written to buf.
func logEntries(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var entries []map[string]any
	dec := json.NewDecoder(buf)
	for dec.More() {
		var e map[string]any
		require.NoError(t, dec.Decode(&e))
		entries = append(entries, e)
	}
	return entries
}

func TestLoadResponseMap_File(t *testing.T) {
	path := writeFile(t, t.TempDir(), "response_map.txt", "hi,hello\nHello there!\n\n")

	got := LoadResponseMap(path, zerolog.Nop())
	assert.Equal(t, map[string]string{"hi": "\nHello there!\n", "hello": "\nHello there!\n"}, got)
}

// A missing response map is reported by name and leaves an empty map.
func TestLoadResponseMap_Missing(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)
	path := filepath.Join(t.TempDir(), "response_map.txt")

	got := LoadResponseMap(path, log)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	entries := logEntries(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "error", entries[0]["level"])
	assert.Equal(t, "Unable to open "+path, entries[0]["message"])
	assert.Equal(t, path, entries[0]["resource"])
}

// A path that opens but cannot be read as a file reports a read problem.
func TestLoadResponseMap_Unreadable(t *testing.T) {
	var buf bytes.Buffer
	dir := t.TempDir()

	got := LoadResponseMap(dir, zerolog.New(&buf))
	assert.Empty(t, got)

	entries := logEntries(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "A problem was encountered reading "+dir, entries[0]["message"])
}

func TestLoadDefaultResponses_File(t *testing.T) {
	path := writeFile(t, t.TempDir(), "default.txt", "One.\n\nTwo.\n\n")

	got := LoadDefaultResponses(path, zerolog.Nop())
	assert.Equal(t, []string{"\nOne.", "\nTwo."}, got)
}

// The pool is never empty, whatever state default.txt is in.
func TestLoadDefaultResponses_NeverEmpty(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]string{
		"missing":      filepath.Join(dir, "absent.txt"),
		"empty":        writeFile(t, dir, "empty.txt", ""),
		"blank lines":  writeFile(t, dir, "blank.txt", "\n\n   \n\n"),
		"unterminated": writeFile(t, dir, "unterminated.txt", "Never closed."),
		"directory":    dir,
	}

	for name, path := range cases {
		t.Run(name, func(t *testing.T) {
			got := LoadDefaultResponses(path, zerolog.Nop())
			assert.Equal(t, []string{FallbackResponse}, got)
		})
	}
}

// Trailing mode rescues the unterminated record instead of falling back.
func TestLoadDefaultResponses_TrailingRecords(t *testing.T) {
	path := writeFile(t, t.TempDir(), "default.txt", "Never closed.")

	got := LoadDefaultResponses(path, zerolog.Nop(), WithTrailingRecords())
	assert.Equal(t, []string{"\nNever closed."}, got)
}

func TestReadResource_Classification(t *testing.T) {
	dir := t.TempDir()

	err := readResource(filepath.Join(dir, "nope.txt"), func(io.Reader) error { return nil })
	assert.ErrorIs(t, err, ErrResourceNotFound)
	assert.ErrorIs(t, err, os.ErrNotExist)

	err = readResource(dir, func(r io.Reader) error {
		_, err := ParseDefaultResponses(r)
		return err
	})
	assert.ErrorIs(t, err, ErrResourceUnreadable)
	assert.NotErrorIs(t, err, ErrResourceNotFound)
}
