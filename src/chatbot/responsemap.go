// Blueprint for new Go projects
// Author: Christi Mahu – https://christimahu.dev
// Part of the dev repo: https://github.com/christimahu/dev/
// This file is part of a minimal idiomatic Go blueprint for creating new applications.
//
// responsemap.go - Parser for the keyword response map. A record is a header
// line of comma-separated keys followed by body lines and a blank line:
//
//	crash,crashes
//	Well, it never crashes on our system.
//	Tell me more about your configuration.
//
// Every key of the record maps to the body joined with newlines, with one
// newline before each line and one after the last.

package chatbot

import (
	"io"

	"github.com/rs/zerolog"
)

// DefaultResponseMapFile is the response map read when no other path is given.
const DefaultResponseMapFile = "response_map.txt"

// ParseResponseMap reads keyword records from r. A key that appears in more
// than one record keeps the response of the last one.
func ParseResponseMap(r io.Reader, opts ...ParseOption) (map[string]string, error) {
	o := buildParseOptions(opts)
	responses := make(map[string]string)

	var keys []string
	rules := recordRules{
		header: func(l line) bool {
			if l.trimmed == "" {
				return false
			}
			keys = splitKeys(l.trimmed)
			return true
		},
		ends: func(l line, _ string) bool {
			if o.trailingRecords {
				return l.trimmed == ""
			}
			// The last line of the source closes the record in place of a
			// blank line, and its text is not kept.
			return l.trimmed == "" || l.last
		},
		body: func(l line) string {
			return "\n" + l.trimmed
		},
		finish: func(body string) {
			for _, key := range keys {
				responses[key] = body + "\n"
			}
		},
		flush: o.trailingRecords,
	}

	if err := scanRecords(r, rules); err != nil {
		return nil, err
	}
	return responses, nil
}

// LoadResponseMap parses the response map file at path. It never fails: if
// the file cannot be opened or read, the problem is logged and an empty map
// is returned.
func LoadResponseMap(path string, log zerolog.Logger, opts ...ParseOption) map[string]string {
	var responses map[string]string
	err := readResource(path, func(r io.Reader) error {
		var err error
		responses, err = ParseResponseMap(r, opts...)
		return err
	})
	if err != nil {
		reportResourceError(log, path, err)
		return map[string]string{}
	}

	log.Debug().Str("resource", path).Int("keywords", len(responses)).Msg("response map loaded")
	return responses
}
