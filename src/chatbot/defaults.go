// Blueprint for new Go projects
// Author: Christi Mahu – https://christimahu.dev
// Part of the dev repo: https://github.com/christimahu/dev/
// This file is part of a minimal idiomatic Go blueprint for creating new applications.
//
// defaults.go - Parser for the default response pool. Each record is one or
// more non-blank lines closed by an empty line.

package chatbot

import (
	"io"

	"github.com/rs/zerolog"
)

const (
	// DefaultResponsesFile is the default response pool read when no other path is given.
	DefaultResponsesFile = "default.txt"

	// FallbackResponse is used when the pool would otherwise be empty.
	FallbackResponse = "Could you elaborate on that?"
)

// ParseDefaultResponses reads default response records from r in file order.
//
// Only a truly empty line closes a record; a line of whitespace adds nothing
// to the record but does not close it either. A record still open at the end
// of r is dropped unless WithTrailingRecords is given.
func ParseDefaultResponses(r io.Reader, opts ...ParseOption) ([]string, error) {
	o := buildParseOptions(opts)
	var responses []string

	rules := recordRules{
		ends: func(l line, body string) bool {
			return l.raw == "" && body != ""
		},
		body: func(l line) string {
			if l.trimmed == "" {
				return ""
			}
			return "\n" + l.trimmed
		},
		finish: func(body string) {
			if trimLine(body) != "" {
				responses = append(responses, body)
			}
		},
		flush: o.trailingRecords,
	}

	if err := scanRecords(r, rules); err != nil {
		return nil, err
	}
	return responses, nil
}

// LoadDefaultResponses parses the default response file at path. The result
// is never empty: when the file is missing, unreadable or holds no complete
// record, it contains only FallbackResponse.
func LoadDefaultResponses(path string, log zerolog.Logger, opts ...ParseOption) []string {
	var responses []string
	err := readResource(path, func(r io.Reader) error {
		var err error
		responses, err = ParseDefaultResponses(r, opts...)
		return err
	})
	if err != nil {
		reportResourceError(log, path, err)
		responses = nil
	}

	// Make sure there is at least one response.
	if len(responses) == 0 {
		responses = append(responses, FallbackResponse)
	}

	log.Debug().Str("resource", path).Int("defaults", len(responses)).Msg("default responses loaded")
	return responses
}
