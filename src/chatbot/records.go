// Blueprint for new Go projects
// Author: Christi Mahu – https://christimahu.dev
// Part of the dev repo: https://github.com/christimahu/dev/
// This file is part of a minimal idiomatic Go blueprint for creating new applications.
//
// records.go - The line-record scanner shared by the response map and default
// response parsers. Both resource files are sequences of blank-line-separated
// records; only the header and termination rules differ.

package chatbot

import (
	"bufio"
	"io"
	"strings"
)

// maxLineLength bounds a single line in a resource file.
const maxLineLength = 1 << 20

// line is one line of a resource file as seen by a record grammar.
type line struct {
	raw     string // as read, without the line terminator
	trimmed string // raw with leading and trailing control characters and spaces removed
	last    bool   // no further line follows in the source
}

// recordRules describes one flat-file record grammar.
type recordRules struct {
	// header consumes a line while no record is open and reports whether it
	// opened one. A nil header means a record is always open.
	header func(l line) bool
	// ends reports whether l closes the open record holding body.
	ends func(l line, body string) bool
	// body returns the text l contributes to the open record.
	body func(l line) string
	// finish receives the accumulated body of a closed record.
	finish func(body string)
	// flush finishes a non-empty record left open at end of input.
	flush bool
}

// ParseOption adjusts how resource files are parsed.
type ParseOption func(*parseOptions)

type parseOptions struct {
	trailingRecords bool
}

// WithTrailingRecords keeps records that are not followed by a blank line at
// the end of a resource file. Without it the parsers reproduce the classic
// behavior: the last body line of a response map is consumed as the record
// terminator and an unterminated final default response is dropped.
func WithTrailingRecords() ParseOption {
	return func(o *parseOptions) {
		o.trailingRecords = true
	}
}

func buildParseOptions(opts []ParseOption) parseOptions {
	var o parseOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// scanRecords drives rules over every line in r.
func scanRecords(r io.Reader, rules recordRules) error {
	open := rules.header == nil
	var body strings.Builder

	err := scanLines(r, func(l line) {
		if !open {
			open = rules.header(l)
			return
		}
		if rules.ends(l, body.String()) {
			rules.finish(body.String())
			body.Reset()
			open = rules.header == nil
			return
		}
		body.WriteString(rules.body(l))
	})
	if err != nil {
		return err
	}

	if open && rules.flush && body.Len() > 0 {
		rules.finish(body.String())
	}
	return nil
}

// scanLines calls fn for each line of r, one line behind the reader so that
// fn can tell whether a line is the last one. Lines end at "\n" or "\r\n".
// On a read error fn is not called for the pending line.
func scanLines(r io.Reader, fn func(l line)) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineLength)

	if !sc.Scan() {
		return sc.Err()
	}
	cur := sc.Text()
	for {
		more := sc.Scan()
		if !more {
			if err := sc.Err(); err != nil {
				return err
			}
		}
		fn(line{raw: cur, trimmed: trimLine(cur), last: !more})
		if !more {
			return nil
		}
		cur = sc.Text()
	}
}

// trimLine strips leading and trailing spaces and ASCII control characters.
func trimLine(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return r <= ' '
	})
}

// splitKeys splits a header line on commas. Individual keys are not trimmed,
// and trailing empty keys are discarded, so "a,b," yields [a b] and ","
// yields no keys at all.
func splitKeys(header string) []string {
	keys := strings.Split(header, ",")
	for len(keys) > 0 && keys[len(keys)-1] == "" {
		keys = keys[:len(keys)-1]
	}
	return keys
}
