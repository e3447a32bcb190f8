// Blueprint for new Go projects
// Author: Christi Mahu – https://christimahu.dev
// Part of the dev repo: https://github.com/christimahu/dev/
// This file is part of a minimal idiomatic Go blueprint for creating new applications.
//
// input.go - Turns lines of user input into sets of words for the responder.

package input

import (
	"bufio"
	"io"
	"strings"
	"unicode"

	"github.com/clipperhouse/uax29/v2/words"

	"github.com/christimahu/dev/blueprints/techsupport/src/chatbot"
)

// Words splits line into lowercase words on Unicode word boundaries.
// Whitespace and punctuation are dropped; contractions such as "what's" and
// numbers such as "3.5" stay whole.
func Words(line string) chatbot.WordSet {
	set := chatbot.WordSet{}
	tokens := words.FromString(strings.ToLower(line))
	for tokens.Next() {
		w := tokens.Value()
		if isWord(w) {
			set[w] = struct{}{}
		}
	}
	return set
}

// isWord reports whether a segment holds at least one letter or digit.
func isWord(segment string) bool {
	return strings.IndexFunc(segment, func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsDigit(r)
	}) >= 0
}

// Reader reads user input one line at a time.
type Reader struct {
	sc *bufio.Scanner
}

// NewReader returns a Reader over r.
func NewReader(r io.Reader) *Reader {
	return &Reader{sc: bufio.NewScanner(r)}
}

// Next returns the next input line, trimmed, and its words. ok is false at
// the end of input.
func (r *Reader) Next() (line string, set chatbot.WordSet, ok bool) {
	if !r.sc.Scan() {
		return "", nil, false
	}
	line = strings.TrimSpace(r.sc.Text())
	return line, Words(line), true
}

// Err returns the first non-EOF error encountered by the Reader.
func (r *Reader) Err() error {
	return r.sc.Err()
}
