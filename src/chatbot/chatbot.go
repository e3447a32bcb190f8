// Blueprint for new Go projects
// Author: Christi Mahu – https://christimahu.dev
// Part of the dev repo: https://github.com/christimahu/dev/
// This file is part of a minimal idiomatic Go blueprint for creating new applications.
//
// chatbot.go - A responder that answers a set of input words with a canned
// response. Keywords found in the response map win; anything else gets one of
// the default responses, picked at random.

package chatbot

import (
	"math/rand/v2"
	"sort"
	"sync"

	"github.com/rs/zerolog"
)

// Lookup outcomes reported to a LookupRecorder.
const (
	OutcomeResolved = "resolved"
	OutcomeFallback = "fallback"
)

// WordSet is a set of distinct input words.
type WordSet map[string]struct{}

// NewWordSet returns a WordSet holding words, with duplicates collapsed.
func NewWordSet(words ...string) WordSet {
	set := make(WordSet, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// Contains reports whether word is in the set.
func (s WordSet) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

// Reply is a generated response together with how it was chosen.
type Reply struct {
	Text    string
	Keyword string // matched keyword; empty for a fallback
	Outcome string // OutcomeResolved or OutcomeFallback
}

// LookupRecorder observes every response the Responder generates.
type LookupRecorder interface {
	RecordLookup(keyword, outcome string)
}

// Stats describes the size of a Responder's stores.
type Stats struct {
	Keywords int
	Defaults int
}

// Responder generates responses from a keyword response map and a pool of
// default responses. Both are loaded once by NewResponder and never change,
// so a Responder may be shared between goroutines.
type Responder struct {
	responses map[string]string
	defaults  []string
	recorder  LookupRecorder

	mu  sync.Mutex // guards rng
	rng *rand.Rand
}

// Option configures NewResponder.
type Option func(*options)

type options struct {
	responseMapFile string
	defaultsFile    string
	seed            uint64
	log             zerolog.Logger
	recorder        LookupRecorder
	parseOpts       []ParseOption
}

// WithResponseMapFile sets the response map path. Relative paths resolve
// against the working directory.
func WithResponseMapFile(path string) Option {
	return func(o *options) { o.responseMapFile = path }
}

// WithDefaultsFile sets the default response pool path.
func WithDefaultsFile(path string) Option {
	return func(o *options) { o.defaultsFile = path }
}

// WithSeed makes default response selection reproducible. Zero means a
// random seed.
func WithSeed(seed uint64) Option {
	return func(o *options) { o.seed = seed }
}

// WithLogger sets where load diagnostics are written.
func WithLogger(log zerolog.Logger) Option {
	return func(o *options) { o.log = log }
}

// WithRecorder reports every lookup outcome to rec.
func WithRecorder(rec LookupRecorder) Option {
	return func(o *options) { o.recorder = rec }
}

// WithParseOptions passes opts to both resource parsers.
func WithParseOptions(opts ...ParseOption) Option {
	return func(o *options) { o.parseOpts = append(o.parseOpts, opts...) }
}

// NewResponder loads both resource files and returns a ready Responder.
// It always succeeds; missing or unreadable files are logged and leave an
// empty response map or a pool holding only FallbackResponse.
func NewResponder(opts ...Option) *Responder {
	o := options{
		responseMapFile: DefaultResponseMapFile,
		defaultsFile:    DefaultResponsesFile,
		log:             zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	return newResponder(
		LoadResponseMap(o.responseMapFile, o.log, o.parseOpts...),
		LoadDefaultResponses(o.defaultsFile, o.log, o.parseOpts...),
		o,
	)
}

// NewResponderFromTables builds a Responder from already parsed stores. An
// empty defaults slice is replaced with FallbackResponse.
func NewResponderFromTables(responses map[string]string, defaults []string, opts ...Option) *Responder {
	o := options{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	m := make(map[string]string, len(responses))
	for k, v := range responses {
		m[k] = v
	}
	d := append([]string(nil), defaults...)
	if len(d) == 0 {
		d = append(d, FallbackResponse)
	}
	return newResponder(m, d, o)
}

func newResponder(responses map[string]string, defaults []string, o options) *Responder {
	seed := o.seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &Responder{
		responses: responses,
		defaults:  defaults,
		recorder:  o.recorder,
		rng:       rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// GenerateResponse returns the response for the first word found in the
// response map, or a random default response if none is. When several words
// are keywords, which one wins is unspecified.
func (r *Responder) GenerateResponse(words WordSet) string {
	return r.Respond(words).Text
}

// Respond is GenerateResponse with the matched keyword and outcome attached.
func (r *Responder) Respond(words WordSet) Reply {
	reply := Reply{Outcome: OutcomeFallback}
	if keyword, text, ok := r.Lookup(words); ok {
		reply = Reply{Text: text, Keyword: keyword, Outcome: OutcomeResolved}
	} else {
		reply.Text = r.pickDefaultResponse()
	}

	if r.recorder != nil {
		r.recorder.RecordLookup(reply.Keyword, reply.Outcome)
	}
	return reply
}

// Lookup returns the first word of words that is a keyword, with its response.
func (r *Responder) Lookup(words WordSet) (keyword, response string, ok bool) {
	for word := range words {
		if text, found := r.responses[word]; found {
			return word, text, true
		}
	}
	return "", "", false
}

// pickDefaultResponse draws uniformly from the default pool.
func (r *Responder) pickDefaultResponse() string {
	r.mu.Lock()
	index := r.rng.IntN(len(r.defaults))
	r.mu.Unlock()
	return r.defaults[index]
}

// Keywords returns every keyword in the response map, sorted.
func (r *Responder) Keywords() []string {
	keys := make([]string, 0, len(r.responses))
	for k := range r.responses {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// DefaultResponses returns a copy of the default pool in file order.
func (r *Responder) DefaultResponses() []string {
	return append([]string(nil), r.defaults...)
}

// Stats returns the sizes of both stores.
func (r *Responder) Stats() Stats {
	return Stats{Keywords: len(r.responses), Defaults: len(r.defaults)}
}
