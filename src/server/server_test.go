// Blueprint for new Go projects
// Author: Christi Mahu – https://christimahu.dev
// Part of the dev repo: https://github.com/christimahu/dev/
// This file is part of a minimal idiomatic Go blueprint for creating new applications.
//
// server_test.go - Request tests against the Fiber app using app.Test.

package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/christimahu/dev/blueprints/techsupport/src/chatbot"
	"github.com/christimahu/dev/blueprints/techsupport/src/metrics"
)

// newTestServer returns a server over a small in-memory responder with
// metrics recorded on a private registry.
func newTestServer(t *testing.T) *Server {
	t.Helper()
	reg := prometheus.NewRegistry()
	rec, err := metrics.NewRecorder(reg)
	require.NoError(t, err)

	r := chatbot.NewResponderFromTables(
		map[string]string{"crash": "\nWell, it never crashes on our system.\n", "Linux": "\nPenguins!\n"},
		[]string{"\nThat sounds odd."},
		chatbot.WithRecorder(rec),
	)
	rec.ObserveStores(r.Stats())
	return New(r, reg, zerolog.Nop())
}

func postRespond(t *testing.T, s *Server, body string) (int, []byte) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/respond", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := s.App.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, data
}

// Text is tokenized like terminal input, so case and punctuation don't matter.
func TestRespond_Text(t *testing.T) {
	s := newTestServer(t)

	code, body := postRespond(t, s, `{"text": "My computer CRASHES all the time... crash!"}`)
	require.Equal(t, http.StatusOK, code, string(body))

	var got RespondResponse
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, RespondResponse{
		Response: "\nWell, it never crashes on our system.\n",
		Keyword:  "crash",
		Outcome:  chatbot.OutcomeResolved,
	}, got)
}

// Explicit words are matched as given, which reaches case-sensitive keys.
func TestRespond_Words(t *testing.T) {
	s := newTestServer(t)

	code, body := postRespond(t, s, `{"words": ["Linux"]}`)
	require.Equal(t, http.StatusOK, code)

	var got RespondResponse
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, "\nPenguins!\n", got.Response)
	assert.Equal(t, "Linux", got.Keyword)
}

func TestRespond_Fallback(t *testing.T) {
	s := newTestServer(t)

	code, body := postRespond(t, s, `{"text": "tell me a joke"}`)
	require.Equal(t, http.StatusOK, code)

	var got RespondResponse
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, "\nThat sounds odd.", got.Response)
	assert.Equal(t, chatbot.OutcomeFallback, got.Outcome)
	assert.Empty(t, got.Keyword)
}

func TestRespond_BadRequests(t *testing.T) {
	s := newTestServer(t)

	for _, body := range []string{`{not json`, `{}`, `{"text": "", "words": [""]}`} {
		code, data := postRespond(t, s, body)
		assert.Equal(t, http.StatusBadRequest, code, body)
		assert.Contains(t, string(data), `"error"`)
	}
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	resp, err := s.App.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got HealthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, HealthResponse{Status: "ok", Keywords: 2, Defaults: 1}, got)
}

// Lookups made over HTTP are visible on the metrics endpoint.
func TestMetrics(t *testing.T) {
	s := newTestServer(t)
	postRespond(t, s, `{"text": "crash"}`)

	resp, err := s.App.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(data), `techsupport_keyword_lookups_total{keyword="crash",outcome="resolved"} 1`)
	assert.Contains(t, string(data), `techsupport_keywords 2`)
}

// Without a gatherer there is no metrics route.
func TestMetrics_Disabled(t *testing.T) {
	r := chatbot.NewResponderFromTables(nil, nil)
	s := New(r, nil, zerolog.Nop())

	resp, err := s.App.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
