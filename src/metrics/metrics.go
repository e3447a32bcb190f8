// Blueprint for new Go projects
// Author: Christi Mahu – https://christimahu.dev
// Part of the dev repo: https://github.com/christimahu/dev/
// This file is part of a minimal idiomatic Go blueprint for creating new applications.
//
// metrics.go - Prometheus metrics for keyword lookups and store sizes.

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/christimahu/dev/blueprints/techsupport/src/chatbot"
)

// Recorder counts lookup outcomes. It implements chatbot.LookupRecorder.
type Recorder struct {
	lookups  *prometheus.CounterVec
	keywords prometheus.Gauge
	defaults prometheus.Gauge
}

var _ chatbot.LookupRecorder = (*Recorder)(nil)

// NewRecorder creates the metrics and registers them with reg.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "techsupport_keyword_lookups_total",
			Help: "Total responses generated, by matched keyword and outcome",
		}, []string{"keyword", "outcome"}),
		keywords: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "techsupport_keywords",
			Help: "Number of keywords in the response map",
		}),
		defaults: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "techsupport_default_responses",
			Help: "Number of responses in the default pool",
		}),
	}

	for _, c := range []prometheus.Collector{r.lookups, r.keywords, r.defaults} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// RecordLookup counts one generated response. Fallbacks carry an empty keyword.
func (r *Recorder) RecordLookup(keyword, outcome string) {
	r.lookups.WithLabelValues(keyword, outcome).Inc()
}

// ObserveStores publishes the store sizes of a loaded responder.
func (r *Recorder) ObserveStores(stats chatbot.Stats) {
	r.keywords.Set(float64(stats.Keywords))
	r.defaults.Set(float64(stats.Defaults))
}
