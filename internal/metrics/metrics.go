package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/spigell/hh-planner/internal/hiring"
)

const (
	OutcomeOK         = "ok"
	OutcomeNoSolution = "no_solution"
	OutcomeError      = "error"
)

// Recorder keeps search metrics in its own registry and implements hiring.Observer.
type Recorder struct {
	Registry *prometheus.Registry

	searches *prometheus.CounterVec
	nodes    *prometheus.CounterVec
	pruned   *prometheus.CounterVec
	duration *prometheus.HistogramVec
	coverage *prometheus.GaugeVec
}

// NewRecorder creates a recorder with all search metrics registered.
func NewRecorder() *Recorder {
	r := &Recorder{
		Registry: prometheus.NewRegistry(),
		searches: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "hiring_searches_total", Help: "Searches by strategy and outcome."},
			[]string{"strategy", "outcome"},
		),
		nodes: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "hiring_search_nodes_total", Help: "Search nodes expanded."},
			[]string{"strategy"},
		),
		pruned: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "hiring_search_pruned_total", Help: "Search branches skipped by bounds."},
			[]string{"strategy"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{Name: "hiring_search_duration_seconds", Help: "Search duration in seconds.", Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10)},
			[]string{"strategy"},
		),
		coverage: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{Name: "hiring_coverage", Help: "Hours covered by the last selection."},
			[]string{"strategy"},
		),
	}

	r.Registry.MustRegister(r.searches, r.nodes, r.pruned, r.duration, r.coverage)
	return r
}

// Observe records a finished search. A nil result counts as a failed search of an unknown strategy.
func (r *Recorder) Observe(res *hiring.Result, err error) {
	if res == nil {
		r.searches.WithLabelValues("unknown", OutcomeError).Inc()
		return
	}

	strategy := string(res.Strategy)
	outcome := OutcomeOK
	switch {
	case errors.Is(err, hiring.ErrNoSolution):
		outcome = OutcomeNoSolution
	case err != nil:
		outcome = OutcomeError
	}

	r.searches.WithLabelValues(strategy, outcome).Inc()
	r.nodes.WithLabelValues(strategy).Add(float64(res.Stats.Nodes))
	r.pruned.WithLabelValues(strategy).Add(float64(res.Stats.Pruned))
	r.duration.WithLabelValues(strategy).Observe(res.Duration.Seconds())
	if outcome == OutcomeOK {
		r.coverage.WithLabelValues(strategy).Set(float64(res.Coverage))
	}
}

// WriteTextfile writes the registry in the text exposition format, e.g. for the node exporter textfile collector.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.Registry)
}
