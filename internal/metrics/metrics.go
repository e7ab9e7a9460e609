// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package metrics holds the Prometheus collectors for parse runs.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Strategy run outcomes.
const (
	OutcomeSuccess       = "success"
	OutcomeNotApplicable = "not_applicable"
	OutcomeError         = "error"
)

// Metrics contains the parser collectors. A nil *Metrics is valid and
// records nothing.
type Metrics struct {
	StrategyRuns  *prometheus.CounterVec
	Parses        *prometheus.CounterVec
	ParseDuration *prometheus.HistogramVec
}

// New creates the collectors and registers them on reg. A nil reg leaves
// them unregistered, which tests use to inspect counters in isolation.
func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		StrategyRuns: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "fdk_parser",
				Subsystem: "strategy",
				Name:      "runs_total",
				Help:      "Dialect strategy executions by outcome",
			},
			[]string{"kind", "strategy", "outcome"},
		),
		Parses: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "fdk_parser",
				Name:      "parse_total",
				Help:      "Resolve-and-merge calls by outcome",
			},
			[]string{"kind", "outcome"},
		),
		ParseDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "fdk_parser",
				Name:      "parse_duration_seconds",
				Help:      "Resolve-and-merge duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"kind"},
		),
	}
	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{m.StrategyRuns, m.Parses, m.ParseDuration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// StrategyRun counts one strategy execution.
func (m *Metrics) StrategyRun(kind, strategy, outcome string) {
	if m == nil {
		return
	}
	m.StrategyRuns.WithLabelValues(kind, strategy, outcome).Inc()
}

// Parse counts one resolve-and-merge call and its duration.
func (m *Metrics) Parse(kind string, ok bool, elapsed time.Duration) {
	if m == nil {
		return
	}
	outcome := OutcomeSuccess
	if !ok {
		outcome = OutcomeError
	}
	m.Parses.WithLabelValues(kind, outcome).Inc()
	m.ParseDuration.WithLabelValues(kind).Observe(elapsed.Seconds())
}
