/*
 * Copyright (c) 2025, Kyle Brown <kylebrw@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package expand

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type MetricsStore interface {
	Registry() *prometheus.Registry

	// Collection
	IncRuns()
	IncRewrites(rule string)
	IncErrors(kind string)
	ObserveRunNS(t int64)
}

type metricsStore struct {
	registry *prometheus.Registry
	Runs     prometheus.Counter
	Rewrites *prometheus.CounterVec
	Errors   *prometheus.CounterVec
	RunNS    prometheus.Histogram
}

var (
	RuleLabel = "rule"
	KindLabel = "kind"
)

func NewMetricsStore() MetricsStore {
	reg := prometheus.NewRegistry()

	factory := promauto.With(reg)
	return &metricsStore{
		registry: reg,
		Runs: factory.NewCounter(prometheus.CounterOpts{
			Name: "slang_expansion_runs",
			Help: "The total number of expansion runs",
		}),
		Rewrites: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "slang_rewrites",
			Help: "Rewrite counts per rule pattern",
		}, []string{RuleLabel}),
		Errors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "slang_expansion_errors",
			Help: "Expansion failures by error kind",
		}, []string{KindLabel}),
		RunNS: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "slang_expansion_ns",
			Help:    "Wall time of expansion runs",
			Buckets: prometheus.ExponentialBuckets(1000, 10, 8),
		}),
	}
}

func (ms *metricsStore) Registry() *prometheus.Registry {
	return ms.registry
}

func (ms *metricsStore) IncRuns() {
	ms.Runs.Inc()
}

func (ms *metricsStore) IncRewrites(rule string) {
	ms.Rewrites.With(prometheus.Labels{RuleLabel: rule}).Inc()
}

func (ms *metricsStore) IncErrors(kind string) {
	ms.Errors.With(prometheus.Labels{KindLabel: kind}).Inc()
}

func (ms *metricsStore) ObserveRunNS(t int64) {
	ms.RunNS.Observe(float64(t))
}
