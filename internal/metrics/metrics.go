// SPDX-License-Identifier: MIT

// Package metrics declares the Prometheus collectors for graph scoring and
// ranking. All collectors register with the default registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// GraphsSubmittedTotal counts scored graph submissions.
	GraphsSubmittedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "graphrank_graphs_submitted_total",
			Help: "Total number of graphs submitted and scored",
		},
	)

	// GraphsAdmittedTotal counts submissions admitted into the ranking.
	GraphsAdmittedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "graphrank_graphs_admitted_total",
			Help: "Total number of graphs admitted into the top-K ranking",
		},
	)

	// ReportsTotal counts ranking reports written.
	ReportsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "graphrank_reports_total",
			Help: "Total number of ranking reports written",
		},
	)

	// InputErrorsTotal counts rejected input by kind.
	InputErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "graphrank_input_errors_total",
			Help: "Total number of rejected inputs by kind",
		},
		[]string{"kind"},
	)

	// GraphScore observes the score of each submitted graph.
	GraphScore = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "graphrank_graph_score",
			Help:    "Sum of shortest-path distances from vertex 0 per graph",
			Buckets: prometheus.ExponentialBuckets(1, 4, 12),
		},
	)

	// ScoringDuration observes shortest-path run time per graph.
	ScoringDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "graphrank_scoring_duration_seconds",
			Help:    "Time spent building and scoring one graph",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
		},
	)

	// RankingSize reports the number of entries currently admitted.
	RankingSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "graphrank_ranking_size",
			Help: "Number of graphs currently held in the ranking",
		},
	)
)
