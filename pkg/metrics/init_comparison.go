package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initComparisonMetrics() {
	r.ComparisonsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "graphmetrics_comparisons_total",
			Help: "Total number of cover comparisons performed",
		},
		[]string{"variant", "status"},
	)

	r.ComparisonDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "graphmetrics_comparison_duration_seconds",
			Help:    "Cover comparison duration in seconds",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1.0, 10.0},
		},
		[]string{"variant"},
	)

	r.CommunityPairsEvaluated = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "graphmetrics_community_pairs_evaluated",
			Help:    "Number of community pairs evaluated per comparison",
			Buckets: []float64{10, 100, 1000, 10000, 100000},
		},
	)

	r.NonFiniteResultsTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "graphmetrics_nonfinite_results_total",
			Help: "Total number of comparisons whose score was not finite",
		},
	)
}
