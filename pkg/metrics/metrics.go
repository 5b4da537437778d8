package metrics

import (
	"time"
)

// RecordComparison records a completed cover comparison with its duration and
// the number of community pairs it evaluated.
func (r *Registry) RecordComparison(variant, status string, duration time.Duration, pairsEvaluated int) {
	r.ComparisonsTotal.WithLabelValues(variant, status).Inc()
	r.ComparisonDuration.WithLabelValues(variant).Observe(duration.Seconds())
	r.CommunityPairsEvaluated.Observe(float64(pairsEvaluated))
}

// RecordComparisonError records a comparison rejected before computation
func (r *Registry) RecordComparisonError(variant string) {
	r.ComparisonsTotal.WithLabelValues(variant, "error").Inc()
}

// RecordNonFiniteResult records a comparison whose final score was NaN or infinite
func (r *Registry) RecordNonFiniteResult() {
	r.NonFiniteResultsTotal.Inc()
}
