package nmi

import (
	"errors"

	"github.com/dd0wney/cluso-graphmetrics/pkg/logging"
	"github.com/dd0wney/cluso-graphmetrics/pkg/metrics"
)

// Variant selects which entropy term the score is built from.
type Variant int

const (
	// VariantLiteral uses the term -p*log_p(2), the base-p logarithm of 2.
	// This matches the formula overlap-NMI results in the community-detection
	// literature are commonly reported against, so it is the default even
	// though scores from it are not confined to [0,1].
	VariantLiteral Variant = iota
	// VariantShannon uses the conventional Shannon term -p*log2(p), with
	// entropy(0) taken as 0. A different metric with different scores;
	// selected explicitly, never substituted.
	VariantShannon
)

// String returns the string representation of a variant
func (v Variant) String() string {
	switch v {
	case VariantLiteral:
		return "literal"
	case VariantShannon:
		return "shannon"
	default:
		return "unknown"
	}
}

var (
	// ErrInvalidVertexCount is returned when the vertex universe is empty or negative.
	ErrInvalidVertexCount = errors.New("vertex count must be positive")
	// ErrEmptyCover is returned when either cover has no communities, which
	// would make the per-cover mean a division by zero.
	ErrEmptyCover = errors.New("cover has no communities")
	// ErrDegenerateCommunity is returned for communities of size 0 or size >=
	// the vertex count. Their marginal distribution has a zero cell, and the
	// entropy term has no value at 0 or 1.
	ErrDegenerateCommunity = errors.New("community size must be strictly between 0 and the vertex count")
)

// Options configures an overlap-NMI computation.
type Options struct {
	Variant Variant
	Logger  logging.Logger    // nil disables per-community tracing
	Metrics *metrics.Registry // nil disables instrumentation
}

// DefaultOptions returns sensible defaults.
func DefaultOptions() Options {
	return Options{
		Variant: VariantLiteral,
	}
}
