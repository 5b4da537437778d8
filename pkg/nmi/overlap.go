// Package nmi computes overlap Normalized Mutual Information between two
// covers of the same vertex universe. Communities may overlap, so the
// classical partition-based NMI does not apply; membership in each community
// is instead treated as a Bernoulli variable per vertex and matched against
// its best-fitting counterpart in the other cover.
package nmi

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/dd0wney/cluso-graphmetrics/pkg/cover"
	"github.com/dd0wney/cluso-graphmetrics/pkg/logging"
)

// Compute returns the overlap-NMI score between two covers of a universe of
// numVertices vertices. 1 means the covers are mutually derivable; lower
// means less similar. Under VariantLiteral the score is not confined to
// [0, 1], and when the anti-correlation sentinel reaches the final sum the
// score is -Inf. A non-finite score is a value, not an error; callers that
// care should check math.IsInf / math.IsNaN on the result.
//
// The computation is a single deterministic pass with no retained state;
// identical inputs produce bit-identical output.
func Compute(numVertices int, coverX, coverY cover.Cover, opts Options) (float64, error) {
	if numVertices <= 0 {
		if opts.Metrics != nil {
			opts.Metrics.RecordComparisonError(opts.Variant.String())
		}
		return 0, fmt.Errorf("%w: got %d", ErrInvalidVertexCount, numVertices)
	}
	if len(coverX) == 0 || len(coverY) == 0 {
		if opts.Metrics != nil {
			opts.Metrics.RecordComparisonError(opts.Variant.String())
		}
		return 0, ErrEmptyCover
	}

	setsX, err := membershipSets(numVertices, coverX)
	if err != nil {
		if opts.Metrics != nil {
			opts.Metrics.RecordComparisonError(opts.Variant.String())
		}
		return 0, fmt.Errorf("cover x: %w", err)
	}
	setsY, err := membershipSets(numVertices, coverY)
	if err != nil {
		if opts.Metrics != nil {
			opts.Metrics.RecordComparisonError(opts.Variant.String())
		}
		return 0, fmt.Errorf("cover y: %w", err)
	}

	start := time.Now()
	tr := newTracer(opts.Logger)

	dXY := distance(opts.Variant, numVertices, setsX, setsY, "x_given_y", tr)
	dYX := distance(opts.Variant, numVertices, setsY, setsX, "y_given_x", tr)
	score := 1 - 0.5*dXY - 0.5*dYX

	elapsed := time.Since(start)
	tr.done(score, elapsed)
	if opts.Metrics != nil {
		opts.Metrics.RecordComparison(opts.Variant.String(), "ok", elapsed, 2*len(coverX)*len(coverY))
		if math.IsInf(score, 0) || math.IsNaN(score) {
			opts.Metrics.RecordNonFiniteResult()
		}
	}

	return score, nil
}

// membershipSets converts a cover to membership sets, rejecting communities
// whose marginal distribution would have a zero cell: the entropy term has
// no value at 0 or 1, so sizes must stay strictly between 0 and numVertices.
func membershipSets(numVertices int, c cover.Cover) ([]map[uint64]bool, error) {
	sets := make([]map[uint64]bool, len(c))
	for i, comm := range c {
		set := comm.Set()
		if len(set) == 0 || len(set) >= numVertices {
			return nil, fmt.Errorf("%w: community %d has %d distinct vertices in a universe of %d",
				ErrDegenerateCommunity, i, len(set), numVertices)
		}
		sets[i] = set
	}
	return sets, nil
}

// distance is the directional term: for each community in capX, the minimum
// conditional entropy over all candidates in capY (first minimum wins on
// ties), normalized by the community's own marginal entropy, averaged over
// capX. The +Inf sentinel flows arithmetically through minimum and mean.
func distance(v Variant, numVertices int, capX, capY []map[uint64]bool, direction string, tr *tracer) float64 {
	sum := 0.0
	for i, setX := range capX {
		// Materialize every candidate before taking the minimum
		condEntropies := make([]float64, len(capY))
		for j, setY := range capY {
			condEntropies[j] = condEntropy(v, numVertices, setX, setY)
		}

		minEntropy := condEntropies[0]
		minIndex := 0
		for j := 1; j < len(condEntropies); j++ {
			if condEntropies[j] < minEntropy {
				minEntropy = condEntropies[j]
				minIndex = j
			}
		}

		marginal := singleDistribution(numVertices, setX)
		normalized := minEntropy / (entropyTerm(v, marginal[0]) + entropyTerm(v, marginal[1]))
		tr.match(direction, i, minIndex, minEntropy, normalized)

		sum += normalized
	}
	return sum / float64(len(capX))
}

// condEntropy estimates H(X|Y) for one community pair under the smoothed
// joint model: joint entropy minus the marginal entropy of Y. Returns +Inf
// when Y fails the eligibility check e11+e00 > e01+e10, i.e. when Y's
// membership does not track X's in the positive direction and Y is closer to
// being X's negation than its match.
func condEntropy(v Variant, numVertices int, setX, setY map[uint64]bool) float64 {
	prob := jointDistribution(numVertices, setX, setY)
	e00 := entropyTerm(v, prob[0][0])
	e01 := entropyTerm(v, prob[0][1])
	e10 := entropyTerm(v, prob[1][0])
	e11 := entropyTerm(v, prob[1][1])

	if e11+e00 <= e01+e10 {
		return math.Inf(1)
	}

	marginalY := singleDistribution(numVertices, setY)
	jointEntropy := e00 + e01 + e10 + e11
	return jointEntropy - (entropyTerm(v, marginalY[0]) + entropyTerm(v, marginalY[1]))
}

// jointDistribution builds the 2x2 joint membership table, first index keyed
// by membership in X, second by membership in Y. Laplace smoothing adds 1 to
// each cell's count and 4 to the denominator, keeping every cell inside
// (0, 1); the [0][0] count is N-k, so the cells total
// (N+|X|+|Y|-2k+4)/(N+4), which is 1 only for equal communities. The
// unsmoothed marginal from singleDistribution has no such protection.
func jointDistribution(numVertices int, setX, setY map[uint64]bool) [2][2]float64 {
	intersectSize := float64(cover.IntersectionSize(setX, setY))
	capN := float64(numVertices + 4)

	var prob [2][2]float64
	prob[1][1] = (intersectSize + 1) / capN
	prob[1][0] = (float64(len(setX)) - intersectSize + 1) / capN
	prob[0][1] = (float64(len(setY)) - intersectSize + 1) / capN
	prob[0][0] = (float64(numVertices) - intersectSize + 1) / capN
	return prob
}

// singleDistribution returns [P(not in C), P(in C)], the exact empirical
// marginal for one community.
func singleDistribution(numVertices int, set map[uint64]bool) [2]float64 {
	p1 := float64(len(set)) / float64(numVertices)
	return [2]float64{1 - p1, p1}
}

// entropyTerm evaluates one entropy summand for probability p.
func entropyTerm(v Variant, p float64) float64 {
	if v == VariantShannon {
		if p == 0 {
			return 0
		}
		return -p * math.Log2(p)
	}
	// The logarithm is taken in base p: -p*log_p(2). Negative conditional
	// entropies and scores above 1 are normal for this variant.
	return -p * (math.Ln2 / math.Log(p))
}

// tracer emits per-computation debug lines when a logger is configured.
// A nil tracer is valid and silent.
type tracer struct {
	logger logging.Logger
}

func newTracer(logger logging.Logger) *tracer {
	if logger == nil {
		return nil
	}
	return &tracer{
		logger: logger.With(logging.Component("nmi"), logging.RunID(uuid.NewString())),
	}
}

func (t *tracer) match(direction string, source, matched int, condEntropy, normalized float64) {
	if t == nil {
		return
	}
	t.logger.Debug("community matched",
		logging.String("direction", direction),
		logging.Int("community", source),
		logging.Int("matched", matched),
		logging.Float64("cond_entropy", condEntropy),
		logging.Float64("normalized", normalized),
	)
}

func (t *tracer) done(score float64, elapsed time.Duration) {
	if t == nil {
		return
	}
	t.logger.Info("overlap nmi computed", logging.Score(score), logging.Latency(elapsed))
}
