package regret

import (
	"encoding/binary"
	"fmt"
	"maps"
	"math"
	"slices"

	"github.com/cespare/xxhash/v2"

	"github.com/rdepoix/minimax-ex/internal/domain"
	"github.com/rdepoix/minimax-ex/internal/elicitation"
)

// imprecisionTolerated is the fixed absolute tolerance allowed between a
// supplied pmr value and the rank-derived score difference. A value
// accumulated as, say, (3−2)·w1 + (4−1)·w2 can differ slightly from
// (3·w1 + 4·w2) − (2·w1 + 1·w2), and that reordering error is accepted.
const imprecisionTolerated = 1e-8

// PairwiseMaxRegret is the regret of selecting alternative x instead of y
// under a fixed positional-scoring weight vector: score(y) − score(x),
// summed over voters. It is an immutable value object: rank data is copied
// at construction, both invariants below are checked before the value
// escapes, and nothing can be mutated afterwards.
//
// Invariants:
//  1. value matches the score difference derived from the rank data,
//     within imprecisionTolerated.
//  2. when x equals y, the two rank assignments are identical and value
//     is exactly zero.
type PairwiseMaxRegret struct {
	x        domain.Alternative
	y        domain.Alternative
	ranksOfX RankAssignment
	ranksOfY RankAssignment
	weights  elicitation.PSRWeights
	value    float64
}

// Given builds a PairwiseMaxRegret whose value is computed directly from
// the rank data: ScoreFromRanks(ranksOfY) − ScoreFromRanks(ranksOfX).
// This path cannot fail the tolerance invariant, but the self-comparison
// invariant still applies when x equals y. Nil rank assignments and the
// zero weight vector are refused; weight-lookup failures propagate
// unchanged.
func Given(x, y domain.Alternative, ranksOfX, ranksOfY RankAssignment, weights elicitation.PSRWeights) (*PairwiseMaxRegret, error) {
	return build(x, y, ranksOfX, ranksOfY, weights, nil)
}

// GivenValue builds a PairwiseMaxRegret from an externally computed value,
// for callers that accumulated the regret by a different but mathematically
// equivalent path (per-voter differences, for example). The value is still
// re-derived from the rank data and must agree strictly within
// imprecisionTolerated, or construction fails with ErrValueMismatch.
func GivenValue(x, y domain.Alternative, ranksOfX, ranksOfY RankAssignment, weights elicitation.PSRWeights, value float64) (*PairwiseMaxRegret, error) {
	return build(x, y, ranksOfX, ranksOfY, weights, &value)
}

func checkRequired(ranksOfX, ranksOfY RankAssignment, weights elicitation.PSRWeights) error {
	if ranksOfX == nil {
		return fmt.Errorf("%w: ranks of x", ErrMissingRanks)
	}
	if ranksOfY == nil {
		return fmt.Errorf("%w: ranks of y", ErrMissingRanks)
	}
	if weights.IsZero() {
		return ErrMissingWeights
	}
	return nil
}

// build is the single construction path behind Given and GivenValue.
// A nil supplied pointer means "use the rank-derived value"; a non-nil one
// is tolerance-checked against it.
func build(x, y domain.Alternative, ranksOfX, ranksOfY RankAssignment, weights elicitation.PSRWeights, supplied *float64) (*PairwiseMaxRegret, error) {
	if err := checkRequired(ranksOfX, ranksOfY, weights); err != nil {
		return nil, err
	}

	scoreX, err := ScoreFromRanks(ranksOfX, weights)
	if err != nil {
		return nil, err
	}
	scoreY, err := ScoreFromRanks(ranksOfY, weights)
	if err != nil {
		return nil, err
	}
	derived := scoreY - scoreX

	value := derived
	if supplied != nil {
		// Strict: a deviation of exactly imprecisionTolerated is refused.
		if math.Abs(*supplied-derived) >= imprecisionTolerated {
			return nil, fmt.Errorf("%w: supplied %v, derived %v", ErrValueMismatch, *supplied, derived)
		}
		value = *supplied
	}

	if x == y {
		if !maps.Equal(ranksOfX, ranksOfY) {
			return nil, fmt.Errorf("%w: %v, %v", ErrSelfComparisonRanks, ranksOfX, ranksOfY)
		}
		if value != 0 {
			return nil, fmt.Errorf("%w: supplied %v", ErrSelfComparisonValue, value)
		}
	}

	return &PairwiseMaxRegret{
		x:        x,
		y:        y,
		ranksOfX: maps.Clone(ranksOfX),
		ranksOfY: maps.Clone(ranksOfY),
		weights:  weights,
		value:    value,
	}, nil
}

// X returns the alternative whose selection is being regretted.
func (p *PairwiseMaxRegret) X() domain.Alternative { return p.x }

// Y returns the alternative x is compared against.
func (p *PairwiseMaxRegret) Y() domain.Alternative { return p.y }

// RanksOfX returns a copy of the rank assignment for x.
func (p *PairwiseMaxRegret) RanksOfX() RankAssignment { return maps.Clone(p.ranksOfX) }

// RanksOfY returns a copy of the rank assignment for y.
func (p *PairwiseMaxRegret) RanksOfY() RankAssignment { return maps.Clone(p.ranksOfY) }

// Weights returns the weight vector the regret was computed under.
func (p *PairwiseMaxRegret) Weights() elicitation.PSRWeights { return p.weights }

// Value returns the pairwise max regret, score(y) − score(x).
func (p *PairwiseMaxRegret) Value() float64 { return p.value }

// Equal reports structural equality over (x, y, ranksOfX, ranksOfY,
// weights). The value is deliberately excluded: it is derived from the
// other fields, so two regrets that differ only by floating-point noise in
// the value still compare equal.
func (p *PairwiseMaxRegret) Equal(o *PairwiseMaxRegret) bool {
	if p == nil || o == nil {
		return p == o
	}
	return p.x == o.x && p.y == o.y &&
		maps.Equal(p.ranksOfX, o.ranksOfX) &&
		maps.Equal(p.ranksOfY, o.ranksOfY) &&
		p.weights.Equal(o.weights)
}

// Hash returns a digest over the same fields Equal compares, so equal
// regrets hash identically. Rank entries are fed to the digest in ascending
// voter order, making the result independent of map iteration order.
func (p *PairwiseMaxRegret) Hash() uint64 {
	d := xxhash.New()
	writeUint64(d, uint64(p.x.ID()))
	writeUint64(d, uint64(p.y.ID()))
	hashRanks(d, p.ranksOfX)
	hashRanks(d, p.ranksOfY)
	values := p.weights.Values()
	writeUint64(d, uint64(len(values)))
	for _, w := range values {
		writeUint64(d, math.Float64bits(w))
	}
	return d.Sum64()
}

func writeUint64(d *xxhash.Digest, v uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	d.Write(buf[:])
}

func hashRanks(d *xxhash.Digest, ranks RankAssignment) {
	voters := slices.SortedFunc(maps.Keys(ranks), domain.Voter.Compare)
	writeUint64(d, uint64(len(voters)))
	for _, voter := range voters {
		writeUint64(d, uint64(voter.ID()))
		writeUint64(d, uint64(ranks[voter]))
	}
}

// String returns a debug form listing all fields, for caller-side logging.
// It is not a parsed format.
func (p *PairwiseMaxRegret) String() string {
	return fmt.Sprintf("PairwiseMaxRegret{x=%s, y=%s, ranksOfX=%v, ranksOfY=%v, weights=%s, value=%v}",
		p.x, p.y, p.ranksOfX, p.ranksOfY, p.weights, p.value)
}
