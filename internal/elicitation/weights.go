// Package elicitation provides the positional-scoring-rule primitives the
// regret core consumes: the validated, immutable weight vector and its
// declarative YAML form.
package elicitation

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/go-playground/validator/v10"
)

// Common errors returned by weight vector operations.
var (
	// ErrNonFiniteWeight indicates that a weight is NaN or infinite.
	ErrNonFiniteWeight = errors.New("weight must be finite")

	// ErrWeightOrder indicates that the weight vector is not non-increasing
	// from rank 1 to its last rank.
	ErrWeightOrder = errors.New("weights must be non-increasing by rank")

	// ErrRankOutOfRange indicates a lookup at a rank the vector does not
	// cover.
	ErrRankOutOfRange = errors.New("rank outside weight vector domain")
)

// Package-level validator instance for weight vector validation.
// Uses go-playground/validator v10 for struct tag-based validation.
var validate = validator.New()

// weightsSpec is the validatable shape of a weight vector. It is shared by
// NewPSRWeights and by the YAML document ParseWeights consumes.
type weightsSpec struct {
	Values []float64 `yaml:"values" json:"values" validate:"required,min=1,dive,gte=0"`
}

// PSRWeights is the ordered, fixed-length weight vector of a positional
// scoring rule: rank 1 maps to the first weight, rank m to the last.
// A PSRWeights is validated at construction and immutable afterwards, so
// it can be shared freely across concurrent readers.
type PSRWeights struct {
	values []float64
}

// NewPSRWeights creates a weight vector from values, where values[0] is the
// weight of rank 1. The vector must be non-empty, every weight finite and
// non-negative, and the sequence non-increasing. Construction fails with a
// validation error otherwise; no partially-built vector escapes.
func NewPSRWeights(values []float64) (PSRWeights, error) {
	if err := validate.Struct(weightsSpec{Values: values}); err != nil {
		return PSRWeights{}, fmt.Errorf("weight validation failed: %w", err)
	}

	for i, w := range values {
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return PSRWeights{}, fmt.Errorf("%w: rank %d is %v", ErrNonFiniteWeight, i+1, w)
		}
		if i > 0 && w > values[i-1] {
			return PSRWeights{}, fmt.Errorf("%w: rank %d (%v) exceeds rank %d (%v)",
				ErrWeightOrder, i+1, w, i, values[i-1])
		}
	}

	return PSRWeights{values: slices.Clone(values)}, nil
}

// WeightAtRank returns the weight at the 1-indexed rank.
// It returns ErrRankOutOfRange when rank is outside [1, Size].
func (w PSRWeights) WeightAtRank(rank int) (float64, error) {
	if rank < 1 || rank > len(w.values) {
		return 0, fmt.Errorf("%w: rank %d, domain [1, %d]", ErrRankOutOfRange, rank, len(w.values))
	}
	return w.values[rank-1], nil
}

// Size returns the number of rank positions the vector covers.
func (w PSRWeights) Size() int { return len(w.values) }

// IsZero reports whether w is the zero value, i.e. was never constructed
// through NewPSRWeights.
func (w PSRWeights) IsZero() bool { return w.values == nil }

// Values returns a copy of the weights, rank 1 first.
func (w PSRWeights) Values() []float64 { return slices.Clone(w.values) }

// Equal reports whether w and o assign the same weight to every rank.
func (w PSRWeights) Equal(o PSRWeights) bool { return slices.Equal(w.values, o.values) }

// String returns a debug form such as "PSRWeights[3 1 0]".
func (w PSRWeights) String() string { return fmt.Sprintf("PSRWeights%v", w.values) }
