package regret

import "errors"

// Construction errors for PairwiseMaxRegret. All of them are fatal to the
// attempted construction; no partially-built value escapes.
var (
	// ErrMissingRanks indicates that a required rank assignment is nil.
	ErrMissingRanks = errors.New("rank assignment is required")

	// ErrMissingWeights indicates that the weight vector is the zero value.
	ErrMissingWeights = errors.New("weight vector is required")

	// ErrValueMismatch indicates that the supplied pmr value disagrees with
	// the rank-derived score difference by at least the tolerated
	// imprecision. It signals arithmetic inconsistency in the caller.
	ErrValueMismatch = errors.New("pmr value disagrees with rank-derived score difference")

	// ErrSelfComparisonRanks indicates that an alternative was compared
	// against itself with differing rank data.
	ErrSelfComparisonRanks = errors.New("self comparison requires identical rank data")

	// ErrSelfComparisonValue indicates that an alternative was compared
	// against itself with a nonzero pmr value.
	ErrSelfComparisonValue = errors.New("self comparison requires a zero pmr value")
)
