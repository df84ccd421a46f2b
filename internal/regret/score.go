// Package regret implements the pairwise max regret core of a minimax
// preference-elicitation scheme: positional score computation and the
// validated, immutable PairwiseMaxRegret value object. Everything in this
// package is a pure computation over immutable inputs; values may be shared
// across goroutines without synchronization.
package regret

import (
	"maps"
	"slices"

	"gonum.org/v1/gonum/floats"

	"github.com/rdepoix/minimax-ex/internal/domain"
	"github.com/rdepoix/minimax-ex/internal/elicitation"
)

// RankAssignment maps each voter to the 1-indexed rank a given alternative
// holds in that voter's ranking (1 = most preferred).
type RankAssignment map[domain.Voter]int

// ScoreFromRanks returns the total score the weight vector assigns to the
// rank assignment: the sum, over every voter in ranks, of the weight at
// that voter's rank. An empty assignment scores 0. A rank outside the
// weight vector's domain surfaces the elicitation.ErrRankOutOfRange error
// unchanged.
//
// Summation runs in ascending voter order so the result is deterministic
// across calls regardless of map iteration order.
func ScoreFromRanks(ranks RankAssignment, weights elicitation.PSRWeights) (float64, error) {
	if len(ranks) == 0 {
		return 0, nil
	}

	voters := slices.SortedFunc(maps.Keys(ranks), domain.Voter.Compare)
	terms := make([]float64, 0, len(voters))
	for _, voter := range voters {
		w, err := weights.WeightAtRank(ranks[voter])
		if err != nil {
			return 0, err
		}
		terms = append(terms, w)
	}
	return floats.Sum(terms), nil
}

// ScoreFromProfile returns the total score of alternative under weights,
// given each voter's full strict preference: for every voter in profile it
// looks up the rank of alternative and applies the weight at that rank.
// It is equivalent to building a RankAssignment from the per-voter rank
// lookups and calling ScoreFromRanks. A voter whose preference does not
// rank the alternative surfaces domain.ErrAlternativeNotRanked unchanged.
func ScoreFromProfile(alternative domain.Alternative, profile map[domain.Voter]domain.StrictPreference, weights elicitation.PSRWeights) (float64, error) {
	ranks := make(RankAssignment, len(profile))
	for voter, pref := range profile {
		rank, err := pref.AlternativeRank(alternative)
		if err != nil {
			return 0, err
		}
		ranks[voter] = rank
	}
	return ScoreFromRanks(ranks, weights)
}
