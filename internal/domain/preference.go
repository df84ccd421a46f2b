package domain

import (
	"fmt"
	"strings"
)

// StrictPreference is one voter's strict total order over a set of
// alternatives, most preferred first. It is immutable after construction:
// the incoming ranking is copied, and accessors hand out copies, so a
// caller can never alter a preference it did not build.
type StrictPreference struct {
	voter   Voter
	ranking []Alternative
	// rankOf maps each alternative to its 1-indexed position in ranking.
	rankOf map[Alternative]int
}

// NewStrictPreference creates a strict preference for voter over the given
// alternatives, ordered most preferred first.
// It returns ErrEmptyRanking when the list is empty and
// ErrDuplicateAlternative when an alternative appears more than once.
func NewStrictPreference(voter Voter, ranking []Alternative) (StrictPreference, error) {
	if len(ranking) == 0 {
		return StrictPreference{}, fmt.Errorf("%w: voter %s", ErrEmptyRanking, voter)
	}

	rankOf := make(map[Alternative]int, len(ranking))
	for i, a := range ranking {
		if _, seen := rankOf[a]; seen {
			return StrictPreference{}, fmt.Errorf("%w: %s for voter %s", ErrDuplicateAlternative, a, voter)
		}
		rankOf[a] = i + 1
	}

	owned := make([]Alternative, len(ranking))
	copy(owned, ranking)

	return StrictPreference{
		voter:   voter,
		ranking: owned,
		rankOf:  rankOf,
	}, nil
}

// Voter returns the voter whose preference this is.
func (p StrictPreference) Voter() Voter { return p.voter }

// AlternativeRank returns the 1-indexed rank of a in this preference
// (1 = most preferred). It returns ErrAlternativeNotRanked when a does
// not appear in the voter's ranking.
func (p StrictPreference) AlternativeRank(a Alternative) (int, error) {
	rank, ok := p.rankOf[a]
	if !ok {
		return 0, fmt.Errorf("%w: %s not in ranking of %s", ErrAlternativeNotRanked, a, p.voter)
	}
	return rank, nil
}

// Alternatives returns the ranked alternatives, most preferred first.
// The returned slice is a copy.
func (p StrictPreference) Alternatives() []Alternative {
	out := make([]Alternative, len(p.ranking))
	copy(out, p.ranking)
	return out
}

// Size returns the number of ranked alternatives.
func (p StrictPreference) Size() int { return len(p.ranking) }

// Equal reports whether p and o rank the same alternatives in the same
// order for the same voter.
func (p StrictPreference) Equal(o StrictPreference) bool {
	if p.voter != o.voter || len(p.ranking) != len(o.ranking) {
		return false
	}
	for i, a := range p.ranking {
		if o.ranking[i] != a {
			return false
		}
	}
	return true
}

// String returns a debug form such as "v1: a2 > a1 > a3".
func (p StrictPreference) String() string {
	parts := make([]string, len(p.ranking))
	for i, a := range p.ranking {
		parts[i] = a.String()
	}
	return fmt.Sprintf("%s: %s", p.voter, strings.Join(parts, " > "))
}
