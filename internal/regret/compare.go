package regret

import "cmp"

// Comparison strategies over PairwiseMaxRegret values, kept outside the
// type so no single ordering is baked in. Both are total orders usable
// with slices.SortFunc.

// CompareByValue orders regrets by ascending numeric value. Ties are not
// broken further; stable-sort behavior is the consumer's responsibility.
func CompareByValue(a, b *PairwiseMaxRegret) int {
	return cmp.Compare(a.value, b.value)
}

// CompareByAlternatives orders regrets lexicographically on the pair they
// describe: first by x's natural order, then by y's, ignoring value and
// rank data. Useful when grouping or deduplicating regrets by pair.
func CompareByAlternatives(a, b *PairwiseMaxRegret) int {
	if c := a.x.Compare(b.x); c != 0 {
		return c
	}
	return a.y.Compare(b.y)
}
