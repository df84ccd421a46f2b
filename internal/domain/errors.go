package domain

import "errors"

// Common domain errors returned by preference operations.
var (
	// ErrEmptyRanking indicates that a strict preference was built from an
	// empty alternative list.
	ErrEmptyRanking = errors.New("ranking contains no alternatives")

	// ErrDuplicateAlternative indicates that the same alternative appears
	// more than once in a strict ranking.
	ErrDuplicateAlternative = errors.New("duplicate alternative in ranking")

	// ErrAlternativeNotRanked indicates that a rank lookup was attempted
	// for an alternative the voter did not rank.
	ErrAlternativeNotRanked = errors.New("alternative not ranked by voter")
)
