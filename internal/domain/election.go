// Package domain contains pure, dependency-free domain models and types
// for the regret computation core.
package domain

import (
	"cmp"
	"fmt"
)

// Alternative identifies a candidate option being ranked by voters.
// It is an opaque integer identity with value semantics: two Alternatives
// are equal exactly when their ids are equal, and the type is comparable,
// so it can be used directly as a map key.
type Alternative struct {
	id int
}

// NewAlternative creates an Alternative with the given id.
func NewAlternative(id int) Alternative { return Alternative{id: id} }

// ID returns the integer identity of the alternative.
func (a Alternative) ID() int { return a.id }

// Compare orders alternatives by their natural (id) order.
// It returns a negative number when a sorts before o, zero when they are
// equal, and a positive number otherwise.
func (a Alternative) Compare(o Alternative) int { return cmp.Compare(a.id, o.id) }

// String returns a short form such as "a3", used in debug output.
func (a Alternative) String() string { return fmt.Sprintf("a%d", a.id) }

// Voter identifies a participant whose preference is one strict ranking
// over alternatives. Like Alternative, it is an opaque comparable identity.
type Voter struct {
	id int
}

// NewVoter creates a Voter with the given id.
func NewVoter(id int) Voter { return Voter{id: id} }

// ID returns the integer identity of the voter.
func (v Voter) ID() int { return v.id }

// Compare orders voters by their natural (id) order.
func (v Voter) Compare(o Voter) int { return cmp.Compare(v.id, o.id) }

// String returns a short form such as "v1", used in debug output.
func (v Voter) String() string { return fmt.Sprintf("v%d", v.id) }
