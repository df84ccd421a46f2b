package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlternative_Identity(t *testing.T) {
	a1 := NewAlternative(1)
	a1again := NewAlternative(1)
	a2 := NewAlternative(2)

	assert.Equal(t, a1, a1again, "alternatives with the same id should be equal")
	assert.NotEqual(t, a1, a2, "alternatives with different ids should differ")
	assert.Equal(t, 1, a1.ID(), "ID should round-trip")
	assert.Equal(t, "a1", a1.String())
}

func TestAlternative_Compare(t *testing.T) {
	a1 := NewAlternative(1)
	a2 := NewAlternative(2)

	assert.Negative(t, a1.Compare(a2), "a1 should sort before a2")
	assert.Positive(t, a2.Compare(a1), "a2 should sort after a1")
	assert.Zero(t, a1.Compare(NewAlternative(1)), "equal ids should compare equal")
}

func TestVoter_Identity(t *testing.T) {
	v1 := NewVoter(1)
	v2 := NewVoter(2)

	assert.Equal(t, v1, NewVoter(1), "voters with the same id should be equal")
	assert.NotEqual(t, v1, v2, "voters with different ids should differ")
	assert.Negative(t, v1.Compare(v2), "v1 should sort before v2")
	assert.Equal(t, "v2", v2.String())
}

func TestVoter_UsableAsMapKey(t *testing.T) {
	ranks := map[Voter]int{
		NewVoter(1): 1,
		NewVoter(2): 2,
	}

	assert.Len(t, ranks, 2)
	assert.Equal(t, 1, ranks[NewVoter(1)], "lookup by a fresh equal value should hit")
}
