package numeric

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCmp(t *testing.T) {
	assert.Equal(t, 0, Cmp(1.0, 1.0+1e-6))
	assert.Equal(t, -1, Cmp(1.0, 2.0))
	assert.Equal(t, 1, Cmp(2.0, 1.0))
	assert.Equal(t, 0, Cmp(1.0, 1.0))
}

func TestRelationalHelpers(t *testing.T) {
	assert.True(t, Eq(1.0, 1.0+1e-6))
	assert.True(t, Lt(1.0, 2.0))
	assert.True(t, Gt(2.0, 1.0))
	assert.True(t, Ge(1.0, 1.0))
	assert.True(t, Le(1.0, 1.0))
	assert.True(t, Ne(1.0, 2.0))
	assert.False(t, Lt(1.0, 1.0+1e-6))
}

func TestCmpPairLexicographic(t *testing.T) {
	a := Pair{First: 10, Second: 100}
	b := Pair{First: 10, Second: 50}
	assert.True(t, GtPair(a, b))
	assert.True(t, LtPair(b, a))

	c := Pair{First: 5, Second: 1000}
	assert.True(t, LtPair(c, a))
}

func TestCmpPairTies(t *testing.T) {
	a := Pair{First: 10, Second: 10}
	b := Pair{First: 10 + 1e-6, Second: 10 + 1e-6}
	assert.True(t, EqPair(a, b))
}
