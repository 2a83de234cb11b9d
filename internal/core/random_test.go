package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeededRandomIsReproducible(t *testing.T) {
	a, b := SeededRandom(42), SeededRandom(42)
	for i := 0; i < 20; i++ {
		assert.Equal(t, a.IntN(1000), b.IntN(1000))
	}
}

func TestSystemRandomRange(t *testing.T) {
	r := SystemRandom()
	for i := 0; i < 100; i++ {
		v := r.IntN(5)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 5)
	}
}

func TestSequenceWrapsAndReduces(t *testing.T) {
	s := NewSequence(7, 1)
	assert.Equal(t, 2, s.IntN(5))
	assert.Equal(t, 1, s.IntN(5))
	assert.Equal(t, 7, s.IntN(10))
	assert.Equal(t, 0, NewSequence().IntN(3))
}
