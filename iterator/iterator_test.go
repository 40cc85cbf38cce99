package iterator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/patternsmith/gofkit/iterator"
)

// TestFibonacci_Sequence pins the first ten values of the stream.
func TestFibonacci_Sequence(t *testing.T) {
	it := iterator.NewSequence("my list").Iter()

	want := []uint64{1, 1, 2, 3, 5, 8, 13, 21, 34, 55}
	for i, w := range want {
		v, ok := it.Next()
		assert.True(t, ok)
		assert.Equal(t, w, v, "element %d", i)
	}
}

// TestIndependentTraversals verifies two iterators over one aggregate
// keep separate positions.
func TestIndependentTraversals(t *testing.T) {
	seq := iterator.NewSequence("fib")

	a := seq.Iter()
	b := seq.Iter()

	// Advance a well past b.
	iterator.Take(a, 5)

	v, _ := a.Next()
	assert.Equal(t, uint64(8), v)
	v, _ = b.Next()
	assert.Equal(t, uint64(1), v, "b must still be at the start")
}

// TestTake collects a bounded prefix of the infinite stream.
func TestTake(t *testing.T) {
	got := iterator.Take(iterator.NewFibonacci(), 7)
	assert.Equal(t, []uint64{1, 1, 2, 3, 5, 8, 13}, got)
}
