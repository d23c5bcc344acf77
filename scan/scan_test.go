package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kfaulhaber/memkit/alloc"
)

func TestSum(t *testing.T) {
	s := NewSum()
	for v := uint32(0); v <= 10; v++ {
		s.Append(v)
	}

	// (N * (N + 1)) / 2 for N = 10.
	assert.Equal(t, uint32(55), s.Result())

	// Result is repeatable and does not consume the scan.
	assert.Equal(t, uint32(55), s.Result())

	s.Append(5)
	assert.Equal(t, uint32(60), s.Result())
}

func TestBuilder(t *testing.T) {
	b := NewBuilder(nil)
	b.Append("building ")
	b.Append("a ")
	b.Append("string ")
	b.Append("incrementally.")

	assert.Equal(t, "building a string incrementally.", b.Result())
}

func TestBuilder_IncrementalResults(t *testing.T) {
	b := NewBuilder(nil)

	assert.Equal(t, "", b.Result(), "an empty builder yields the empty string")

	b.Append("ab")
	assert.Equal(t, "ab", b.Result())

	b.Append("cd")
	assert.Equal(t, "abcd", b.Result())
}

func TestBuilder_ArenaScratch(t *testing.T) {
	arena := alloc.NewArena(alloc.NewHeap())
	defer arena.Destroy()

	b := NewBuilder(arena)
	b.Append("warm ")
	b.Append("storage")

	require.Equal(t, "warm storage", b.Result())
	assert.Positive(t, arena.Used(), "the scratch buffer should come from the arena")
}

func TestBuilder_AllocatorExhausted(t *testing.T) {
	// A zero-capacity bump can never supply scratch space; the builder
	// still produces the right string.
	b := NewBuilder(alloc.NewBump(0))
	b.Append("fallback")

	assert.Equal(t, "fallback", b.Result())
}
