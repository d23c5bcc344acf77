package alloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHeapAllocator_AllocRealloc tests the grow-in-place workflow: allocate,
// use, reallocate larger, free.
func TestHeapAllocator_AllocRealloc(t *testing.T) {
	ha := NewHeap()

	b, err := ha.Alloc(100)
	require.NoError(t, err, "Alloc should succeed")
	require.Len(t, b, 100)

	for i := range b {
		b[i] = byte(i)
	}

	b, err = ha.Realloc(b, 200)
	require.NoError(t, err, "Realloc should succeed")
	require.Len(t, b, 200)

	// The original contents survive a heap realloc.
	for i := 0; i < 100; i++ {
		assert.Equal(t, byte(i), b[i], "byte %d should carry over", i)
	}

	ha.Free(b)
}

// TestHeapAllocator_ReallocShrink tests that shrinking keeps the prefix.
func TestHeapAllocator_ReallocShrink(t *testing.T) {
	ha := NewHeap()

	b, err := ha.Alloc(64)
	require.NoError(t, err)
	for i := range b {
		b[i] = 0xAB
	}

	b, err = ha.Realloc(b, 16)
	require.NoError(t, err)
	require.Len(t, b, 16)
	for i := range b {
		assert.Equal(t, byte(0xAB), b[i])
	}
}

// TestHeapAllocator_ReallocSameSize tests that an equal-size realloc
// returns the region unchanged.
func TestHeapAllocator_ReallocSameSize(t *testing.T) {
	ha := NewHeap()

	b, err := ha.Alloc(32)
	require.NoError(t, err)

	nb, err := ha.Realloc(b, 32)
	require.NoError(t, err)
	assert.Same(t, &b[0], &nb[0], "same-size realloc should not move the region")
}

// TestHeapAllocator_ZeroSize tests that zero-size requests succeed.
func TestHeapAllocator_ZeroSize(t *testing.T) {
	ha := NewHeap()

	b, err := ha.Alloc(0)
	require.NoError(t, err)
	assert.Empty(t, b)

	ha.Free(b)
}
