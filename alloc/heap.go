package alloc

// HeapAllocator delegates every operation to the Go runtime allocator.
// It holds no state, so a single value can back any number of consumers.
//
// Unlike malloc, the Go runtime does not report exhaustion - it aborts the
// process - so Alloc and Realloc never return ErrOutOfMemory here. The
// error return exists to satisfy the Allocator contract uniformly.
type HeapAllocator struct{}

// NewHeap returns a HeapAllocator.
func NewHeap() *HeapAllocator { return &HeapAllocator{} }

// Alloc returns a fresh runtime-managed region of size bytes.
func (*HeapAllocator) Alloc(size int) ([]byte, error) {
	return make([]byte, size), nil
}

// Free is a no-op; the garbage collector reclaims unreferenced regions.
func (*HeapAllocator) Free(b []byte) {}

// Realloc returns a region of size bytes carrying over min(len(b), size)
// bytes of b's contents. When the size is unchanged, b is returned as is.
func (*HeapAllocator) Realloc(b []byte, size int) ([]byte, error) {
	if size == len(b) {
		return b, nil
	}
	nb := make([]byte, size)
	copy(nb, b)
	return nb, nil
}

// Compile-time interface check
var _ Allocator = (*HeapAllocator)(nil)
