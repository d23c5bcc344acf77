package alloc

// ArenaAllocator is a growable linear allocator. Like BumpAllocator it
// advances a cursor through a flat buffer, but when a request would pass
// the current capacity it transparently replaces the buffer with a larger
// one obtained from its backing allocator.
//
// Key characteristics:
//   - Created empty: no backing allocation until the first use, so
//     construction is cheap
//   - Grows to max(2*capacity, required), copying the used prefix into
//     the new buffer and freeing the old one through the backing allocator
//   - Free is a no-op; Clear invalidates all regions while keeping the
//     buffer for reuse across work units
//
// The backing allocator is a non-owning reference: the caller must keep it
// valid for as long as the arena is used. Regions returned before a growth
// step point into the replaced buffer; their bytes were copied forward but
// the regions themselves are stale, so callers should not hold regions
// across allocations that may grow the arena.
type ArenaAllocator struct {
	backing Allocator

	// buf is nil exactly while capacity is zero (before the first
	// allocation and after Destroy).
	buf  []byte
	used int
}

// NewArena returns an empty arena that will obtain its buffer from
// backing. The backing allocator must outlive the arena.
func NewArena(backing Allocator) *ArenaAllocator {
	return &ArenaAllocator{backing: backing}
}

// Alloc returns the next size bytes of the arena's buffer, growing it
// through the backing allocator first if needed. It fails only when the
// backing allocator does; the arena is unchanged by a failed call.
func (a *ArenaAllocator) Alloc(size int) ([]byte, error) {
	newUsed := a.used + size
	if newUsed > len(a.buf) {
		if err := a.grow(newUsed); err != nil {
			return nil, err
		}
	}
	b := a.buf[a.used:newUsed:newUsed]
	a.used = newUsed
	return b, nil
}

// grow replaces the buffer with one of at least need bytes, doubling the
// current capacity when that is larger. The used prefix is copied into the
// new buffer and the old one is returned to the backing allocator.
func (a *ArenaAllocator) grow(need int) error {
	newCap := len(a.buf) * 2
	if newCap < need {
		newCap = need
	}
	nb, err := a.backing.Alloc(newCap)
	if err != nil {
		return err
	}
	copy(nb, a.buf[:a.used])
	if a.buf != nil {
		a.backing.Free(a.buf)
	}
	a.buf = nb
	return nil
}

// Free is a no-op. Arena regions are released all at once by Clear or
// Destroy, never individually.
func (a *ArenaAllocator) Free(b []byte) {}

// Realloc is the same grow-and-bump as Alloc: the old region keeps its
// place in the used prefix and the returned region is fresh, with none of
// b's contents carried into it.
func (a *ArenaAllocator) Realloc(b []byte, size int) ([]byte, error) {
	return a.Alloc(size)
}

// Clear resets the used count to zero, invalidating every region handed
// out so far. The buffer and capacity are retained, so a cleared arena can
// run another unit of work without touching the backing allocator.
func (a *ArenaAllocator) Clear() {
	a.used = 0
}

// Destroy returns the buffer to the backing allocator and empties the
// arena. Calling it again, or on a never-used arena, is a no-op.
func (a *ArenaAllocator) Destroy() {
	if a.buf == nil {
		return
	}
	a.backing.Free(a.buf)
	a.buf = nil
	a.used = 0
}

// Used returns the number of bytes allocated since creation or the last
// Clear.
func (a *ArenaAllocator) Used() int { return a.used }

// Cap returns the current buffer capacity, zero until the first
// allocation.
func (a *ArenaAllocator) Cap() int { return len(a.buf) }

// Compile-time interface check
var _ Allocator = (*ArenaAllocator)(nil)
