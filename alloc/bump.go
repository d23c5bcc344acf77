package alloc

// BumpAllocator is a fixed-capacity linear allocator. It hands out regions
// by advancing a cursor through a flat buffer, which makes allocation a
// single comparison and an add.
//
// Key characteristics:
//   - O(1) allocation, no per-region bookkeeping
//   - Free is a no-op; only FreeAll releases (all) regions at once
//   - Realloc allocates fresh without copying the old region
//   - The buffer is either self-owned (NewBump) or borrowed
//     (NewBumpBuffer), which changes what Destroy is responsible for
//
// An allocation that lands exactly on the capacity succeeds; a failing
// allocation leaves the cursor where it was.
type BumpAllocator struct {
	buf []byte
	off int

	// owned reports whether the buffer was allocated by NewBump, in which
	// case Destroy drops it. A borrowed buffer stays the caller's problem.
	owned bool
}

// NewBump returns a BumpAllocator over a self-owned buffer of capacity
// bytes.
func NewBump(capacity int) *BumpAllocator {
	return &BumpAllocator{buf: make([]byte, capacity), owned: true}
}

// NewBumpBuffer returns a BumpAllocator over buf without taking ownership.
// Destroy will not touch the buffer; its lifetime is the caller's.
func NewBumpBuffer(buf []byte) *BumpAllocator {
	return &BumpAllocator{buf: buf}
}

// Alloc carves the next size bytes out of the buffer, or returns
// ErrOutOfMemory when fewer than size bytes remain.
func (ba *BumpAllocator) Alloc(size int) ([]byte, error) {
	if ba.off+size > len(ba.buf) {
		return nil, ErrOutOfMemory
	}
	b := ba.buf[ba.off : ba.off+size : ba.off+size]
	ba.off += size
	return b, nil
}

// Free is a no-op. Individual regions cannot be released; every observable
// field of the allocator is unchanged by the call.
func (ba *BumpAllocator) Free(b []byte) {}

// Realloc is a fresh Alloc. The old region's contents are NOT carried over
// and its storage is not reclaimed until FreeAll.
func (ba *BumpAllocator) Realloc(b []byte, size int) ([]byte, error) {
	return ba.Alloc(size)
}

// FreeAll resets the cursor to the buffer start, invalidating every region
// handed out so far. Capacity and buffer identity are unchanged, so the
// next Alloc returns a region at the same address as the first one ever
// made on this instance.
func (ba *BumpAllocator) FreeAll() {
	ba.off = 0
}

// Destroy drops a self-owned buffer, after which the allocator must not be
// used. For a borrowed buffer it is a no-op.
func (ba *BumpAllocator) Destroy() {
	if ba.owned {
		ba.buf = nil
		ba.off = 0
	}
}

// Used returns the cursor position: the number of bytes allocated since
// creation or the last FreeAll.
func (ba *BumpAllocator) Used() int { return ba.off }

// Cap returns the buffer capacity in bytes.
func (ba *BumpAllocator) Cap() int { return len(ba.buf) }

// Compile-time interface check
var _ Allocator = (*BumpAllocator)(nil)
