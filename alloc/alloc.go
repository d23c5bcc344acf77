package alloc

// Allocator is the capability every backend implements.
//
// Implementations:
//   - HeapAllocator: passthrough to the Go runtime allocator
//   - BumpAllocator: fixed-capacity linear allocator
//   - ArenaAllocator: growable linear allocator over a backing Allocator
//   - SysAllocator: anonymous pages mapped from the operating system
//
// A zero-size request succeeds on every backend and consumes no capacity.
// Negative sizes violate the contract and are not detected.
type Allocator interface {
	// Alloc returns a region of exactly size bytes, or ErrOutOfMemory.
	// Contents are unspecified; callers must not rely on zero-fill.
	Alloc(size int) ([]byte, error)

	// Free releases a region previously returned by Alloc or Realloc on
	// the same allocator. Linear backends (bump, arena) cannot release
	// individual regions and treat this as a no-op; either way the
	// allocator's own state is never corrupted by the call.
	Free(b []byte)

	// Realloc returns a region of exactly size bytes in place of b.
	// Only HeapAllocator and SysAllocator carry b's contents over (up to
	// min(len(b), size) bytes); the linear backends hand out a fresh
	// region and leave the old bytes behind.
	Realloc(b []byte, size int) ([]byte, error)
}
