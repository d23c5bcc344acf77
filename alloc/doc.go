// Package alloc provides a pluggable allocator abstraction with heap, bump,
// arena, and system-page backends.
//
// # Overview
//
// Every backend implements the Allocator interface:
//
//   - Alloc(size): obtain a region of raw bytes
//   - Free(b): release a region (a documented no-op for linear backends)
//   - Realloc(b, size): resize a region
//
// Callers hold an Allocator value and never need to know which backend is
// behind it. An ArenaAllocator is itself a consumer of an Allocator - it
// obtains and grows its backing buffer through whatever backend it was
// constructed with, so allocators compose over themselves.
//
// # Implementations
//
// HeapAllocator: passthrough to the Go runtime allocator
//
//   - Alloc is make([]byte, size)
//   - Free is a no-op (the garbage collector reclaims memory)
//   - Realloc is the one content-preserving resize: it copies
//     min(len(old), new) bytes into the fresh region
//
// BumpAllocator: fixed-capacity linear allocator
//
//   - Allocates by advancing a cursor through a flat buffer
//   - The buffer is either self-owned (NewBump) or borrowed (NewBumpBuffer)
//   - Free is a no-op; FreeAll resets the cursor to the buffer start
//   - Realloc is a fresh Alloc - old contents are NOT carried over
//
// ArenaAllocator: growable linear allocator
//
//   - Created empty; no backing allocation happens until first use
//   - Grows by doubling (or to fit, whichever is larger) through its
//     backing allocator, copying used bytes into the new buffer
//   - Free is a no-op; Clear resets the used count, keeping the buffer
//
// SysAllocator: regions mapped directly from the operating system
//
//   - Alloc and Realloc obtain anonymous pages via mmap(2)
//   - Free unmaps, returning the pages to the kernel immediately
//   - On platforms without mmap support it degrades to the Go heap
//
// # Usage Example
//
//	arena := alloc.NewArena(alloc.NewHeap())
//	defer arena.Destroy()
//
//	buf, err := arena.Alloc(256)
//	if err != nil {
//	    return err
//	}
//	copy(buf, payload)
//
//	// Reuse the arena's buffer for the next unit of work.
//	arena.Clear()
//
// # Ownership
//
// Regions returned by HeapAllocator and SysAllocator belong to the caller
// until freed. Regions returned by BumpAllocator and ArenaAllocator are
// views into the allocator's buffer: calling Free on them does nothing, and
// FreeAll/Clear invalidates every region handed out so far (the storage is
// reused by subsequent allocations). Using a region after FreeAll or Clear
// is a precondition violation the backends do not detect, exactly like
// reading a dead stack frame.
//
// # Failure
//
// The single failure kind is ErrOutOfMemory, returned when a backend cannot
// satisfy the requested size. There is no retry or fallback; the caller
// decides what to do. Region contents carry no zero-fill guarantee: a bump
// or arena region may contain bytes from allocations made before the last
// FreeAll or Clear.
//
// # Thread Safety
//
// Allocator instances are not thread-safe. Callers must synchronize access
// externally. Sizes are not checked for overflow and regions are not
// aligned beyond what the Go runtime provides.
package alloc
