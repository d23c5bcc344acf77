package alloc

import "errors"

// ErrOutOfMemory indicates that a backend could not satisfy the requested
// size: the bump cursor would pass its capacity, or an arena's backing
// allocator refused the grown buffer, or the kernel refused a mapping.
var ErrOutOfMemory = errors.New("alloc: out of memory")
