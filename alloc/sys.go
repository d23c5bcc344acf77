package alloc

import (
	"fmt"

	"github.com/kfaulhaber/memkit/internal/sysmem"
)

// SysAllocator obtains regions directly from the operating system as
// anonymous mappings, outside the Go heap. Free unmaps immediately, so
// unlike HeapAllocator the memory is returned to the kernel the moment the
// caller is done with it - and using a region after Free faults instead of
// silently reading reused memory.
//
// Free and Realloc must be given the exact slice a prior Alloc or Realloc
// returned; sub-slices cannot be unmapped. On platforms without mmap the
// allocator degrades to the Go heap (see internal/sysmem).
type SysAllocator struct{}

// NewSys returns a SysAllocator.
func NewSys() *SysAllocator { return &SysAllocator{} }

// Alloc maps a fresh region of size bytes.
func (*SysAllocator) Alloc(size int) ([]byte, error) {
	if size == 0 {
		return []byte{}, nil
	}
	b, err := sysmem.Map(size)
	if err != nil {
		return nil, fmt.Errorf("alloc: map %d bytes: %w", size, ErrOutOfMemory)
	}
	return b, nil
}

// Free unmaps b. Unmap failures are not reported; passing anything other
// than a region returned by this allocator violates the contract.
func (*SysAllocator) Free(b []byte) {
	if len(b) == 0 {
		return
	}
	_ = sysmem.Unmap(b)
}

// Realloc maps a region of size bytes, carries over min(len(b), size)
// bytes of b's contents, and unmaps b.
func (s *SysAllocator) Realloc(b []byte, size int) ([]byte, error) {
	nb, err := s.Alloc(size)
	if err != nil {
		return nil, err
	}
	copy(nb, b)
	s.Free(b)
	return nb, nil
}

// Compile-time interface check
var _ Allocator = (*SysAllocator)(nil)
