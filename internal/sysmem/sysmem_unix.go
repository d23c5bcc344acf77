//go:build unix

package sysmem

import "golang.org/x/sys/unix"

// Map obtains size bytes of anonymous, read-write memory from the kernel.
func Map(size int) ([]byte, error) {
	return unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
}

// Unmap returns a mapping obtained from Map to the kernel. b must be the
// exact slice Map returned, not a sub-slice.
func Unmap(b []byte) error {
	return unix.Munmap(b)
}
