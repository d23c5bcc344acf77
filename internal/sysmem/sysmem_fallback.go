//go:build !unix

// Package sysmem provides platform-specific helpers for obtaining memory
// directly from the operating system.
package sysmem

// Map falls back to the Go heap when anonymous mmap is not available.
func Map(size int) ([]byte, error) {
	return make([]byte, size), nil
}

// Unmap is a no-op in the fallback; the garbage collector reclaims the
// region.
func Unmap(b []byte) error {
	return nil
}
