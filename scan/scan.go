// Package scan provides an incremental-fold abstraction: values are
// appended one at a time and a result can be extracted at any point,
// including mid-scan.
package scan

import "github.com/kfaulhaber/memkit/alloc"

// Scan accumulates values of type V and produces results of type R. The
// two types may differ: a scan can collect cheaply and pay the cost of
// shaping the result only when asked. Result may be called any number of
// times, at any point during the scan.
type Scan[V, R any] interface {
	Append(V)
	Result() R
}

// Sum adds up the values it is given.
type Sum struct {
	total uint32
}

// NewSum returns a Sum starting at zero.
func NewSum() *Sum { return &Sum{} }

// Append adds v to the running total.
func (s *Sum) Append(v uint32) { s.total += v }

// Result returns the current total.
func (s *Sum) Result() uint32 { return s.total }

// Builder accumulates strings and concatenates them when asked for a
// result. Appending is a pointer copy; the concatenation cost is paid once
// per Result call, into a scratch region drawn from the configured
// allocator.
type Builder struct {
	a     alloc.Allocator
	parts []string
	size  int
}

// NewBuilder returns a Builder whose Result scratch space comes from a.
// A nil allocator (or one that is out of memory) falls through to the Go
// heap. Pairing a Builder with a cleared-per-use arena keeps repeated
// builds on warm storage.
func NewBuilder(a alloc.Allocator) *Builder {
	return &Builder{a: a}
}

// Append records s for concatenation. Strings are immutable, so the
// builder retains them without copying.
func (b *Builder) Append(s string) {
	b.parts = append(b.parts, s)
	b.size += len(s)
}

// Result concatenates everything appended so far.
func (b *Builder) Result() string {
	var buf []byte
	if b.a != nil {
		if r, err := b.a.Alloc(b.size); err == nil {
			buf = r
		}
	}
	if buf == nil {
		buf = make([]byte, b.size)
	}

	off := 0
	for _, s := range b.parts {
		off += copy(buf[off:], s)
	}
	return string(buf[:off])
}

// Compile-time interface checks
var (
	_ Scan[uint32, uint32] = (*Sum)(nil)
	_ Scan[string, string] = (*Builder)(nil)
)
