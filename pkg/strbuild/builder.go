// Package strbuild provides a reusable, single-threaded byte accumulator
// for runtime-only string assembly. It grows on demand and is therefore
// deliberately outside the fixed-capacity algebra: use it where the output
// is ordinary runtime data and threading capacities through intermediate
// values buys nothing.
package strbuild

import "unsafe"

type Builder struct {
	buf []byte
}

// Reset prepares the builder for a value of roughly size bytes, reusing
// the previous allocation when it is large enough.
func (b *Builder) Reset(size int) {
	switch {
	case b.buf == nil || cap(b.buf) < size:
		b.buf = make([]byte, 0, size)
	default:
		b.buf = b.buf[:0]
	}
}

func (b *Builder) Len() int { return len(b.buf) }
func (b *Builder) Cap() int { return cap(b.buf) }

func (b *Builder) WriteByte(c byte)     { b.buf = append(b.buf, c) }
func (b *Builder) WriteString(s string) { b.buf = append(b.buf, s...) }
func (b *Builder) Write(p []byte)       { b.buf = append(b.buf, p...) }

// String returns the accumulated string without copying. The result
// aliases the builder's buffer and is invalidated by the next Reset or
// write; take Owned when the string must outlive the builder.
func (b *Builder) String() string {
	return unsafe.String(unsafe.SliceData(b.buf), len(b.buf))
}

// Owned returns an independently owned copy of the accumulated string.
func (b *Builder) Owned() string {
	return string(b.buf)
}
