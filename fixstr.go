// Package fixstr implements a fixed-capacity string value type. A String
// owns a buffer of capacity+1 byte cells with the capacity fixed when the
// value is created; cell [Len()] always holds a 0 terminator and cells
// beyond it are leftover, never content. Every transformation returns a new
// value and leaves its receiver untouched, so a String can be treated as
// immutable data and shared freely.
//
// Capacity mistakes are programmer errors, not recoverable conditions.
// Constructors and transformations whose source size is known at the call
// site (literals, indexed replacement) panic unconditionally on overflow.
// Paths whose source size is not known when the destination capacity is
// chosen (views, byte sequences) truncate silently on construction and go
// through a strippable contract check on append; see Append.
package fixstr

import (
	"iter"
	"unsafe"
)

// DefaultExpand is the growth amount used when an append of a
// size-indeterminate source is given no explicit growth. Set it once during
// process setup, before any dependent value is built; it is not meant to
// change at runtime.
var DefaultExpand = 1000

// String is a fixed-capacity string value. The zero value is an empty
// string of capacity 0, ready to use.
//
// Plain Go assignment copies the header, not the buffer: two copies of one
// value alias the same cells. That is harmless under the intended
// value-out style, where nothing writes through Raw; call Clone before
// mutating a buffer in place.
type String struct {
	buf    []byte // capacity+1 cells, buf[size] == 0
	size   int
	expand int
}

func alloc(capacity, expand int) String {
	if capacity < 0 {
		panic("fixstr: negative capacity")
	}
	return String{buf: make([]byte, capacity+1), expand: expand}
}

// New returns an empty String of capacity 0.
func New() String {
	return alloc(0, DefaultExpand)
}

// Lit builds a String from a source-level literal, with capacity equal to
// the literal's length. This is the usual entry point:
//
//	greet := fixstr.Concat(fixstr.Lit("Hello, "), fixstr.Lit("World"))
func Lit(s string) String {
	v := alloc(len(s), DefaultExpand)
	copy(v.buf, s)
	v.size = len(s)
	return v
}

// LitCap builds a String of the given capacity from a literal. The
// literal's length is known at the call site, so an insufficient capacity
// is an authoring mistake: LitCap panics instead of truncating.
func LitCap(capacity int, s string) String {
	if capacity < len(s) {
		panic("fixstr: literal longer than capacity")
	}
	v := alloc(capacity, DefaultExpand)
	copy(v.buf, s)
	v.size = len(s)
	return v
}

// Fill builds a String of the given capacity holding min(n, capacity)
// copies of c. The count may exceed the capacity; the surplus is dropped
// silently.
func Fill(capacity, n int, c byte) String {
	v := alloc(capacity, DefaultExpand)
	if n > capacity {
		n = capacity
	}
	for i := 0; i < n; i++ {
		v.buf[i] = c
	}
	v.size = max(n, 0)
	return v
}

// FromString builds a String of the given capacity from a read-only view,
// copying min(len(s), capacity) bytes. Truncation is silent: the view's
// length is runtime data, not an authoring mistake.
func FromString(capacity int, s string) String {
	v := alloc(capacity, DefaultExpand)
	v.size = copy(v.buf[:capacity], s)
	return v
}

// FromBytes is FromString for a byte-slice view. The source is copied, not
// retained.
func FromBytes(capacity int, b []byte) String {
	v := alloc(capacity, DefaultExpand)
	v.size = copy(v.buf[:capacity], b)
	return v
}

// FromSeq builds a String of the given capacity by pulling bytes from seq
// until it ends or the capacity is full, whichever comes first. The
// sequence's length need not be known ahead of time.
func FromSeq(capacity int, seq iter.Seq[byte]) String {
	v := alloc(capacity, DefaultExpand)
	for c := range seq {
		if v.size == capacity {
			break
		}
		v.buf[v.size] = c
		v.size++
	}
	return v
}

// WithExpand returns a copy of s whose default growth amount is n. The
// content and capacity are unchanged; the copy shares s's buffer.
func (s String) WithExpand(n int) String {
	if n < 0 {
		panic("fixstr: negative expand")
	}
	s.expand = n
	return s
}

// Clone returns a String with its own independently owned buffer.
func (s String) Clone() String {
	r := alloc(s.Cap(), s.expand)
	copy(r.buf, s.buf)
	r.size = s.size
	return r
}

// Len returns the number of content bytes.
func (s String) Len() int { return s.size }

// Cap returns the maximum number of content bytes the buffer can hold.
func (s String) Cap() int {
	if s.buf == nil {
		return 0
	}
	return len(s.buf) - 1
}

// Empty reports whether the String holds no content.
func (s String) Empty() bool { return s.size == 0 }

// Expand returns the growth amount used by appends of size-indeterminate
// sources when no explicit growth is given.
func (s String) Expand() int {
	if s.expand <= 0 {
		return DefaultExpand
	}
	return s.expand
}

// Raw returns the whole physical buffer, capacity+1 cells including the
// terminator, aliasing the value's storage. Writes through Raw are visible
// to every copy of the value; Clone first if that matters. Nil for the
// zero value.
func (s String) Raw() []byte { return s.buf }

// At returns the byte at index i without a bounds check against Len; the
// caller must keep i within [0, Cap()]. Reading past Len yields leftover
// cells, not content.
func (s String) At(i int) byte { return s.buf[i] }

// View returns a zero-copy read-only view of the content. The view aliases
// the value's buffer the same way Raw does; it stays valid as long as the
// value (or any copy of it) is reachable.
func (s String) View() string {
	return unsafe.String(unsafe.SliceData(s.buf), s.size)
}
