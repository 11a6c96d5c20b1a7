package fixstr

import (
	"iter"

	"github.com/rawbytedev/fixstr/internal/assert"
)

// Every operation in this file is pure: it reads the receiver (and any
// second operand) and returns a new value with its own buffer.
//
// Result capacities follow two rules. When the source size is known at the
// call site (a literal, a repeat count, another String under Concat/Add)
// the result capacity is exact and the operation cannot overflow. When it
// is not (a view, a byte sequence, Append with an explicit growth), the
// caller chooses the growth up front and the operation asserts the content
// fits; with checks stripped (fixstr_nochecks) an overflow has unspecified
// behavior.

const errGrowth = "fixstr: append overflows chosen growth; pass a larger growth amount or raise DefaultExpand"

// Set returns a copy of s with the cell at index i replaced by c. The
// index must lie within the capacity; like the sized-source constructors
// this is checked unconditionally. Setting a cell at or beyond Len writes
// a leftover cell and does not change the content or length.
func (s String) Set(i int, c byte) String {
	if i < 0 || i >= s.Cap() {
		panic("fixstr: Set index outside capacity")
	}
	r := alloc(s.Cap(), s.expand)
	copy(r.buf, s.buf[:s.size])
	r.size = s.size
	r.buf[i] = c
	r.buf[r.size] = 0
	return r
}

// AppendLit returns s followed by the literal, with capacity Cap+len(lit).
// The literal's length is known here, so the result always fits.
func (s String) AppendLit(lit string) String {
	r := alloc(s.Cap()+len(lit), s.expand)
	copy(r.buf, s.buf[:s.size])
	copy(r.buf[s.size:], lit)
	r.size = s.size + len(lit)
	return r
}

// Append returns s followed by other. The result capacity is Cap plus the
// given growth, defaulting to s.Expand(); the caller must choose a growth
// of at least other.Len(), checked via internal/assert. The result's
// expand is the larger of the two operands'.
//
// When both operands are in hand and an exact-size result is wanted,
// prefer Add or Concat, which size by capacity sum and cannot overflow.
func (s String) Append(other String, growth ...int) String {
	g := s.Expand()
	if len(growth) > 0 {
		g = growth[0]
	}
	assert.True(other.size <= g, errGrowth)
	r := alloc(s.Cap()+g, max(s.Expand(), other.Expand()))
	copy(r.buf, s.buf[:s.size])
	copy(r.buf[s.size:], other.buf[:other.size])
	r.size = s.size + other.size
	r.buf[r.size] = 0
	return r
}

// AppendString returns s followed by the view's content, sized like
// Append: capacity grows by the given growth (default s.Expand()), which
// must cover len(v).
func (s String) AppendString(v string, growth ...int) String {
	g := s.Expand()
	if len(growth) > 0 {
		g = growth[0]
	}
	assert.True(len(v) <= g, errGrowth)
	r := alloc(s.Cap()+g, s.expand)
	copy(r.buf, s.buf[:s.size])
	copy(r.buf[s.size:], v)
	r.size = s.size + len(v)
	r.buf[r.size] = 0
	return r
}

// AppendBytes is AppendString for a byte-slice view.
func (s String) AppendBytes(v []byte, growth ...int) String {
	g := s.Expand()
	if len(growth) > 0 {
		g = growth[0]
	}
	assert.True(len(v) <= g, errGrowth)
	r := alloc(s.Cap()+g, s.expand)
	copy(r.buf, s.buf[:s.size])
	copy(r.buf[s.size:], v)
	r.size = s.size + len(v)
	r.buf[r.size] = 0
	return r
}

// AppendSeq returns s followed by the bytes pulled from seq. The sequence
// length need not be known ahead of time, but it must not exceed the
// chosen growth (default s.Expand()); the check fires as soon as the
// sequence runs past it.
func (s String) AppendSeq(seq iter.Seq[byte], growth ...int) String {
	g := s.Expand()
	if len(growth) > 0 {
		g = growth[0]
	}
	r := alloc(s.Cap()+g, s.expand)
	copy(r.buf, s.buf[:s.size])
	i := s.size
	for c := range seq {
		assert.True(i-s.size < g, errGrowth)
		r.buf[i] = c
		i++
	}
	r.size = i
	r.buf[r.size] = 0
	return r
}

// AppendRepeat returns s followed by n copies of c, with capacity Cap+n.
func (s String) AppendRepeat(n int, c byte) String {
	if n < 0 {
		panic("fixstr: negative repeat count")
	}
	r := alloc(s.Cap()+n, s.expand)
	copy(r.buf, s.buf[:s.size])
	for i := 0; i < n; i++ {
		r.buf[s.size+i] = c
	}
	r.size = s.size + n
	return r
}

// PushBack returns s followed by one byte, with capacity Cap+1.
func (s String) PushBack(c byte) String {
	return s.AppendRepeat(1, c)
}

// Resize returns a value of capacity and length exactly n: the first
// min(Len, n) bytes of s, then fill bytes of c up to n.
func (s String) Resize(n int, c byte) String {
	r := alloc(n, s.expand)
	l := min(s.size, n)
	copy(r.buf, s.buf[:l])
	for i := l; i < n; i++ {
		r.buf[i] = c
	}
	r.size = n
	return r
}

// Reserve returns a value of capacity max(Cap, n) with s's content and
// length. When the capacity already suffices, s itself is returned.
func (s String) Reserve(n int) String {
	if n <= s.Cap() {
		return s
	}
	r := alloc(n, s.expand)
	copy(r.buf, s.buf[:s.size])
	r.size = s.size
	return r
}

// Fit returns a value of capacity exactly Len with identical content: the
// canonical way to shed over-provisioned capacity once the final content
// size is known.
func (s String) Fit() String {
	r := alloc(s.size, s.expand)
	copy(r.buf, s.buf[:s.size])
	r.size = s.size
	return r
}

// Concat joins any number of values into one whose capacity is the sum of
// the operands' capacities and whose expand is the largest of theirs.
// Because each operand's length is bounded by its capacity, Concat can
// never overflow and carries no contract check.
func Concat(parts ...String) String {
	capSum, size, expand := 0, 0, 0
	for _, p := range parts {
		capSum += p.Cap()
		size += p.size
		expand = max(expand, p.expand)
	}
	r := alloc(capSum, expand)
	off := 0
	for _, p := range parts {
		copy(r.buf[off:], p.buf[:p.size])
		off += p.size
	}
	r.size = size
	return r
}

// Add is the binary case of Concat.
func Add(a, b String) String {
	return Concat(a, b)
}
