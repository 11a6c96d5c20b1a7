package fixstr

import "iter"

// Iteration covers the content range [0, Len()) only. Leftover cells
// between Len and Cap exist physically but are never yielded.

// All returns an index/byte iterator over the content, front to back.
func (s String) All() iter.Seq2[int, byte] {
	return func(yield func(int, byte) bool) {
		for i := 0; i < s.size; i++ {
			if !yield(i, s.buf[i]) {
				return
			}
		}
	}
}

// Values returns a byte iterator over the content, front to back. Its
// output feeds directly back into FromSeq and AppendSeq.
func (s String) Values() iter.Seq[byte] {
	return func(yield func(byte) bool) {
		for i := 0; i < s.size; i++ {
			if !yield(s.buf[i]) {
				return
			}
		}
	}
}

// Backward returns an index/byte iterator over the content, back to front.
func (s String) Backward() iter.Seq2[int, byte] {
	return func(yield func(int, byte) bool) {
		for i := s.size - 1; i >= 0; i-- {
			if !yield(i, s.buf[i]) {
				return
			}
		}
	}
}
