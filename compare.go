package fixstr

import "bytes"

// Comparisons look only at the content range [0, Len()). Capacity, expand
// and leftover cells never participate, so values of different capacities
// compare the way their contents do.

// Equal reports whether a and b hold identical content.
func Equal(a, b String) bool {
	return a.size == b.size && bytes.Equal(a.buf[:a.size], b.buf[:b.size])
}

// Compare orders a and b lexicographically over their content, like
// bytes.Compare: -1 when a sorts first, 0 when equal, +1 when b sorts
// first. A value that is a strict prefix of another sorts first.
func Compare(a, b String) int {
	return bytes.Compare(a.buf[:a.size], b.buf[:b.size])
}

// Less reports whether a sorts strictly before b.
func Less(a, b String) bool {
	return Compare(a, b) < 0
}
