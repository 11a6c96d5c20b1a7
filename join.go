package fixstr

import "github.com/rawbytedev/fixstr/pkg/strbuild"

// Join assembles the contents of parts, separated by sep, into an
// independently owned runtime string. Unlike Concat it never builds an
// intermediate fixed-capacity value: the output leaves the algebra anyway,
// so it goes straight through growable scratch storage.
func Join(sep string, parts ...String) string {
	if len(parts) == 0 {
		return ""
	}
	n := len(sep) * (len(parts) - 1)
	for _, p := range parts {
		n += p.size
	}
	var b strbuild.Builder
	b.Reset(n)
	for i, p := range parts {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(p.View())
	}
	return b.Owned()
}
