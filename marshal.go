package fixstr

// String returns an independently owned copy of the content, implementing
// fmt.Stringer. This is the conversion out of the fixed-capacity algebra
// into ordinary runtime string data; unlike View, the result does not
// alias the value's buffer.
func (s String) String() string {
	return string(s.buf[:s.size])
}

// MarshalText implements encoding.TextMarshaler, emitting the content
// bytes only. Text and YAML/JSON encoders therefore render a String the
// same as the plain string it holds. There is no UnmarshalText: decoding
// would mutate a value in place, which the algebra does not do. Decode
// into a string and construct via FromString instead.
func (s String) MarshalText() ([]byte, error) {
	out := make([]byte, s.size)
	copy(out, s.buf)
	return out, nil
}
