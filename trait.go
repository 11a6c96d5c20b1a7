package fixstr

// Is reports whether v is a fixstr.String value. It gates helpers that
// only make sense for members of the fixed-capacity family, such as
// FitValue.
func Is(v any) bool {
	_, ok := v.(String)
	return ok
}

// FitValue trims an arbitrary value to exact fit. It panics unless Is(v)
// holds: handing it anything else is an authoring mistake, checked
// unconditionally like the other statically decidable contracts.
func FitValue(v any) String {
	s, ok := v.(String)
	if !ok {
		panic("fixstr: FitValue expects a fixstr.String")
	}
	return s.Fit()
}
