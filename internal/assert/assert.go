//go:build !fixstr_nochecks

// Package assert implements the checked-contract half of fixstr's failure
// model. Violations are programmer errors, not recoverable conditions: True
// panics when its condition does not hold. Building with the fixstr_nochecks
// tag compiles the checks out, after which a violated contract has
// unspecified behavior.
package assert

// Enabled reports whether contract checks are compiled in.
const Enabled = true

// True panics with msg when cond is false.
func True(cond bool, msg string) {
	if !cond {
		panic(msg)
	}
}
