// Package debug holds assertions that only fire in binaries built with the
// debug tag.
package debug

import "fmt"

// Assertf panics with the formatted message if b is false.
func Assertf(b bool, format string, a ...any) {
	if DEBUG && !b {
		panic(fmt.Sprintf(format, a...))
	}
}

func AssertEq[T comparable](expected, got T) { Assertf(expected == got, "%v != %v", expected, got) }
