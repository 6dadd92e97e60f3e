package utils

import "golang.org/x/exp/constraints"

func Ref[T any](t T) *T { return &t }

// InRange reports whether lo <= i <= hi.
func InRange[I constraints.Integer](i, lo, hi I) bool { return lo <= i && i <= hi }
