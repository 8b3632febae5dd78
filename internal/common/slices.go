package common

import "slices"

// IsEmpty returns true if the slice is empty.
func IsEmpty[S ~[]E, E any](s S) bool {
	return len(s) == 0
}

// First returns the first element of the slice and true, or the zero value and false if empty.
func First[S ~[]E, E any](s S) (E, bool) {
	if len(s) == 0 {
		var zero E
		return zero, false
	}

	return s[0], true
}

// Without returns the elements of s that are not in drop, keeping order.
func Without[S ~[]E, E comparable](s S, drop ...E) S {
	out := make(S, 0, len(s))

	for _, v := range s {
		if !slices.Contains(drop, v) {
			out = append(out, v)
		}
	}

	return out
}
