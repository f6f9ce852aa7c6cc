// Package collections provides generic slice helpers.
package collections

// Concat joins slices in argument order.
func Concat[T any](slices ...[]T) []T {
	var n int
	for _, s := range slices {
		n += len(s)
	}

	out := make([]T, 0, n)
	for _, s := range slices {
		out = append(out, s...)
	}
	return out
}

// Filter returns the elements of s for which keep reports true, in order.
// The result never aliases s.
func Filter[T any](s []T, keep func(T) bool) []T {
	out := make([]T, 0, len(s))
	for _, v := range s {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}
