package xslice

// At retrieves the element at index i from a slice.
// If the index is out of range, it returns the default value.
func At[T any](s []T, i int, defaultValue T) T {
	if i >= 0 && i < len(s) {
		return s[i]
	}
	return defaultValue
}
