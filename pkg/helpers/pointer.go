package helpers

// Ptr returns a pointer to the provided value.
func Ptr[T any](val T) *T {
	return &val
}

// Value returns the dereferenced value or the zero value if nil.
func Value[T any](val *T) T {
	if val == nil {
		var zero T
		return zero
	}
	return *val
}

// Clone returns a new pointer holding a copy of *val, or nil.
func Clone[T any](val *T) *T {
	if val == nil {
		return nil
	}
	v := *val
	return &v
}
