package helper

// GetTypedValueOf2 safely asserts the result of a getter function to the expected type T.
// ok is false when the getter reports nothing or the type does not match.
func GetTypedValueOf2[T any](getFn func() (any, bool)) (res T, ok bool) {
	var raw any
	if raw, ok = getFn(); ok {
		res, ok = raw.(T)
	}
	return
}

// Must is the panic-on-failure variant of any (value, error) producer.
// Use when failure means the caller broke a contract it could have checked.
func Must[T any](res T, err error) T {
	if err != nil {
		panic(err)
	}
	return res
}

// MustDo is Must for operations that only report an error.
func MustDo(err error) {
	if err != nil {
		panic(err)
	}
}
