package scope

// Let calls f with v and returns f's result.
func Let[In, Out any](v In, f Transform[In, Out]) Out {
	return f(v)
}

// Also calls f with a pointer to v and returns the value, keeping any
// mutation f performed through the pointer. A nil f leaves v untouched.
func Also[T any](v T, f Effect[T]) T {
	if f != nil {
		f(&v)
	}
	return v
}

// Tee calls f with v for its side effect and returns v unchanged. A nil f
// leaves v untouched.
func Tee[T any](v T, f Consumer[T]) T {
	if f != nil {
		f(v)
	}
	return v
}

// TeeIf calls f with v only when pred holds; v is returned unchanged either
// way.
func TeeIf[T any](v T, pred Predicate[T], f Consumer[T]) T {
	if pred(v) {
		return Tee(v, f)
	}
	return v
}

// TakeIf keeps v when the check succeeds: on a nil error it returns v with
// any mutation f made through the pointer, otherwise the zero T and the
// error. The check's first result only decides success and is discarded.
func TakeIf[T, R any](v T, f func(*T) (R, error)) (T, error) {
	if _, err := f(&v); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// Apply runs same-type transforms over v, left to right.
func Apply[T any](v T, fs ...Mapper[T]) T {
	for _, f := range fs {
		v = f(v)
	}
	return v
}
