package scope

// Transform maps a value of In to a value of Out.
type Transform[In, Out any] func(In) Out

// Mapper transforms a value without changing its type.
type Mapper[T any] func(T) T

// Effect is a side effect that may mutate the value through the pointer.
type Effect[T any] func(*T)

// Consumer observes a value without changing it.
type Consumer[T any] func(T)

// Predicate reports whether a value satisfies a condition.
type Predicate[T any] func(T) bool

// Identity returns its input unchanged.
func Identity[T any](v T) T {
	return v
}

// Compose fuses transforms into a single Mapper, applied left to right.
// Compose of nothing behaves like Identity.
func Compose[T any](fs ...Mapper[T]) Mapper[T] {
	return func(v T) T {
		return Apply(v, fs...)
	}
}

// Void lifts a Consumer into a Transform that returns the zero Out, so a
// side effect can stand where a transform is expected.
func Void[Out, T any](f Consumer[T]) Transform[T, Out] {
	return func(v T) Out {
		f(v)

		var out Out
		return out
	}
}
