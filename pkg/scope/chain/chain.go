package chain

import (
	"github.com/dlo9/also/pkg/scope"
	"github.com/dlo9/also/pkg/scope/outcome"
)

// Chain wraps a single value to enable fluent composition of scope helpers.
type Chain[T any] struct {
	v T
}

// From starts a chain from a value.
func From[T any](v T) Chain[T] {
	return Chain[T]{v: v}
}

// Value returns the wrapped value.
func (c Chain[T]) Value() T {
	return c.v
}

// Let transforms the value without changing its type. Use the package-level
// Let for type-changing transforms.
func (c Chain[T]) Let(f scope.Mapper[T]) Chain[T] {
	return Chain[T]{v: f(c.v)}
}

// Also runs f with a pointer to the value and keeps any mutation.
func (c Chain[T]) Also(f scope.Effect[T]) Chain[T] {
	return Chain[T]{v: scope.Also(c.v, f)}
}

// Tee observes the value without changing it.
func (c Chain[T]) Tee(f scope.Consumer[T]) Chain[T] {
	return Chain[T]{v: scope.Tee(c.v, f)}
}

// TeeIf observes the value only when pred holds.
func (c Chain[T]) TeeIf(pred scope.Predicate[T], f scope.Consumer[T]) Chain[T] {
	return Chain[T]{v: scope.TeeIf(c.v, pred, f)}
}

// Apply runs same-type transforms over the value, left to right.
func (c Chain[T]) Apply(fs ...scope.Mapper[T]) Chain[T] {
	return Chain[T]{v: scope.Apply(c.v, fs...)}
}

// TakeIf ends the chain, keeping the value when the check passes. The check
// returns only an error because methods cannot introduce the check's result
// type; use the package-level TakeIf for the full form.
func (c Chain[T]) TakeIf(check func(*T) error) outcome.Outcome[T] {
	return outcome.TakeIf(c.v, func(v *T) (struct{}, error) {
		return struct{}{}, check(v)
	})
}

// Let transforms the value to a new type. Type-changing operations are
// package-level functions because Go methods cannot add type parameters.
func Let[In, Out any](c Chain[In], f scope.Transform[In, Out]) Chain[Out] {
	return From(scope.Let(c.v, f))
}

// TakeIf ends the chain with a fallible check whose result only decides
// success.
func TakeIf[In, R any](c Chain[In], f func(*In) (R, error)) outcome.Outcome[In] {
	return outcome.TakeIf(c.v, f)
}
