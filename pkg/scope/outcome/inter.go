package outcome

import "time"

// Provider yields the value produced by a chain step.
type Provider[T any] interface {
	// Value returns the step's value
	Value() T
	// CreatedAt returns the creation time (UTC)
	CreatedAt() time.Time
}

// WithErr defines an interface for steps that can return a value or an error.
type WithErr[T any] interface {
	Provider[T]
	// Err returns the error if the step failed
	Err() error
	// IsOk reports whether the step succeeded
	IsOk() bool
}
