package outcome

import (
	"time"

	"github.com/google/uuid"
)

// Outcome carries the value or error produced by one fallible step of a
// chain. It is data plus accessors; the arm helpers live in arms.go.
type Outcome[T any] struct {
	id    uuid.UUID
	at    time.Time
	value T
	err   error
	ok    bool
}

// Ok wraps a value into a successful Outcome.
func Ok[T any](v T) Outcome[T] {
	return Outcome[T]{
		id:    uuid.New(),
		at:    time.Now().UTC(),
		value: v,
		ok:    true,
	}
}

// Fail wraps an error into a failed Outcome. The error is forwarded as the
// caller supplied it, never wrapped or replaced.
func Fail[T any](err error) Outcome[T] {
	return Outcome[T]{
		id:  uuid.New(),
		at:  time.Now().UTC(),
		err: err,
	}
}

// Of wraps an ordinary (value, error) return, failing on a non-nil error.
func Of[T any](v T, err error) Outcome[T] {
	if err != nil {
		return Fail[T](err)
	}
	return Ok(v)
}

// FailFrom forwards a failed Outcome to a new value type, keeping its
// identity and error.
func FailFrom[In, Out any](from Outcome[In]) Outcome[Out] {
	return Outcome[Out]{
		id:  from.id,
		at:  from.at,
		err: from.err,
	}
}

// Value returns the ok arm's value.
func (o Outcome[T]) Value() T {
	return o.value
}

// Err returns the error if the step failed.
func (o Outcome[T]) Err() error {
	return o.err
}

// IsOk reports whether the step succeeded.
func (o Outcome[T]) IsOk() bool {
	return o.ok
}

// CreatedAt returns when the Outcome was constructed (UTC).
func (o Outcome[T]) CreatedAt() time.Time {
	return o.at
}

// Id returns the Outcome's unique identity, preserved when a failure is
// forwarded across value types.
func (o Outcome[T]) Id() uuid.UUID {
	return o.id
}

// IsZero reports whether o was never constructed by Ok, Fail or Of.
func (o Outcome[T]) IsZero() bool {
	return !o.ok && o.err == nil && o.id == uuid.Nil
}
