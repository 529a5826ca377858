package outcome

import (
	"errors"

	"github.com/dlo9/also/pkg/scope"
)

// Let transforms the ok arm's value; a failed Outcome forwards its error and
// identity without calling f.
func Let[In, Out any](o Outcome[In], f scope.Transform[In, Out]) Outcome[Out] {
	if o.IsOk() {
		return Ok(scope.Let(o.value, f))
	}
	return FailFrom[In, Out](o)
}

// AndRun runs f on the ok arm's value, keeping any mutation made through the
// pointer. A failed Outcome forwards untouched and f never runs.
func AndRun[T any](o Outcome[T], f scope.Effect[T]) Outcome[T] {
	if o.IsOk() {
		o.value = scope.Also(o.value, f)
	}
	return o
}

// OrRun runs f with the error arm; an ok Outcome forwards untouched and f
// never runs.
func OrRun[T any](o Outcome[T], f scope.Consumer[error]) Outcome[T] {
	if !o.IsOk() {
		scope.Tee(o.err, f)
	}
	return o
}

// TakeIf keeps v in an ok Outcome when the check passes, otherwise fails
// with the check's error. The carrier form of scope.TakeIf.
func TakeIf[T, R any](v T, f func(*T) (R, error)) Outcome[T] {
	return Of(scope.TakeIf(v, f))
}

// Finally collapses a step into a concrete value via its arm handlers.
// Exactly one handler runs.
func Finally[In, Out any](o Outcome[In], onOk scope.Transform[In, Out], onErr scope.Transform[error, Out]) Out {
	if o.IsOk() {
		return onOk(o.value)
	}
	return onErr(o.err)
}

// Join collects the ok values in order and accumulates every error carried
// by the failed outcomes into a single joined error.
func Join[T any](os ...Outcome[T]) ([]T, error) {
	values := make([]T, 0, len(os))
	var errs []error

	for _, o := range os {
		if o.IsOk() {
			values = append(values, o.value)
			continue
		}
		errs = append(errs, Errs(o.err)...)
	}

	if len(errs) > 0 {
		return values, errors.Join(errs...)
	}
	return values, nil
}
