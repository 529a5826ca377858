// Package scope provides Kotlin-style chaining helpers for values of any
// type. Go has no extension methods, so the helpers are package-level
// generic functions that forward a value through a caller-supplied function,
// keeping call sites fluent without intermediate variables.
//
// Key operations:
// - Let: call a function with the value and return the function's result
// - Also: call a function with a pointer to the value, then return the value
// - Tee/TeeIf: observe the value (optionally behind a predicate), return it
// - TakeIf: keep the value when a fallible check passes
// - Apply/Compose: run same-type transforms left to right
//
// The function shapes shared across the module (Transform, Mapper, Effect,
// Consumer, Predicate) are declared here so call sites can name them.
//
// Every helper is synchronous and error-transparent: nothing here fails or
// blocks on its own, and whatever the supplied function produces passes
// through unchanged. For fluent method chaining see package chain; for
// helpers over a fallible step see package outcome.
package scope
