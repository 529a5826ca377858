// Package chain provides a fluent wrapper over a single value for composing
// scope helpers without nesting calls.
//
// Methods cover same-type steps; operations that change the value's type are
// package-level functions because Go methods cannot introduce type
// parameters.
//
// Key operations:
// - From/Value: wrap and unwrap a value
// - Let/Also/Tee/TeeIf/Apply: method forms of the scope helpers
// - TakeIf: end the chain in an outcome.Outcome guarded by a fallible check
// - Let/TakeIf (package level): the type-changing forms
package chain
