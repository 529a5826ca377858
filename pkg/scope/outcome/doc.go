// Package outcome carries the value or error of a fallible chain step and
// provides helpers that run caller-supplied functions on one arm of it.
//
// Outcome[T] is data plus accessors; behavior lives in free functions:
// - Ok/Fail/Of: construct an Outcome (Of wraps any (value, error) return)
// - Let: transform the ok arm, forwarding failures untouched
// - AndRun/OrRun: side effects on the ok or error arm
// - TakeIf: keep a value when a fallible check passes
// - Finally: collapse into a concrete value via arm handlers
// - Join: collect ok values and accumulate every error
//
// The package introduces no errors of its own: whatever a caller's function
// produces is forwarded unchanged, and failures keep their identity (id and
// creation time) when forwarded across value types.
package outcome
