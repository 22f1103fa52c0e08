// Package chain provides a fluent wrapper around Result[T] for building
// synchronous pipelines without branching at every step.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result[T] or a value
// - Then: compose a Result-returning function
// - Try: call a function (T, error) under the guard
// - Map: transform the successful value
// - Recover: convert a failure back into a success, guarded
// - Or/And: combine alternative and required chains
// - RepeatUntil/While: loop a step while the chain stays successful
// - Ensure: run side effects without changing the result
// - Finally: collapse the chain into a final value via handlers
//
// Type-changing variants of Then, Try, Map and Finally are package-level
// functions, since methods cannot introduce new type parameters.
package chain
