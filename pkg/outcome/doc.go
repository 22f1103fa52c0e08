// Package outcome provides a two-variant result container and a
// combinator algebra over it, as an alternative to panic-driven control
// flow.
//
// An Outcome[T, E] is exactly one of Success(T) or Failure(E), immutable
// once constructed. Result[T] aliases Outcome[T, error] for the common
// case.
//
// Construction:
// - Success/Failure, Succeed/Fail: wrap a known value or failure
// - Guard/GuardWith: run a fallible operation inside a failure boundary
// - GuardAsync: same, resolved through a one-shot channel
// - GuardSeq: same, over a lazy pull-driven sequence of elements
//
// Consumption and transformation:
// - Value/Err/ValueOr/ValueOrElse/MustValue: extract or branch
// - Map/MapFailure/Recover: lift total transforms over either side
// - GuardMap/GuardMapFailure/GuardRecover: the same for transforms that
//   may themselves fault; the secondary fault becomes a Failure instead
//   of escaping
// - Tee/TeeFail/DoubleTee: side effects without changing the result
// - Finally: collapse to a plain value via handlers
//
// Guarded operations promise fault containment; everything else lets
// callback faults escape to the caller.
package outcome
