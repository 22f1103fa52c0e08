// Package stream lifts outcome primitives over channels for concurrent
// pipelines.
//
// Common usage:
// - Emit/EmitOutcomes: feed values into a pipeline
// - FromSeq: bridge a guarded sequence into a channel
// - Run/Turnout: execute a stage over an input channel with N lines
// - Map/Try/Recover/Tee/DoubleTee: lifted stage constructors
// - Finalize: collapse results to plain values
// - Collect/FirstOr: drain the pipeline
//
// Cancellation inside a pipeline surfaces as failures carrying ctx.Err();
// outcome.IsCancellation classifies them. DropHandlers control what
// happens to unprocessed inputs on cancel, with FailRemaining as the
// ready-made policy.
package stream
