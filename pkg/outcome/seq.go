package outcome

import (
	"errors"
	"iter"
	"runtime/debug"
	"sync/atomic"
)

// ErrConsumed is emitted when a guarded sequence is ranged a second time.
// The underlying producer runs at most once.
var ErrConsumed = errors.New("outcome: guarded sequence already consumed")

// GuardSeq wraps a lazy producer in a failure boundary. Every element the
// producer yields becomes a Success; the first fault (a non-nil error
// yield or a producer panic) becomes a single Failure, after which the
// sequence terminates and the producer is never resumed.
//
// The sequence is pull-driven: a consumer that never ranges triggers no
// production. It is single-use; a second range emits one
// Failure(ErrConsumed) and nothing else.
func GuardSeq[T any](src iter.Seq2[T, error]) iter.Seq[Result[T]] {
	var consumed atomic.Bool

	return func(yield func(Result[T]) bool) {
		if !consumed.CompareAndSwap(false, true) {
			yield(Fail[T](ErrConsumed))
			return
		}

		next, stop := iter.Pull2(src)
		defer stop()

		for {
			v, err, ok, fault := pull(next)
			if fault != nil {
				yield(Fail[T](fault.Err))
				return
			}
			if !ok {
				return
			}
			if err != nil {
				yield(Fail[T](err))
				return
			}
			if !yield(Succeed(v)) {
				return
			}
		}
	}
}

// GuardSeqWith is GuardSeq with an explicit failure mapper.
func GuardSeqWith[T, E any](src iter.Seq2[T, error], onFailure FailureMapper[E]) iter.Seq[Outcome[T, E]] {
	var consumed atomic.Bool

	return func(yield func(Outcome[T, E]) bool) {
		if !consumed.CompareAndSwap(false, true) {
			yield(Failure[T, E](onFailure(Fault{Err: ErrConsumed})))
			return
		}

		next, stop := iter.Pull2(src)
		defer stop()

		for {
			v, err, ok, fault := pull(next)
			if fault != nil {
				yield(Failure[T, E](onFailure(*fault)))
				return
			}
			if !ok {
				return
			}
			if err != nil {
				yield(Failure[T, E](onFailure(Fault{Err: err})))
				return
			}
			if !yield(Success[T, E](v)) {
				return
			}
		}
	}
}

// pull advances the producer by one element, converting a producer panic
// into a Fault.
func pull[T any](next func() (T, error, bool)) (v T, err error, ok bool, fault *Fault) {
	defer func() {
		if r := recover(); r != nil {
			stack := debug.Stack()
			fault = &Fault{
				Err:      &PanicError{Value: r, Stack: stack},
				Stack:    stack,
				Panicked: true,
			}
		}
	}()

	v, err, ok = next()
	return
}
