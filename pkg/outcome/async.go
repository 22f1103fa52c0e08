package outcome

import (
	"context"
	"errors"
)

// ErrUnresolved is returned by Await when the future channel closes
// without ever resolving.
var ErrUnresolved = errors.New("outcome: future closed without resolving")

// GuardAsync runs op in its own goroutine and returns a one-shot channel
// that resolves after exactly one evaluation of op, with the same fault
// containment as Guard. The guard defines no timeout of its own;
// cancellation of the operation is the operation's job via the ctx handed
// to it.
func GuardAsync[T any](ctx context.Context, op func(ctx context.Context) (T, error)) <-chan Result[T] {
	ch := make(chan Result[T], 1)

	go func() {
		defer close(ch)
		ch <- Guard(func() (T, error) {
			return op(ctx)
		})
	}()

	return ch
}

// GuardAsyncWith is GuardAsync with an explicit failure mapper.
func GuardAsyncWith[T, E any](ctx context.Context, op func(ctx context.Context) (T, error),
	onFailure FailureMapper[E]) <-chan Outcome[T, E] {

	ch := make(chan Outcome[T, E], 1)

	go func() {
		defer close(ch)
		ch <- GuardWith(func() (T, error) {
			return op(ctx)
		}, onFailure)
	}()

	return ch
}

// Await blocks until the future resolves. The ctx bound is the caller's
// opt-in: pass context.Background() to wait indefinitely; a done ctx
// yields a Failure carrying ctx.Err().
func Await[T any](ctx context.Context, future <-chan Result[T]) Result[T] {
	select {
	case res, ok := <-future:
		if !ok {
			return Fail[T](ErrUnresolved)
		}
		return res
	case <-ctx.Done():
		return Fail[T](ctx.Err())
	}
}

// AwaitWith is Await for failure payload types other than error.
func AwaitWith[T, E any](ctx context.Context, future <-chan Outcome[T, E],
	onFailure FailureMapper[E]) Outcome[T, E] {

	select {
	case res, ok := <-future:
		if !ok {
			return Failure[T, E](onFailure(Fault{Err: ErrUnresolved}))
		}
		return res
	case <-ctx.Done():
		return Failure[T, E](onFailure(Fault{Err: ctx.Err()}))
	}
}
