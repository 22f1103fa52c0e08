package stream

import (
	"context"

	"github.com/ib-77/outcome/pkg/outcome"
)

// FinallyHandlers collapse each pipeline result into a plain value.
type FinallyHandlers[In, Out any] struct {
	OnSuccess func(ctx context.Context, v In) Out
	OnError   func(ctx context.Context, err error) Out
}

// emitOne applies a synchronous step to one input and exposes it as a
// single-shot channel, honoring cancellation between production and
// delivery.
func emitOne[In, Out any](ctx context.Context, input outcome.Result[In],
	apply func(ctx context.Context, in outcome.Result[In]) outcome.Result[Out],
	onCancel func(ctx context.Context, in outcome.Result[In])) <-chan outcome.Result[Out] {

	// buffered so an in-flight result can be parked when the consumer
	// side leaves on cancellation; the producer never blocks on a reader
	// that is gone
	ch := make(chan outcome.Result[Out], 1)
	out := make(chan outcome.Result[Out])

	go func() {
		defer close(ch)

		if ctx.Err() == nil {
			ch <- apply(ctx, input)
		}
	}()

	go func() {
		defer close(out)

		select {
		case pr, ok := <-ch:
			if ok {
				out <- pr
			} else {
				if onCancel != nil {
					onCancel(ctx, input)
				}
			}
		case <-ctx.Done():
			if onCancel != nil {
				onCancel(ctx, input)
			}
		}
	}()

	return out
}

// Map lifts a total transform into a pipeline stage.
func Map[In, Out any](mapOnSuccess func(ctx context.Context, v In) Out) func(ctx context.Context,
	input outcome.Result[In]) <-chan outcome.Result[Out] {
	return func(ctx context.Context, input outcome.Result[In]) <-chan outcome.Result[Out] {
		return emitOne(ctx, input, func(ctx context.Context, in outcome.Result[In]) outcome.Result[Out] {
			return outcome.Map(in, func(v In) Out { return mapOnSuccess(ctx, v) })
		}, nil)
	}
}

// Try lifts a fallible transform into a guarded pipeline stage.
func Try[In, Out any](onTry func(ctx context.Context, v In) (Out, error)) func(ctx context.Context,
	input outcome.Result[In]) <-chan outcome.Result[Out] {
	return func(ctx context.Context, input outcome.Result[In]) <-chan outcome.Result[Out] {
		return emitOne(ctx, input, func(ctx context.Context, in outcome.Result[In]) outcome.Result[Out] {
			return outcome.GuardMap(in, func(v In) (Out, error) { return onTry(ctx, v) })
		}, nil)
	}
}

// Recover lifts a guarded recovery into a pipeline stage.
func Recover[T any](onFailure func(ctx context.Context, err error) (T, error)) func(ctx context.Context,
	input outcome.Result[T]) <-chan outcome.Result[T] {
	return func(ctx context.Context, input outcome.Result[T]) <-chan outcome.Result[T] {
		return emitOne(ctx, input, func(ctx context.Context, in outcome.Result[T]) outcome.Result[T] {
			return outcome.GuardRecover(in, func(err error) (T, error) { return onFailure(ctx, err) })
		}, nil)
	}
}

// Tee lifts a success-side side effect into a pipeline stage.
func Tee[T any](sideEffect func(ctx context.Context, v T)) func(ctx context.Context,
	input outcome.Result[T]) <-chan outcome.Result[T] {
	return func(ctx context.Context, input outcome.Result[T]) <-chan outcome.Result[T] {
		return emitOne(ctx, input, func(ctx context.Context, in outcome.Result[T]) outcome.Result[T] {
			return in.Tee(func(v T) { sideEffect(ctx, v) })
		}, nil)
	}
}

// DoubleTee lifts both-sided side effects into a pipeline stage.
func DoubleTee[T any](onSuccess func(ctx context.Context, v T),
	onError func(ctx context.Context, err error)) func(ctx context.Context,
	input outcome.Result[T]) <-chan outcome.Result[T] {
	return func(ctx context.Context, input outcome.Result[T]) <-chan outcome.Result[T] {
		return emitOne(ctx, input, func(ctx context.Context, in outcome.Result[T]) outcome.Result[T] {
			return in.DoubleTee(
				func(v T) { onSuccess(ctx, v) },
				func(err error) { onError(ctx, err) })
		}, nil)
	}
}

// Finalize collapses a channel of results into a channel of plain values
// via the handlers.
func Finalize[In, Out any](ctx context.Context, input <-chan outcome.Result[In],
	handlers FinallyHandlers[In, Out]) <-chan Out {

	out := make(chan Out)

	go func() {
		defer close(out)

		for {
			select {
			case in, ok := <-input:
				if !ok {
					return
				}

				v := outcome.Finally(in,
					func(v In) Out { return handlers.OnSuccess(ctx, v) },
					func(err error) Out { return handlers.OnError(ctx, err) })

				select {
				case out <- v:
				case <-ctx.Done():
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}
