package stream

import (
	"context"
	"iter"
	"sync"

	"github.com/ib-77/outcome/pkg/outcome"
)

// EmitHandlers observe the lifecycle of an emitting goroutine.
type EmitHandlers[T any] struct {
	OnStartFail func(ctx context.Context, values []T)
	OnSuccess   func(ctx context.Context, value T)
	OnBreak     func(ctx context.Context, rest []T)
}

// Emit feeds the given values into a channel until done or ctx ends.
func Emit[T any](ctx context.Context, values ...T) <-chan T {
	in := make(chan T)

	go func() {
		defer close(in)

		if ctx.Err() != nil {
			return
		}

		for _, v := range values {
			select {
			case in <- v:
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}

// EmitOutcomes feeds the given values as successes, reporting progress
// through the handlers.
func EmitOutcomes[T any](ctx context.Context, handlers EmitHandlers[T], values ...T) <-chan outcome.Result[T] {
	in := make(chan outcome.Result[T])

	go func() {
		defer close(in)

		if ctx.Err() != nil {
			if handlers.OnStartFail != nil {
				handlers.OnStartFail(ctx, values)
			}
			return
		}

		for i, v := range values {
			select {
			case in <- outcome.Succeed(v):
				if handlers.OnSuccess != nil {
					handlers.OnSuccess(ctx, v)
				}
			case <-ctx.Done():
				if handlers.OnBreak != nil {
					handlers.OnBreak(ctx, values[i:])
				}
				return
			}
		}
	}()

	return in
}

// FromSeq bridges a guarded sequence into a channel, pulling only while
// the consumer keeps up and ctx is live.
func FromSeq[T any](ctx context.Context, seq iter.Seq[outcome.Result[T]]) <-chan outcome.Result[T] {
	out := make(chan outcome.Result[T])

	go func() {
		defer close(out)

		for res := range seq {
			select {
			case out <- res:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

// Collect drains a channel into a slice, stopping early when ctx ends.
func Collect[T any](ctx context.Context, out <-chan T) []T {
	res := make([]T, 0)
	wg := &sync.WaitGroup{}
	wg.Add(1)

	go func() {
		defer wg.Done()
		for {
			select {
			case v, ok := <-out:
				if !ok {
					return
				}
				res = append(res, v)
			case <-ctx.Done():
				return
			}
		}
	}()

	wg.Wait()
	return res
}

// FirstOr returns the first value received, or the default when the
// channel closes empty or ctx ends first.
func FirstOr[T any](ctx context.Context, out <-chan T, defaultV T) T {
	res := defaultV
	wg := &sync.WaitGroup{}
	wg.Add(1)

	go func() {
		defer wg.Done()

		select {
		case v, ok := <-out:
			if !ok {
				return
			}
			res = v
		case <-ctx.Done():
		}
	}()

	wg.Wait()
	return res
}
