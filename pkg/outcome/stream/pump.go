package stream

import (
	"context"
	"sync"

	"github.com/ib-77/outcome/pkg/outcome"
)

// DropHandlers decide what happens to in-flight and remaining inputs when
// the context ends mid-pipeline. Nil handlers drop silently.
type DropHandlers[In, Out any] struct {
	OnCancel            func(ctx context.Context, inputCh <-chan outcome.Result[In], outCh chan<- outcome.Result[Out])
	OnCancelUnprocessed func(ctx context.Context, unprocessed outcome.Result[In], outCh chan<- outcome.Result[Out])
}

// FailRemaining is a DropHandlers.OnCancel that converts every remaining
// input into a Failure carrying ctx.Err().
func FailRemaining[In, Out any](ctx context.Context, inputCh <-chan outcome.Result[In], outCh chan<- outcome.Result[Out]) {
	for in := range inputCh {
		if err, ok := in.Err(); ok {
			outCh <- outcome.Fail[Out](err)
		} else {
			outCh <- outcome.Fail[Out](ctx.Err())
		}
	}
}

// Pump drives one worker line: it reads inputs, runs them through the
// engine, and forwards the produced results until the input closes or ctx
// ends.
func Pump[In, Out any](ctx context.Context, inputCh <-chan outcome.Result[In], outCh chan<- outcome.Result[Out],
	engine func(ctx context.Context, input outcome.Result[In]) <-chan outcome.Result[Out],
	handlers DropHandlers[In, Out],
	onSuccess func(ctx context.Context, out outcome.Result[Out]), wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			if handlers.OnCancel != nil {
				handlers.OnCancel(ctx, inputCh, outCh)
			}
			return
		case in, ok := <-inputCh:
			if !ok {
				return
			}

			select {
			case <-ctx.Done():
				if handlers.OnCancelUnprocessed != nil {
					handlers.OnCancelUnprocessed(ctx, in, outCh)
				}
				if handlers.OnCancel != nil {
					handlers.OnCancel(ctx, inputCh, outCh)
				}
				return
			case pr, running := <-engine(ctx, in):
				if !running {
					return
				}

				select {
				case <-ctx.Done():
					if handlers.OnCancel != nil {
						handlers.OnCancel(ctx, inputCh, outCh)
					}
					return
				case outCh <- pr:
					if onSuccess != nil {
						onSuccess(ctx, pr)
					}
				}
			}
		}
	}
}

// Run executes an engine over an input channel with the given number of
// parallel lines, closing the output once all lines finish.
func Run[T any](ctx context.Context, inputCh <-chan outcome.Result[T],
	engine func(ctx context.Context, input outcome.Result[T]) <-chan outcome.Result[T],
	lines int) <-chan outcome.Result[T] {
	return Turnout(ctx, inputCh, engine, lines)
}

// Turnout is Run across a value-type change.
func Turnout[In, Out any](ctx context.Context, inputCh <-chan outcome.Result[In],
	engine func(ctx context.Context, input outcome.Result[In]) <-chan outcome.Result[Out],
	lines int) <-chan outcome.Result[Out] {

	out := make(chan outcome.Result[Out])
	wg := &sync.WaitGroup{}

	for range lines {
		wg.Add(1)
		go Pump(ctx, inputCh, out, engine, DropHandlers[In, Out]{}, nil, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}
