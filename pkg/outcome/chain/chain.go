package chain

import (
	"context"

	"github.com/ib-77/outcome/pkg/outcome"
)

// Chain wraps a Result with context to enable fluent composition.
type Chain[T any] struct {
	ctx context.Context
	res outcome.Result[T]
}

// Start creates a new chain from an existing Result.
func Start[T any](ctx context.Context, r outcome.Result[T]) Chain[T] {
	return Chain[T]{ctx: ctx, res: r}
}

// FromValue creates a new chain from a successful value.
func FromValue[T any](ctx context.Context, v T) Chain[T] {
	return Start(ctx, outcome.Succeed(v))
}

// Result returns the underlying Result.
func (c Chain[T]) Result() outcome.Result[T] {
	return c.res
}

// Then composes functions that already return a Result. Failures
// short-circuit.
func (c Chain[T]) Then(onSuccess func(ctx context.Context, t T) outcome.Result[T]) Chain[T] {
	if c.res.IsFailure() {
		return c
	}
	v, _ := c.res.Value()
	return Chain[T]{ctx: c.ctx, res: onSuccess(c.ctx, v)}
}

// Try composes functions that return (T, error), running them under the
// synchronous guard.
func (c Chain[T]) Try(try func(ctx context.Context, t T) (T, error)) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: outcome.GuardMap(c.res, func(v T) (T, error) {
		return try(c.ctx, v)
	})}
}

// Map transforms the successful value to a new value.
func (c Chain[T]) Map(onSuccess func(ctx context.Context, t T) T) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: outcome.Map(c.res, func(v T) T {
		return onSuccess(c.ctx, v)
	})}
}

// Recover converts a failure back into a success, under the guard: a
// fault raised while recovering stays a failure.
func (c Chain[T]) Recover(onFailure func(ctx context.Context, err error) (T, error)) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: outcome.GuardRecover(c.res, func(err error) (T, error) {
		return onFailure(c.ctx, err)
	})}
}

// RepeatUntil applies onSuccess repeatedly until the chain fails or the
// until predicate reports done.
func (c Chain[T]) RepeatUntil(onSuccess func(ctx context.Context, t T) outcome.Result[T],
	until func(ctx context.Context, t T) bool) Chain[T] {

	if c.res.IsFailure() {
		return c
	}

	for {
		c = c.Then(onSuccess)

		if c.res.IsFailure() {
			return c
		}
		if v, ok := c.res.Value(); ok && !until(c.ctx, v) {
			return c
		}
	}
}

// While applies onSuccess as long as the chain succeeds and the predicate
// holds.
func (c Chain[T]) While(onSuccess func(ctx context.Context, t T) outcome.Result[T],
	while func(ctx context.Context, t T) bool) Chain[T] {

	for {
		v, ok := c.res.Value()
		if !ok || !while(c.ctx, v) {
			return c
		}
		c = c.Then(onSuccess)
	}
}

// Or returns the first successful chain of the receiver and the
// alternative; if both failed, the receiver's failure wins.
func (c Chain[T]) Or(alternative Chain[T]) Chain[T] {
	if c.res.IsSuccess() {
		return c
	}
	if alternative.res.IsSuccess() {
		return alternative
	}
	return c
}

// And returns the first failed chain of the receiver and the required
// one; if both succeeded, the required chain wins.
func (c Chain[T]) And(required Chain[T]) Chain[T] {
	if c.res.IsFailure() {
		return c
	}
	return required
}

// Ensure triggers side effects for success or failure without changing
// the result.
func (c Chain[T]) Ensure(onSuccess func(context.Context, T), onFailure func(context.Context, error)) Chain[T] {
	c.res.DoubleTee(
		func(v T) {
			if onSuccess != nil {
				onSuccess(c.ctx, v)
			}
		},
		func(err error) {
			if onFailure != nil {
				onFailure(c.ctx, err)
			}
		})
	return c
}

// Finally collapses the chain to a final value.
func (c Chain[T]) Finally(onSuccess func(context.Context, T) T, onFailure func(context.Context, error) T) T {
	return Finally(c, onSuccess, onFailure)
}

// Then switches the chain to a new value type via a Result-returning
// function.
func Then[T, U any](c Chain[T], onSuccess func(context.Context, T) outcome.Result[U]) Chain[U] {
	v, ok := c.res.Value()
	if !ok {
		return Chain[U]{ctx: c.ctx, res: outcome.FailFrom[T, U](c.res)}
	}
	return Chain[U]{ctx: c.ctx, res: onSuccess(c.ctx, v)}
}

// Try switches the chain to a new value type via a (U, error) function,
// under the guard.
func Try[T, U any](c Chain[T], try func(context.Context, T) (U, error)) Chain[U] {
	return Chain[U]{ctx: c.ctx, res: outcome.GuardMap(c.res, func(v T) (U, error) {
		return try(c.ctx, v)
	})}
}

// Map switches the chain to a new value type via a total transform.
func Map[T, U any](c Chain[T], onSuccess func(context.Context, T) U) Chain[U] {
	return Chain[U]{ctx: c.ctx, res: outcome.Map(c.res, func(v T) U {
		return onSuccess(c.ctx, v)
	})}
}

// Finally collapses a chain into a value of a different type.
func Finally[T, U any](c Chain[T], onSuccess func(context.Context, T) U, onFailure func(context.Context, error) U) U {
	return outcome.Finally(c.res,
		func(v T) U { return onSuccess(c.ctx, v) },
		func(err error) U { return onFailure(c.ctx, err) })
}
