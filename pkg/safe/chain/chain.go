package chain

import (
	"context"

	"github.com/ib-77/safe/pkg/safe"
	"github.com/ib-77/safe/pkg/safe/dual"
	"github.com/ib-77/safe/pkg/safe/solo"
)

// Chain wraps a safe.Result with context to enable fluent chaining
type Chain[T any] struct {
	ctx    context.Context
	result safe.Result[T]
}

func Start[T any](ctx context.Context, result safe.Result[T]) *Chain[T] {
	return &Chain[T]{
		ctx:    ctx,
		result: result,
	}
}

func FromValue[T any](ctx context.Context, value T) *Chain[T] {
	return Start(ctx, safe.Success(value))
}

// Execute starts a chain from the result of a safe call to fn.
func Execute[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) *Chain[T] {
	return Start(ctx, solo.Execute1(fn, ctx))
}

func (c *Chain[T]) Result() safe.Result[T] {
	return c.result
}

func Then[T, U any](c *Chain[T], onSuccess func(context.Context, T) safe.Result[U]) *Chain[U] {
	return Start(c.ctx, solo.Switch(c.ctx, c.result, onSuccess))
}

func ThenTry[T, U any](c *Chain[T], tryOnSuccess func(context.Context, T) (U, error)) *Chain[U] {
	return Start(c.ctx, solo.Try(c.ctx, c.result, tryOnSuccess))
}

// ThenAwait blocks until the thenable returned by onSuccess settles or the
// chain's context is done, in which case the chain is cancelled.
func ThenAwait[T, U any](c *Chain[T], onSuccess func(context.Context, T) (safe.Thenable[U], error)) *Chain[U] {
	if c.result.IsFailure() {
		return Start(c.ctx, safe.CancelFrom[T, U](c.result))
	}
	return Start(c.ctx, dual.ExecuteAsync2(onSuccess, c.ctx, c.result.Result()).Await(c.ctx))
}

func Map[T, U any](c *Chain[T], onSuccess func(context.Context, T) U) *Chain[U] {
	return Start(c.ctx, solo.Map(c.ctx, c.result, onSuccess))
}

// Ensure performs a side effect without changing the result
func (c *Chain[T]) Ensure(onSuccess func(context.Context, T)) *Chain[T] {
	return Start(c.ctx, solo.Tee(c.ctx, c.result,
		func(ctx context.Context, result safe.Result[T]) {
			onSuccess(ctx, result.Result())
		}))
}

func Finally[T, U any](c *Chain[T], onSuccess func(context.Context, T) U,
	onFailure func(context.Context, error) U, onCancel func(context.Context, error) U) U {
	return solo.Finally(c.ctx, c.result, onSuccess, onFailure, onCancel)
}
