package solo

import (
	"context"

	"github.com/ib-77/safe/pkg/safe"
	"github.com/ib-77/safe/pkg/safe/core"
)

func Succeed[T any](input T) safe.Result[T] {
	return safe.Success(input)
}

func Fail[T any](err error) safe.Result[T] {
	return safe.Fail[T](err)
}

func Cancel[T any](err error) safe.Result[T] {
	return safe.Cancel[T](err)
}

// bind turns fn into a call that is always ready.
func bind[T any](fn func() (T, error)) core.Call[T] {
	return func() (core.Eventual[T], error) {
		v, err := fn()
		return core.Now(v), err
	}
}

func Execute[T any](fn func() (T, error)) safe.Result[T] {
	return core.Invoke(bind(fn)).Wait()
}

func Execute1[A, T any](fn func(A) (T, error), a A) safe.Result[T] {
	return Execute(func() (T, error) { return fn(a) })
}

func Execute2[A, B, T any](fn func(A, B) (T, error), a A, b B) safe.Result[T] {
	return Execute(func() (T, error) { return fn(a, b) })
}

func ExecuteN[A, T any](fn func(...A) (T, error), args ...A) safe.Result[T] {
	return Execute(func() (T, error) { return fn(args...) })
}

// ExecuteValue runs a callback that reports failure only by panicking.
func ExecuteValue[T any](fn func() T) safe.Result[T] {
	return Execute(func() (T, error) { return fn(), nil })
}

// Do runs a callback with no result. Only the fault slot is meaningful.
func Do(fn func()) safe.Result[struct{}] {
	return Execute(func() (struct{}, error) {
		fn()
		return struct{}{}, nil
	})
}

func Wrap[T any](fn func() (T, error)) func() safe.Result[T] {
	return func() safe.Result[T] {
		return Execute(fn)
	}
}

func Wrap1[A, T any](fn func(A) (T, error)) func(A) safe.Result[T] {
	return func(a A) safe.Result[T] {
		return Execute1(fn, a)
	}
}

func Wrap2[A, B, T any](fn func(A, B) (T, error)) func(A, B) safe.Result[T] {
	return func(a A, b B) safe.Result[T] {
		return Execute2(fn, a, b)
	}
}

func WrapN[A, T any](fn func(...A) (T, error)) func(...A) safe.Result[T] {
	return func(args ...A) safe.Result[T] {
		return ExecuteN(fn, args...)
	}
}

func WrapValue[T any](fn func() T) func() safe.Result[T] {
	return func() safe.Result[T] {
		return ExecuteValue(fn)
	}
}

func passFailure[In, Out any](input safe.Result[In]) safe.Result[Out] {
	if input.IsCancel() {
		return safe.Cancel[Out](input.Err())
	}
	return safe.Fail[Out](input.Err())
}

func Switch[In any, Out any](ctx context.Context,
	input safe.Result[In],
	onSuccess func(ctx context.Context, r In) safe.Result[Out]) safe.Result[Out] {

	if input.IsFailure() {
		return passFailure[In, Out](input)
	}

	out := ExecuteValue(func() safe.Result[Out] { return onSuccess(ctx, input.Result()) })
	if out.IsFailure() {
		return safe.Fail[Out](out.Err())
	}
	return out.Result()
}

func Map[In any, Out any](ctx context.Context,
	input safe.Result[In],
	onSuccess func(ctx context.Context, r In) Out) safe.Result[Out] {

	if input.IsFailure() {
		return passFailure[In, Out](input)
	}
	return ExecuteValue(func() Out { return onSuccess(ctx, input.Result()) })
}

func Try[In any, Out any](ctx context.Context, input safe.Result[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) safe.Result[Out] {

	if input.IsFailure() {
		return passFailure[In, Out](input)
	}
	return Execute2(onTryExecute, ctx, input.Result())
}

// Tee runs a side effect on success and returns input, or the side effect's
// fault if it panicked.
func Tee[T any](ctx context.Context,
	input safe.Result[T],
	onSuccess func(ctx context.Context, r safe.Result[T])) safe.Result[T] {

	if input.IsFailure() {
		return input
	}

	if done := Do(func() { onSuccess(ctx, input) }); done.IsFailure() {
		return safe.Fail[T](done.Err())
	}
	return input
}

func Finally[In, Out any](ctx context.Context, input safe.Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err error) Out,
	onCancel func(ctx context.Context, err error) Out) Out {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Result())
	} else if input.IsCancel() {
		return onCancel(ctx, input.Err())
	} else {
		return onError(ctx, input.Err())
	}
}
