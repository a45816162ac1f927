package dual

import (
	"github.com/ib-77/safe/pkg/safe"
	"github.com/ib-77/safe/pkg/safe/core"
	"github.com/ib-77/safe/pkg/safe/pending"
)

func Execute[T any](fn func() (T, error)) core.Outcome[T] {
	return core.Invoke(func() (core.Eventual[T], error) {
		v, err := fn()
		return core.Now(v), err
	})
}

func Execute1[A, T any](fn func(A) (T, error), a A) core.Outcome[T] {
	return Execute(func() (T, error) { return fn(a) })
}

func Execute2[A, B, T any](fn func(A, B) (T, error), a A, b B) core.Outcome[T] {
	return Execute(func() (T, error) { return fn(a, b) })
}

func ExecuteN[A, T any](fn func(...A) (T, error), args ...A) core.Outcome[T] {
	return Execute(func() (T, error) { return fn(args...) })
}

func ExecuteAsync[T any](fn func() (safe.Thenable[T], error)) core.Outcome[T] {
	return core.Invoke(func() (core.Eventual[T], error) {
		p, err := fn()
		return core.Later(p), err
	})
}

func ExecuteAsync1[A, T any](fn func(A) (safe.Thenable[T], error), a A) core.Outcome[T] {
	return ExecuteAsync(func() (safe.Thenable[T], error) { return fn(a) })
}

func ExecuteAsync2[A, B, T any](fn func(A, B) (safe.Thenable[T], error), a A, b B) core.Outcome[T] {
	return ExecuteAsync(func() (safe.Thenable[T], error) { return fn(a, b) })
}

func ExecuteAsyncN[A, T any](fn func(...A) (safe.Thenable[T], error), args ...A) core.Outcome[T] {
	return ExecuteAsync(func() (safe.Thenable[T], error) { return fn(args...) })
}

// Go runs fn on its own goroutine and returns a pending Outcome.
func Go[T any](fn func() (T, error)) core.Outcome[T] {
	return ExecuteAsync(func() (safe.Thenable[T], error) {
		return pending.Go(fn), nil
	})
}

func Wrap[T any](fn func() (T, error)) func() core.Outcome[T] {
	return func() core.Outcome[T] {
		return Execute(fn)
	}
}

func Wrap1[A, T any](fn func(A) (T, error)) func(A) core.Outcome[T] {
	return func(a A) core.Outcome[T] {
		return Execute1(fn, a)
	}
}

func Wrap2[A, B, T any](fn func(A, B) (T, error)) func(A, B) core.Outcome[T] {
	return func(a A, b B) core.Outcome[T] {
		return Execute2(fn, a, b)
	}
}

func WrapN[A, T any](fn func(...A) (T, error)) func(...A) core.Outcome[T] {
	return func(args ...A) core.Outcome[T] {
		return ExecuteN(fn, args...)
	}
}

func WrapAsync[T any](fn func() (safe.Thenable[T], error)) func() core.Outcome[T] {
	return func() core.Outcome[T] {
		return ExecuteAsync(fn)
	}
}

func WrapAsync1[A, T any](fn func(A) (safe.Thenable[T], error)) func(A) core.Outcome[T] {
	return func(a A) core.Outcome[T] {
		return ExecuteAsync1(fn, a)
	}
}

func WrapAsync2[A, B, T any](fn func(A, B) (safe.Thenable[T], error)) func(A, B) core.Outcome[T] {
	return func(a A, b B) core.Outcome[T] {
		return ExecuteAsync2(fn, a, b)
	}
}

func WrapAsyncN[A, T any](fn func(...A) (safe.Thenable[T], error)) func(...A) core.Outcome[T] {
	return func(args ...A) core.Outcome[T] {
		return ExecuteAsyncN(fn, args...)
	}
}
