package pending

import (
	"context"
	"sync"

	"github.com/sourcegraph/conc/panics"

	"github.com/ib-77/safe/pkg/safe"
)

type (
	// ResolveFunc fulfills the future it was created with.
	ResolveFunc[T any] func(T)

	// RejectFunc rejects the future it was created with. The reason may be
	// any value, including nil.
	RejectFunc func(reason any)
)

type continuation[T any] struct {
	onFulfilled func(T)
	onRejected  func(any)
}

type Future[T any] struct {
	mu       sync.Mutex
	done     chan struct{}
	settled  bool
	rejected bool
	value    T
	reason   any
	waiting  []continuation[T]
}

func New[T any]() (*Future[T], ResolveFunc[T], RejectFunc) {
	f := &Future[T]{done: make(chan struct{})}
	return f, f.resolve, f.reject
}

func Resolved[T any](v T) *Future[T] {
	f, resolve, _ := New[T]()
	resolve(v)
	return f
}

func Rejected[T any](reason any) *Future[T] {
	f, _, reject := New[T]()
	reject(reason)
	return f
}

// Go runs fn on a new goroutine. A returned error rejects the future with
// that error. A panic rejects it with the recovered error, or with a
// *safe.PanicError carrying the value and stack when the value is not an
// error.
func Go[T any](fn func() (T, error)) *Future[T] {
	f, resolve, reject := New[T]()

	go func() {
		var (
			v   T
			err error
		)

		var catcher panics.Catcher
		catcher.Try(func() { v, err = fn() })

		if r := catcher.Recovered(); r != nil {
			reject(safe.Recovered(r.Value, r.Stack))
			return
		}
		if err != nil {
			reject(err)
			return
		}
		resolve(v)
	}()

	return f
}

func (f *Future[T]) resolve(v T) {
	f.settle(func() { f.value = v })
}

func (f *Future[T]) reject(reason any) {
	f.settle(func() {
		f.rejected = true
		f.reason = reason
	})
}

// settle applies the first outcome and ignores the rest.
func (f *Future[T]) settle(apply func()) {
	f.mu.Lock()
	if f.settled {
		f.mu.Unlock()
		return
	}
	apply()
	f.settled = true
	waiting := f.waiting
	f.waiting = nil
	close(f.done)
	f.mu.Unlock()

	for _, c := range waiting {
		f.fire(c)
	}
}

func (f *Future[T]) fire(c continuation[T]) {
	if f.rejected {
		if c.onRejected != nil {
			c.onRejected(f.reason)
		}
		return
	}
	if c.onFulfilled != nil {
		c.onFulfilled(f.value)
	}
}

// Then attaches a continuation. Either callback may be nil.
func (f *Future[T]) Then(onFulfilled func(T), onRejected func(any)) {
	c := continuation[T]{onFulfilled: onFulfilled, onRejected: onRejected}

	f.mu.Lock()
	if !f.settled {
		f.waiting = append(f.waiting, c)
		f.mu.Unlock()
		return
	}
	f.mu.Unlock()

	f.fire(c)
}

func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Await blocks until the future settles or ctx is done. A rejection reason is
// returned as a normalized fault.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	// a settled future wins over a done ctx
	select {
	case <-f.done:
	default:
		select {
		case <-f.done:
		case <-ctx.Done():
			var zero T
			return zero, ctx.Err()
		}
	}

	// settled fields are immutable once done is closed
	if f.rejected {
		var zero T
		return zero, safe.Normalize(f.reason)
	}
	return f.value, nil
}
