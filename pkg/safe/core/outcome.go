package core

import (
	"context"

	"github.com/ib-77/safe/pkg/safe"
	"github.com/ib-77/safe/pkg/safe/pending"
)

// Outcome is either a Result available right away or a pending Result that
// settles later. A pending Outcome never rejects: failures settle it with a
// failed Result.
type Outcome[T any] struct {
	res     safe.Result[T]
	pending *pending.Future[safe.Result[T]]
}

// Ready wraps a Result that is already known.
func Ready[T any](r safe.Result[T]) Outcome[T] {
	return Outcome[T]{res: r}
}

// IsPending reports whether the Outcome was produced from a pending
// computation. It stays true after the computation settles.
func (o Outcome[T]) IsPending() bool {
	return o.pending != nil
}

// Ready returns the Result without blocking. ok is false while a pending
// Outcome has not settled yet.
func (o Outcome[T]) Ready() (r safe.Result[T], ok bool) {
	if o.pending == nil {
		return o.res, true
	}

	select {
	case <-o.pending.Done():
		return o.Wait(), true
	default:
		return r, false
	}
}

var closed = func() chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}()

func (o Outcome[T]) Done() <-chan struct{} {
	if o.pending == nil {
		return closed
	}
	return o.pending.Done()
}

// Wait blocks until the Result is available.
func (o Outcome[T]) Wait() safe.Result[T] {
	return o.Await(context.Background())
}

// Await blocks until the Result is available or ctx is done. In the latter
// case it returns a cancelled Result; the computation keeps running.
func (o Outcome[T]) Await(ctx context.Context) safe.Result[T] {
	if o.pending == nil {
		return o.res
	}

	r, err := o.pending.Await(ctx)
	if err != nil {
		return safe.Cancel[T](err)
	}
	return r
}

// Then makes Outcome a safe.Thenable of its Result. onRejected is never
// called.
func (o Outcome[T]) Then(onFulfilled func(safe.Result[T]), onRejected func(any)) {
	if o.pending == nil {
		if onFulfilled != nil {
			onFulfilled(o.res)
		}
		return
	}
	o.pending.Then(onFulfilled, onRejected)
}
