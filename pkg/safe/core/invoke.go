package core

import (
	"github.com/sourcegraph/conc/panics"

	"github.com/ib-77/safe/pkg/safe"
	"github.com/ib-77/safe/pkg/safe/pending"
)

// Eventual is what a bound call hands back: a value that is ready now, or a
// computation that settles later.
type Eventual[T any] struct {
	value   T
	pending safe.Thenable[T]
}

func Now[T any](v T) Eventual[T] {
	return Eventual[T]{value: v}
}

func Later[T any](p safe.Thenable[T]) Eventual[T] {
	return Eventual[T]{pending: p}
}

// Call is a callback with its arguments already bound.
type Call[T any] func() (Eventual[T], error)

// Invoke runs call and turns whatever happens into an Outcome. A panic or a
// returned error yields a ready failure. A ready value yields a ready success.
// A pending computation yields a pending Outcome that settles once, with a
// success or a failure, and never rejects.
func Invoke[T any](call Call[T]) Outcome[T] {
	var (
		ev  Eventual[T]
		err error
	)

	var catcher panics.Catcher
	catcher.Try(func() { ev, err = call() })

	if r := catcher.Recovered(); r != nil {
		return Ready(safe.Fail[T](recovered(r)))
	}
	if err != nil {
		return Ready(safe.Fail[T](err))
	}
	if safe.IsNil(ev.pending) {
		return Ready(safe.Success(ev.value))
	}

	return adopt(ev.pending)
}

// adopt attaches to p and settles a new Outcome from it.
func adopt[T any](p safe.Thenable[T]) Outcome[T] {
	fut, resolve, _ := pending.New[safe.Result[T]]()

	var catcher panics.Catcher
	catcher.Try(func() {
		p.Then(
			func(v T) { resolve(safe.Success(v)) },
			func(reason any) { resolve(safe.Fail[T](safe.Normalize(reason))) },
		)
	})

	// a Then that panics counts as a rejection, unless p already settled us
	if r := catcher.Recovered(); r != nil {
		resolve(safe.Fail[T](recovered(r)))
	}

	return Outcome[T]{pending: fut}
}

func recovered(r *panics.Recovered) error {
	return safe.Recovered(r.Value, r.Stack)
}
