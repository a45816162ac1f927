package lite

import (
	"context"
	"sync"

	"github.com/ib-77/safe/pkg/safe"
	"github.com/ib-77/safe/pkg/safe/core"
	"github.com/ib-77/safe/pkg/safe/dual"
	"github.com/ib-77/safe/pkg/safe/solo"
)

func Run[In, Out any](ctx context.Context, inputCh <-chan In,
	fn func(ctx context.Context, in In) (Out, error),
	lines int) <-chan safe.Result[Out] {

	safeFn := solo.Wrap2(fn)
	return Turnout(ctx, inputCh, func(ctx context.Context, in In) core.Outcome[Out] {
		return core.Ready(safeFn(ctx, in))
	}, lines)
}

func RunAsync[In, Out any](ctx context.Context, inputCh <-chan In,
	fn func(ctx context.Context, in In) (safe.Thenable[Out], error),
	lines int) <-chan safe.Result[Out] {

	return Turnout(ctx, inputCh, dual.WrapAsync2(fn), lines)
}

// Turnout drives engine over inputCh with the configured number of lines and
// closes the output once every line has stopped.
func Turnout[In, Out any](ctx context.Context, inputCh <-chan In,
	engine func(ctx context.Context, input In) core.Outcome[Out],
	lines int) <-chan safe.Result[Out] {

	out := make(chan safe.Result[Out])
	wg := &sync.WaitGroup{}

	handlers := core.CancellationHandlers[In, Out]{
		OnCancel:            CancelRemaining[In, Out],
		OnCancelUnprocessed: CancelUnprocessed[In, Out],
		OnCancelProcessed:   CancelProcessed[In, Out],
	}

	for range core.GetWorkerMaxCount(ctx, lines) {
		wg.Add(1)
		go core.Locomotive(ctx, inputCh, out, engine, handlers, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

// Collect reads results until the channel is closed.
func Collect[T any](results <-chan safe.Result[T]) []safe.Result[T] {
	return core.FromChanMany(results)
}
