package core

import (
	"context"
	"sync"

	"github.com/ib-77/safe/pkg/safe"
)

type CancellationHandlers[In, Out any] struct {
	// OnCancel receives the inputs nobody took yet.
	OnCancel func(ctx context.Context, inputCh <-chan In, outCh chan<- safe.Result[Out])
	// OnCancelUnprocessed receives an input whose outcome had not settled.
	OnCancelUnprocessed func(ctx context.Context, unprocessed In, outCh chan<- safe.Result[Out])
	// OnCancelProcessed receives an input whose result could not be delivered.
	OnCancelProcessed func(ctx context.Context, in In, processed safe.Result[Out], outCh chan<- safe.Result[Out])
}

// Locomotive pulls inputs from inputCh, runs each through engine and pushes
// the settled results to outCh until inputCh is closed or ctx is done.
func Locomotive[In, Out any](ctx context.Context, inputCh <-chan In, outCh chan<- safe.Result[Out],
	engine func(ctx context.Context, input In) Outcome[Out],
	handlers CancellationHandlers[In, Out], wg *sync.WaitGroup) {
	defer wg.Done()

	cancel := func() {
		if handlers.OnCancel != nil {
			handlers.OnCancel(ctx, inputCh, outCh)
		}
	}

	for {
		select {
		case <-ctx.Done():
			cancel()
			return
		case in, ok := <-inputCh:
			if !ok {
				return
			}

			outcome := engine(ctx, in)

			res, settled := outcome.Ready()
			if !settled {
				select {
				case <-outcome.Done():
					res = outcome.Wait()
				case <-ctx.Done():
					if late, ok := outcome.Ready(); ok {
						if handlers.OnCancelProcessed != nil {
							handlers.OnCancelProcessed(ctx, in, late, outCh)
						}
						cancel()
						return
					}
					if handlers.OnCancelUnprocessed != nil {
						handlers.OnCancelUnprocessed(ctx, in, outCh)
					}
					cancel()
					return
				}
			}

			select {
			case outCh <- res:
			case <-ctx.Done():
				if handlers.OnCancelProcessed != nil {
					handlers.OnCancelProcessed(ctx, in, res, outCh)
				}
				cancel()
				return
			}
		}
	}
}
