package lite

import (
	"context"
	"errors"

	"github.com/ib-77/safe/pkg/safe"
	"github.com/ib-77/safe/pkg/safe/core"
)

var ErrCancelled = errors.New("operation cancelled")

func cancelled[Out any](ctx context.Context) safe.Result[Out] {
	if err := ctx.Err(); err != nil {
		return safe.Cancel[Out](errors.Join(ErrCancelled, err))
	}
	return safe.Cancel[Out](ErrCancelled)
}

func CancelRemaining[In, Out any](ctx context.Context,
	inputCh <-chan In, outCh chan<- safe.Result[Out]) {

	if !core.IsProcessRemainingEnabled(ctx, true) {
		return
	}

	for range inputCh {
		outCh <- cancelled[Out](ctx)
	}
}

func CancelUnprocessed[In, Out any](ctx context.Context, _ In,
	outCh chan<- safe.Result[Out]) {

	if core.IsProcessRemainingEnabled(ctx, true) {
		outCh <- cancelled[Out](ctx)
	}
}

// CancelProcessed still delivers a result that settled before cancellation.
func CancelProcessed[In, Out any](ctx context.Context, _ In, processed safe.Result[Out],
	outCh chan<- safe.Result[Out]) {

	if core.IsProcessRemainingEnabled(ctx, true) {
		outCh <- processed
	}
}
