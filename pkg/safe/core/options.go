package core

import "context"

type OptionKey string

const (
	ProcessOptionKey OptionKey = "process_options"
	WorkerOptionKey  OptionKey = "worker_options"
)

type MaxLimitOption struct {
	Value int
}

type WorkerOptions struct {
	MaxCount MaxLimitOption
}

type ProcessOptions struct {
	// ProcessRemaining emits a cancelled result for every input left over
	// when the context is done, instead of dropping them.
	ProcessRemaining bool
}

func WithProcessOptions(ctx context.Context, processRemaining bool) context.Context {
	return context.WithValue(ctx, ProcessOptionKey, ProcessOptions{ProcessRemaining: processRemaining})
}

func WithWorkerOptions(ctx context.Context, maxWorkers int) context.Context {
	return context.WithValue(ctx, WorkerOptionKey, WorkerOptions{MaxLimitOption{Value: maxWorkers}})
}

// GetWorkerMaxCount returns the worker count stored in ctx, or
// defaultMaxWorkers. The result is at least 1.
func GetWorkerMaxCount(ctx context.Context, defaultMaxWorkers int) int {
	n := defaultMaxWorkers
	if options, ok := ctx.Value(WorkerOptionKey).(WorkerOptions); ok {
		n = options.MaxCount.Value
	}
	return max(n, 1)
}

func IsProcessRemainingEnabled(ctx context.Context, defaultProcessRemaining bool) bool {
	options, ok := ctx.Value(ProcessOptionKey).(ProcessOptions)
	if ok {
		return options.ProcessRemaining
	}
	return defaultProcessRemaining
}
