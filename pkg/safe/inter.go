package safe

import (
	"time"

	"github.com/google/uuid"
)

type ResultProvider[T any] interface {
	// Result returns the successful result value
	Result() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
	// Id unique result id
	Id() uuid.UUID
}

// WithError defines an interface for types that can return a result or an error
type WithError[T any] interface {
	ResultProvider[T]
	// Err returns the error if operation failed
	Err() error
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
}

// WithCancel extends WithError with cancellation support
type WithCancel[T any] interface {
	WithError[T]
	// IsCancel returns true if the caller stopped waiting for the operation
	IsCancel() bool
}

// Thenable is anything that settles later and lets a continuation be
// attached to it. onRejected receives the raw rejection value, which may be
// nil.
type Thenable[T any] interface {
	Then(onFulfilled func(T), onRejected func(any))
}
