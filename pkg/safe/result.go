package safe

import (
	"time"

	"github.com/google/uuid"
)

// Result is the outcome tuple of a safe call: a fault slot and a value slot.
// A successful result has a nil fault; a failed one has a non-nil fault and a
// zero value.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	result    T
	err       error
	isSuccess bool
	isCancel  bool
}

func Success[T any](r T) Result[T] {
	return Result[T]{
		result:    r,
		err:       nil,
		isSuccess: true,
		isCancel:  false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Fail builds a failed result. The fault is normalized, so a nil err
// becomes NullError.
func Fail[T any](err error) Result[T] {
	return Result[T]{
		err:       Normalize(err),
		isSuccess: false,
		isCancel:  false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Cancel builds a failed result that also reports IsCancel. It is produced
// when a caller stops waiting, the underlying callback is not interrupted.
func Cancel[T any](err error) Result[T] {
	return Result[T]{
		err:       Normalize(err),
		isSuccess: false,
		isCancel:  true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func CancelFrom[In, Out any](from Result[In]) Result[Out] {
	return Result[Out]{
		err:       from.err,
		isSuccess: from.isSuccess,
		isCancel:  from.isCancel,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (r Result[T]) Result() T {
	return r.result
}

func (r Result[T]) Err() error {
	return r.err
}

// Unpack returns both slots in fault, value order.
func (r Result[T]) Unpack() (error, T) {
	return r.err, r.result
}

// Get returns both slots in the usual Go order.
func (r Result[T]) Get() (T, error) {
	return r.result, r.err
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsFailure() bool {
	return !r.isSuccess
}

func (r Result[T]) IsCancel() bool {
	return r.isCancel
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}
