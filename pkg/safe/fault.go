package safe

import (
	"fmt"
	"runtime"
)

// ErrNull is the NullError value, usable with errors.Is.
var ErrNull error = NullError{}

// NullError is the fault reported when a callback fails with nothing: it
// panicked with nil or returned an error interface holding a nil pointer.
type NullError struct{}

func (NullError) Error() string {
	return "null"
}

// PanicError carries a panic value that was not an error.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// Normalize turns a raised or rejected value into a non-nil fault.
// Errors pass through untouched so type checks on them keep working.
// Only nil itself and errors holding a nil value count as the empty failure;
// other nil-valued panics such as a nil slice are boxed like any value.
func Normalize(v any) error {
	if v == nil {
		return NullError{}
	}

	switch e := v.(type) {
	case *runtime.PanicNilError:
		return NullError{}
	case error:
		if IsNil(e) {
			return NullError{}
		}
		return e
	default:
		return &PanicError{Value: v}
	}
}

// Recovered normalizes a recovered panic value and attaches stack when the
// value had to be boxed.
func Recovered(v any, stack []byte) error {
	err := Normalize(v)
	if pe, ok := err.(*PanicError); ok {
		pe.Stack = stack
	}
	return err
}
