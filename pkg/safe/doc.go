// Package safe defines the outcome tuple Result[T] and the fault types used
// when a callback fails instead of returning normally.
//
// A Result always carries two slots. On success the fault is nil; on failure
// the fault is non-nil and the value is the zero value. Faults are produced by
// Normalize: errors pass through unchanged, a nil failure becomes NullError and
// any other panic value is boxed in a PanicError.
//
// The execution helpers live in subpackages:
// - solo: run or wrap synchronous callbacks and get a Result immediately
// - dual: run or wrap callbacks that may return a pending computation
// - core: the shared invoke primitive and the Outcome type
// - pending: a Future implementation of Thenable
// - lite: fan a wrapped callback out over a channel of inputs
// - chain: fluent chaining of protected stages
package safe
