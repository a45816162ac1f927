// Package pending provides Future, a single-assignment pending computation
// that satisfies safe.Thenable.
//
// A Future settles exactly once, either fulfilled with a value or rejected
// with a reason. Continuations attached with Then run once, on the caller's
// goroutine when the future has already settled, or on the settling goroutine
// otherwise.
package pending
