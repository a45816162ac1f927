// Package chain provides a fluent wrapper around safe.Result[T] for building
// synchronous chains out of solo stages.
//
// Every stage runs protected: a panic inside it becomes the chain's fault
// and the remaining stages are skipped.
//
// Key operations:
// - Start/FromValue/Execute: begin a chain from a Result, a value or a call
// - Then: switch to a new Result[U] via a function
// - ThenTry: call a function (U, error) and convert error to failure
// - ThenAwait: call a function returning a safe.Thenable and wait for it
// - Map: transform the successful value (T -> U)
// - Ensure: run side effects on success without changing the result
// - Finally: collapse the chain into a final value via handlers
package chain
