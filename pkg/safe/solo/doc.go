// Package solo runs synchronous callbacks safely and returns Result[T]
// right away. A panic or a returned error never escapes: it becomes the
// fault slot of the result.
//
// Highlights:
// - Execute/Execute1/Execute2/ExecuteN: call now with bound arguments
// - ExecuteValue/Do: callbacks without an error or without a value
// - Wrap/Wrap1/Wrap2/WrapN/WrapValue: build a reusable safe callable
// - Switch/Map/Try/Tee: chain stages over a Result, each stage protected
// - Finally: reduce to a concrete value via success/error/cancel handlers
package solo
