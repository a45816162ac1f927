// Package dual runs callbacks that may finish now or later and returns a
// core.Outcome either way.
//
// The Async variants accept callbacks returning a safe.Thenable. Whether the
// callback actually went pending is decided when it returns: a panic or an
// error before a thenable exists is a ready failure, a nil thenable is a ready
// zero value, anything else is adopted and the Outcome settles with it.
package dual
