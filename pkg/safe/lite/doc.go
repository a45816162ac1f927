// Package lite fans a callback out over a channel of inputs with a fixed
// number of lines (workers). Every input produces exactly one Result on the
// output channel, in completion order; a panicking or failing callback yields
// a failed Result for that input and the other lines keep going.
//
// Common usage:
// - Run: synchronous callbacks, each call wrapped by solo
// - RunAsync: callbacks returning a safe.Thenable, each call wrapped by dual
// - Collect: read every Result until the output closes
//
// The line count can be overridden with core.WithWorkerOptions. When the
// context is done, inputs not yet delivered come out as cancelled Results
// unless core.WithProcessOptions(ctx, false) is set.
package lite
