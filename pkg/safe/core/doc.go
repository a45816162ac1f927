// Package core holds the invoke primitive shared by every entry point, the
// Outcome type it returns, and the pipeline plumbing used by lite: channel
// helpers, worker configuration via context, and the locomotive that feeds
// inputs through an engine.
package core
