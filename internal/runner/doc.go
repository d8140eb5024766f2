// Package runner binds puzzle inputs to policies and runs searches.
//
// The registry maps policy names to builders. A builder parses the raw input,
// reads its parameters and returns a Problem: the grid to render, default
// start and goal cells, and a solve function that runs package search with
// the right state type. Runner.Solve fans independent starts out over an
// errgroup, traces and measures every search, and logs through ctxlog.
package runner
