// Package calcerr defines the calculator's failure taxonomy. Failures are
// plain error values, not panics: the engine returns them explicitly and
// the dispatcher is the single place that translates them into user-facing
// categories and process exit codes.
package calcerr
