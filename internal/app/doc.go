// Package app is the dispatcher: it parses raw operand strings into
// tagged numbers, resolves commands against the fixed operation table,
// executes the engine, and formats results for stdout. It is also the
// only layer that sees every failure kind; translation into exit codes
// happens one level up, at the CLI boundary.
package app
