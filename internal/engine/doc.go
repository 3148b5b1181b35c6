// Package engine implements the arithmetic core: a tagged numeric value
// type, operand validation, and the four operations with their
// precondition and postcondition checks.
//
// Every operation follows the same shape: guard clauses validate both
// operands, the arithmetic runs, and the magnitude postcondition inspects
// the result before it is returned. A failure at any stage short-circuits
// the call; a partial or incorrect result is never surfaced. Operations
// are pure and hold no state, so the package is safe for concurrent use
// without synchronization.
package engine
