package cli

// Exit codes returned by the defcalc CLI. These constants let external
// tools check exit codes symbolically rather than using magic numbers.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitInvalidInput indicates invalid input: a bad number format, a NaN
	// or infinite operand, or an unknown command.
	ExitInvalidInput = 1

	// ExitMathError indicates a math-domain failure (division by zero).
	ExitMathError = 2

	// ExitCalculatorError indicates any other calculator-domain failure,
	// such as overflow or underflow.
	ExitCalculatorError = 3

	// ExitInternalError indicates an unexpected internal fault.
	ExitInternalError = 4
)
