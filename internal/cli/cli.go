package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/vk/defcalc/internal/app"
	"github.com/vk/defcalc/internal/calcerr"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// ExitErrorFrom translates any error reaching the process boundary into an
// ExitError carrying the category-prefixed message and exit code. Typed
// calculator failures map onto their category; anything else is an
// unexpected internal fault.
func ExitErrorFrom(err error) *ExitError {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr
	}

	if calcErr, ok := calcerr.As(err); ok {
		var code int
		switch calcErr.Kind {
		case calcerr.InvalidInput:
			code = ExitInvalidInput
		case calcerr.DivisionByZero:
			code = ExitMathError
		default:
			code = ExitCalculatorError
		}
		return &ExitError{
			Code:    code,
			Message: calcErr.Kind.Category() + ": " + calcErr.Message,
		}
	}

	return &ExitError{
		Code:    ExitInternalError,
		Message: "Internal Error: " + err.Error(),
	}
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	flagSet := flag.NewFlagSet("defcalc", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
defcalc - A defensive command-line calculator.

Usage:
  defcalc [options] COMMAND A B
  defcalc [options] --script PATH

Commands:
  add, subtract, multiply, divide
    Each takes two numeric operands.

Arguments:
  PATH
    Path to a single .hcl script file or a directory containing .hcl files.

Options:
`)
		flagSet.PrintDefaults()
	}

	scriptFlag := flagSet.String("script", "", "Path to the script file or directory.")
	sFlag := flagSet.String("s", "", "Path to the script file or directory (shorthand).")
	verboseFlag := flagSet.Bool("verbose", false, "Enable debug-level tracing to stderr.")
	vFlag := flagSet.Bool("v", false, "Enable debug-level tracing to stderr (shorthand).")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: ExitInvalidInput, Message: "Input Error: " + err.Error()}
	}

	scriptPath := *scriptFlag
	if scriptPath == "" {
		scriptPath = *sFlag
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: ExitInvalidInput, Message: "Input Error: invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: ExitInvalidInput, Message: "Input Error: invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	// The verbosity flag raises the level to debug without touching
	// stdout output or exit codes.
	if *verboseFlag || *vFlag {
		logLevel = "debug"
	}

	var command, operandA, operandB string
	if scriptPath == "" {
		if flagSet.NArg() == 0 {
			flagSet.Usage()
			return nil, true, nil
		}
		if flagSet.NArg() != 3 {
			return nil, false, &ExitError{
				Code:    ExitInvalidInput,
				Message: fmt.Sprintf("Input Error: expected COMMAND A B, got %d argument(s)", flagSet.NArg()),
			}
		}
		command = flagSet.Arg(0)
		operandA = flagSet.Arg(1)
		operandB = flagSet.Arg(2)
	} else if flagSet.NArg() > 0 {
		return nil, false, &ExitError{
			Code:    ExitInvalidInput,
			Message: "Input Error: a script path and a command cannot be combined",
		}
	}

	config, err := app.NewConfig(app.Config{
		Command:    command,
		OperandA:   operandA,
		OperandB:   operandB,
		ScriptPath: scriptPath,
		LogFormat:  logFormat,
		LogLevel:   logLevel,
	})

	if err != nil {
		return nil, false, &ExitError{Code: ExitInvalidInput, Message: "Input Error: " + err.Error()}
	}

	return config, false, nil
}
