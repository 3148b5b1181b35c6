package app

import (
	"bytes"
	"context"
	"fmt"

	"github.com/vk/defcalc/internal/calcerr"
	"github.com/vk/defcalc/internal/ctxlog"
	"github.com/vk/defcalc/internal/engine"
)

// operation is the signature shared by the four engine operations.
type operation func(ctx context.Context, a, b engine.Number) (engine.Number, error)

// operations is the fixed dispatch table. Command names match the CLI
// surface one to one.
var operations = map[string]operation{
	"add":      engine.Add,
	"subtract": engine.Subtract,
	"multiply": engine.Multiply,
	"divide":   engine.Divide,
}

// availableOperations lists the table's keys in display order for failure
// contexts and usage text.
var availableOperations = []string{"add", "subtract", "multiply", "divide"}

// Run executes one invocation: a single command in command mode, or every
// calc block in script mode. The returned error, if any, is a calcerr
// failure ready for translation into an exit code.
func (a *App) Run(ctx context.Context, appConfig *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	var err error
	if appConfig.ScriptPath != "" {
		err = a.runScript(ctx, appConfig.ScriptPath)
	} else {
		err = a.runCommand(ctx, appConfig.Command, appConfig.OperandA, appConfig.OperandB)
	}

	if err != nil {
		if calcErr, ok := calcerr.As(err); ok {
			a.logger.Debug("Invocation failed.",
				"kind", calcErr.Kind.String(), "context", calcErr.Context)
		}
		return err
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// runCommand resolves and executes a single operation, then writes the
// formatted result to stdout.
func (a *App) runCommand(ctx context.Context, command, rawA, rawB string) error {
	operandA, operandB, err := parseOperands(rawA, rawB)
	if err != nil {
		return err
	}

	result, err := a.execute(ctx, command, operandA, operandB)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.outW, formatResult(command, rawA, rawB, result))
	return nil
}

// runScript loads the script and evaluates every calc block in order.
// Output is buffered and flushed only after the whole script succeeds, so
// a failing invocation never writes a partial result to stdout.
func (a *App) runScript(ctx context.Context, path string) error {
	scr, err := a.loader.Load(ctx, path)
	if err != nil {
		return err
	}

	var out bytes.Buffer
	for _, calc := range scr.Calcs {
		result, err := a.execute(ctx, calc.Operation, calc.A, calc.B)
		if err != nil {
			return withCalcName(err, calc.Name)
		}
		fmt.Fprintf(&out, "%s = %s\n", calc.Name, formatScriptResult(calc.Operation, result))
	}

	_, err = a.outW.Write(out.Bytes())
	return err
}

// execute looks the command up in the dispatch table and runs it. An
// unknown command, and any fault that is not already a typed failure, both
// surface as InvalidInput.
func (a *App) execute(ctx context.Context, command string, operandA, operandB engine.Number) (engine.Number, error) {
	op, ok := operations[command]
	if !ok {
		return engine.Number{}, calcerr.New(calcerr.InvalidInput,
			"Unknown operation: "+command,
			map[string]any{
				"operation": command,
				"available": availableOperations,
			},
		)
	}

	a.logger.Debug("Executing operation.",
		"operation", command, "a", operandA.String(), "b", operandB.String())

	result, err := op(ctx, operandA, operandB)
	if err != nil {
		if _, ok := calcerr.As(err); ok {
			return engine.Number{}, err
		}
		return engine.Number{}, calcerr.New(calcerr.InvalidInput,
			fmt.Sprintf("Operation %s failed unexpectedly", command),
			map[string]any{
				"operation": command,
				"operands":  []string{operandA.String(), operandB.String()},
				"error":     err.Error(),
			},
		)
	}

	a.logger.Debug("Operation successful.", "result", result.String())
	return result, nil
}

// withCalcName rebuilds a script failure with the failing block's name in
// its context. The original failure is left untouched.
func withCalcName(err error, name string) error {
	calcErr, ok := calcerr.As(err)
	if !ok {
		return err
	}

	merged := make(map[string]any, len(calcErr.Context)+1)
	for k, v := range calcErr.Context {
		merged[k] = v
	}
	merged["calc"] = name
	return calcerr.New(calcErr.Kind, calcErr.Message, merged)
}
