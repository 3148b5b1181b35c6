package engine

import (
	"context"
	"math"

	"github.com/vk/defcalc/internal/calcerr"
	"github.com/vk/defcalc/internal/ctxlog"
)

// Epsilon is the threshold for the underflow postcondition and for the
// "divisor too close to zero" guard. Treating a near-zero divisor the same
// as an exact zero is a policy choice preserved from the system's original
// contract, not a numeric necessity.
const Epsilon = 1e-15

// Operation names as they appear in failure contexts and debug logs.
const (
	opAdd      = "addition"
	opSubtract = "subtraction"
	opMultiply = "multiplication"
	opDivide   = "division"
)

// checkMagnitude is the shared postcondition applied after arithmetic and
// before any result is returned. An infinite result is an overflow. A
// nonzero result below Epsilon is an underflow, but only when the operands
// themselves were not near zero: inputs already tiny are expected to
// produce tiny results.
func checkMagnitude(result float64, op string, a, b Number) error {
	if math.IsInf(result, 0) {
		return calcerr.New(calcerr.Overflow,
			"Result overflow in "+op,
			map[string]any{
				"operation": op,
				"operands":  []string{a.String(), b.String()},
				"result":    result,
			},
		)
	}

	minInput := 0.0
	if a.val != 0 && b.val != 0 {
		minInput = math.Min(math.Abs(a.val), math.Abs(b.val))
	}
	if result != 0 && math.Abs(result) < Epsilon && minInput > Epsilon {
		return calcerr.New(calcerr.Underflow,
			"Result underflow in "+op,
			map[string]any{
				"operation": op,
				"operands":  []string{a.String(), b.String()},
				"result":    result,
			},
		)
	}

	return nil
}

// Add returns the sum of a and b. Two integer operands yield an integer
// whenever the sum is exactly integral.
func Add(ctx context.Context, a, b Number) (Number, error) {
	if err := validateOperands(a, b); err != nil {
		return Number{}, err
	}

	logger := ctxlog.FromContext(ctx)
	logger.Debug("Computing sum.", "a", a.String(), "b", b.String())

	result := a.val + b.val
	if err := checkMagnitude(result, opAdd, a, b); err != nil {
		return Number{}, err
	}

	return normalize(result, a, b), nil
}

// Subtract returns a minus b, under the same typing rule as Add.
func Subtract(ctx context.Context, a, b Number) (Number, error) {
	if err := validateOperands(a, b); err != nil {
		return Number{}, err
	}

	logger := ctxlog.FromContext(ctx)
	logger.Debug("Computing difference.", "a", a.String(), "b", b.String())

	result := a.val - b.val
	if err := checkMagnitude(result, opSubtract, a, b); err != nil {
		return Number{}, err
	}

	return normalize(result, a, b), nil
}

// Multiply returns the product of a and b. A zero operand yields integer
// zero without running the magnitude check; this is part of the contract
// (multiply(a, 0) == 0 exactly), not an optimization. A unit operand
// returns the other operand unchanged, tag included.
func Multiply(ctx context.Context, a, b Number) (Number, error) {
	if err := validateOperands(a, b); err != nil {
		return Number{}, err
	}

	logger := ctxlog.FromContext(ctx)

	if a.val == 0 || b.val == 0 {
		logger.Debug("Multiplication by zero, returning 0.")
		return Int(0), nil
	}
	if a.val == 1 {
		logger.Debug("Multiplication by 1, returning second operand.")
		return b, nil
	}
	if b.val == 1 {
		logger.Debug("Multiplication by 1, returning first operand.")
		return a, nil
	}

	logger.Debug("Computing product.", "a", a.String(), "b", b.String())

	result := a.val * b.val
	if err := checkMagnitude(result, opMultiply, a, b); err != nil {
		return Number{}, err
	}

	return normalize(result, a, b), nil
}

// Divide returns a divided by b, always as a real. A divisor that is zero,
// or nonzero but within Epsilon of zero, fails with DivisionByZero. A zero
// dividend returns real 0.0 without touching the general path.
func Divide(ctx context.Context, a, b Number) (Number, error) {
	if err := validateOperands(a, b); err != nil {
		return Number{}, err
	}

	logger := ctxlog.FromContext(ctx)

	if b.val == 0 {
		logger.Debug("Division by zero attempted.", "dividend", a.String())
		return Number{}, calcerr.New(calcerr.DivisionByZero,
			"Cannot divide by zero",
			map[string]any{"dividend": a.String(), "divisor": b.String()},
		)
	}

	if math.Abs(b.val) < Epsilon {
		logger.Debug("Division by near-zero divisor attempted.",
			"dividend", a.String(), "divisor", b.String())
		return Number{}, calcerr.New(calcerr.DivisionByZero,
			"Cannot divide by number too close to zero",
			map[string]any{
				"dividend":  a.String(),
				"divisor":   b.String(),
				"threshold": Epsilon,
			},
		)
	}

	if a.val == 0 {
		logger.Debug("Division of zero, returning 0.0.")
		return Real(0), nil
	}

	logger.Debug("Computing quotient.", "a", a.String(), "b", b.String())

	result := a.val / b.val
	if err := checkMagnitude(result, opDivide, a, b); err != nil {
		return Number{}, err
	}

	// Division never yields the integer subtype, whatever the operands.
	return Real(result), nil
}
