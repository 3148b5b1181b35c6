package engine

import (
	"fmt"
	"math"

	"github.com/vk/defcalc/internal/calcerr"
)

// Validate is the guard clause applied to every operand before arithmetic
// runs. It rejects NaN and infinite values with an InvalidInput failure
// naming the offending parameter. Past this check a Number is safe for any
// operation.
//
// The "is this even a number" branch of the original contract lives at the
// string-parsing boundary in the dispatcher; by the time a Number exists
// the type is already right.
func Validate(n Number, name string) error {
	if math.IsNaN(n.val) {
		return calcerr.New(calcerr.InvalidInput,
			fmt.Sprintf("Parameter '%s' cannot be NaN", name),
			map[string]any{"value": n.String(), "param": name},
		)
	}

	if math.IsInf(n.val, 0) {
		return calcerr.New(calcerr.InvalidInput,
			fmt.Sprintf("Parameter '%s' cannot be infinite", name),
			map[string]any{"value": n.String(), "param": name},
		)
	}

	return nil
}

// validateOperands runs Validate over both operands of an operation,
// short-circuiting on the first failure.
func validateOperands(a, b Number) error {
	if err := Validate(a, "a"); err != nil {
		return err
	}
	return Validate(b, "b")
}
