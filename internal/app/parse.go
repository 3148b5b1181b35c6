package app

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/vk/defcalc/internal/calcerr"
	"github.com/vk/defcalc/internal/engine"
)

// intDisplayLimit bounds the magnitude up to which a whole float64 is
// still exact enough to treat as an integer.
const intDisplayLimit = 1e15

// parseOperands converts the two raw argument strings into tagged numbers.
// This is where the "was this a valid number" check lives: a string that
// does not parse, or parses to NaN or an infinity, is an input failure.
func parseOperands(rawA, rawB string) (engine.Number, engine.Number, error) {
	valA, errA := strconv.ParseFloat(rawA, 64)
	valB, errB := strconv.ParseFloat(rawB, 64)
	if errA != nil || errB != nil {
		parseErr := errA
		if parseErr == nil {
			parseErr = errB
		}
		return engine.Number{}, engine.Number{}, calcerr.New(calcerr.InvalidInput,
			fmt.Sprintf("Arguments must be valid numbers: '%s', '%s'", rawA, rawB),
			map[string]any{
				"raw_args": []string{rawA, rawB},
				"error":    parseErr.Error(),
			},
		)
	}

	if math.IsNaN(valA) || math.IsInf(valA, 0) {
		return engine.Number{}, engine.Number{}, calcerr.New(calcerr.InvalidInput,
			fmt.Sprintf("Argument 'a' cannot be %s (NaN or infinite)", rawA),
			map[string]any{
				"raw_args": []string{rawA, rawB},
				"parsed_a": valA,
			},
		)
	}

	if math.IsNaN(valB) || math.IsInf(valB, 0) {
		return engine.Number{}, engine.Number{}, calcerr.New(calcerr.InvalidInput,
			fmt.Sprintf("Argument 'b' cannot be %s (NaN or infinite)", rawB),
			map[string]any{
				"raw_args": []string{rawA, rawB},
				"parsed_b": valB,
			},
		)
	}

	return tagOperand(rawA, valA), tagOperand(rawB, valB), nil
}

// tagOperand decides the subtype of a parsed operand. A raw string with no
// decimal point that parsed to a whole number keeps integer semantics, as
// long as the magnitude is small enough for float64 to represent it
// exactly.
func tagOperand(raw string, val float64) engine.Number {
	if !strings.Contains(raw, ".") && val == math.Trunc(val) && math.Abs(val) < intDisplayLimit {
		return engine.Int(int64(val))
	}
	return engine.Real(val)
}
