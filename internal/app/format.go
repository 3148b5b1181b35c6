package app

import (
	"math"
	"strconv"
	"strings"

	"github.com/vk/defcalc/internal/engine"
)

// displayDigits is the significant-digit count for fractional and
// oversized results. Rounding to six digits keeps float64 noise out of
// the output: 10.5 - 3.2 displays as 7.3, not 7.299999999999999.
const displayDigits = 6

// formatResult renders a command-mode result. Division always shows an
// explicit fractional marker when the quotient is whole. Other operations
// print whole results bare, unless either raw input contained a decimal
// point, which forces the marker even for a whole-number result.
func formatResult(command, rawA, rawB string, n engine.Number) string {
	v := n.Float64()
	integral := v == math.Trunc(v)

	if command == "divide" {
		if integral {
			return strconv.FormatFloat(v, 'f', 1, 64)
		}
		return strconv.FormatFloat(v, 'g', displayDigits, 64)
	}

	if integral && math.Abs(v) < intDisplayLimit {
		if strings.Contains(rawA, ".") || strings.Contains(rawB, ".") {
			return strconv.FormatInt(int64(v), 10) + ".0"
		}
		return strconv.FormatInt(int64(v), 10)
	}

	return strconv.FormatFloat(v, 'g', displayDigits, 64)
}

// formatScriptResult renders a script-mode result. Script operands carry
// their own subtype tags, so display follows the result tag instead of the
// raw strings: integers print bare, whole reals carry the marker.
func formatScriptResult(command string, n engine.Number) string {
	v := n.Float64()
	integral := v == math.Trunc(v)

	if command != "divide" && n.IsInt() && math.Abs(v) < intDisplayLimit {
		return strconv.FormatInt(n.Int64(), 10)
	}
	if integral {
		return strconv.FormatFloat(v, 'f', 1, 64)
	}
	return strconv.FormatFloat(v, 'g', displayDigits, 64)
}
