package engine

import (
	"math"
	"strconv"
)

// Number is a numeric value tagged with its subtype. The tag preserves
// "integer in, integer out" semantics across operations: arithmetic on two
// integers yields an integer whenever the result is exactly integral,
// while division always yields a real.
type Number struct {
	val   float64
	isInt bool
}

// Int returns an integer-tagged Number.
func Int(v int64) Number {
	return Number{val: float64(v), isInt: true}
}

// Real returns a real-tagged Number.
func Real(v float64) Number {
	return Number{val: v, isInt: false}
}

// Float64 returns the underlying value.
func (n Number) Float64() float64 {
	return n.val
}

// IsInt reports whether the value carries the integer tag.
func (n Number) IsInt() bool {
	return n.isInt
}

// Int64 returns the value truncated to int64. Only meaningful when the
// value is integral.
func (n Number) Int64() int64 {
	return int64(n.val)
}

// String renders the value for logs and failure contexts: integers print
// bare, reals print with full precision.
func (n Number) String() string {
	if n.isInt {
		return strconv.FormatInt(n.Int64(), 10)
	}
	return strconv.FormatFloat(n.val, 'g', -1, 64)
}

// normalize applies the shared type-consistency rule: if both operands were
// integers and the result is exactly integral, the result keeps the integer
// tag, otherwise it is a real.
func normalize(result float64, a, b Number) Number {
	if a.isInt && b.isInt && result == math.Trunc(result) {
		return Number{val: result, isInt: true}
	}
	return Number{val: result, isInt: false}
}
