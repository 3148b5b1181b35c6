package calcerr

import (
	"errors"
	"fmt"
)

// Kind classifies a calculator failure. Every failure raised by the engine
// or the dispatcher belongs to exactly one kind.
type Kind int

const (
	// InvalidInput covers bad number formats, NaN or infinite operands,
	// unknown operations, and any unexpected fault wrapped at the dispatch
	// boundary.
	InvalidInput Kind = iota

	// DivisionByZero covers a zero divisor, or one too close to zero to
	// divide safely.
	DivisionByZero

	// Overflow is raised when a result exceeds the representable range.
	Overflow

	// Underflow is raised when a result collapses toward zero even though
	// the operands were not near zero themselves.
	Underflow
)

// String returns the kind's name for logging.
func (k Kind) String() string {
	switch k {
	case InvalidInput:
		return "invalid_input"
	case DivisionByZero:
		return "division_by_zero"
	case Overflow:
		return "overflow"
	case Underflow:
		return "underflow"
	}
	return fmt.Sprintf("unknown_kind(%d)", int(k))
}

// Category returns the user-facing category prefix for stderr output.
func (k Kind) Category() string {
	switch k {
	case InvalidInput:
		return "Input Error"
	case DivisionByZero:
		return "Math Error"
	default:
		return "Calculator Error"
	}
}

// Error is a typed calculator failure. It is constructed at the point of
// detection and propagated unchanged to the dispatcher; the Context map
// carries the failing inputs so verbose output can reproduce them without
// re-deriving anything.
type Error struct {
	Kind    Kind
	Message string
	Context map[string]any
}

// New creates a failure of the given kind. The context map may be nil.
func New(kind Kind, message string, context map[string]any) *Error {
	if context == nil {
		context = map[string]any{}
	}
	return &Error{Kind: kind, Message: message, Context: context}
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// As reports whether err is a calculator failure, and returns it if so.
func As(err error) (*Error, bool) {
	var calcErr *Error
	if errors.As(err, &calcErr) {
		return calcErr, true
	}
	return nil, false
}
