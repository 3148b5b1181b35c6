package app

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vk/defcalc/internal/engine"
)

func TestFormatResult_IntegerBare(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "5", formatResult("add", "2", "3", engine.Int(5)))
	assert.Equal(t, "-4", formatResult("subtract", "2", "6", engine.Int(-4)))
	assert.Equal(t, "5000", formatResult("add", "5e3", "0", engine.Int(5000)))
}

func TestFormatResult_DecimalInputForcesMarker(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "5.0", formatResult("add", "2.0", "3", engine.Real(5)))
	assert.Equal(t, "5.0", formatResult("add", "2", "3.0", engine.Real(5)))
	assert.Equal(t, "0.0", formatResult("multiply", "0.0", "5", engine.Int(0)))
}

func TestFormatResult_DivisionAlwaysMarked(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "2.0", formatResult("divide", "6", "3", engine.Real(2)))
	assert.Equal(t, "0.0", formatResult("divide", "0", "7", engine.Real(0)))
	assert.Equal(t, "0.333333", formatResult("divide", "1", "3", engine.Real(1.0/3.0)))
}

func TestFormatResult_SixSignificantDigits(t *testing.T) {
	t.Parallel()

	// Six significant digits absorb binary representation noise: the raw
	// difference here is 7.299999999999999.
	assert.Equal(t, "7.3", formatResult("subtract", "10.5", "3.2", engine.Real(10.5-3.2)))
	assert.Equal(t, "0.333333", formatScriptResult("divide", engine.Real(1.0/3.0)))
	assert.Equal(t, "7.3", formatScriptResult("subtract", engine.Real(10.5-3.2)))
}

func TestFormatResult_FractionalAndHugeValues(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "2.5", formatResult("add", "1", "1.5", engine.Real(2.5)))
	assert.Equal(t, "2e+15", formatResult("add", "1e15", "1e15", engine.Real(2e15)))
}

func TestFormatScriptResult(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "5", formatScriptResult("add", engine.Int(5)))
	assert.Equal(t, "5.0", formatScriptResult("add", engine.Real(5)))
	assert.Equal(t, "2.0", formatScriptResult("divide", engine.Real(2)))
	assert.Equal(t, "2.5", formatScriptResult("multiply", engine.Real(2.5)))
}
