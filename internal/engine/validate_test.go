package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/defcalc/internal/calcerr"
)

func TestValidate_AcceptsOrdinaryValues(t *testing.T) {
	t.Parallel()

	for _, n := range []Number{Int(0), Int(-42), Real(3.14), Real(-1e300), Real(1e-300)} {
		assert.NoError(t, Validate(n, "a"), "value %s should be valid", n.String())
	}
}

func TestValidate_RejectsNaN(t *testing.T) {
	t.Parallel()

	err := Validate(Real(math.NaN()), "a")

	calcErr, ok := calcerr.As(err)
	require.True(t, ok)
	assert.Equal(t, calcerr.InvalidInput, calcErr.Kind)
	assert.Equal(t, "Parameter 'a' cannot be NaN", calcErr.Message)
	assert.Equal(t, "a", calcErr.Context["param"])
}

func TestValidate_RejectsInfinity(t *testing.T) {
	t.Parallel()

	for _, v := range []float64{math.Inf(1), math.Inf(-1)} {
		err := Validate(Real(v), "b")

		calcErr, ok := calcerr.As(err)
		require.True(t, ok)
		assert.Equal(t, calcerr.InvalidInput, calcErr.Kind)
		assert.Equal(t, "Parameter 'b' cannot be infinite", calcErr.Message)
		assert.Equal(t, "b", calcErr.Context["param"])
	}
}

func TestValidateOperands_ShortCircuitsOnFirst(t *testing.T) {
	t.Parallel()

	// Both operands are invalid; the failure must name 'a'.
	err := validateOperands(Real(math.NaN()), Real(math.Inf(1)))

	calcErr, ok := calcerr.As(err)
	require.True(t, ok)
	assert.Equal(t, "a", calcErr.Context["param"])
}
