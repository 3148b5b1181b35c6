package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/defcalc/internal/calcerr"
)

func TestParse_Command(t *testing.T) {
	t.Parallel()

	config, shouldExit, err := Parse([]string{"add", "2", "3"}, &bytes.Buffer{})

	require.NoError(t, err)
	require.False(t, shouldExit)
	assert.Equal(t, "add", config.Command)
	assert.Equal(t, "2", config.OperandA)
	assert.Equal(t, "3", config.OperandB)
	assert.Equal(t, "warn", config.LogLevel)
	assert.Equal(t, "text", config.LogFormat)
}

func TestParse_VerboseRaisesLevel(t *testing.T) {
	t.Parallel()

	for _, flag := range []string{"-v", "-verbose"} {
		config, _, err := Parse([]string{flag, "add", "2", "3"}, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Equal(t, "debug", config.LogLevel, "flag %s", flag)
	}
}

func TestParse_ScriptMode(t *testing.T) {
	t.Parallel()

	config, shouldExit, err := Parse([]string{"-script", "calcs.hcl"}, &bytes.Buffer{})

	require.NoError(t, err)
	require.False(t, shouldExit)
	assert.Equal(t, "calcs.hcl", config.ScriptPath)
	assert.Empty(t, config.Command)

	config, _, err = Parse([]string{"-s", "calcs.hcl"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "calcs.hcl", config.ScriptPath)
}

func TestParse_NoArgsPrintsUsage(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	_, shouldExit, err := Parse(nil, out)

	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Contains(t, out.String(), "Usage:")
}

func TestParse_HelpFlag(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	_, shouldExit, err := Parse([]string{"-h"}, out)

	require.NoError(t, err)
	assert.True(t, shouldExit)
}

func TestParse_WrongArgumentCount(t *testing.T) {
	t.Parallel()

	_, _, err := Parse([]string{"add", "2"}, &bytes.Buffer{})

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, ExitInvalidInput, exitErr.Code)
	assert.Contains(t, exitErr.Message, "Input Error:")
}

func TestParse_ScriptAndCommandConflict(t *testing.T) {
	t.Parallel()

	_, _, err := Parse([]string{"-script", "x.hcl", "add", "2", "3"}, &bytes.Buffer{})

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, ExitInvalidInput, exitErr.Code)
}

func TestParse_UnknownFlag(t *testing.T) {
	t.Parallel()

	_, _, err := Parse([]string{"--bogus-flag"}, &bytes.Buffer{})

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, ExitInvalidInput, exitErr.Code)
}

func TestParse_InvalidLogOptions(t *testing.T) {
	t.Parallel()

	_, _, err := Parse([]string{"-log-format", "xml", "add", "2", "3"}, &bytes.Buffer{})
	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, ExitInvalidInput, exitErr.Code)

	_, _, err = Parse([]string{"-log-level", "loud", "add", "2", "3"}, &bytes.Buffer{})
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, ExitInvalidInput, exitErr.Code)
}

func TestExitCodes_Contract(t *testing.T) {
	t.Parallel()

	// The numeric values are part of the CLI surface; external tools
	// depend on them.
	assert.Equal(t, 0, ExitSuccess)
	assert.Equal(t, 1, ExitInvalidInput)
	assert.Equal(t, 2, ExitMathError)
	assert.Equal(t, 3, ExitCalculatorError)
	assert.Equal(t, 4, ExitInternalError)
}

func TestExitErrorFrom_TaxonomyMapping(t *testing.T) {
	t.Parallel()

	cases := []struct {
		kind     calcerr.Kind
		wantCode int
		wantMsg  string
	}{
		{calcerr.InvalidInput, ExitInvalidInput, "Input Error: bad"},
		{calcerr.DivisionByZero, ExitMathError, "Math Error: bad"},
		{calcerr.Overflow, ExitCalculatorError, "Calculator Error: bad"},
		{calcerr.Underflow, ExitCalculatorError, "Calculator Error: bad"},
	}

	for _, tc := range cases {
		exitErr := ExitErrorFrom(calcerr.New(tc.kind, "bad", nil))
		assert.Equal(t, tc.wantCode, exitErr.Code)
		assert.Equal(t, tc.wantMsg, exitErr.Message)
	}
}

func TestExitErrorFrom_PassesExitErrorsThrough(t *testing.T) {
	t.Parallel()

	original := &ExitError{Code: ExitInvalidInput, Message: "Input Error: bad flag"}
	assert.Same(t, original, ExitErrorFrom(original))
}

func TestExitErrorFrom_UnexpectedFault(t *testing.T) {
	t.Parallel()

	exitErr := ExitErrorFrom(errors.New("disk on fire"))
	assert.Equal(t, ExitInternalError, exitErr.Code)
	assert.Equal(t, "Internal Error: disk on fire", exitErr.Message)
}
