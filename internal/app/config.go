package app

import "errors"

// Config holds everything one invocation needs: either a single command
// with two raw operand strings, or a script path for batch mode, plus the
// logging options.
type Config struct {
	Command  string
	OperandA string
	OperandB string

	ScriptPath string

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config. Exactly one of the two run modes must be
// selected.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Command == "" && cfg.ScriptPath == "" {
		return nil, errors.New("either a command or a script path is required")
	}
	if cfg.Command != "" && cfg.ScriptPath != "" {
		return nil, errors.New("a command and a script path cannot be combined")
	}

	return &cfg, nil
}
