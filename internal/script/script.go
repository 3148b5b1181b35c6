package script

import (
	"context"

	"github.com/vk/defcalc/internal/calcerr"
	"github.com/vk/defcalc/internal/engine"
)

// Calc is one calculation extracted from a script file: an operation name,
// a unique result name, and two already-converted operands.
type Calc struct {
	Operation string
	Name      string
	A         engine.Number
	B         engine.Number

	// SourceFile is the path the block was loaded from, kept for
	// failure contexts.
	SourceFile string
}

// Script is the ordered set of calculations loaded from a path. Order is
// file path order, then block order within each file.
type Script struct {
	Calcs []*Calc
}

// Loader is the interface for a format-specific script loader. The
// dispatcher depends on this interface so tests can inject fixtures
// without touching the file system format.
type Loader interface {
	// Load reads every calculation found under path and returns them in
	// evaluation order.
	Load(ctx context.Context, path string) (*Script, error)
}

// validate enforces script-wide rules after loading: at least one block,
// and result names unique across the whole set.
func (s *Script) validate() error {
	if len(s.Calcs) == 0 {
		return calcerr.New(calcerr.InvalidInput,
			"Script contains no calc blocks",
			nil,
		)
	}

	seen := make(map[string]string, len(s.Calcs))
	for _, c := range s.Calcs {
		if first, ok := seen[c.Name]; ok {
			return calcerr.New(calcerr.InvalidInput,
				"Duplicate calc name: "+c.Name,
				map[string]any{
					"calc":       c.Name,
					"first_file": first,
					"file":       c.SourceFile,
				},
			)
		}
		seen[c.Name] = c.SourceFile
	}

	return nil
}
