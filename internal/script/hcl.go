package script

import (
	"context"
	"fmt"
	"math/big"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/defcalc/internal/calcerr"
	"github.com/vk/defcalc/internal/ctxlog"
	"github.com/vk/defcalc/internal/engine"
	"github.com/vk/defcalc/internal/fsutil"
	"github.com/zclconf/go-cty/cty"
)

// hclScriptFile represents the top-level structure of a script file for decoding.
type hclScriptFile struct {
	Calcs []*hclCalc `hcl:"calc,block"`
}

// hclCalc is the raw form of a calc block. Operands stay as expressions
// here; conversion to engine values happens after decoding so failures can
// name the block.
type hclCalc struct {
	Operation string         `hcl:"operation,label"`
	Name      string         `hcl:"name,label"`
	A         hcl.Expression `hcl:"a"`
	B         hcl.Expression `hcl:"b"`
}

// HCLLoader loads calculation scripts from .hcl files.
type HCLLoader struct{}

// NewHCLLoader creates a new HCL script loader.
func NewHCLLoader() *HCLLoader {
	return &HCLLoader{}
}

// Load finds every .hcl file under path, parses the calc blocks across all
// of them, and returns the consolidated script. Files are read in sorted
// path order so evaluation order is deterministic.
func (l *HCLLoader) Load(ctx context.Context, path string) (*Script, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading script from path.", "path", path)

	files, err := fsutil.FindFilesByExtension(path, ".hcl")
	if err != nil {
		return nil, calcerr.New(calcerr.InvalidInput,
			fmt.Sprintf("Cannot read script path: %v", err),
			map[string]any{"path": path, "error": err.Error()},
		)
	}

	scr := &Script{}
	parser := hclparse.NewParser()
	for _, file := range files {
		calcs, err := calcsFromHCL(file, parser)
		if err != nil {
			return nil, err
		}
		scr.Calcs = append(scr.Calcs, calcs...)
	}
	logger.Debug("Script loaded.", "files", len(files), "calcs", len(scr.Calcs))

	if err := scr.validate(); err != nil {
		return nil, err
	}

	return scr, nil
}

// calcsFromHCL parses a single HCL file and returns the calc blocks found
// within it, with operands converted to engine values.
func calcsFromHCL(filePath string, parser *hclparse.Parser) ([]*Calc, error) {
	hclFile, diags := parser.ParseHCLFile(filePath)
	if diags.HasErrors() {
		return nil, calcerr.New(calcerr.InvalidInput,
			fmt.Sprintf("Failed to parse script file %s", filePath),
			map[string]any{"file": filePath, "error": diags.Error()},
		)
	}

	var parsedFile hclScriptFile
	diags = gohcl.DecodeBody(hclFile.Body, nil, &parsedFile)
	if diags.HasErrors() {
		return nil, calcerr.New(calcerr.InvalidInput,
			fmt.Sprintf("Failed to decode script file %s", filePath),
			map[string]any{"file": filePath, "error": diags.Error()},
		)
	}

	calcs := make([]*Calc, 0, len(parsedFile.Calcs))
	for _, parsed := range parsedFile.Calcs {
		calc, err := newCalcFromHCL(parsed, filePath)
		if err != nil {
			return nil, err
		}
		calcs = append(calcs, calc)
	}

	return calcs, nil
}

// newCalcFromHCL converts one decoded block into a Calc, evaluating both
// operand expressions.
func newCalcFromHCL(parsed *hclCalc, filePath string) (*Calc, error) {
	a, err := operandValue(parsed.A, "a", parsed.Name, filePath)
	if err != nil {
		return nil, err
	}
	b, err := operandValue(parsed.B, "b", parsed.Name, filePath)
	if err != nil {
		return nil, err
	}

	return &Calc{
		Operation:  parsed.Operation,
		Name:       parsed.Name,
		A:          a,
		B:          b,
		SourceFile: filePath,
	}, nil
}

// operandValue evaluates an operand expression and converts it to a tagged
// engine value. Anything that is not a cty number is an input failure
// naming the block.
func operandValue(expr hcl.Expression, attr, calcName, filePath string) (engine.Number, error) {
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return engine.Number{}, calcerr.New(calcerr.InvalidInput,
			fmt.Sprintf("Cannot evaluate operand '%s' of calc %q", attr, calcName),
			map[string]any{
				"calc":  calcName,
				"file":  filePath,
				"error": diags.Error(),
			},
		)
	}

	if val.Type() != cty.Number || val.IsNull() {
		return engine.Number{}, calcerr.New(calcerr.InvalidInput,
			fmt.Sprintf("Operand '%s' of calc %q must be a number", attr, calcName),
			map[string]any{
				"calc":        calcName,
				"file":        filePath,
				"actual_type": val.Type().FriendlyName(),
			},
		)
	}

	return numberFromCty(val), nil
}

// numberFromCty converts a cty number into a tagged engine value. Whole
// numbers that fit in int64 keep the integer tag; everything else becomes
// a real.
func numberFromCty(val cty.Value) engine.Number {
	bf := val.AsBigFloat()
	if bf.IsInt() {
		if i, acc := bf.Int64(); acc == big.Exact {
			return engine.Int(i)
		}
	}
	f, _ := bf.Float64()
	return engine.Real(f)
}
