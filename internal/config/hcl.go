package config

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"

	"github.com/katalvlaran/gridpath/internal/ctxlog"
)

// HCLLoader reads .hcl run files.
type HCLLoader struct{}

// hclRunFile is the first decoding pass: everything that does not depend
// on the grid.
type hclRunFile struct {
	Input  string            `hcl:"input"`
	Policy string            `hcl:"policy"`
	Params map[string]string `hcl:"params,optional"`
	Remain hcl.Body          `hcl:",remain"`
}

// hclPlacement is the second pass, evaluated with rows and cols in scope.
type hclPlacement struct {
	Start  []int   `hcl:"start,optional"`
	Starts [][]int `hcl:"starts,optional"`
	Goal   []int   `hcl:"goal,optional"`
}

// Load parses path and decodes input, policy and params.
func (HCLLoader) Load(ctx context.Context, path string) (*Draft, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading HCL run file", "path", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("config: failed to parse HCL file %s: %w", path, diags)
	}

	var run hclRunFile
	if diags := gohcl.DecodeBody(file.Body, nil, &run); diags.HasErrors() {
		return nil, fmt.Errorf("config: failed to decode HCL file %s: %w", path, diags)
	}
	if run.Input == "" || run.Policy == "" {
		return nil, fmt.Errorf("%w: %s needs input and policy", ErrMissingField, path)
	}

	input := inputPath(path, run.Input)
	params := orEmpty(run.Params)
	return &Draft{
		Path:   path,
		Input:  input,
		Policy: run.Policy,
		Params: params,
		bind: func(rows, cols int) (*Model, error) {
			var pl hclPlacement
			if diags := gohcl.DecodeBody(run.Remain, evalContext(rows, cols), &pl); diags.HasErrors() {
				return nil, diags
			}
			logger.Debug("Resolved HCL placement", "path", path, "rows", rows, "cols", cols)
			return placement{start: pl.Start, starts: pl.Starts, goal: pl.Goal, params: params}.
				resolve(input, run.Policy, rows, cols)
		},
	}, nil
}

// evalContext exposes the grid size and a couple of numeric helpers.
func evalContext(rows, cols int) *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"rows": cty.NumberIntVal(int64(rows)),
			"cols": cty.NumberIntVal(int64(cols)),
		},
		Functions: map[string]function.Function{
			"min": stdlib.MinFunc,
			"max": stdlib.MaxFunc,
		},
	}
}
