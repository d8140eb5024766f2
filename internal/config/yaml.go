package config

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridpath/internal/ctxlog"
)

// YAMLLoader reads .yaml and .yml run files.
type YAMLLoader struct{}

type yamlRunFile struct {
	Input  string            `yaml:"input"`
	Policy string            `yaml:"policy"`
	Start  []int             `yaml:"start"`
	Starts [][]int           `yaml:"starts"`
	Goal   []int             `yaml:"goal"`
	Params map[string]string `yaml:"params"`
}

// Load decodes path strictly; unknown keys are errors.
func (YAMLLoader) Load(ctx context.Context, path string) (*Draft, error) {
	ctxlog.FromContext(ctx).Debug("Loading YAML run file", "path", path)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	var run yamlRunFile
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&run); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: failed to decode YAML file %s: %w", path, err)
	}
	if run.Input == "" || run.Policy == "" {
		return nil, fmt.Errorf("%w: %s needs input and policy", ErrMissingField, path)
	}

	input := inputPath(path, run.Input)
	pl := placement{start: run.Start, starts: run.Starts, goal: run.Goal, params: orEmpty(run.Params)}
	return &Draft{
		Path:   path,
		Input:  input,
		Policy: run.Policy,
		Params: pl.params,
		bind: func(rows, cols int) (*Model, error) {
			return pl.resolve(input, run.Policy, rows, cols)
		},
	}, nil
}
