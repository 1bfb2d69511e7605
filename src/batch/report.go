package batch

import (
	"fmt"
	"slices"

	"github.com/montanaflynn/stats"
	"github.com/samber/lo"

	"github.com/eriklarko/formula-parser/src/formula"
)

type Report struct {
	// formula -> rendered tree
	Parsed map[string]string
	// formula -> why it could not be parsed
	Failed map[string]string

	depths    []float64
	sizes     []float64
	variables []string
}

// Summary describes the shape of the parsed trees in a report.
type Summary struct {
	Total  int `yaml:"total"`
	Parsed int `yaml:"parsed"`
	Failed int `yaml:"failed"`

	MeanDepth   float64 `yaml:"mean-depth"`
	MedianDepth float64 `yaml:"median-depth"`
	MaxDepth    float64 `yaml:"max-depth"`
	MeanSize    float64 `yaml:"mean-size"`

	// distinct variables over every parsed formula, sorted
	Variables []string `yaml:"variables,omitempty"`
}

// Document is what gets written when a report is printed as YAML.
type Document struct {
	Parsed  map[string]string `yaml:"parsed,omitempty"`
	Failed  map[string]string `yaml:"failed,omitempty"`
	Summary Summary           `yaml:"summary"`
}

// RecordParsed records a formula that parsed into tree. render decides how the
// tree is stored in the report.
func (r *Report) RecordParsed(expression string, tree *formula.Node, render Renderer) {
	if r.Parsed == nil {
		r.Parsed = make(map[string]string)
	}
	r.Parsed[expression] = render(tree)
	r.depths = append(r.depths, float64(tree.Depth()))
	r.sizes = append(r.sizes, float64(tree.Size()))
	r.variables = append(r.variables, tree.Variables()...)
}

// RecordFailed records a formula that could not be parsed
func (r *Report) RecordFailed(expression string, err error) {
	if r.Failed == nil {
		r.Failed = make(map[string]string)
	}
	r.Failed[expression] = err.Error()
}

func (r *Report) HasFailures() bool {
	return len(r.Failed) > 0
}

// FailedFormulas returns the formulas that could not be parsed, sorted.
func (r *Report) FailedFormulas() []string {
	return sortedKeys(r.Failed)
}

// ParsedFormulas returns the formulas that parsed, sorted.
func (r *Report) ParsedFormulas() []string {
	return sortedKeys(r.Parsed)
}

// Results merges parsed and failed formulas into one map, the shape the
// results CSV is written in.
func (r *Report) Results() map[string]string {
	return lo.Assign(r.Parsed, r.Failed)
}

func (r *Report) Summary() (Summary, error) {
	summary := Summary{
		Total:  len(r.Parsed) + len(r.Failed),
		Parsed: len(r.Parsed),
		Failed: len(r.Failed),
	}
	if len(r.depths) == 0 {
		// nothing parsed, nothing to describe
		return summary, nil
	}

	summary.Variables = lo.Uniq(r.variables)
	slices.Sort(summary.Variables)

	var err error
	if summary.MeanDepth, err = stats.Mean(r.depths); err != nil {
		return Summary{}, fmt.Errorf("failed to calculate mean depth: %w", err)
	}
	if summary.MedianDepth, err = stats.Median(r.depths); err != nil {
		return Summary{}, fmt.Errorf("failed to calculate median depth: %w", err)
	}
	if summary.MaxDepth, err = stats.Max(r.depths); err != nil {
		return Summary{}, fmt.Errorf("failed to calculate max depth: %w", err)
	}
	if summary.MeanSize, err = stats.Mean(r.sizes); err != nil {
		return Summary{}, fmt.Errorf("failed to calculate mean size: %w", err)
	}

	return summary, nil
}

func (r *Report) Document() (Document, error) {
	summary, err := r.Summary()
	if err != nil {
		return Document{}, err
	}

	return Document{
		Parsed:  r.Parsed,
		Failed:  r.Failed,
		Summary: summary,
	}, nil
}

func sortedKeys(m map[string]string) []string {
	keys := lo.Keys(m)
	slices.Sort(keys)
	return keys
}
