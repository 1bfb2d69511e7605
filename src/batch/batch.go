package batch

import (
	"log/slog"
	"sync"

	"github.com/samber/lo"

	"github.com/eriklarko/formula-parser/src/formula"
)

// Renderer turns a parsed tree into the string stored in a report.
type Renderer func(*formula.Node) string

type Runner struct {
	render Renderer
}

// New creates a Runner that stores trees rendered with render. A nil render
// uses the fully bracketed form.
//
// Usage:
//
//	report := batch.New((*formula.Node).Infix).Run([]string{"A | B & C", "A->"})
//	fmt.Println(report.Parsed["A | B & C"]) // (A or (B and C))
func New(render Renderer) *Runner {
	if render == nil {
		render = (*formula.Node).String
	}
	return &Runner{
		render: render,
	}
}

type result struct {
	tree *formula.Node
	err  error
}

// Run parses every expression and records the outcome. The formulas don't
// depend on each other so they are parsed concurrently. Duplicates are only
// parsed once.
func (r *Runner) Run(expressions []string) *Report {
	expressions = lo.Uniq(expressions)
	results := make([]result, len(expressions))

	var wg sync.WaitGroup
	for i, expression := range expressions {
		wg.Add(1)

		go func(i int, expression string) {
			defer wg.Done()

			tree, err := formula.Parse(expression)
			results[i] = result{tree: tree, err: err}
		}(i, expression)
	}
	wg.Wait()

	report := &Report{}
	for i, expression := range expressions {
		if results[i].err != nil {
			slog.Debug("failed to parse formula", "formula", expression, "error", results[i].err)
			report.RecordFailed(expression, results[i].err)
			continue
		}
		report.RecordParsed(expression, results[i].tree, r.render)
	}

	return report
}
