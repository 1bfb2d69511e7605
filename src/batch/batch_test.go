package batch_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/eriklarko/formula-parser/src/batch"
	"github.com/eriklarko/formula-parser/src/formula"
)

func TestRun(t *testing.T) {
	expressions := []string{
		"!A -> B | A & C",
		"!A -> (B | A) & C",
		")A(",
		"A->",
		"A|",
		"",
	}

	report := batch.New((*formula.Node).Infix).Run(expressions)

	assert.Equal(t, map[string]string{
		"!A -> B | A & C":   "((Not A) implies (B or (A and C)))",
		"!A -> (B | A) & C": "((Not A) implies ((B or A) and C))",
	}, report.Parsed)
	assert.ElementsMatch(t, []string{")A(", "A->", "A|", ""}, report.FailedFormulas())
	assert.True(t, report.HasFailures())
}

func TestRunDefaultsToBracketedRendering(t *testing.T) {
	report := batch.New(nil).Run([]string{"A & B"})

	assert.Equal(t, "((A) and (B))", report.Parsed["A & B"])
}

func TestRunParsesDuplicatesOnce(t *testing.T) {
	report := batch.New(nil).Run([]string{"A", "A", "A & B"})

	summary, err := report.Summary()
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Total)
	assert.Equal(t, 1.5, summary.MeanDepth)
}

func TestRunManyFormulas(t *testing.T) {
	var expressions []string
	for i := 0; i < 200; i++ {
		expressions = append(expressions, fmt.Sprintf("a%d", i%10))
	}
	expressions = append(expressions, "!A -> B | A & C")

	report := batch.New(nil).Run(expressions)

	// "a0".."a9" leave a trailing digit
	assert.Len(t, report.Failed, 10)
	assert.Len(t, report.Parsed, 1)
}

func TestDocument(t *testing.T) {
	report := batch.New(nil).Run([]string{"A & B", "A|"})

	doc, err := report.Document()
	require.NoError(t, err)

	out, err := yaml.Marshal(doc)
	require.NoError(t, err)

	var written map[string]any
	require.NoError(t, yaml.Unmarshal(out, &written))

	assert.Equal(t, map[string]any{"A & B": "((A) and (B))"}, written["parsed"])
	assert.Contains(t, written["failed"], "A|")
	assert.Contains(t, written["summary"], "mean-depth")
	assert.Contains(t, written["summary"], "variables")

	assert.Equal(t, batch.Summary{
		Total:       2,
		Parsed:      1,
		Failed:      1,
		MeanDepth:   2,
		MedianDepth: 2,
		MaxDepth:    2,
		MeanSize:    3,
		Variables:   []string{"A", "B"},
	}, doc.Summary)
}
