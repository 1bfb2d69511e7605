package batch

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eriklarko/formula-parser/src/formula"
)

func mustParse(t *testing.T, expression string) *formula.Node {
	t.Helper()

	node, err := formula.Parse(expression)
	require.NoError(t, err)
	return node
}

func TestRecordParsed(t *testing.T) {
	report := &Report{}
	report.RecordParsed("A & B", mustParse(t, "A & B"), (*formula.Node).String)

	assert.Equal(
		t,
		map[string]string{
			"A & B": "((A) and (B))",
		},
		report.Parsed,
	)
	assert.False(t, report.HasFailures())
}

func TestRecordFailed(t *testing.T) {
	report := &Report{}
	report.RecordFailed("A->", errors.New("unexpected end of input"))

	assert.Equal(
		t,
		map[string]string{
			"A->": "unexpected end of input",
		},
		report.Failed,
	)
	assert.True(t, report.HasFailures())
	assert.Equal(t, []string{"A->"}, report.FailedFormulas())
}

func TestResults(t *testing.T) {
	report := &Report{}
	report.RecordParsed("A", mustParse(t, "A"), (*formula.Node).Infix)
	report.RecordFailed("A|", errors.New("unexpected end of input"))

	assert.Equal(
		t,
		map[string]string{
			"A":  "A",
			"A|": "unexpected end of input",
		},
		report.Results(),
	)
}

func TestSummary(t *testing.T) {
	t.Run("empty report", func(t *testing.T) {
		report := &Report{}

		summary, err := report.Summary()
		require.NoError(t, err)
		assert.Equal(t, Summary{}, summary)
	})

	t.Run("only failures", func(t *testing.T) {
		report := &Report{}
		report.RecordFailed("A|", errors.New("unexpected end of input"))

		summary, err := report.Summary()
		require.NoError(t, err)
		assert.Equal(t, Summary{Total: 1, Failed: 1}, summary)
	})

	t.Run("parsed and failed", func(t *testing.T) {
		report := &Report{}
		report.RecordParsed("A", mustParse(t, "A"), (*formula.Node).String)                             // depth 1, size 1
		report.RecordParsed("A & B", mustParse(t, "A & B"), (*formula.Node).String)                     // depth 2, size 3
		report.RecordParsed("!A -> B | A & C", mustParse(t, "!A -> B | A & C"), (*formula.Node).String) // depth 4, size 8
		report.RecordFailed("A|", errors.New("unexpected end of input"))

		summary, err := report.Summary()
		require.NoError(t, err)

		assert.Equal(t, 4, summary.Total)
		assert.Equal(t, 3, summary.Parsed)
		assert.Equal(t, 1, summary.Failed)
		assert.InDelta(t, 7.0/3.0, summary.MeanDepth, 0.0001)
		assert.Equal(t, 2.0, summary.MedianDepth)
		assert.Equal(t, 4.0, summary.MaxDepth)
		assert.InDelta(t, 4.0, summary.MeanSize, 0.0001)
		assert.Equal(t, []string{"A", "B", "C"}, summary.Variables)
	})
}
