package config

import (
	"errors"
	"os"
	"testing"

	helpers_test "github.com/eriklarko/formula-parser/src/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {

	t.Run("valid, existing config", func(t *testing.T) {
		content := `formulas:
  - "!A -> B | A & C"
  - "(A | B) & C"
output: infix
results-file: "results.csv"`
		configFile := helpers_test.CreateTempFileWithContents(t, content)

		config, err := LoadConfig(configFile)
		require.NoError(t, err)

		assert.Equal(t, []string{"!A -> B | A & C", "(A | B) & C"}, config.Formulas)
		assert.Equal(t, "infix", config.Output)
		assert.Equal(t, "results.csv", config.ResultsFile)
		assert.Equal(t, configFile, config.Path)
	})

	t.Run("invalid, existing config", func(t *testing.T) {
		content := `foo` // no keys
		configFile := helpers_test.CreateTempFileWithContents(t, content)

		_, err := LoadConfig(configFile)
		assert.False(t, errors.Is(err, os.ErrNotExist))
		assert.Error(t, err)
	})

	t.Run("non-existing config", func(t *testing.T) {
		_, err := LoadConfig("non-existing.yaml")
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestWriteConfig(t *testing.T) {
	configFile := helpers_test.CreateTempFile(t, "test_config.yaml").Name()

	config := &Config{
		Formulas:    []string{"A & B"},
		Output:      "yaml",
		ResultsFile: "results.csv",

		Path: configFile,
	}

	err := config.Write()
	require.NoError(t, err)

	// Verify file content
	content, err := os.ReadFile(configFile)
	require.NoError(t, err)

	assert.Contains(t, string(content), "output: yaml\n")
	assert.Contains(t, string(content), "results-file: results.csv\n")
	assert.NotContains(t, string(content), "path")

	// and that it can be read back
	loaded, err := LoadConfig(configFile)
	require.NoError(t, err)
	assert.Equal(t, config, loaded)

	// verify permissions
	fileInfo, err := os.Stat(configFile)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644), fileInfo.Mode())
}

func TestReadFormulaFile(t *testing.T) {
	content := `# formulas to check
!A -> B | A & C

  (A | B) & C  
# A | B
A->
`
	formulaFile := helpers_test.CreateTempFileWithContents(t, content)

	formulas, err := ReadFormulaFile(formulaFile)
	require.NoError(t, err)

	assert.Equal(t, []string{"!A -> B | A & C", "(A | B) & C", "A->"}, formulas)
}

func TestReadFormulaFileKeepsTabs(t *testing.T) {
	formulaFile := helpers_test.CreateTempFileWithContents(t, "A\t\r\n\t\n\tB & C \n")

	formulas, err := ReadFormulaFile(formulaFile)
	require.NoError(t, err)

	// tabs aren't skipped by the lexer, so they stay and the formula fails like
	// it would when parsed directly
	assert.Equal(t, []string{"A\t", "\tB & C"}, formulas)
}

func TestWriteResults(t *testing.T) {
	resultsFile := helpers_test.CreateTempFile(t, "results.csv").Name()

	config := &Config{ResultsFile: resultsFile}
	results := map[string]string{
		"A & B":       "((A) and (B))",
		"(A | B) & C": "(((A) or (B)) and (C))",
	}

	err := config.WriteResultsToCSV(results)
	require.NoError(t, err)

	// Verify file content
	content, err := os.ReadFile(resultsFile)
	require.NoError(t, err)

	assert.Contains(t, string(content), "A & B,((A) and (B))\n")
	assert.Contains(t, string(content), "(A | B) & C,(((A) or (B)) and (C))\n")
}

func TestReadResults(t *testing.T) {

	t.Run("valid content", func(t *testing.T) {
		content := `A & B,((A) and (B))
A->,"malformed input ""A->"" at position 3: unexpected end of input"
`
		resultsFile := helpers_test.CreateTempFileWithContents(t, content)

		config := &Config{ResultsFile: resultsFile}
		results, err := config.ReadResultsFromCSV()
		require.NoError(t, err)

		expected := map[string]string{
			"A & B": "((A) and (B))",
			"A->":   `malformed input "A->" at position 3: unexpected end of input`,
		}
		assert.Equal(t, expected, results)
	})

	t.Run("invalid content", func(t *testing.T) {
		content := `A & B,((A) and (B)),extra`
		resultsFile := helpers_test.CreateTempFileWithContents(t, content)

		config := &Config{ResultsFile: resultsFile}
		_, err := config.ReadResultsFromCSV()
		assert.Error(t, err)
	})
}
