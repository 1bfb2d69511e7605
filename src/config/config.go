package config

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where the CLI looks for a config file when --config isn't set.
const DefaultPath = "formula-parser.yaml"

// Config holds the settings read from a YAML file.
//
// Example:
//
//	formulas:
//	  - "!A -> B | A & C"
//	  - "(A | B) & C"
//	output: infix
//	results-file: results.csv
type Config struct {
	Formulas    []string `yaml:"formulas,omitempty"`
	Output      string   `yaml:"output,omitempty"`
	ResultsFile string   `yaml:"results-file,omitempty"`

	// where the config was loaded from, and where Write puts it
	Path string `yaml:"-"`
}

// LoadConfig reads the config file at path. A missing file is reported with an
// error matching os.ErrNotExist.
func LoadConfig(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var config Config
	if err := yaml.Unmarshal(content, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	config.Path = path

	return &config, nil
}

// Write stores the config as YAML at c.Path.
func (c *Config) Write() error {
	content, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(c.Path, content, 0644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", c.Path, err)
	}
	// WriteFile keeps the mode of files that already exist
	if err := os.Chmod(c.Path, 0644); err != nil {
		return fmt.Errorf("failed to set permissions on %s: %w", c.Path, err)
	}

	return nil
}

// ReadFormulaFile reads one formula per line. Blank lines and lines starting
// with '#' are skipped. Only spaces and line endings are trimmed, since any
// other character, tabs included, is part of the formula.
func ReadFormulaFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", path, err)
	}
	defer file.Close()

	var formulas []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.Trim(scanner.Text(), " \r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		formulas = append(formulas, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	return formulas, nil
}

// WriteResultsToCSV writes a map from formula to its rendered tree, or failure
// reason, to c.ResultsFile.
func (c *Config) WriteResultsToCSV(results map[string]string) error {
	absPath, err := filepath.Abs(c.ResultsFile)
	if err != nil {
		// only used to make the path easier to find for the user. Best effort.
		absPath = c.ResultsFile
	}

	file, err := os.Create(absPath)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", absPath, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	for formula, result := range results {
		record := []string{formula, result}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write record %v: %w", record, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush records to %s: %w", absPath, err)
	}
	return nil
}

// ReadResultsFromCSV reads back what WriteResultsToCSV wrote.
func (c *Config) ReadResultsFromCSV() (map[string]string, error) {
	absPath, err := filepath.Abs(c.ResultsFile)
	if err != nil {
		absPath = c.ResultsFile
	}

	file, err := os.Open(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", absPath, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read records from file %s: %w", absPath, err)
	}

	results := make(map[string]string)
	for _, record := range records {
		if len(record) != 2 {
			return nil, fmt.Errorf("invalid record %v: expected 2 fields, got %d", record, len(record))
		}
		results[record[0]] = record[1]
	}

	return results, nil
}
