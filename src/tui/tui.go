package tui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"gopkg.in/yaml.v3"

	"github.com/eriklarko/formula-parser/src/environment"
	"github.com/eriklarko/formula-parser/src/formula"
)

// FailureMessage is printed in place of a tree when a formula doesn't parse.
const FailureMessage = "Failed to parse the input"

const prompt = "formula> "

// Format selects how parsed trees are printed.
type Format string

const (
	// fully bracketed, "((A) and (B))"
	FormatText Format = "text"
	// bare variables, "(A and B)"
	FormatInfix Format = "infix"
	FormatYAML  Format = "yaml"
)

// ParseFormat validates a format name. An empty name means FormatText.
func ParseFormat(name string) (Format, error) {
	switch Format(name) {
	case "", FormatText:
		return FormatText, nil
	case FormatInfix, FormatYAML:
		return Format(name), nil
	default:
		return "", fmt.Errorf("unknown output format '%s', expected one of text, infix, yaml", name)
	}
}

type TUI struct {
	input  io.Reader
	output io.Writer
	format Format

	// prompts and error pointers are only useful to someone at a terminal
	interactive bool
}

func New() *TUI {
	return &TUI{
		input:       os.Stdin,
		output:      os.Stdout,
		format:      FormatText,
		interactive: environment.IsInteractive(),
	}
}

func (t *TUI) SetInput(input io.Reader) {
	t.input = input
}

func (t *TUI) SetOutput(output io.Writer) {
	t.output = output
}

func (t *TUI) SetFormat(format Format) {
	t.format = format
}

func (t *TUI) SetInteractive(interactive bool) {
	t.interactive = interactive
}

// PrintParse echoes the expression and prints its tree followed by an empty
// line, or FailureMessage. It reports whether the expression parsed.
func (t *TUI) PrintParse(expression string) bool {
	fmt.Fprintln(t.output, expression)

	tree, err := formula.Parse(expression)
	if err != nil {
		slog.Debug("failed to parse formula", "formula", expression, "error", err)
		fmt.Fprintln(t.output, FailureMessage)
		if t.interactive {
			t.printErrorPointer(err)
		}
		return false
	}

	rendered, err := t.render(tree)
	if err != nil {
		slog.Error("failed to render tree", "formula", expression, "error", err)
		fmt.Fprintln(t.output, FailureMessage)
		return false
	}

	fmt.Fprintf(t.output, "%s\n\n", rendered)
	return true
}

func (t *TUI) render(tree *formula.Node) (string, error) {
	switch t.format {
	case FormatInfix:
		return tree.Infix(), nil
	case FormatYAML:
		out, err := yaml.Marshal(tree)
		if err != nil {
			return "", fmt.Errorf("failed to marshal tree: %w", err)
		}
		return strings.TrimSuffix(string(out), "\n"), nil
	default:
		return tree.String(), nil
	}
}

// printErrorPointer marks where parsing stopped under the echoed expression:
//
//	A -> (B
//	Failed to parse the input
//	       ^ expected ')'
func (t *TUI) printErrorPointer(err error) {
	var malformed *formula.MalformedInputError
	if !errors.As(err, &malformed) {
		return
	}
	fmt.Fprintf(t.output, "%s^ %s\n", pointerPadding(malformed.Input, malformed.Position), malformed.Reason)
}

// pointerPadding is what goes in front of the caret so it sits under the rune
// at position. Tabs are copied since their width depends on the terminal, and
// wide runes get as many spaces as columns they take.
func pointerPadding(expression string, position int) string {
	var padding strings.Builder
	for i, r := range []rune(expression) {
		if i >= position {
			break
		}
		if r == '\t' {
			padding.WriteRune('\t')
			continue
		}
		padding.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}
	return padding.String()
}

// Run reads one formula per line until the input ends or the user types
// "exit" or "quit", and returns how many formulas failed to parse.
func (t *TUI) Run() (int, error) {
	failures := 0
	scanner := bufio.NewScanner(t.input)
	for {
		if t.interactive {
			fmt.Fprint(t.output, prompt)
		}
		if !scanner.Scan() {
			break
		}

		line := strings.TrimRight(scanner.Text(), "\r")
		switch strings.TrimSpace(line) {
		case "":
			continue
		case "exit", "quit":
			return failures, nil
		}

		if !t.PrintParse(line) {
			failures++
		}
	}

	if err := scanner.Err(); err != nil {
		return failures, fmt.Errorf("failed to read formulas: %w", err)
	}
	return failures, nil
}
