package formula

import (
	"fmt"
)

// MalformedInputError is returned when a formula cannot be parsed. Position is
// the rune offset in the original input where parsing stopped.
type MalformedInputError struct {
	Input    string
	Position int
	Reason   string
}

// NewMalformedInputError creates a new MalformedInputError.
func NewMalformedInputError(input string, position int, reason string) error {
	return &MalformedInputError{
		Input:    input,
		Position: position,
		Reason:   reason,
	}
}

func (e MalformedInputError) Error() string {
	return fmt.Sprintf("malformed input %q at position %d: %s", e.Input, e.Position, e.Reason)
}
