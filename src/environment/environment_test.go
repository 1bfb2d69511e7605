package environment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForceSetIsInteractive(t *testing.T) {
	t.Cleanup(ResetIsInteractive)

	ForceSetIsInteractive(true)
	assert.True(t, IsInteractive(), "Expected IsInteractive to return true when overridden with true")

	ForceSetIsInteractive(false)
	assert.False(t, IsInteractive(), "Expected IsInteractive to return false when overridden with false")
}

func TestResetIsInteractive(t *testing.T) {
	ForceSetIsInteractive(true)
	ResetIsInteractive()

	assert.Nil(t, interactiveOverride)
}
