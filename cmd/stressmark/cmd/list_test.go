package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCommand(t *testing.T) {
	output, err := execute(t, "list")
	require.NoError(t, err)

	for _, name := range []string{
		"loop", "array", "string", "nested", "factorial",
		"map", "conditional", "function", "class", "fibonacci",
	} {
		assert.Contains(t, output, name)
	}
}
