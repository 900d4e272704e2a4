package cliapp

import (
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandHasValidateWiring(t *testing.T) {
	root := newRootCommand()
	assert.NotNil(t, root.PersistentFlags().Lookup("config"))
	assert.NotNil(t, root.PersistentFlags().Lookup("log-level"))
	assert.NotNil(t, root.Flags().Lookup("strict"))
}

func TestResolveBoolDefersToFlagWhenChanged(t *testing.T) {
	cmd := newRootCommand()
	require.NoError(t, cmd.Flags().Set("strict", "false"))
	assert.False(t, resolveBool(cmd, false, "strict", "strict"))
}

func TestResolveBoolFallsBackToDefaultWhenUnset(t *testing.T) {
	cmd := newRootCommand()
	assert.True(t, resolveBool(cmd, true, "strict", "strict"))
}

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name: "invalid argument",
			err: errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("bad input"),
			expected: 2,
		},
		{
			name: "failed precondition",
			err: errbuilder.New().
				WithCode(errbuilder.CodeFailedPrecondition).
				WithMsg("conflict"),
			expected: 3,
		},
		{
			name: "not found",
			err: errbuilder.New().
				WithCode(errbuilder.CodeNotFound).
				WithMsg("missing"),
			expected: 4,
		},
		{
			name: "internal",
			err: errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("boom"),
			expected: 5,
		},
		{
			name:     "unknown",
			err:      assert.AnError,
			expected: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := exitCodeForError(tt.err)
			require.Equal(t, tt.expected, got)
		})
	}
}
