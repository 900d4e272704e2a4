package mderrors

import (
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/require"
)

func TestCodeOf(t *testing.T) {
	err := New(MissingRequiredField, "module_name is required")
	require.Equal(t, MissingRequiredField, CodeOf(err))
	require.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestCodeOfUnrelatedError(t *testing.T) {
	require.Equal(t, Code(""), CodeOf(nil))
}

func TestWrapPreservesCause(t *testing.T) {
	cause := New(YamlParse, "bad scalar")
	err := Wrap(MergeConflictDefaults, "httpd/default_stream", cause)
	require.Equal(t, MergeConflictDefaults, CodeOf(err))
	require.Contains(t, err.Error(), "httpd/default_stream")
}
