package document

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStreamV1ValidateRequiresCoreFields(t *testing.T) {
	s := NewStreamV1()
	require.Error(t, s.Validate())

	s.ModuleName = "httpd"
	s.Stream = "2.4"
	s.Summary = "summary"
	s.Description = "description"
	require.Error(t, s.Validate(), "missing module_licenses should still fail")

	s.Licenses = Licenses{Module: NewStringSet("MIT")}
	require.NoError(t, s.Validate())
}

func TestStreamV1ValidateRequiresComponentRationale(t *testing.T) {
	s := sampleV1()
	s.RpmComponents["httpd"] = NewComponentRpm("httpd", "")
	require.Error(t, s.Validate())

	s.RpmComponents["httpd"] = NewComponentRpm("httpd", "core web server")
	require.NoError(t, s.Validate())
}

func TestStreamV1CopyIsDeepAndEqualityHolds(t *testing.T) {
	s := sampleV1()
	cp := s.Copy()
	require.True(t, s.Equal(cp))

	cpV1 := cp.(*StreamV1)
	cpV1.Requires["platform"].Add("f29")
	require.False(t, s.Equal(cp))
}

func TestStreamV1EqualRejectsDifferentVersion(t *testing.T) {
	v1 := sampleV1()
	v2 := NewStreamV2()
	require.False(t, v1.Equal(v2))
}
