package document

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func sampleV2() *StreamV2 {
	s := NewStreamV2()
	s.ModuleName = "nodejs"
	s.Stream = "8.0"
	s.BuildVersion = 1
	s.Summary = "Node.js JavaScript runtime"
	s.Description = "Node.js is a platform for server-side JavaScript."
	s.Licenses = Licenses{Module: NewStringSet("MIT")}
	dep := NewDependencies()
	dep.AddRuntimeStream("platform", "f28")
	s.Dependencies = []Dependencies{dep}
	return s
}

func TestStreamV2ValidateRejectsEmptyDependencyModule(t *testing.T) {
	s := sampleV2()
	require.NoError(t, s.Validate())

	s.Dependencies[0].RuntimeStreams[""] = NewStringSet("f28")
	require.Error(t, s.Validate())
}

func TestStreamV2ValidateRejectsEmptyDependencyStream(t *testing.T) {
	s := sampleV2()
	s.Dependencies[0].BuildtimeStreams = StringSetMap{"platform": NewStringSet("")}
	require.Error(t, s.Validate())
}

func TestStreamV2CopyAndEqual(t *testing.T) {
	s := sampleV2()
	cp := s.Copy()
	require.True(t, s.Equal(cp))

	cp.(*StreamV2).Dependencies[0].AddRuntimeStream("platform", "f29")
	require.False(t, s.Equal(cp))
}
