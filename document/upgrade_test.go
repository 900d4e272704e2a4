package document

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func sampleV1() *StreamV1 {
	s := NewStreamV1()
	s.ModuleName = "httpd"
	s.Stream = "2.4"
	s.BuildVersion = 20181215
	s.Summary = "Apache HTTP Server"
	s.Description = "The Apache HTTP Server is a widely used web server."
	s.Licenses = Licenses{Module: NewStringSet("MIT")}
	s.Requires = StringSetMap{"platform": NewStringSet("f28")}
	s.BuildRequires = StringSetMap{"platform": NewStringSet("f28")}
	eol := "2020-01-01"
	s.EOL = &eol
	return s
}

func TestUpgradeV1ToV2PreservesIdentityAndLicenses(t *testing.T) {
	v1 := sampleV1()
	upgraded, err := UpgradeStream(v1, 2)
	require.NoError(t, err)
	require.NoError(t, upgraded.Validate())
	require.Equal(t, v1.NSVC(), upgraded.NSVC())

	v2, ok := upgraded.(*StreamV2)
	require.True(t, ok)
	require.True(t, v2.Licenses.Equal(v1.Licenses))
}

func TestUpgradeV1ToV2DependenciesShape(t *testing.T) {
	v1 := sampleV1()
	upgraded, err := UpgradeStream(v1, 2)
	require.NoError(t, err)
	v2 := upgraded.(*StreamV2)

	require.Len(t, v2.Dependencies, 1)
	for module, streams := range v1.Requires {
		require.Len(t, v2.Dependencies[0].RuntimeStreams[module], len(streams))
	}
	for module, streams := range v1.BuildRequires {
		require.Len(t, v2.Dependencies[0].BuildtimeStreams[module], len(streams))
	}
}

func TestUpgradeV1ToV2FoldsEOLIntoRawhide(t *testing.T) {
	v1 := sampleV1()
	upgraded, err := UpgradeStream(v1, 2)
	require.NoError(t, err)
	v2 := upgraded.(*StreamV2)

	sl, ok := v2.ServiceLevels["rawhide"]
	require.True(t, ok)
	require.Equal(t, "2020-01-01", sl.EOLString())
}

func TestUpgradeSameVersionIsCopy(t *testing.T) {
	v2 := NewStreamV2()
	v2.ModuleName = "nodejs"
	v2.Stream = "8.0"
	upgraded, err := UpgradeStream(v2, 2)
	require.NoError(t, err)
	require.True(t, upgraded.Equal(v2))
	require.NotSame(t, v2, upgraded)
}

func TestUpgradeUnsupportedTransition(t *testing.T) {
	v2 := NewStreamV2()
	_, err := UpgradeStream(v2, 1)
	require.Error(t, err)
}
