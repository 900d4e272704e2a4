package document

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDependenciesAddAndCopyIndependence(t *testing.T) {
	d := NewDependencies()
	d.AddRuntimeStream("platform", "f28")
	d.AddBuildtimeStream("platform", "f28")

	cp := d.Copy()
	cp.AddRuntimeStream("platform", "f29")
	require.Len(t, d.RuntimeStreams["platform"], 1)
	require.Len(t, cp.RuntimeStreams["platform"], 2)
}

func TestIsExcludedStream(t *testing.T) {
	require.True(t, IsExcludedStream("-f28"))
	require.False(t, IsExcludedStream("f28"))
}

func TestDependenciesEqualAndList(t *testing.T) {
	a := NewDependencies()
	a.AddRuntimeStream("platform", "f28")
	b := a.Copy()
	require.True(t, a.Equal(b))

	list := []Dependencies{a, b}
	cpList := CopyDependenciesList(list)
	require.True(t, DependenciesEqual(list, cpList))

	cpList[0].AddRuntimeStream("platform", "f29")
	require.False(t, DependenciesEqual(list, cpList))
}
