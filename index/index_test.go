package index_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"modulemd/document"
	"modulemd/index"
)

func TestIndexDefaultsDefaultStreamScenario(t *testing.T) {
	src := `
document: modulemd-defaults
version: 1
data:
  module: httpd
  stream: "2.6"
  profiles:
    "2.6": [client, server]
  modified: 202001010000
`
	idx := index.New()
	ok, failures, err := idx.UpdateFromBytes([]byte(src), true)
	require.NoError(t, err)
	require.True(t, ok)
	require.Empty(t, failures)

	m, found := idx.GetModule("httpd")
	require.True(t, found)
	require.NotNil(t, m.Defaults())
	require.Equal(t, "2.6", m.Defaults().DefaultStream)
	require.True(t, m.Defaults().ProfileDefaults["2.6"].Equal(document.NewStringSet("client", "server")))
}

func TestIndexDefaultsMultiDocScenario(t *testing.T) {
	src := strings.Join([]string{
		"document: modulemd-defaults\nversion: 1\ndata:\n  module: httpd\n  stream: \"2.2\"\n  modified: 1",
		"document: modulemd-defaults\nversion: 1\ndata:\n  module: postgresql\n  stream: \"8.1\"\n  modified: 1",
		"document: modulemd-defaults\nversion: 1\ndata:\n  module: nodejs\n  stream: \"8.0\"\n  modified: 1",
	}, "\n---\n")

	idx := index.New()
	ok, failures, err := idx.UpdateFromBytes([]byte(src), true)
	require.NoError(t, err)
	require.True(t, ok)
	require.Empty(t, failures)

	m, found := idx.GetModule("nodejs")
	require.True(t, found)
	require.Equal(t, "8.0", m.Defaults().DefaultStream)
}

func TestAddModuleStreamRequiresIdentity(t *testing.T) {
	idx := index.New()
	s := document.NewStreamV2()
	err := idx.AddModuleStream(s)
	require.Error(t, err)
}

func TestIndexVersionHomogeneityUpgradesExistingStreams(t *testing.T) {
	idx := index.New()
	v1 := document.NewStreamV1()
	v1.ModuleName, v1.Stream = "httpd", "2.4"
	require.NoError(t, idx.AddModuleStream(v1))

	v2 := document.NewStreamV2()
	v2.ModuleName, v2.Stream = "nodejs", "8.0"
	require.NoError(t, idx.AddModuleStream(v2))

	m, _ := idx.GetModule("httpd")
	for _, s := range m.AllStreams() {
		require.EqualValues(t, 2, s.MDVersion())
	}
}

func TestIndexVersionHomogeneityUpgradesIncomingStream(t *testing.T) {
	idx := index.New()
	v2 := document.NewStreamV2()
	v2.ModuleName, v2.Stream = "nodejs", "8.0"
	require.NoError(t, idx.AddModuleStream(v2))

	v1 := document.NewStreamV1()
	v1.ModuleName, v1.Stream = "httpd", "2.4"
	require.NoError(t, idx.AddModuleStream(v1))

	m, _ := idx.GetModule("httpd")
	streams := m.AllStreams()
	require.Len(t, streams, 1)
	require.EqualValues(t, 2, streams[0].MDVersion())
}

func TestAddDefaultsKeepsHigherModified(t *testing.T) {
	idx := index.New()
	a := document.NewDefaults("httpd")
	a.DefaultStream = "2.4"
	a.Modified = 1
	b := document.NewDefaults("httpd")
	b.DefaultStream = "2.6"
	b.Modified = 2

	require.NoError(t, idx.AddDefaults(a))
	require.NoError(t, idx.AddDefaults(b))

	m, _ := idx.GetModule("httpd")
	require.Equal(t, "2.6", m.Defaults().DefaultStream)

	older := document.NewDefaults("httpd")
	older.DefaultStream = "2.2"
	older.Modified = 1
	require.NoError(t, idx.AddDefaults(older))
	require.Equal(t, "2.6", m.Defaults().DefaultStream, "a defaults with a smaller modified is dropped")
}

func TestAddTranslationKeepsHigherModified(t *testing.T) {
	idx := index.New()
	older := document.NewTranslation("nodejs", "8.0")
	older.Modified = 1
	older.Translations["en"] = document.TranslationEntry{Summary: "old"}
	newer := document.NewTranslation("nodejs", "8.0")
	newer.Modified = 2
	newer.Translations["en"] = document.TranslationEntry{Summary: "new"}

	require.NoError(t, idx.AddTranslation(older))
	require.NoError(t, idx.AddTranslation(newer))

	m, _ := idx.GetModule("nodejs")
	require.Equal(t, "new", m.Translation("8.0").Translations["en"].Summary)
}

func TestDumpRoundTrip(t *testing.T) {
	idx := index.New()
	v2 := document.NewStreamV2()
	v2.ModuleName, v2.Stream = "nodejs", "8.0"
	v2.Summary = "Node.js"
	v2.Description = "JS runtime"
	v2.Licenses = document.Licenses{Module: document.NewStringSet("MIT")}
	require.NoError(t, idx.AddModuleStream(v2))

	out, err := idx.DumpToBytes()
	require.NoError(t, err)

	reparsed := index.New()
	ok, failures, err := reparsed.UpdateFromBytes(out, true)
	require.NoError(t, err)
	require.True(t, ok)
	require.Empty(t, failures)

	m, found := reparsed.GetModule("nodejs")
	require.True(t, found)
	streams := m.AllStreams()
	require.Len(t, streams, 1)
	require.True(t, streams[0].Equal(v2))
}
