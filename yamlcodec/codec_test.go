package yamlcodec_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"modulemd/document"
	"modulemd/yamlcodec"
)

const sampleStreamV2 = `
document: modulemd
version: 2
data:
  name: nodejs
  stream: "8.0"
  summary: Node.js JavaScript runtime
  description: A platform for server-side JavaScript applications.
  license:
    module: [MIT]
  dependencies:
    - requires:
        platform: [f28]
`

func TestParseStreamV2(t *testing.T) {
	result, err := yamlcodec.Parse([]byte(sampleStreamV2), true)
	require.NoError(t, err)
	require.Empty(t, result.Failures)
	require.Len(t, result.Streams, 1)

	s := result.Streams[0]
	require.Equal(t, "nodejs", s.Name())
	require.Equal(t, "8.0", s.StreamName())
	require.EqualValues(t, 2, s.MDVersion())

	v2 := s.(*document.StreamV2)
	require.Len(t, v2.Dependencies, 1)
	require.True(t, v2.Dependencies[0].RuntimeStreams["platform"].Contains("f28"))
}

func TestParseUnknownDocumentTypeIsAFailureNotAnAbort(t *testing.T) {
	src := `
document: modulemd-unknown-thing
version: 1
data: {}
`
	result, err := yamlcodec.Parse([]byte(src), true)
	require.NoError(t, err)
	require.Len(t, result.Failures, 1)
}

func TestParseStrictRejectsUnknownKey(t *testing.T) {
	src := sampleStreamV2 + "  bogus_key: true\n"
	result, err := yamlcodec.Parse([]byte(src), true)
	require.NoError(t, err)
	require.Len(t, result.Failures, 1)
	require.Empty(t, result.Streams)
}

func TestParseNonStrictSkipsUnknownKey(t *testing.T) {
	src := sampleStreamV2 + "  bogus_key: true\n"
	result, err := yamlcodec.Parse([]byte(src), false)
	require.NoError(t, err)
	require.Empty(t, result.Failures)
	require.Len(t, result.Streams, 1)
}

func TestStreamLevelYAMLErrorAbortsTheWholeCall(t *testing.T) {
	_, err := yamlcodec.Parse([]byte("document: modulemd\n  bad indent: :::\n"), true)
	require.Error(t, err)
}

func TestRoundTripIdempotence(t *testing.T) {
	result, err := yamlcodec.Parse([]byte(sampleStreamV2), true)
	require.NoError(t, err)
	require.Len(t, result.Streams, 1)

	emitted1, err := yamlcodec.EmitBytes([]yamlcodec.Document{{Stream: result.Streams[0]}})
	require.NoError(t, err)

	reparsed, err := yamlcodec.Parse(emitted1, true)
	require.NoError(t, err)
	require.Len(t, reparsed.Streams, 1)
	require.True(t, reparsed.Streams[0].Equal(result.Streams[0]))

	emitted2, err := yamlcodec.EmitBytes([]yamlcodec.Document{{Stream: reparsed.Streams[0]}})
	require.NoError(t, err)
	require.Equal(t, string(emitted1), string(emitted2))
}

func TestDeterministicEmission(t *testing.T) {
	a := document.NewStreamV2()
	a.ModuleName, a.Stream = "httpd", "2.4"
	a.Summary, a.Description = "s", "d"
	a.Licenses = document.Licenses{Module: document.NewStringSet("MIT", "GPLv2")}

	b := a.Copy()

	emittedA, err := yamlcodec.EmitBytes([]yamlcodec.Document{{Stream: a}})
	require.NoError(t, err)
	emittedB, err := yamlcodec.EmitBytes([]yamlcodec.Document{{Stream: b}})
	require.NoError(t, err)
	require.Equal(t, string(emittedA), string(emittedB))
}

func TestParseDefaultsAndTranslation(t *testing.T) {
	src := `
document: modulemd-defaults
version: 1
data:
  module: httpd
  stream: "2.6"
  modified: 1
---
document: modulemd-translations
version: 1
data:
  module: httpd
  stream: "2.6"
  modified: 1
  translations:
    en:
      summary: Apache HTTP Server
`
	result, err := yamlcodec.Parse([]byte(src), true)
	require.NoError(t, err)
	require.Empty(t, result.Failures)
	require.Len(t, result.Defaults, 1)
	require.Len(t, result.Translations, 1)
	require.Equal(t, "Apache HTTP Server", result.Translations[0].Translations["en"].Summary)
}
