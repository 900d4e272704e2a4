package yamlcodec

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestEventsFlattensMappingAndSequenceShape(t *testing.T) {
	var doc yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte("name: nodejs\ntags: [a, b]\n"), &doc))

	events := Events(&doc)

	kinds := make([]EventKind, len(events))
	for i, e := range events {
		kinds[i] = e.Kind
	}
	require.Equal(t, []EventKind{
		DocumentStart,
		MappingStart,
		Scalar, Scalar,
		Scalar,
		SequenceStart, Scalar, Scalar, SequenceEnd,
		MappingEnd,
		DocumentEnd,
	}, kinds)

	require.Equal(t, "name", events[2].Value)
	require.Equal(t, "nodejs", events[3].Value)
	require.Equal(t, "tags", events[4].Value)
	require.Equal(t, "a", events[6].Value)
	require.Equal(t, "b", events[7].Value)
}

func TestEventKindStringNamesMatchLibyamlVocabulary(t *testing.T) {
	require.Equal(t, "STREAM_START", StreamStart.String())
	require.Equal(t, "DOCUMENT_END", DocumentEnd.String())
	require.Equal(t, "SEQUENCE_START", SequenceStart.String())
	require.Equal(t, "ALIAS", Alias.String())
}
