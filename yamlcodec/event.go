// Package yamlcodec implements the multi-document modulemd YAML codec:
// an event-driven parser and emitter for modulemd, modulemd-defaults,
// and modulemd-translations subdocuments, with per-subdocument error
// isolation.
//
// The event vocabulary below names the same positions a libyaml-style
// pull parser would emit. Rather than hand-rolling a scanner, the
// driver walks gopkg.in/yaml.v3's yaml.Node tree directly and
// interprets node shapes as these events — the same low-level
// Kind/Content manipulation technique a YAML-reordering formatter uses
// to restyle a document node by node. Events flattens that node tree
// into the named sequence for callers that want to assert on
// document shape directly (see event_test.go); the parse/emit dispatch
// itself operates on *yaml.Node, not on a materialized event slice.
package yamlcodec

import "gopkg.in/yaml.v3"

// EventKind identifies one position in the event stream.
type EventKind int

const (
	StreamStart EventKind = iota
	StreamEnd
	DocumentStart
	DocumentEnd
	MappingStart
	MappingEnd
	SequenceStart
	SequenceEnd
	Scalar
	Alias
)

func (k EventKind) String() string {
	switch k {
	case StreamStart:
		return "STREAM_START"
	case StreamEnd:
		return "STREAM_END"
	case DocumentStart:
		return "DOCUMENT_START"
	case DocumentEnd:
		return "DOCUMENT_END"
	case MappingStart:
		return "MAPPING_START"
	case MappingEnd:
		return "MAPPING_END"
	case SequenceStart:
		return "SEQUENCE_START"
	case SequenceEnd:
		return "SEQUENCE_END"
	case Scalar:
		return "SCALAR"
	case Alias:
		return "ALIAS"
	default:
		return "UNKNOWN"
	}
}

// Event is one position in the event stream. Value is populated only
// for Scalar (the scalar's text) and Alias (the anchor name).
type Event struct {
	Kind  EventKind
	Value string
}

// Events flattens a single parsed document node (as produced by
// decoding one YAML document into a *yaml.Node) into its event-stream
// form, DOCUMENT_START through DOCUMENT_END inclusive. It does not
// include STREAM_START/STREAM_END, which bracket the whole multi-
// document call in Parse/Emit.
func Events(doc *yaml.Node) []Event {
	events := []Event{{Kind: DocumentStart}}
	walk(doc, &events)
	events = append(events, Event{Kind: DocumentEnd})
	return events
}

func walk(node *yaml.Node, events *[]Event) {
	if node == nil {
		return
	}
	switch node.Kind {
	case yaml.DocumentNode:
		for _, child := range node.Content {
			walk(child, events)
		}
	case yaml.MappingNode:
		*events = append(*events, Event{Kind: MappingStart})
		for _, child := range node.Content {
			walk(child, events)
		}
		*events = append(*events, Event{Kind: MappingEnd})
	case yaml.SequenceNode:
		*events = append(*events, Event{Kind: SequenceStart})
		for _, child := range node.Content {
			walk(child, events)
		}
		*events = append(*events, Event{Kind: SequenceEnd})
	case yaml.ScalarNode:
		*events = append(*events, Event{Kind: Scalar, Value: node.Value})
	case yaml.AliasNode:
		*events = append(*events, Event{Kind: Alias, Value: node.Value})
	}
}
