package yamlcodec

import (
	"bytes"
	"io"

	"gopkg.in/yaml.v3"

	"modulemd/document"
	"modulemd/mderrors"
)

// ParseResult is everything a multi-document parse produced: every
// subdocument that was recognized and validated against its type's key
// table, plus any per-subdocument failures collected along the way.
type ParseResult struct {
	Streams      []document.ModuleStream
	Defaults     []*document.Defaults
	Translations []*document.Translation
	Failures     []Failure
}

// Parse decodes every YAML document in source. A stream-level YAML
// error (malformed at the event layer, not a single subdocument)
// aborts the call and returns an error; per-subdocument failures are
// collected into the result's Failures and parsing continues with the
// next subdocument.
func Parse(source []byte, strict bool) (*ParseResult, error) {
	return ParseStream(bytes.NewReader(source), strict)
}

// ParseStream is Parse reading from an io.Reader.
func ParseStream(r io.Reader, strict bool) (*ParseResult, error) {
	dec := yaml.NewDecoder(r)
	result := &ParseResult{}
	for {
		var node yaml.Node
		err := dec.Decode(&node)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, mderrors.Wrap(mderrors.YamlParse, "stream-level YAML error", err)
		}
		if len(node.Content) == 0 {
			continue
		}
		parseSubdocument(node.Content[0], strict, result)
	}
	return result, nil
}

// parseSubdocument peeks the document/version discriminator, dispatches
// to the matching typed parser, and appends either to result's typed
// slices or, on any failure, to result.Failures. It never aborts the
// whole stream.
func parseSubdocument(root *yaml.Node, strict bool, result *ParseResult) {
	if root.Kind != yaml.MappingNode {
		result.Failures = append(result.Failures, newFailure(root, mderrors.New(mderrors.YamlParse, "subdocument root must be a mapping")))
		return
	}

	rootKeys := map[string]bool{"document": true, "version": true, "data": true}
	if err := checkUnknownKeys(root, rootKeys, strict, "<root>"); err != nil {
		result.Failures = append(result.Failures, newFailure(root, err))
		return
	}

	docTypeNode, ok := mappingGet(root, "document")
	if !ok {
		result.Failures = append(result.Failures, newFailure(root, mderrors.New(mderrors.MissingRequiredField, "subdocument is missing required key \"document\"")))
		return
	}
	docType, err := scalarString(docTypeNode, "<root>.document")
	if err != nil {
		result.Failures = append(result.Failures, newFailure(root, err))
		return
	}

	versionNode, ok := mappingGet(root, "version")
	if !ok {
		result.Failures = append(result.Failures, newFailure(root, mderrors.New(mderrors.MissingRequiredField, "subdocument is missing required key \"version\"")))
		return
	}
	version, err := scalarUint(versionNode, "<root>.version")
	if err != nil {
		result.Failures = append(result.Failures, newFailure(root, err))
		return
	}

	dataNode, ok := mappingGet(root, "data")
	if !ok {
		result.Failures = append(result.Failures, newFailure(root, mderrors.New(mderrors.MissingRequiredField, "subdocument is missing required key \"data\"")))
		return
	}

	switch docType {
	case DocTypeModulemd:
		s, err := parseModuleStream(dataNode, version, strict)
		if err != nil {
			result.Failures = append(result.Failures, newFailure(root, err))
			return
		}
		if s.MDVersion() != version {
			result.Failures = append(result.Failures, newFailure(root, mderrors.Newf(mderrors.VersionMismatch, "modulemd: parsed version %d does not match declared version %d", s.MDVersion(), version)))
			return
		}
		result.Streams = append(result.Streams, s)
	case DocTypeModulemdDefaults:
		d, err := parseDefaults(dataNode, version, strict)
		if err != nil {
			result.Failures = append(result.Failures, newFailure(root, err))
			return
		}
		result.Defaults = append(result.Defaults, d)
	case DocTypeModulemdTranslations:
		t, err := parseTranslation(dataNode, version, strict)
		if err != nil {
			result.Failures = append(result.Failures, newFailure(root, err))
			return
		}
		result.Translations = append(result.Translations, t)
	default:
		result.Failures = append(result.Failures, newFailure(root, mderrors.Newf(mderrors.UnknownDocumentType, "unrecognized document type %q", docType)))
	}
}

// Document is one emittable subdocument: exactly one of Stream,
// Defaults, or Translation should be set.
type Document struct {
	Stream      document.ModuleStream
	Defaults    *document.Defaults
	Translation *document.Translation
}

// Emit writes STREAM_START, a DOCUMENT_START…DOCUMENT_END block per
// document (in the given order), then STREAM_END, to sink.
func Emit(documents []Document, sink io.Writer) error {
	enc := yaml.NewEncoder(sink)
	enc.SetIndent(2)
	for _, doc := range documents {
		root, err := emitSubdocument(doc)
		if err != nil {
			return err
		}
		if err := enc.Encode(root); err != nil {
			return mderrors.Wrap(mderrors.YamlEmit, "failed to encode subdocument", err)
		}
	}
	if err := enc.Close(); err != nil {
		return mderrors.Wrap(mderrors.YamlEmit, "failed to close encoder", err)
	}
	return nil
}

// EmitBytes is Emit returning the written bytes directly.
func EmitBytes(documents []Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := Emit(documents, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func emitSubdocument(doc Document) (*yaml.Node, error) {
	switch {
	case doc.Stream != nil:
		var data *yaml.Node
		switch s := doc.Stream.(type) {
		case *document.StreamV1:
			data = emitStreamV1(s)
		case *document.StreamV2:
			data = emitStreamV2(s)
		default:
			return nil, mderrors.Newf(mderrors.YamlEmit, "unsupported ModuleStream implementation %T", doc.Stream)
		}
		return wrapSubdocument(DocTypeModulemd, doc.Stream.MDVersion(), data), nil
	case doc.Defaults != nil:
		return wrapSubdocument(DocTypeModulemdDefaults, doc.Defaults.MDVersion(), emitDefaults(doc.Defaults)), nil
	case doc.Translation != nil:
		return wrapSubdocument(DocTypeModulemdTranslations, doc.Translation.MDVersion(), emitTranslation(doc.Translation)), nil
	default:
		return nil, mderrors.New(mderrors.YamlEmit, "empty Document: no stream, defaults, or translation set")
	}
}

func wrapSubdocument(docType string, version uint64, data *yaml.Node) *yaml.Node {
	return mappingNode(
		scalarNode("document"), scalarNode(docType),
		scalarNode("version"), uintNode(version),
		scalarNode("data"), data,
	)
}
