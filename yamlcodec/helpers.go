package yamlcodec

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"modulemd/document"
	"modulemd/mderrors"
	"modulemd/xmd"
)

// mappingGet returns the value node for key in a mapping node and
// whether it was present. A nil or non-mapping node reports absent.
func mappingGet(node *yaml.Node, key string) (*yaml.Node, bool) {
	if node == nil || node.Kind != yaml.MappingNode {
		return nil, false
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1], true
		}
	}
	return nil, false
}

// mappingKeys returns every key scalar's Value in a mapping node, in
// document order.
func mappingKeys(node *yaml.Node) []string {
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}
	keys := make([]string, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		keys = append(keys, node.Content[i].Value)
	}
	return keys
}

// checkUnknownKeys fails with UnknownKeyStrict (when strict) for any
// key in node not present in allowed; when not strict, unrecognized
// keys are silently skipped (the subtree is simply never read).
func checkUnknownKeys(node *yaml.Node, allowed map[string]bool, strict bool, path string) error {
	if !strict {
		return nil
	}
	for _, key := range mappingKeys(node) {
		if !allowed[key] {
			return mderrors.Newf(mderrors.UnknownKeyStrict, "%s: unknown key %q", path, key)
		}
	}
	return nil
}

// scalarString decodes a scalar node as a plain string.
func scalarString(node *yaml.Node, path string) (string, error) {
	if node == nil || node.Kind != yaml.ScalarNode {
		return "", mderrors.Newf(mderrors.InvalidFieldValue, "%s: expected a scalar", path)
	}
	return node.Value, nil
}

// scalarUint decodes a scalar node as a base-10 u64. 0 means "unset".
func scalarUint(node *yaml.Node, path string) (uint64, error) {
	s, err := scalarString(node, path)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, mderrors.Newf(mderrors.InvalidFieldValue, "%s: invalid integer %q", path, s)
	}
	return v, nil
}

// scalarInt decodes a scalar node as a base-10 signed integer.
func scalarInt(node *yaml.Node, path string) (int64, error) {
	s, err := scalarString(node, path)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, mderrors.Newf(mderrors.InvalidFieldValue, "%s: invalid integer %q", path, s)
	}
	return v, nil
}

// scalarSet decodes a sequence-of-scalars node into a StringSet,
// collapsing duplicates. A nil node yields an empty set.
func scalarSet(node *yaml.Node, path string) (document.StringSet, error) {
	set := document.StringSet{}
	if node == nil {
		return set, nil
	}
	if node.Kind != yaml.SequenceNode {
		return nil, mderrors.Newf(mderrors.InvalidFieldValue, "%s: expected a sequence", path)
	}
	for i, item := range node.Content {
		s, err := scalarString(item, fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return nil, err
		}
		set.Add(s)
	}
	return set, nil
}

// stringSetMap decodes a mapping whose values are sequences of scalars
// into a StringSetMap. A nil node yields an empty map.
func stringSetMap(node *yaml.Node, path string) (document.StringSetMap, error) {
	out := document.StringSetMap{}
	if node == nil {
		return out, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, mderrors.Newf(mderrors.InvalidFieldValue, "%s: expected a mapping", path)
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		set, err := scalarSet(node.Content[i+1], fmt.Sprintf("%s[%s]", path, key))
		if err != nil {
			return nil, err
		}
		out[key] = set
	}
	return out, nil
}

// xmdVariant decodes a free-form node into an xmd.Variant. Scalars are
// always strings: the format performs no YAML type inference.
func xmdVariant(node *yaml.Node, path string) (xmd.Variant, error) {
	if node == nil {
		return xmd.String(""), nil
	}
	switch node.Kind {
	case yaml.ScalarNode:
		return xmd.String(node.Value), nil
	case yaml.SequenceNode:
		items := make([]xmd.Variant, 0, len(node.Content))
		for i, item := range node.Content {
			v, err := xmdVariant(item, fmt.Sprintf("%s[%d]", path, i))
			if err != nil {
				return xmd.Variant{}, err
			}
			items = append(items, v)
		}
		return xmd.List(items...), nil
	case yaml.MappingNode:
		m := map[string]xmd.Variant{}
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i].Value
			v, err := xmdVariant(node.Content[i+1], fmt.Sprintf("%s.%s", path, key))
			if err != nil {
				return xmd.Variant{}, err
			}
			m[key] = v
		}
		return xmd.Map(m), nil
	default:
		return xmd.Variant{}, mderrors.Newf(mderrors.InvalidFieldValue, "%s: xmd value must be a scalar, sequence, or mapping", path)
	}
}

// eolDate decodes a YYYY-MM-DD scalar into a *time.Time.
func eolDate(node *yaml.Node, path string) (*time.Time, error) {
	s, err := scalarString(node, path)
	if err != nil {
		return nil, err
	}
	t, err := document.ParseEOLDate(s)
	if err != nil {
		return nil, mderrors.Wrap(mderrors.InvalidFieldValue, fmt.Sprintf("%s: invalid eol date", path), err)
	}
	return &t, nil
}

// --- emit-side helpers ---

func scalarNode(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Value: value}
}

func foldedScalarNode(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Style: yaml.FoldedStyle, Value: value}
}

func uintNode(v uint64) *yaml.Node {
	return scalarNode(strconv.FormatUint(v, 10))
}

func intNode(v int64) *yaml.Node {
	return scalarNode(strconv.FormatInt(v, 10))
}

func mappingNode(pairs ...*yaml.Node) *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Content: pairs}
}

func blockSequenceNode(items ...*yaml.Node) *yaml.Node {
	return &yaml.Node{Kind: yaml.SequenceNode, Content: items}
}

// flowSequenceNode builds a flow-style ([a, b, c]) sequence, used for
// the short sequences §4.1.3 names (arches, a dependency's stream set).
func flowSequenceNode(items ...*yaml.Node) *yaml.Node {
	return &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle, Content: items}
}

// setNode emits a StringSet as a sorted flow sequence of scalars.
func setNode(set document.StringSet) *yaml.Node {
	keys := set.Slice()
	items := make([]*yaml.Node, len(keys))
	for i, k := range keys {
		items[i] = scalarNode(k)
	}
	return flowSequenceNode(items...)
}

// stringSetMapNode emits a StringSetMap as a block mapping with sorted
// outer keys, each value a sorted flow sequence.
func stringSetMapNode(m document.StringSetMap) *yaml.Node {
	keys := m.SortedKeys()
	pairs := make([]*yaml.Node, 0, len(keys)*2)
	for _, k := range keys {
		pairs = append(pairs, scalarNode(k), setNode(m[k]))
	}
	return mappingNode(pairs...)
}

// xmdNode emits an xmd.Variant verbatim: scalars as plain strings,
// lists as block sequences, maps as block mappings with sorted keys.
func xmdNode(v xmd.Variant) *yaml.Node {
	switch v.Kind() {
	case xmd.KindList:
		items, _ := v.ListValue()
		nodes := make([]*yaml.Node, len(items))
		for i, item := range items {
			nodes[i] = xmdNode(item)
		}
		return blockSequenceNode(nodes...)
	case xmd.KindMap:
		keys := v.SortedKeys()
		m, _ := v.MapValue()
		pairs := make([]*yaml.Node, 0, len(keys)*2)
		for _, k := range keys {
			pairs = append(pairs, scalarNode(k), xmdNode(m[k]))
		}
		return mappingNode(pairs...)
	default:
		s, _ := v.StringValue()
		return scalarNode(s)
	}
}

func eolNode(t *time.Time) *yaml.Node {
	if t == nil {
		return scalarNode("")
	}
	return scalarNode(t.Format("2006-01-02"))
}

// sortedStringKeys is a small convenience for emit ordering of plain
// map[string]... values that don't already carry a SortedKeys method.
func sortedStringKeys[T any](m map[string]T) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
