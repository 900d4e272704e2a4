// Package xmd implements the recursive "extensible module data" value
// carried verbatim through parse and emit. Scalars are always strings:
// the format performs no YAML type inference (a bare "true" or "42"
// stays a string), matching the source format's documented behavior.
package xmd

import "sort"

// Kind identifies which alternative of Variant is populated.
type Kind int

const (
	KindString Kind = iota
	KindList
	KindMap
)

// Variant is String | List<Variant> | Map<String,Variant>.
type Variant struct {
	kind Kind
	str  string
	list []Variant
	m    map[string]Variant
}

// String builds a scalar Variant.
func String(s string) Variant { return Variant{kind: KindString, str: s} }

// List builds a sequence Variant.
func List(items ...Variant) Variant {
	return Variant{kind: KindList, list: append([]Variant(nil), items...)}
}

// Map builds a mapping Variant from m. Key order is not significant;
// SortedKeys gives the deterministic order the emitter writes back out.
func Map(m map[string]Variant) Variant {
	cp := make(map[string]Variant, len(m))
	for k, v := range m {
		cp[k] = v
	}
	return Variant{kind: KindMap, m: cp}
}

// Kind reports which alternative v holds.
func (v Variant) Kind() Kind { return v.kind }

// IsZero reports whether v is the unset zero value (an empty string).
func (v Variant) IsZero() bool {
	return v.kind == KindString && v.str == "" && v.list == nil && v.m == nil
}

// StringValue returns v's scalar value and whether v is a string.
func (v Variant) StringValue() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.str, true
}

// ListValue returns v's sequence and whether v is a list.
func (v Variant) ListValue() ([]Variant, bool) {
	if v.kind != KindList {
		return nil, false
	}
	return v.list, true
}

// MapValue returns v's mapping and whether v is a map.
func (v Variant) MapValue() (map[string]Variant, bool) {
	if v.kind != KindMap {
		return nil, false
	}
	return v.m, true
}

// SortedKeys returns a map Variant's keys in ascending order, the order
// the emitter uses to keep output deterministic. Returns nil if v is
// not a map.
func (v Variant) SortedKeys() []string {
	if v.kind != KindMap {
		return nil
	}
	keys := make([]string, 0, len(v.m))
	for k := range v.m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Copy returns a deep, independent copy of v.
func (v Variant) Copy() Variant {
	switch v.kind {
	case KindList:
		cp := make([]Variant, len(v.list))
		for i, item := range v.list {
			cp[i] = item.Copy()
		}
		return Variant{kind: KindList, list: cp}
	case KindMap:
		cp := make(map[string]Variant, len(v.m))
		for k, item := range v.m {
			cp[k] = item.Copy()
		}
		return Variant{kind: KindMap, m: cp}
	default:
		return Variant{kind: KindString, str: v.str}
	}
}

// Equal reports whether v and other hold structurally equal data.
func (v Variant) Equal(other Variant) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindString:
		return v.str == other.str
	case KindList:
		if len(v.list) != len(other.list) {
			return false
		}
		for i := range v.list {
			if !v.list[i].Equal(other.list[i]) {
				return false
			}
		}
		return true
	case KindMap:
		if len(v.m) != len(other.m) {
			return false
		}
		for k, item := range v.m {
			otherItem, ok := other.m[k]
			if !ok || !item.Equal(otherItem) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
