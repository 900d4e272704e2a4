package document

import "sort"

// StringSet is an unordered set of strings, the representation for every
// "simple set" field (module_licenses, api rpms, filter rpms, ...).
// Duplicates collapse on construction; the sorted Slice form is what the
// emitter writes for deterministic output.
type StringSet map[string]struct{}

// NewStringSet builds a StringSet from items, collapsing duplicates.
func NewStringSet(items ...string) StringSet {
	set := make(StringSet, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set
}

// Add inserts value into the set.
func (s StringSet) Add(value string) { s[value] = struct{}{} }

// Contains reports whether value is a member of the set.
func (s StringSet) Contains(value string) bool {
	_, ok := s[value]
	return ok
}

// Slice returns the set's members in ascending sorted order.
func (s StringSet) Slice() []string {
	out := make([]string, 0, len(s))
	for value := range s {
		out = append(out, value)
	}
	sort.Strings(out)
	return out
}

// Copy returns an independent copy of the set.
func (s StringSet) Copy() StringSet {
	cp := make(StringSet, len(s))
	for value := range s {
		cp[value] = struct{}{}
	}
	return cp
}

// Equal reports whether s and other contain the same members.
func (s StringSet) Equal(other StringSet) bool {
	if len(s) != len(other) {
		return false
	}
	for value := range s {
		if !other.Contains(value) {
			return false
		}
	}
	return true
}

// StringSetMap is a mapping whose values are StringSets — the shape of
// v1's flat requires/buildrequires and the dependencies streams tables.
type StringSetMap map[string]StringSet

// Copy returns an independent deep copy of the map.
func (m StringSetMap) Copy() StringSetMap {
	cp := make(StringSetMap, len(m))
	for key, set := range m {
		cp[key] = set.Copy()
	}
	return cp
}

// Equal reports whether m and other map the same keys to equal sets.
func (m StringSetMap) Equal(other StringSetMap) bool {
	if len(m) != len(other) {
		return false
	}
	for key, set := range m {
		otherSet, ok := other[key]
		if !ok || !set.Equal(otherSet) {
			return false
		}
	}
	return true
}

// SortedKeys returns m's keys in ascending order, the order the emitter
// writes string-to-set maps in.
func (m StringSetMap) SortedKeys() []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
