// Package index implements ModuleIndex: an in-memory, keyed collection
// of every stream/defaults/translation document relating to a set of
// modules, with version-homogeneity enforcement via auto-upgrade.
package index

import (
	"sort"

	"modulemd/document"
)

// Module aggregates everything known about one module name: its
// streams keyed by (stream, version, context), one optional Defaults,
// and one optional Translation per stream name.
type Module struct {
	name         string
	streams      map[document.Key]document.ModuleStream
	defaults     *document.Defaults
	translations map[string]*document.Translation
}

func newModule(name string) *Module {
	return &Module{
		name:         name,
		streams:      map[document.Key]document.ModuleStream{},
		translations: map[string]*document.Translation{},
	}
}

// Name returns the module's name.
func (m *Module) Name() string { return m.name }

// AllStreams returns every stream in the module, in NSVC order (name,
// then stream, then version descending, then context).
func (m *Module) AllStreams() []document.ModuleStream {
	out := make([]document.ModuleStream, 0, len(m.streams))
	for _, s := range m.streams {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].NSVC().Less(out[j].NSVC()) })
	return out
}

// StreamsByName returns the streams matching stream name s, newest
// version first.
func (m *Module) StreamsByName(s string) []document.ModuleStream {
	out := make([]document.ModuleStream, 0)
	for _, stream := range m.streams {
		if stream.StreamName() == s {
			out = append(out, stream)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Version() > out[j].Version() })
	return out
}

// StreamByNSVC looks up the exact (stream, version, context) triple.
func (m *Module) StreamByNSVC(stream string, version uint64, context string) (document.ModuleStream, bool) {
	s, ok := m.streams[document.Key{Stream: stream, Version: version, Context: context}]
	return s, ok
}

// Defaults returns the module's Defaults document, or nil if none has
// been added.
func (m *Module) Defaults() *document.Defaults { return m.defaults }

// Translation returns the Translation document for stream name s, or
// nil if none has been added.
func (m *Module) Translation(stream string) *document.Translation {
	return m.translations[stream]
}

// TranslationStreams returns every stream name that has a Translation,
// sorted ascending.
func (m *Module) TranslationStreams() []string {
	return m.sortedTranslationStreams()
}

// sortedDumpStreams returns streams ordered by (stream, version,
// context) ascending, the order Index.Dump uses — distinct from
// AllStreams' newest-first NSVC order, which favors "give me the
// latest" queries over a stable on-disk layout.
func (m *Module) sortedDumpStreams() []document.ModuleStream {
	out := make([]document.ModuleStream, 0, len(m.streams))
	for _, s := range m.streams {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.StreamName() != b.StreamName() {
			return a.StreamName() < b.StreamName()
		}
		if a.Version() != b.Version() {
			return a.Version() < b.Version()
		}
		return a.Context() < b.Context()
	})
	return out
}

func (m *Module) sortedTranslationStreams() []string {
	keys := make([]string, 0, len(m.translations))
	for k := range m.translations {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
