package index

import (
	"io"
	"sort"
	"sync"

	"modulemd/document"
	"modulemd/mderrors"
	"modulemd/yamlcodec"
)

// Index is a keyed collection of every module document known to it
// (streams, defaults, translations), enforcing that every stream in the
// index shares one schema version and every Defaults shares another,
// auto-upgrading older documents on insertion as needed.
type Index struct {
	modules           map[string]*Module
	streamMDVersion   uint64
	defaultsMDVersion uint64
}

// New returns an empty Index.
func New() *Index {
	return &Index{modules: map[string]*Module{}}
}

func (idx *Index) moduleFor(name string) *Module {
	m, ok := idx.modules[name]
	if !ok {
		m = newModule(name)
		idx.modules[name] = m
	}
	return m
}

// AddModuleStream inserts s, replacing any existing stream with the
// same (stream, version, context). If the index's current stream
// schema version differs from s's, every stream in the index
// (including s) is upgraded to whichever version is higher, preserving
// the version-homogeneity invariant across the whole index.
func (idx *Index) AddModuleStream(s document.ModuleStream) error {
	if s.Name() == "" {
		return mderrors.New(mderrors.MissingRequiredField, "module stream is missing module_name")
	}
	if s.StreamName() == "" {
		return mderrors.New(mderrors.MissingRequiredField, "module stream is missing stream_name")
	}

	target := s.MDVersion()
	if idx.streamMDVersion == 0 {
		idx.streamMDVersion = target
	} else if target > idx.streamMDVersion {
		if err := idx.upgradeAllStreams(target); err != nil {
			return err
		}
		idx.streamMDVersion = target
	} else if target < idx.streamMDVersion {
		upgraded, err := document.UpgradeStream(s, idx.streamMDVersion)
		if err != nil {
			return err
		}
		s = upgraded
	}

	m := idx.moduleFor(s.Name())
	key := document.Key{Stream: s.StreamName(), Version: s.Version(), Context: s.Context()}
	m.streams[key] = s
	return nil
}

func (idx *Index) upgradeAllStreams(target uint64) error {
	for _, m := range idx.modules {
		for key, s := range m.streams {
			upgraded, err := document.UpgradeStream(s, target)
			if err != nil {
				return err
			}
			m.streams[key] = upgraded
		}
	}
	return nil
}

// AddDefaults inserts d. If the module already has a Defaults, the
// incoming one replaces it only if d.Modified is strictly greater than
// the existing one's; otherwise it is silently dropped. This is the
// single-source "update" semantics; reconciling Defaults across
// multiple sources is IndexMerger's job.
func (idx *Index) AddDefaults(d *document.Defaults) error {
	if d.ModuleName == "" {
		return mderrors.New(mderrors.MissingRequiredField, "defaults is missing module_name")
	}

	target := d.MDVersion()
	if idx.defaultsMDVersion == 0 {
		idx.defaultsMDVersion = target
	} else if target > idx.defaultsMDVersion {
		if err := idx.upgradeAllDefaults(target); err != nil {
			return err
		}
		idx.defaultsMDVersion = target
	} else if target < idx.defaultsMDVersion {
		upgraded, err := document.UpgradeDefaults(d, idx.defaultsMDVersion)
		if err != nil {
			return err
		}
		d = upgraded
	}

	m := idx.moduleFor(d.ModuleName)
	if m.defaults == nil || d.Modified > m.defaults.Modified {
		m.defaults = d
	}
	return nil
}

// PutDefaults installs d as the module's Defaults unconditionally
// (after the same version-homogeneity upgrade AddDefaults applies),
// bypassing the modified-based "keep newer" comparison. It is for a
// caller, such as IndexMerger, that has already decided the winner
// itself; ordinary ingestion should use AddDefaults.
func (idx *Index) PutDefaults(d *document.Defaults) error {
	if d.ModuleName == "" {
		return mderrors.New(mderrors.MissingRequiredField, "defaults is missing module_name")
	}

	target := d.MDVersion()
	if idx.defaultsMDVersion == 0 {
		idx.defaultsMDVersion = target
	} else if target > idx.defaultsMDVersion {
		if err := idx.upgradeAllDefaults(target); err != nil {
			return err
		}
		idx.defaultsMDVersion = target
	} else if target < idx.defaultsMDVersion {
		upgraded, err := document.UpgradeDefaults(d, idx.defaultsMDVersion)
		if err != nil {
			return err
		}
		d = upgraded
	}

	idx.moduleFor(d.ModuleName).defaults = d
	return nil
}

func (idx *Index) upgradeAllDefaults(target uint64) error {
	for _, m := range idx.modules {
		if m.defaults == nil {
			continue
		}
		upgraded, err := document.UpgradeDefaults(m.defaults, target)
		if err != nil {
			return err
		}
		m.defaults = upgraded
	}
	return nil
}

// AddTranslation inserts t under (t.ModuleName, t.StreamName),
// replacing any existing entry for that key with a smaller Modified.
func (idx *Index) AddTranslation(t *document.Translation) error {
	if t.ModuleName == "" {
		return mderrors.New(mderrors.MissingRequiredField, "translation is missing module_name")
	}
	if t.StreamName == "" {
		return mderrors.New(mderrors.MissingRequiredField, "translation is missing stream_name")
	}
	m := idx.moduleFor(t.ModuleName)
	existing, ok := m.translations[t.StreamName]
	if !ok || t.Modified > existing.Modified {
		m.translations[t.StreamName] = t
	}
	return nil
}

// PutTranslation installs t unconditionally, bypassing the
// modified-based "keep newer" comparison AddTranslation applies. It is
// for a caller, such as IndexMerger, that has already decided the
// winner itself.
func (idx *Index) PutTranslation(t *document.Translation) error {
	if t.ModuleName == "" {
		return mderrors.New(mderrors.MissingRequiredField, "translation is missing module_name")
	}
	if t.StreamName == "" {
		return mderrors.New(mderrors.MissingRequiredField, "translation is missing stream_name")
	}
	idx.moduleFor(t.ModuleName).translations[t.StreamName] = t
	return nil
}

// GetModule returns the module named name, or false if unknown.
func (idx *Index) GetModule(name string) (*Module, bool) {
	m, ok := idx.modules[name]
	return m, ok
}

// GetModuleNames returns every module name in the index, sorted
// ascending.
func (idx *Index) GetModuleNames() []string {
	names := make([]string, 0, len(idx.modules))
	for name := range idx.modules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// UpdateFromBytes is UpdateFromStream reading from an in-memory byte
// slice.
func (idx *Index) UpdateFromBytes(source []byte, strict bool) (bool, []yamlcodec.Failure, error) {
	result, err := yamlcodec.Parse(source, strict)
	if err != nil {
		return false, nil, err
	}
	return idx.absorb(result), result.Failures, nil
}

// UpdateFromStream parses r with the codec, then calls the matching
// Add* for every recognized subdocument. ok is false iff any
// subdocument failed, whether at parse time or at Add* time (e.g. a
// missing module_name).
func (idx *Index) UpdateFromStream(r io.Reader, strict bool) (bool, []yamlcodec.Failure, error) {
	result, err := yamlcodec.ParseStream(r, strict)
	if err != nil {
		return false, nil, err
	}
	return idx.absorb(result), result.Failures, nil
}

func (idx *Index) absorb(result *yamlcodec.ParseResult) bool {
	failures := append([]yamlcodec.Failure{}, result.Failures...)
	for _, s := range result.Streams {
		if err := idx.AddModuleStream(s); err != nil {
			failures = append(failures, failureFor(yamlcodec.Document{Stream: s}, err))
		}
	}
	for _, d := range result.Defaults {
		if err := idx.AddDefaults(d); err != nil {
			failures = append(failures, failureFor(yamlcodec.Document{Defaults: d}, err))
		}
	}
	for _, t := range result.Translations {
		if err := idx.AddTranslation(t); err != nil {
			failures = append(failures, failureFor(yamlcodec.Document{Translation: t}, err))
		}
	}
	result.Failures = failures
	return len(failures) == 0
}

func failureFor(doc yamlcodec.Document, err error) yamlcodec.Failure {
	text, encErr := yamlcodec.EmitBytes([]yamlcodec.Document{doc})
	if encErr != nil {
		return yamlcodec.Failure{Err: err}
	}
	return yamlcodec.Failure{YAMLText: string(text), Err: err}
}

// dumpDocuments orders every document as Dump requires: modules sorted
// by name, and within each module, defaults then streams sorted by
// (stream, version, context) then translations sorted by stream name.
func (idx *Index) dumpDocuments() []yamlcodec.Document {
	var docs []yamlcodec.Document
	for _, name := range idx.GetModuleNames() {
		m := idx.modules[name]
		if m.defaults != nil {
			docs = append(docs, yamlcodec.Document{Defaults: m.defaults})
		}
		for _, s := range m.sortedDumpStreams() {
			docs = append(docs, yamlcodec.Document{Stream: s})
		}
		for _, streamName := range m.sortedTranslationStreams() {
			docs = append(docs, yamlcodec.Document{Translation: m.translations[streamName]})
		}
	}
	return docs
}

// Dump emits every document in the index, in canonical order, to sink.
func (idx *Index) Dump(sink io.Writer) error {
	return yamlcodec.Emit(idx.dumpDocuments(), sink)
}

// DumpToBytes is Dump returning the written bytes directly.
func (idx *Index) DumpToBytes() ([]byte, error) {
	return yamlcodec.EmitBytes(idx.dumpDocuments())
}

var (
	defaultStreamMDVersionMu sync.RWMutex
	defaultStreamMDVersion   uint64 = 2
)

// DefaultStreamMdversion returns the process-wide default ModuleStream
// schema version used when a caller asks for "latest" without pinning
// one explicitly. It is expected to be set once at startup.
func DefaultStreamMdversion() uint64 {
	defaultStreamMDVersionMu.RLock()
	defer defaultStreamMDVersionMu.RUnlock()
	return defaultStreamMDVersion
}

// SetDefaultStreamMdversion sets the process-wide default.
func SetDefaultStreamMdversion(version uint64) {
	defaultStreamMDVersionMu.Lock()
	defer defaultStreamMDVersionMu.Unlock()
	defaultStreamMDVersion = version
}
