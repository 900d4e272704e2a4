package merge

import (
	"sort"

	"modulemd/document"
	"modulemd/index"
	"modulemd/mderrors"
)

// mergeInto merges every module of src into dst, per module: streams
// dedup by (stream, version, context); defaults and translations
// resolve by the modified-based and structural rules below.
func mergeInto(dst, src *index.Index, override, strictDefaults bool) error {
	for _, name := range src.GetModuleNames() {
		srcModule, _ := src.GetModule(name)
		if err := mergeStreams(dst, srcModule); err != nil {
			return err
		}
		if err := mergeDefaults(dst, name, srcModule.Defaults(), override, strictDefaults); err != nil {
			return err
		}
		if err := mergeTranslations(dst, name, srcModule); err != nil {
			return err
		}
	}
	return nil
}

func mergeStreams(dst *index.Index, srcModule *index.Module) error {
	for _, s := range srcModule.AllStreams() {
		if dstModule, ok := dst.GetModule(srcModule.Name()); ok {
			if _, exists := dstModule.StreamByNSVC(s.StreamName(), s.Version(), s.Context()); exists {
				continue
			}
		}
		if err := dst.AddModuleStream(s.Copy()); err != nil {
			return err
		}
	}
	return nil
}

func mergeDefaults(dst *index.Index, moduleName string, b *document.Defaults, override, strictDefaults bool) error {
	if b == nil {
		return nil
	}

	var a *document.Defaults
	if dstModule, ok := dst.GetModule(moduleName); ok {
		a = dstModule.Defaults()
	}

	switch {
	case a == nil:
		return dst.PutDefaults(b.Copy())
	case a.Modified > b.Modified:
		return nil
	case b.Modified > a.Modified:
		return dst.PutDefaults(b.Copy())
	}

	merged, err := mergeDefaultsStructural(moduleName, a, b, override, strictDefaults)
	if err != nil {
		return err
	}
	return dst.PutDefaults(merged)
}

// mergeDefaultsStructural implements spec's equal-modified defaults
// merge: default_stream, profile_defaults per stream, and intents
// merged the same way recursively.
func mergeDefaultsStructural(moduleName string, a, b *document.Defaults, override, strictDefaults bool) (*document.Defaults, error) {
	stream, err := mergeStringField(moduleName, "default_stream", a.DefaultStream, b.DefaultStream, override, strictDefaults)
	if err != nil {
		return nil, err
	}
	profiles, err := mergeProfileDefaults(moduleName, "profile_defaults", a.ProfileDefaults, b.ProfileDefaults, override, strictDefaults)
	if err != nil {
		return nil, err
	}
	intents, err := mergeIntents(moduleName, a.Intents, b.Intents, override, strictDefaults)
	if err != nil {
		return nil, err
	}

	result := document.NewDefaults(moduleName)
	result.DefaultStream = stream
	result.ProfileDefaults = profiles
	result.Intents = intents
	result.Modified = a.Modified
	return result, nil
}

func mergeIntents(moduleName string, a, b document.IntentMap, override, strictDefaults bool) (document.IntentMap, error) {
	merged := document.IntentMap{}
	for _, name := range unionKeysIntent(a, b) {
		ai, aok := a[name]
		bi, bok := b[name]
		switch {
		case !aok:
			merged[name] = bi.Copy()
		case !bok:
			merged[name] = ai.Copy()
		default:
			field := "intents[" + name + "]"
			stream, err := mergeStringField(moduleName, field+".default_stream", ai.DefaultStream, bi.DefaultStream, override, strictDefaults)
			if err != nil {
				return nil, err
			}
			profiles, err := mergeProfileDefaults(moduleName, field+".profile_defaults", ai.ProfileDefaults, bi.ProfileDefaults, override, strictDefaults)
			if err != nil {
				return nil, err
			}
			merged[name] = document.Intent{DefaultStream: stream, ProfileDefaults: profiles}
		}
	}
	return merged, nil
}

// mergeStringField resolves one scalar field that must agree between a
// and b: an empty side yields the other verbatim; a genuine mismatch is
// a conflict unless override, and always a conflict when strictDefaults
// is set — even under override, per the documented Open Question
// decision in DESIGN.md.
func mergeStringField(moduleName, field, a, b string, override, strictDefaults bool) (string, error) {
	if a == b {
		return a, nil
	}
	if a == "" {
		return b, nil
	}
	if b == "" {
		return a, nil
	}
	if strictDefaults || !override {
		return "", mderrors.Newf(mderrors.MergeConflictDefaults, "%s: %s conflict (%q vs %q)", moduleName, field, a, b)
	}
	return b, nil
}

func mergeProfileDefaults(moduleName, field string, a, b document.StringSetMap, override, strictDefaults bool) (document.StringSetMap, error) {
	merged := document.StringSetMap{}
	for _, streamName := range unionKeysStringSetMap(a, b) {
		av, aok := a[streamName]
		bv, bok := b[streamName]
		switch {
		case !aok:
			merged[streamName] = bv.Copy()
		case !bok:
			merged[streamName] = av.Copy()
		case av.Equal(bv):
			merged[streamName] = av.Copy()
		default:
			if strictDefaults || !override {
				return nil, mderrors.Newf(mderrors.MergeConflictDefaults, "%s: %s[%s] conflict", moduleName, field, streamName)
			}
			merged[streamName] = bv.Copy()
		}
	}
	return merged, nil
}

func mergeTranslations(dst *index.Index, moduleName string, srcModule *index.Module) error {
	for _, streamName := range srcModule.TranslationStreams() {
		b := srcModule.Translation(streamName)
		var a *document.Translation
		if dstModule, ok := dst.GetModule(moduleName); ok {
			a = dstModule.Translation(streamName)
		}
		if a == nil || b.Modified > a.Modified {
			if err := dst.PutTranslation(b.Copy()); err != nil {
				return err
			}
		}
	}
	return nil
}

func unionKeysStringSetMap(a, b document.StringSetMap) []string {
	seen := make(map[string]bool, len(a)+len(b))
	for k := range a {
		seen[k] = true
	}
	for k := range b {
		seen[k] = true
	}
	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func unionKeysIntent(a, b document.IntentMap) []string {
	seen := make(map[string]bool, len(a)+len(b))
	for k := range a {
		seen[k] = true
	}
	for k := range b {
		seen[k] = true
	}
	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
