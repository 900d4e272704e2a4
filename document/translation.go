package document

import "modulemd/mderrors"

// TranslationEntry holds one locale's localized strings for a stream.
// An empty field means "clear this translation" during a merge — see
// the merge package.
type TranslationEntry struct {
	Summary     string
	Description string
	Profiles    map[string]string
}

// Copy returns an independent copy of e.
func (e TranslationEntry) Copy() TranslationEntry {
	cp := TranslationEntry{Summary: e.Summary, Description: e.Description}
	if e.Profiles != nil {
		cp.Profiles = make(map[string]string, len(e.Profiles))
		for name, desc := range e.Profiles {
			cp.Profiles[name] = desc
		}
	}
	return cp
}

// Equal reports structural equality.
func (e TranslationEntry) Equal(other TranslationEntry) bool {
	if e.Summary != other.Summary || e.Description != other.Description {
		return false
	}
	if len(e.Profiles) != len(other.Profiles) {
		return false
	}
	for name, desc := range e.Profiles {
		otherDesc, ok := other.Profiles[name]
		if !ok || desc != otherDesc {
			return false
		}
	}
	return true
}

// Translation supplies localized summary/description/profile
// descriptions for one (module, stream), keyed by locale.
type Translation struct {
	ModuleName   string
	StreamName   string
	Modified     uint64
	Translations map[string]TranslationEntry
}

// NewTranslation builds an empty Translation for (moduleName, streamName).
func NewTranslation(moduleName, streamName string) *Translation {
	return &Translation{
		ModuleName:   moduleName,
		StreamName:   streamName,
		Translations: map[string]TranslationEntry{},
	}
}

// MDVersion returns the translation document schema version, presently
// always 1.
func (t *Translation) MDVersion() uint64 { return 1 }

// Validate checks module_name/stream_name are set, modified is positive,
// and every locale key is non-empty.
func (t *Translation) Validate() error {
	if t.ModuleName == "" {
		return mderrors.New(mderrors.MissingRequiredField, "translation module_name is required")
	}
	if t.StreamName == "" {
		return mderrors.New(mderrors.MissingRequiredField, "translation stream_name is required")
	}
	if t.Modified == 0 {
		return mderrors.New(mderrors.InvalidFieldValue, "translation modified must be > 0")
	}
	for locale := range t.Translations {
		if locale == "" {
			return mderrors.New(mderrors.InvalidFieldValue, "translation locale must be non-empty")
		}
	}
	return nil
}

// Copy returns a deep, independent copy of t.
func (t *Translation) Copy() *Translation {
	cp := &Translation{
		ModuleName: t.ModuleName,
		StreamName: t.StreamName,
		Modified:   t.Modified,
	}
	cp.Translations = make(map[string]TranslationEntry, len(t.Translations))
	for locale, entry := range t.Translations {
		cp.Translations[locale] = entry.Copy()
	}
	return cp
}

// Equal reports structural equality.
func (t *Translation) Equal(other *Translation) bool {
	if other == nil {
		return false
	}
	if t.ModuleName != other.ModuleName || t.StreamName != other.StreamName || t.Modified != other.Modified {
		return false
	}
	if len(t.Translations) != len(other.Translations) {
		return false
	}
	for locale, entry := range t.Translations {
		otherEntry, ok := other.Translations[locale]
		if !ok || !entry.Equal(otherEntry) {
			return false
		}
	}
	return true
}
