package document

import "modulemd/mderrors"

// Intent is a named override of a module's defaults for a particular
// consuming intent (e.g. "hosted", "desktop").
type Intent struct {
	DefaultStream   string
	ProfileDefaults StringSetMap
}

// Copy returns an independent copy of i.
func (i Intent) Copy() Intent {
	return Intent{DefaultStream: i.DefaultStream, ProfileDefaults: i.ProfileDefaults.Copy()}
}

// Equal reports structural equality.
func (i Intent) Equal(other Intent) bool {
	return i.DefaultStream == other.DefaultStream && i.ProfileDefaults.Equal(other.ProfileDefaults)
}

// IntentMap maps intent name -> Intent.
type IntentMap map[string]Intent

func (m IntentMap) Copy() IntentMap {
	cp := make(IntentMap, len(m))
	for name, intent := range m {
		cp[name] = intent.Copy()
	}
	return cp
}

func (m IntentMap) Equal(other IntentMap) bool {
	if len(m) != len(other) {
		return false
	}
	for name, intent := range m {
		otherIntent, ok := other[name]
		if !ok || !intent.Equal(otherIntent) {
			return false
		}
	}
	return true
}

// Defaults selects a module's default stream and default profiles per
// stream, with an intent table overriding that selection for specific
// consumer intents. There is presently only mdversion 1.
type Defaults struct {
	ModuleName      string
	DefaultStream   string
	ProfileDefaults StringSetMap
	Intents         IntentMap
	Modified        uint64
}

// NewDefaults builds an empty Defaults for moduleName.
func NewDefaults(moduleName string) *Defaults {
	return &Defaults{
		ModuleName:      moduleName,
		ProfileDefaults: StringSetMap{},
		Intents:         IntentMap{},
	}
}

// MDVersion returns the defaults document schema version, presently
// always 1.
func (d *Defaults) MDVersion() uint64 { return 1 }

// Validate checks that module_name is set. The intent table is not
// inspected: an Intent has no module_name of its own and no field that
// Validate requires.
func (d *Defaults) Validate() error {
	if d.ModuleName == "" {
		return mderrors.New(mderrors.MissingRequiredField, "defaults module_name is required")
	}
	return nil
}

// Copy returns a deep, independent copy of d.
func (d *Defaults) Copy() *Defaults {
	return &Defaults{
		ModuleName:      d.ModuleName,
		DefaultStream:   d.DefaultStream,
		ProfileDefaults: d.ProfileDefaults.Copy(),
		Intents:         d.Intents.Copy(),
		Modified:        d.Modified,
	}
}

// Equal reports structural equality.
func (d *Defaults) Equal(other *Defaults) bool {
	if other == nil {
		return false
	}
	return d.ModuleName == other.ModuleName &&
		d.DefaultStream == other.DefaultStream &&
		d.Modified == other.Modified &&
		d.ProfileDefaults.Equal(other.ProfileDefaults) &&
		d.Intents.Equal(other.Intents)
}

// UpgradeDefaults is a structural copy: only one defaults schema version
// presently exists, so upgrading is a no-op copy.
func UpgradeDefaults(d *Defaults, targetVersion uint64) (*Defaults, error) {
	if targetVersion != 1 {
		return nil, mderrors.Newf(mderrors.UnknownVersion, "unsupported defaults version %d", targetVersion)
	}
	return d.Copy(), nil
}
