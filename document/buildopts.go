package document

// Buildopts provides hints to the build system: RPM macros in the form
// they would appear in an on-disk macros file, plus an optional RPM
// whitelist.
type Buildopts struct {
	RPMMacros    string
	RPMWhitelist StringSet
}

// NewBuildopts builds an empty Buildopts.
func NewBuildopts() Buildopts {
	return Buildopts{RPMWhitelist: StringSet{}}
}

// Copy returns an independent copy of b.
func (b Buildopts) Copy() Buildopts {
	return Buildopts{RPMMacros: b.RPMMacros, RPMWhitelist: b.RPMWhitelist.Copy()}
}

// Equal reports structural equality.
func (b Buildopts) Equal(other Buildopts) bool {
	return b.RPMMacros == other.RPMMacros && b.RPMWhitelist.Equal(other.RPMWhitelist)
}

// IsZero reports whether b carries no data at all (used to omit an empty
// buildopts block on emit).
func (b Buildopts) IsZero() bool {
	return b.RPMMacros == "" && len(b.RPMWhitelist) == 0
}
