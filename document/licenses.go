package document

// Licenses holds a stream's module and content license sets.
// ModuleLicenses is required and must be non-empty for a stream to
// validate; ContentLicenses is optional.
type Licenses struct {
	Module  StringSet
	Content StringSet
}

// Copy returns an independent copy of l.
func (l Licenses) Copy() Licenses {
	return Licenses{Module: l.Module.Copy(), Content: l.Content.Copy()}
}

// Equal reports structural equality.
func (l Licenses) Equal(other Licenses) bool {
	return l.Module.Equal(other.Module) && l.Content.Equal(other.Content)
}
