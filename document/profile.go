package document

// Profile is a named subset of a stream's packages to install.
type Profile struct {
	Description string
	RPMs        StringSet
}

// NewProfile builds an empty Profile.
func NewProfile() Profile {
	return Profile{RPMs: StringSet{}}
}

// Copy returns an independent copy of p.
func (p Profile) Copy() Profile {
	return Profile{Description: p.Description, RPMs: p.RPMs.Copy()}
}

// Equal reports structural equality.
func (p Profile) Equal(other Profile) bool {
	return p.Description == other.Description && p.RPMs.Equal(other.RPMs)
}

// ProfileMap is a mapping of profile_name -> Profile.
type ProfileMap map[string]Profile

// Copy returns an independent deep copy of m.
func (m ProfileMap) Copy() ProfileMap {
	cp := make(ProfileMap, len(m))
	for name, profile := range m {
		cp[name] = profile.Copy()
	}
	return cp
}

// Equal reports whether m and other map the same names to equal profiles.
func (m ProfileMap) Equal(other ProfileMap) bool {
	if len(m) != len(other) {
		return false
	}
	for name, profile := range m {
		otherProfile, ok := other[name]
		if !ok || !profile.Equal(otherProfile) {
			return false
		}
	}
	return true
}
