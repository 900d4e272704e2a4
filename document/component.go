package document

// ComponentRpm is a binary RPM component that goes into a module stream.
type ComponentRpm struct {
	Name            string
	Rationale       string
	Repository      string
	Ref             string
	Cache           string
	Buildorder      int64
	Arches          StringSet
	MultilibArches  StringSet
	Buildroot       string
	SRPMBuildroot   string
}

// NewComponentRpm builds a ComponentRpm named name with the required
// rationale.
func NewComponentRpm(name, rationale string) ComponentRpm {
	return ComponentRpm{Name: name, Rationale: rationale}
}

// Copy returns an independent copy of c.
func (c ComponentRpm) Copy() ComponentRpm {
	cp := c
	cp.Arches = c.Arches.Copy()
	cp.MultilibArches = c.MultilibArches.Copy()
	return cp
}

// Equal reports structural equality.
func (c ComponentRpm) Equal(other ComponentRpm) bool {
	return c.Name == other.Name &&
		c.Rationale == other.Rationale &&
		c.Repository == other.Repository &&
		c.Ref == other.Ref &&
		c.Cache == other.Cache &&
		c.Buildorder == other.Buildorder &&
		c.Buildroot == other.Buildroot &&
		c.SRPMBuildroot == other.SRPMBuildroot &&
		c.Arches.Equal(other.Arches) &&
		c.MultilibArches.Equal(other.MultilibArches)
}

// ComponentModule is a module that goes into a module stream as a build
// or runtime component.
type ComponentModule struct {
	Name       string
	Rationale  string
	Repository string
	Ref        string
	Buildorder int64
	Buildroot  string
}

// NewComponentModule builds a ComponentModule named name with the
// required rationale.
func NewComponentModule(name, rationale string) ComponentModule {
	return ComponentModule{Name: name, Rationale: rationale}
}

// Copy returns an independent copy of c.
func (c ComponentModule) Copy() ComponentModule { return c }

// Equal reports structural equality.
func (c ComponentModule) Equal(other ComponentModule) bool {
	return c == other
}

// ComponentRpmMap is a mapping of component key -> ComponentRpm.
type ComponentRpmMap map[string]ComponentRpm

func (m ComponentRpmMap) Copy() ComponentRpmMap {
	cp := make(ComponentRpmMap, len(m))
	for key, c := range m {
		cp[key] = c.Copy()
	}
	return cp
}

func (m ComponentRpmMap) Equal(other ComponentRpmMap) bool {
	if len(m) != len(other) {
		return false
	}
	for key, c := range m {
		otherC, ok := other[key]
		if !ok || !c.Equal(otherC) {
			return false
		}
	}
	return true
}

// ComponentModuleMap is a mapping of component key -> ComponentModule.
type ComponentModuleMap map[string]ComponentModule

func (m ComponentModuleMap) Copy() ComponentModuleMap {
	cp := make(ComponentModuleMap, len(m))
	for key, c := range m {
		cp[key] = c.Copy()
	}
	return cp
}

func (m ComponentModuleMap) Equal(other ComponentModuleMap) bool {
	if len(m) != len(other) {
		return false
	}
	for key, c := range m {
		otherC, ok := other[key]
		if !ok || !c.Equal(otherC) {
			return false
		}
	}
	return true
}
