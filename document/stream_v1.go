package document

import "modulemd/xmd"

// StreamV1 is the mdversion-1 ModuleStream shape: flat buildrequires and
// requires mappings (module -> stream), no ordered Dependencies list.
type StreamV1 struct {
	ModuleName   string
	Stream       string
	BuildVersion uint64
	BuildContext string
	Arch         string

	Summary     string
	Description string
	Licenses    Licenses

	XMD xmd.Variant

	BuildRequires StringSetMap
	Requires      StringSetMap

	References References
	Profiles   ProfileMap
	API        StringSet
	Filter     StringSet
	Buildopts  Buildopts

	RpmComponents    ComponentRpmMap
	ModuleComponents ComponentModuleMap

	Artifacts StringSet

	// EOL is the v1-only end-of-life date, folded into a "rawhide"
	// service level by upgradeV1ToV2 (see upgrade.go).
	EOL *string

	ServiceLevels map[string]ServiceLevel
}

// NewStreamV1 builds an empty v1 stream ready for field assignment.
func NewStreamV1() *StreamV1 {
	return &StreamV1{
		BuildRequires:    StringSetMap{},
		Requires:         StringSetMap{},
		Profiles:         ProfileMap{},
		API:              StringSet{},
		Filter:           StringSet{},
		RpmComponents:    ComponentRpmMap{},
		ModuleComponents: ComponentModuleMap{},
		Artifacts:        StringSet{},
		ServiceLevels:    map[string]ServiceLevel{},
	}
}

func (s *StreamV1) Name() string           { return s.ModuleName }
func (s *StreamV1) SetName(name string)    { s.ModuleName = name }
func (s *StreamV1) StreamName() string     { return s.Stream }
func (s *StreamV1) SetStreamName(v string) { s.Stream = v }
func (s *StreamV1) Version() uint64        { return s.BuildVersion }
func (s *StreamV1) Context() string        { return s.BuildContext }
func (s *StreamV1) MDVersion() uint64      { return 1 }

func (s *StreamV1) NSVC() NSVC {
	return NSVC{Name: s.ModuleName, Stream: s.Stream, Version: s.BuildVersion, Context: s.BuildContext}
}

func (s *StreamV1) Validate() error {
	if err := validateCommon(s.ModuleName, s.Stream, s.Summary, s.Description, s.Licenses); err != nil {
		return err
	}
	return validateComponentRationales(s.RpmComponents, s.ModuleComponents)
}

func (s *StreamV1) Copy() ModuleStream {
	cp := &StreamV1{
		ModuleName:       s.ModuleName,
		Stream:           s.Stream,
		BuildVersion:     s.BuildVersion,
		BuildContext:     s.BuildContext,
		Arch:             s.Arch,
		Summary:          s.Summary,
		Description:      s.Description,
		Licenses:         s.Licenses.Copy(),
		XMD:              s.XMD.Copy(),
		BuildRequires:    s.BuildRequires.Copy(),
		Requires:         s.Requires.Copy(),
		References:       s.References,
		Profiles:         s.Profiles.Copy(),
		API:              s.API.Copy(),
		Filter:           s.Filter.Copy(),
		Buildopts:        s.Buildopts.Copy(),
		RpmComponents:    s.RpmComponents.Copy(),
		ModuleComponents: s.ModuleComponents.Copy(),
		Artifacts:        s.Artifacts.Copy(),
		ServiceLevels:    make(map[string]ServiceLevel, len(s.ServiceLevels)),
	}
	if s.EOL != nil {
		eol := *s.EOL
		cp.EOL = &eol
	}
	for name, sl := range s.ServiceLevels {
		cp.ServiceLevels[name] = sl.Copy()
	}
	return cp
}

func (s *StreamV1) Equal(other ModuleStream) bool {
	o, ok := other.(*StreamV1)
	if !ok {
		return false
	}
	if s.ModuleName != o.ModuleName || s.Stream != o.Stream || s.BuildVersion != o.BuildVersion ||
		s.BuildContext != o.BuildContext || s.Arch != o.Arch || s.Summary != o.Summary ||
		s.Description != o.Description {
		return false
	}
	if !s.Licenses.Equal(o.Licenses) || !s.XMD.Equal(o.XMD) || !s.BuildRequires.Equal(o.BuildRequires) ||
		!s.Requires.Equal(o.Requires) || !s.References.Equal(o.References) || !s.Profiles.Equal(o.Profiles) ||
		!s.API.Equal(o.API) || !s.Filter.Equal(o.Filter) || !s.Buildopts.Equal(o.Buildopts) ||
		!s.RpmComponents.Equal(o.RpmComponents) || !s.ModuleComponents.Equal(o.ModuleComponents) ||
		!s.Artifacts.Equal(o.Artifacts) {
		return false
	}
	if (s.EOL == nil) != (o.EOL == nil) {
		return false
	}
	if s.EOL != nil && *s.EOL != *o.EOL {
		return false
	}
	if len(s.ServiceLevels) != len(o.ServiceLevels) {
		return false
	}
	for name, sl := range s.ServiceLevels {
		osl, ok := o.ServiceLevels[name]
		if !ok || !sl.Equal(osl) {
			return false
		}
	}
	return true
}
