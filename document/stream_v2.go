package document

import (
	"modulemd/mderrors"
	"modulemd/xmd"
)

// StreamV2 is the mdversion-2 ModuleStream shape: an ordered list of
// Dependencies records in place of v1's flat mappings.
type StreamV2 struct {
	ModuleName   string
	Stream       string
	BuildVersion uint64
	BuildContext string
	Arch         string

	Summary     string
	Description string
	Licenses    Licenses

	XMD xmd.Variant

	Dependencies []Dependencies

	References References
	Profiles   ProfileMap
	API        StringSet
	Filter     StringSet
	Buildopts  Buildopts

	RpmComponents    ComponentRpmMap
	ModuleComponents ComponentModuleMap

	Artifacts StringSet

	ServiceLevels map[string]ServiceLevel
}

// NewStreamV2 builds an empty v2 stream ready for field assignment.
func NewStreamV2() *StreamV2 {
	return &StreamV2{
		Profiles:         ProfileMap{},
		API:              StringSet{},
		Filter:           StringSet{},
		RpmComponents:    ComponentRpmMap{},
		ModuleComponents: ComponentModuleMap{},
		Artifacts:        StringSet{},
		ServiceLevels:    map[string]ServiceLevel{},
	}
}

func (s *StreamV2) Name() string           { return s.ModuleName }
func (s *StreamV2) SetName(name string)    { s.ModuleName = name }
func (s *StreamV2) StreamName() string     { return s.Stream }
func (s *StreamV2) SetStreamName(v string) { s.Stream = v }
func (s *StreamV2) Version() uint64        { return s.BuildVersion }
func (s *StreamV2) Context() string        { return s.BuildContext }
func (s *StreamV2) MDVersion() uint64      { return 2 }

func (s *StreamV2) NSVC() NSVC {
	return NSVC{Name: s.ModuleName, Stream: s.Stream, Version: s.BuildVersion, Context: s.BuildContext}
}

func (s *StreamV2) Validate() error {
	if err := validateCommon(s.ModuleName, s.Stream, s.Summary, s.Description, s.Licenses); err != nil {
		return err
	}
	if err := validateComponentRationales(s.RpmComponents, s.ModuleComponents); err != nil {
		return err
	}
	for i, dep := range s.Dependencies {
		for module, streams := range dep.BuildtimeStreams {
			if module == "" {
				return mderrors.Newf(mderrors.InvalidFieldValue, "dependencies[%d].buildrequires has an empty module name", i)
			}
			for stream := range streams {
				if stream == "" {
					return mderrors.Newf(mderrors.InvalidFieldValue, "dependencies[%d].buildrequires[%s] has an empty stream", i, module)
				}
			}
		}
		for module, streams := range dep.RuntimeStreams {
			if module == "" {
				return mderrors.Newf(mderrors.InvalidFieldValue, "dependencies[%d].requires has an empty module name", i)
			}
			for stream := range streams {
				if stream == "" {
					return mderrors.Newf(mderrors.InvalidFieldValue, "dependencies[%d].requires[%s] has an empty stream", i, module)
				}
			}
		}
	}
	return nil
}

func (s *StreamV2) Copy() ModuleStream {
	return &StreamV2{
		ModuleName:       s.ModuleName,
		Stream:           s.Stream,
		BuildVersion:     s.BuildVersion,
		BuildContext:     s.BuildContext,
		Arch:             s.Arch,
		Summary:          s.Summary,
		Description:      s.Description,
		Licenses:         s.Licenses.Copy(),
		XMD:              s.XMD.Copy(),
		Dependencies:     CopyDependenciesList(s.Dependencies),
		References:       s.References,
		Profiles:         s.Profiles.Copy(),
		API:              s.API.Copy(),
		Filter:           s.Filter.Copy(),
		Buildopts:        s.Buildopts.Copy(),
		RpmComponents:    s.RpmComponents.Copy(),
		ModuleComponents: s.ModuleComponents.Copy(),
		Artifacts:        s.Artifacts.Copy(),
		ServiceLevels:    copyServiceLevels(s.ServiceLevels),
	}
}

func (s *StreamV2) Equal(other ModuleStream) bool {
	o, ok := other.(*StreamV2)
	if !ok {
		return false
	}
	if s.ModuleName != o.ModuleName || s.Stream != o.Stream || s.BuildVersion != o.BuildVersion ||
		s.BuildContext != o.BuildContext || s.Arch != o.Arch || s.Summary != o.Summary ||
		s.Description != o.Description {
		return false
	}
	if !s.Licenses.Equal(o.Licenses) || !s.XMD.Equal(o.XMD) || !DependenciesEqual(s.Dependencies, o.Dependencies) ||
		!s.References.Equal(o.References) || !s.Profiles.Equal(o.Profiles) ||
		!s.API.Equal(o.API) || !s.Filter.Equal(o.Filter) || !s.Buildopts.Equal(o.Buildopts) ||
		!s.RpmComponents.Equal(o.RpmComponents) || !s.ModuleComponents.Equal(o.ModuleComponents) ||
		!s.Artifacts.Equal(o.Artifacts) {
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

func copyServiceLevels(in map[string]ServiceLevel) map[string]ServiceLevel {
	cp := make(map[string]ServiceLevel, len(in))
	for name, sl := range in {
		cp[name] = sl.Copy()
	}
	return cp
}
