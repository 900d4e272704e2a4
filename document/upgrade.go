package document

import "modulemd/mderrors"

// rawhideServiceLevel is the name §4.2 assigns to a v1 stream's bare
// eol date once folded into a v2 service level.
const rawhideServiceLevel = "rawhide"

// UpgradeStream upgrades s to targetVersion, the only supported
// transition being 1 -> 2. Upgrading a stream already at targetVersion
// returns a copy unchanged; downgrading is not supported.
func UpgradeStream(s ModuleStream, targetVersion uint64) (ModuleStream, error) {
	if s.MDVersion() == targetVersion {
		return s.Copy(), nil
	}
	if s.MDVersion() == 1 && targetVersion == 2 {
		v1, ok := s.(*StreamV1)
		if !ok {
			return nil, mderrors.New(mderrors.UnknownVersion, "stream claims mdversion 1 but is not a StreamV1")
		}
		return upgradeV1ToV2(v1), nil
	}
	return nil, mderrors.Newf(mderrors.UnknownVersion, "unsupported stream upgrade %d -> %d", s.MDVersion(), targetVersion)
}

// upgradeV1ToV2 rewrites the flat requires/buildrequires mappings into a
// single Dependencies record whose runtime and buildtime tables map each
// module name to the one-element set containing its v1 stream. If v1 had
// an eol date, it becomes a "rawhide" service level. All other fields
// are carried across unchanged.
func upgradeV1ToV2(v1 *StreamV1) *StreamV2 {
	v2 := NewStreamV2()
	v2.ModuleName = v1.ModuleName
	v2.Stream = v1.Stream
	v2.BuildVersion = v1.BuildVersion
	v2.BuildContext = v1.BuildContext
	v2.Arch = v1.Arch
	v2.Summary = v1.Summary
	v2.Description = v1.Description
	v2.Licenses = v1.Licenses.Copy()
	v2.XMD = v1.XMD.Copy()
	v2.References = v1.References
	v2.Profiles = v1.Profiles.Copy()
	v2.API = v1.API.Copy()
	v2.Filter = v1.Filter.Copy()
	v2.Buildopts = v1.Buildopts.Copy()
	v2.RpmComponents = v1.RpmComponents.Copy()
	v2.ModuleComponents = v1.ModuleComponents.Copy()
	v2.Artifacts = v1.Artifacts.Copy()
	v2.ServiceLevels = copyServiceLevels(v1.ServiceLevels)

	if len(v1.Requires) > 0 || len(v1.BuildRequires) > 0 {
		dep := NewDependencies()
		for module, streams := range v1.Requires {
			for stream := range streams {
				dep.AddRuntimeStream(module, stream)
			}
		}
		for module, streams := range v1.BuildRequires {
			for stream := range streams {
				dep.AddBuildtimeStream(module, stream)
			}
		}
		v2.Dependencies = []Dependencies{dep}
	}

	if v1.EOL != nil {
		if v2.ServiceLevels == nil {
			v2.ServiceLevels = map[string]ServiceLevel{}
		}
		eol, err := ParseEOLDate(*v1.EOL)
		if err == nil {
			v2.ServiceLevels[rawhideServiceLevel] = ServiceLevel{Name: rawhideServiceLevel, EOL: &eol}
		}
	}

	return v2
}
