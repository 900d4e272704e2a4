package yamlcodec

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"modulemd/document"
	"modulemd/mderrors"
	"modulemd/xmd"
)

var commonStreamKeys = map[string]bool{
	"name": true, "stream": true, "version": true, "context": true, "arch": true,
	"summary": true, "description": true, "servicelevels": true, "license": true,
	"xmd": true, "references": true, "profiles": true, "api": true, "filter": true,
	"buildopts": true, "components": true, "artifacts": true,
}

func withKeys(extra ...string) map[string]bool {
	m := make(map[string]bool, len(commonStreamKeys)+len(extra))
	for k := range commonStreamKeys {
		m[k] = true
	}
	for _, k := range extra {
		m[k] = true
	}
	return m
}

var v1StreamKeys = withKeys("buildrequires", "requires", "eol")
var v2StreamKeys = withKeys("dependencies")

// streamCommon holds the fields every ModuleStream version shares,
// decoded once and then copied onto the version-specific struct.
type streamCommon struct {
	name, stream, context, arch   string
	buildVersion                  uint64
	summary, description          string
	licenses                      document.Licenses
	xmdValue                      xmd.Variant
	references                    document.References
	profiles                      document.ProfileMap
	api, filter                   document.StringSet
	buildopts                     document.Buildopts
	rpmComponents                 document.ComponentRpmMap
	moduleComponents              document.ComponentModuleMap
	artifacts                     document.StringSet
	serviceLevels                 map[string]document.ServiceLevel
}

func parseStreamCommon(data *yaml.Node) (streamCommon, error) {
	var c streamCommon
	var err error

	if node, ok := mappingGet(data, "name"); ok {
		if c.name, err = scalarString(node, "modulemd.data.name"); err != nil {
			return c, err
		}
	}
	if node, ok := mappingGet(data, "stream"); ok {
		if c.stream, err = scalarString(node, "modulemd.data.stream"); err != nil {
			return c, err
		}
	}
	if node, ok := mappingGet(data, "version"); ok {
		if c.buildVersion, err = scalarUint(node, "modulemd.data.version"); err != nil {
			return c, err
		}
	}
	if node, ok := mappingGet(data, "context"); ok {
		if c.context, err = scalarString(node, "modulemd.data.context"); err != nil {
			return c, err
		}
	}
	if node, ok := mappingGet(data, "arch"); ok {
		if c.arch, err = scalarString(node, "modulemd.data.arch"); err != nil {
			return c, err
		}
	}
	if node, ok := mappingGet(data, "summary"); ok {
		if c.summary, err = scalarString(node, "modulemd.data.summary"); err != nil {
			return c, err
		}
	}
	if node, ok := mappingGet(data, "description"); ok {
		if c.description, err = scalarString(node, "modulemd.data.description"); err != nil {
			return c, err
		}
	}

	c.licenses = document.Licenses{Module: document.StringSet{}, Content: document.StringSet{}}
	if node, ok := mappingGet(data, "license"); ok {
		if modNode, ok := mappingGet(node, "module"); ok {
			if c.licenses.Module, err = scalarSet(modNode, "modulemd.data.license.module"); err != nil {
				return c, err
			}
		}
		if contentNode, ok := mappingGet(node, "content"); ok {
			if c.licenses.Content, err = scalarSet(contentNode, "modulemd.data.license.content"); err != nil {
				return c, err
			}
		}
	}

	c.xmdValue = xmd.String("")
	if node, ok := mappingGet(data, "xmd"); ok {
		if c.xmdValue, err = xmdVariant(node, "modulemd.data.xmd"); err != nil {
			return c, err
		}
	}

	if node, ok := mappingGet(data, "references"); ok {
		if v, ok := mappingGet(node, "community"); ok {
			if c.references.Community, err = scalarString(v, "modulemd.data.references.community"); err != nil {
				return c, err
			}
		}
		if v, ok := mappingGet(node, "documentation"); ok {
			if c.references.Documentation, err = scalarString(v, "modulemd.data.references.documentation"); err != nil {
				return c, err
			}
		}
		if v, ok := mappingGet(node, "tracker"); ok {
			if c.references.Tracker, err = scalarString(v, "modulemd.data.references.tracker"); err != nil {
				return c, err
			}
		}
	}

	c.profiles = document.ProfileMap{}
	if node, ok := mappingGet(data, "profiles"); ok {
		if node.Kind != yaml.MappingNode {
			return c, mderrors.New(mderrors.InvalidFieldValue, "modulemd.data.profiles: expected a mapping")
		}
		for i := 0; i+1 < len(node.Content); i += 2 {
			profileName := node.Content[i].Value
			profileNode := node.Content[i+1]
			p := document.NewProfile()
			path := fmt.Sprintf("modulemd.data.profiles[%s]", profileName)
			if v, ok := mappingGet(profileNode, "description"); ok {
				if p.Description, err = scalarString(v, path+".description"); err != nil {
					return c, err
				}
			}
			if v, ok := mappingGet(profileNode, "rpms"); ok {
				if p.RPMs, err = scalarSet(v, path+".rpms"); err != nil {
					return c, err
				}
			}
			c.profiles[profileName] = p
		}
	}

	c.api = document.StringSet{}
	if node, ok := mappingGet(data, "api"); ok {
		if rpms, ok := mappingGet(node, "rpms"); ok {
			if c.api, err = scalarSet(rpms, "modulemd.data.api.rpms"); err != nil {
				return c, err
			}
		}
	}

	c.filter = document.StringSet{}
	if node, ok := mappingGet(data, "filter"); ok {
		if rpms, ok := mappingGet(node, "rpms"); ok {
			if c.filter, err = scalarSet(rpms, "modulemd.data.filter.rpms"); err != nil {
				return c, err
			}
		}
	}

	c.buildopts = document.NewBuildopts()
	if node, ok := mappingGet(data, "buildopts"); ok {
		if rpmsNode, ok := mappingGet(node, "rpms"); ok {
			if macros, ok := mappingGet(rpmsNode, "macros"); ok {
				if c.buildopts.RPMMacros, err = scalarString(macros, "modulemd.data.buildopts.rpms.macros"); err != nil {
					return c, err
				}
			}
			if whitelist, ok := mappingGet(rpmsNode, "whitelist"); ok {
				if c.buildopts.RPMWhitelist, err = scalarSet(whitelist, "modulemd.data.buildopts.rpms.whitelist"); err != nil {
					return c, err
				}
			}
		}
	}

	c.rpmComponents = document.ComponentRpmMap{}
	c.moduleComponents = document.ComponentModuleMap{}
	if node, ok := mappingGet(data, "components"); ok {
		if rpms, ok := mappingGet(node, "rpms"); ok {
			if rpms.Kind != yaml.MappingNode {
				return c, mderrors.New(mderrors.InvalidFieldValue, "modulemd.data.components.rpms: expected a mapping")
			}
			for i := 0; i+1 < len(rpms.Content); i += 2 {
				key := rpms.Content[i].Value
				comp, err := parseComponentRpm(key, rpms.Content[i+1])
				if err != nil {
					return c, err
				}
				c.rpmComponents[key] = comp
			}
		}
		if modules, ok := mappingGet(node, "modules"); ok {
			if modules.Kind != yaml.MappingNode {
				return c, mderrors.New(mderrors.InvalidFieldValue, "modulemd.data.components.modules: expected a mapping")
			}
			for i := 0; i+1 < len(modules.Content); i += 2 {
				key := modules.Content[i].Value
				comp, err := parseComponentModule(key, modules.Content[i+1])
				if err != nil {
					return c, err
				}
				c.moduleComponents[key] = comp
			}
		}
	}

	c.artifacts = document.StringSet{}
	if node, ok := mappingGet(data, "artifacts"); ok {
		if rpms, ok := mappingGet(node, "rpms"); ok {
			if c.artifacts, err = scalarSet(rpms, "modulemd.data.artifacts.rpms"); err != nil {
				return c, err
			}
		}
	}

	c.serviceLevels = map[string]document.ServiceLevel{}
	if node, ok := mappingGet(data, "servicelevels"); ok {
		if node.Kind != yaml.MappingNode {
			return c, mderrors.New(mderrors.InvalidFieldValue, "modulemd.data.servicelevels: expected a mapping")
		}
		for i := 0; i+1 < len(node.Content); i += 2 {
			slName := node.Content[i].Value
			sl := document.NewServiceLevel(slName)
			if eolVal, ok := mappingGet(node.Content[i+1], "eol"); ok {
				if sl.EOL, err = eolDate(eolVal, fmt.Sprintf("modulemd.data.servicelevels[%s].eol", slName)); err != nil {
					return c, err
				}
			}
			c.serviceLevels[slName] = sl
		}
	}

	return c, nil
}

func parseComponentRpm(name string, node *yaml.Node) (document.ComponentRpm, error) {
	c := document.NewComponentRpm(name, "")
	path := fmt.Sprintf("modulemd.data.components.rpms[%s]", name)
	var err error
	if v, ok := mappingGet(node, "rationale"); ok {
		if c.Rationale, err = scalarString(v, path+".rationale"); err != nil {
			return c, err
		}
	}
	if v, ok := mappingGet(node, "repository"); ok {
		if c.Repository, err = scalarString(v, path+".repository"); err != nil {
			return c, err
		}
	}
	if v, ok := mappingGet(node, "ref"); ok {
		if c.Ref, err = scalarString(v, path+".ref"); err != nil {
			return c, err
		}
	}
	if v, ok := mappingGet(node, "cache"); ok {
		if c.Cache, err = scalarString(v, path+".cache"); err != nil {
			return c, err
		}
	}
	if v, ok := mappingGet(node, "buildorder"); ok {
		if c.Buildorder, err = scalarInt(v, path+".buildorder"); err != nil {
			return c, err
		}
	}
	if v, ok := mappingGet(node, "buildroot"); ok {
		if c.Buildroot, err = scalarString(v, path+".buildroot"); err != nil {
			return c, err
		}
	}
	if v, ok := mappingGet(node, "srpm-buildroot"); ok {
		if c.SRPMBuildroot, err = scalarString(v, path+".srpm-buildroot"); err != nil {
			return c, err
		}
	}
	if v, ok := mappingGet(node, "arches"); ok {
		if c.Arches, err = scalarSet(v, path+".arches"); err != nil {
			return c, err
		}
	}
	if v, ok := mappingGet(node, "multilib_arches"); ok {
		if c.MultilibArches, err = scalarSet(v, path+".multilib_arches"); err != nil {
			return c, err
		}
	}
	return c, nil
}

func parseComponentModule(name string, node *yaml.Node) (document.ComponentModule, error) {
	c := document.NewComponentModule(name, "")
	path := fmt.Sprintf("modulemd.data.components.modules[%s]", name)
	var err error
	if v, ok := mappingGet(node, "rationale"); ok {
		if c.Rationale, err = scalarString(v, path+".rationale"); err != nil {
			return c, err
		}
	}
	if v, ok := mappingGet(node, "repository"); ok {
		if c.Repository, err = scalarString(v, path+".repository"); err != nil {
			return c, err
		}
	}
	if v, ok := mappingGet(node, "ref"); ok {
		if c.Ref, err = scalarString(v, path+".ref"); err != nil {
			return c, err
		}
	}
	if v, ok := mappingGet(node, "buildorder"); ok {
		if c.Buildorder, err = scalarInt(v, path+".buildorder"); err != nil {
			return c, err
		}
	}
	if v, ok := mappingGet(node, "buildroot"); ok {
		if c.Buildroot, err = scalarString(v, path+".buildroot"); err != nil {
			return c, err
		}
	}
	return c, nil
}

func applyStreamCommon(c streamCommon, name, stream, context, arch *string, buildVersion *uint64,
	summary, description *string, licenses *document.Licenses, xmdOut *xmd.Variant,
	references *document.References, profiles *document.ProfileMap,
	api, filter *document.StringSet, buildopts *document.Buildopts,
	rpmComponents *document.ComponentRpmMap, moduleComponents *document.ComponentModuleMap,
	artifacts *document.StringSet, serviceLevels *map[string]document.ServiceLevel) {
	*name = c.name
	*stream = c.stream
	*context = c.context
	*arch = c.arch
	*buildVersion = c.buildVersion
	*summary = c.summary
	*description = c.description
	*licenses = c.licenses
	*xmdOut = c.xmdValue
	*references = c.references
	*profiles = c.profiles
	*api = c.api
	*filter = c.filter
	*buildopts = c.buildopts
	*rpmComponents = c.rpmComponents
	*moduleComponents = c.moduleComponents
	*artifacts = c.artifacts
	*serviceLevels = c.serviceLevels
}

// parseModuleStream dispatches to the version-specific parser for a
// modulemd subdocument's data mapping.
func parseModuleStream(data *yaml.Node, version uint64, strict bool) (document.ModuleStream, error) {
	switch version {
	case 1:
		return parseStreamV1(data, strict)
	case 2:
		return parseStreamV2(data, strict)
	default:
		return nil, mderrors.Newf(mderrors.UnknownVersion, "modulemd: unsupported version %d", version)
	}
}

// parseStreamV1 decodes a modulemd v1 data mapping.
func parseStreamV1(data *yaml.Node, strict bool) (*document.StreamV1, error) {
	if err := checkUnknownKeys(data, v1StreamKeys, strict, "modulemd.data"); err != nil {
		return nil, err
	}
	common, err := parseStreamCommon(data)
	if err != nil {
		return nil, err
	}
	s := document.NewStreamV1()
	applyStreamCommon(common, &s.ModuleName, &s.Stream, &s.BuildContext, &s.Arch, &s.BuildVersion,
		&s.Summary, &s.Description, &s.Licenses, &s.XMD, &s.References, &s.Profiles,
		&s.API, &s.Filter, &s.Buildopts, &s.RpmComponents, &s.ModuleComponents,
		&s.Artifacts, &s.ServiceLevels)

	if node, ok := mappingGet(data, "buildrequires"); ok {
		if s.BuildRequires, err = stringSetMap(node, "modulemd.data.buildrequires"); err != nil {
			return nil, err
		}
	}
	if node, ok := mappingGet(data, "requires"); ok {
		if s.Requires, err = stringSetMap(node, "modulemd.data.requires"); err != nil {
			return nil, err
		}
	}
	if node, ok := mappingGet(data, "eol"); ok {
		str, err := scalarString(node, "modulemd.data.eol")
		if err != nil {
			return nil, err
		}
		if _, err := document.ParseEOLDate(str); err != nil {
			return nil, mderrors.Wrap(mderrors.InvalidFieldValue, "modulemd.data.eol: invalid date", err)
		}
		s.EOL = &str
	}

	return s, nil
}

// parseStreamV2 decodes a modulemd v2 data mapping.
func parseStreamV2(data *yaml.Node, strict bool) (*document.StreamV2, error) {
	if err := checkUnknownKeys(data, v2StreamKeys, strict, "modulemd.data"); err != nil {
		return nil, err
	}
	common, err := parseStreamCommon(data)
	if err != nil {
		return nil, err
	}
	s := document.NewStreamV2()
	applyStreamCommon(common, &s.ModuleName, &s.Stream, &s.BuildContext, &s.Arch, &s.BuildVersion,
		&s.Summary, &s.Description, &s.Licenses, &s.XMD, &s.References, &s.Profiles,
		&s.API, &s.Filter, &s.Buildopts, &s.RpmComponents, &s.ModuleComponents,
		&s.Artifacts, &s.ServiceLevels)

	if node, ok := mappingGet(data, "dependencies"); ok {
		if node.Kind != yaml.SequenceNode {
			return nil, mderrors.New(mderrors.InvalidFieldValue, "modulemd.data.dependencies: expected a sequence")
		}
		deps := make([]document.Dependencies, 0, len(node.Content))
		for i, item := range node.Content {
			dep := document.NewDependencies()
			path := fmt.Sprintf("modulemd.data.dependencies[%d]", i)
			if bt, ok := mappingGet(item, "buildrequires"); ok {
				if dep.BuildtimeStreams, err = stringSetMap(bt, path+".buildrequires"); err != nil {
					return nil, err
				}
			}
			if rt, ok := mappingGet(item, "requires"); ok {
				if dep.RuntimeStreams, err = stringSetMap(rt, path+".requires"); err != nil {
					return nil, err
				}
			}
			deps = append(deps, dep)
		}
		s.Dependencies = deps
	}

	return s, nil
}
