package yamlcodec

import (
	"gopkg.in/yaml.v3"

	"modulemd/document"
)

// emitStreamV1 builds the "data" mapping node for a v1 stream in
// canonical key order.
func emitStreamV1(s *document.StreamV1) *yaml.Node {
	pairs := emitStreamCommonPrefix(s.ModuleName, s.Stream, s.BuildVersion, s.BuildContext, s.Arch, s.Summary, s.Description)
	pairs = append(pairs, emitServiceLevelsAndEOL(s.ServiceLevels, s.EOL)...)
	pairs = append(pairs, scalarNode("license"), emitLicense(s.Licenses))
	pairs = append(pairs, scalarNode("xmd"), xmdNode(s.XMD))
	if len(s.BuildRequires) > 0 {
		pairs = append(pairs, scalarNode("buildrequires"), stringSetMapNode(s.BuildRequires))
	}
	if len(s.Requires) > 0 {
		pairs = append(pairs, scalarNode("requires"), stringSetMapNode(s.Requires))
	}
	pairs = append(pairs, emitStreamCommonSuffix(s.References, s.Profiles, s.API, s.Filter, s.Buildopts, s.RpmComponents, s.ModuleComponents, s.Artifacts)...)
	return mappingNode(pairs...)
}

// emitStreamV2 builds the "data" mapping node for a v2 stream in
// canonical key order.
func emitStreamV2(s *document.StreamV2) *yaml.Node {
	pairs := emitStreamCommonPrefix(s.ModuleName, s.Stream, s.BuildVersion, s.BuildContext, s.Arch, s.Summary, s.Description)
	pairs = append(pairs, emitServiceLevelsAndEOL(s.ServiceLevels, nil)...)
	pairs = append(pairs, scalarNode("license"), emitLicense(s.Licenses))
	pairs = append(pairs, scalarNode("xmd"), xmdNode(s.XMD))
	if len(s.Dependencies) > 0 {
		items := make([]*yaml.Node, len(s.Dependencies))
		for i, dep := range s.Dependencies {
			depPairs := make([]*yaml.Node, 0, 4)
			if len(dep.BuildtimeStreams) > 0 {
				depPairs = append(depPairs, scalarNode("buildrequires"), stringSetMapNode(dep.BuildtimeStreams))
			}
			if len(dep.RuntimeStreams) > 0 {
				depPairs = append(depPairs, scalarNode("requires"), stringSetMapNode(dep.RuntimeStreams))
			}
			items[i] = mappingNode(depPairs...)
		}
		pairs = append(pairs, scalarNode("dependencies"), blockSequenceNode(items...))
	}
	pairs = append(pairs, emitStreamCommonSuffix(s.References, s.Profiles, s.API, s.Filter, s.Buildopts, s.RpmComponents, s.ModuleComponents, s.Artifacts)...)
	return mappingNode(pairs...)
}

func emitStreamCommonPrefix(name, stream string, buildVersion uint64, context, arch, summary, description string) []*yaml.Node {
	pairs := []*yaml.Node{
		scalarNode("name"), scalarNode(name),
		scalarNode("stream"), scalarNode(stream),
	}
	if buildVersion != 0 {
		pairs = append(pairs, scalarNode("version"), uintNode(buildVersion))
	}
	if context != "" {
		pairs = append(pairs, scalarNode("context"), scalarNode(context))
	}
	if arch != "" {
		pairs = append(pairs, scalarNode("arch"), scalarNode(arch))
	}
	pairs = append(pairs,
		scalarNode("summary"), scalarNode(summary),
		scalarNode("description"), foldedScalarNode(description),
	)
	return pairs
}

func emitServiceLevelsAndEOL(levels map[string]document.ServiceLevel, eol *string) []*yaml.Node {
	var pairs []*yaml.Node
	if len(levels) > 0 {
		keys := sortedStringKeys(levels)
		slPairs := make([]*yaml.Node, 0, len(keys)*2)
		for _, name := range keys {
			slPairs = append(slPairs, scalarNode(name), mappingNode(scalarNode("eol"), eolNode(levels[name].EOL)))
		}
		pairs = append(pairs, scalarNode("servicelevels"), mappingNode(slPairs...))
	}
	if eol != nil {
		pairs = append(pairs, scalarNode("eol"), scalarNode(*eol))
	}
	return pairs
}

func emitLicense(l document.Licenses) *yaml.Node {
	pairs := []*yaml.Node{scalarNode("module"), setNode(l.Module)}
	if len(l.Content) > 0 {
		pairs = append(pairs, scalarNode("content"), setNode(l.Content))
	}
	return mappingNode(pairs...)
}

func emitStreamCommonSuffix(refs document.References, profiles document.ProfileMap, api, filter document.StringSet,
	buildopts document.Buildopts, rpmComponents document.ComponentRpmMap, moduleComponents document.ComponentModuleMap,
	artifacts document.StringSet) []*yaml.Node {
	var pairs []*yaml.Node

	if !refs.IsZero() {
		refPairs := make([]*yaml.Node, 0, 6)
		if refs.Community != "" {
			refPairs = append(refPairs, scalarNode("community"), scalarNode(refs.Community))
		}
		if refs.Documentation != "" {
			refPairs = append(refPairs, scalarNode("documentation"), scalarNode(refs.Documentation))
		}
		if refs.Tracker != "" {
			refPairs = append(refPairs, scalarNode("tracker"), scalarNode(refs.Tracker))
		}
		pairs = append(pairs, scalarNode("references"), mappingNode(refPairs...))
	}

	if len(profiles) > 0 {
		keys := sortedStringKeys(profiles)
		profPairs := make([]*yaml.Node, 0, len(keys)*2)
		for _, name := range keys {
			p := profiles[name]
			body := []*yaml.Node{}
			if p.Description != "" {
				body = append(body, scalarNode("description"), scalarNode(p.Description))
			}
			body = append(body, scalarNode("rpms"), setNode(p.RPMs))
			profPairs = append(profPairs, scalarNode(name), mappingNode(body...))
		}
		pairs = append(pairs, scalarNode("profiles"), mappingNode(profPairs...))
	}

	if len(api) > 0 {
		pairs = append(pairs, scalarNode("api"), mappingNode(scalarNode("rpms"), setNode(api)))
	}
	if len(filter) > 0 {
		pairs = append(pairs, scalarNode("filter"), mappingNode(scalarNode("rpms"), setNode(filter)))
	}
	if !buildopts.IsZero() {
		rpmsPairs := []*yaml.Node{}
		if buildopts.RPMMacros != "" {
			rpmsPairs = append(rpmsPairs, scalarNode("macros"), foldedScalarNode(buildopts.RPMMacros))
		}
		if len(buildopts.RPMWhitelist) > 0 {
			rpmsPairs = append(rpmsPairs, scalarNode("whitelist"), setNode(buildopts.RPMWhitelist))
		}
		pairs = append(pairs, scalarNode("buildopts"), mappingNode(scalarNode("rpms"), mappingNode(rpmsPairs...)))
	}

	if len(rpmComponents) > 0 || len(moduleComponents) > 0 {
		compPairs := []*yaml.Node{}
		if len(rpmComponents) > 0 {
			keys := sortedStringKeys(rpmComponents)
			rpmPairs := make([]*yaml.Node, 0, len(keys)*2)
			for _, key := range keys {
				rpmPairs = append(rpmPairs, scalarNode(key), emitComponentRpm(rpmComponents[key]))
			}
			compPairs = append(compPairs, scalarNode("rpms"), mappingNode(rpmPairs...))
		}
		if len(moduleComponents) > 0 {
			keys := sortedStringKeys(moduleComponents)
			modPairs := make([]*yaml.Node, 0, len(keys)*2)
			for _, key := range keys {
				modPairs = append(modPairs, scalarNode(key), emitComponentModule(moduleComponents[key]))
			}
			compPairs = append(compPairs, scalarNode("modules"), mappingNode(modPairs...))
		}
		pairs = append(pairs, scalarNode("components"), mappingNode(compPairs...))
	}

	if len(artifacts) > 0 {
		pairs = append(pairs, scalarNode("artifacts"), mappingNode(scalarNode("rpms"), setNode(artifacts)))
	}

	return pairs
}

func emitComponentRpm(c document.ComponentRpm) *yaml.Node {
	pairs := []*yaml.Node{scalarNode("rationale"), scalarNode(c.Rationale)}
	if c.Repository != "" {
		pairs = append(pairs, scalarNode("repository"), scalarNode(c.Repository))
	}
	if c.Ref != "" {
		pairs = append(pairs, scalarNode("ref"), scalarNode(c.Ref))
	}
	if c.Cache != "" {
		pairs = append(pairs, scalarNode("cache"), scalarNode(c.Cache))
	}
	if c.Buildorder != 0 {
		pairs = append(pairs, scalarNode("buildorder"), intNode(c.Buildorder))
	}
	if c.Buildroot != "" {
		pairs = append(pairs, scalarNode("buildroot"), scalarNode(c.Buildroot))
	}
	if c.SRPMBuildroot != "" {
		pairs = append(pairs, scalarNode("srpm-buildroot"), scalarNode(c.SRPMBuildroot))
	}
	if len(c.Arches) > 0 {
		pairs = append(pairs, scalarNode("arches"), setNode(c.Arches))
	}
	if len(c.MultilibArches) > 0 {
		pairs = append(pairs, scalarNode("multilib_arches"), setNode(c.MultilibArches))
	}
	return mappingNode(pairs...)
}

func emitComponentModule(c document.ComponentModule) *yaml.Node {
	pairs := []*yaml.Node{scalarNode("rationale"), scalarNode(c.Rationale)}
	if c.Repository != "" {
		pairs = append(pairs, scalarNode("repository"), scalarNode(c.Repository))
	}
	if c.Ref != "" {
		pairs = append(pairs, scalarNode("ref"), scalarNode(c.Ref))
	}
	if c.Buildorder != 0 {
		pairs = append(pairs, scalarNode("buildorder"), intNode(c.Buildorder))
	}
	if c.Buildroot != "" {
		pairs = append(pairs, scalarNode("buildroot"), scalarNode(c.Buildroot))
	}
	return mappingNode(pairs...)
}
