package document

import "strings"

// Dependencies is one entry of a v2 stream's ordered dependency list: two
// module -> set<stream> tables. A stream prefixed "-" means "excluded".
type Dependencies struct {
	BuildtimeStreams StringSetMap
	RuntimeStreams   StringSetMap
}

// NewDependencies builds an empty Dependencies record.
func NewDependencies() Dependencies {
	return Dependencies{BuildtimeStreams: StringSetMap{}, RuntimeStreams: StringSetMap{}}
}

// AddBuildtimeStream records module as a build-time dependency on stream.
func (d *Dependencies) AddBuildtimeStream(module, stream string) {
	if d.BuildtimeStreams == nil {
		d.BuildtimeStreams = StringSetMap{}
	}
	if d.BuildtimeStreams[module] == nil {
		d.BuildtimeStreams[module] = StringSet{}
	}
	d.BuildtimeStreams[module].Add(stream)
}

// AddRuntimeStream records module as a runtime dependency on stream.
func (d *Dependencies) AddRuntimeStream(module, stream string) {
	if d.RuntimeStreams == nil {
		d.RuntimeStreams = StringSetMap{}
	}
	if d.RuntimeStreams[module] == nil {
		d.RuntimeStreams[module] = StringSet{}
	}
	d.RuntimeStreams[module].Add(stream)
}

// IsExcludedStream reports whether stream is an exclusion marker ("-"
// prefixed).
func IsExcludedStream(stream string) bool {
	return strings.HasPrefix(stream, "-")
}

// Copy returns an independent copy of d.
func (d Dependencies) Copy() Dependencies {
	return Dependencies{
		BuildtimeStreams: d.BuildtimeStreams.Copy(),
		RuntimeStreams:   d.RuntimeStreams.Copy(),
	}
}

// Equal reports structural equality.
func (d Dependencies) Equal(other Dependencies) bool {
	return d.BuildtimeStreams.Equal(other.BuildtimeStreams) &&
		d.RuntimeStreams.Equal(other.RuntimeStreams)
}

// DependenciesEqual reports whether two ordered Dependencies lists are
// structurally equal, position by position.
func DependenciesEqual(a, b []Dependencies) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// CopyDependenciesList returns an independent deep copy of a Dependencies
// slice, preserving order.
func CopyDependenciesList(list []Dependencies) []Dependencies {
	if list == nil {
		return nil
	}
	cp := make([]Dependencies, len(list))
	for i, d := range list {
		cp[i] = d.Copy()
	}
	return cp
}
