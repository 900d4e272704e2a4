// Package document implements the versioned modulemd document types:
// ModuleStream (v1, v2), Defaults (v1), and Translation, plus the value
// types they're built from (service levels, profiles, dependencies,
// components, buildopts).
package document

import (
	"strconv"
	"strings"
)

// NSVC is the primary identity of a built module stream: name, stream,
// version, and context. Context is omitted from the string form when
// empty.
type NSVC struct {
	Name    string
	Stream  string
	Version uint64
	Context string
}

// String renders the colon-joined "N:S:V:C" form.
func (n NSVC) String() string {
	var b strings.Builder
	b.WriteString(n.Name)
	b.WriteByte(':')
	b.WriteString(n.Stream)
	b.WriteByte(':')
	if n.Version != 0 {
		b.WriteString(strconv.FormatUint(n.Version, 10))
	}
	if n.Context != "" {
		b.WriteByte(':')
		b.WriteString(n.Context)
	}
	return b.String()
}

// Less orders NSVC values by name, then stream, then version descending
// (newest first), then context — the order Module.AllStreams uses.
func (n NSVC) Less(other NSVC) bool {
	if n.Name != other.Name {
		return n.Name < other.Name
	}
	if n.Stream != other.Stream {
		return n.Stream < other.Stream
	}
	if n.Version != other.Version {
		return n.Version > other.Version
	}
	return n.Context < other.Context
}

// Key identifies a stream within a module by (stream, version, context),
// the tuple ModuleIndex.add_module_stream replaces on match.
type Key struct {
	Stream  string
	Version uint64
	Context string
}
