package yamlcodec

import (
	"bytes"

	"gopkg.in/yaml.v3"
)

// Failure captures one subdocument that failed to parse: the original
// YAML text it was re-encoded from (for display to a user deciding
// which repository is at fault) and the error that rejected it.
type Failure struct {
	YAMLText string
	Err      error
}

// newFailure re-encodes root (best-effort; a re-encode error just
// yields an empty YAMLText rather than hiding the original error) and
// builds a Failure.
func newFailure(root *yaml.Node, err error) Failure {
	return Failure{YAMLText: reencode(root), Err: err}
}

func reencode(node *yaml.Node) string {
	if node == nil {
		return ""
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if encErr := enc.Encode(node); encErr != nil {
		return ""
	}
	_ = enc.Close()
	return buf.String()
}
