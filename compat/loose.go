// Package compat offers a best-effort, loosely-typed reader for
// callers that only want the "modulemd" stream documents out of a YAML
// source and don't need the strict codec's key validation or failure
// bookkeeping — for example, a package-repository indexer skimming
// metadata it does not control.
package compat

import (
	"errors"
	"io"

	"github.com/go-viper/mapstructure/v2"
	"gopkg.in/yaml.v3"
)

// Stream is a loosely-typed view of a modulemd v1/v2 stream's data
// mapping. Fields absent from the source decode to their zero value;
// unknown fields are ignored.
type Stream struct {
	Name        string                 `mapstructure:"name"`
	StreamName  string                 `mapstructure:"stream"`
	Version     uint64                 `mapstructure:"version"`
	Context     string                 `mapstructure:"context"`
	Arch        string                 `mapstructure:"arch"`
	Summary     string                 `mapstructure:"summary"`
	Description string                 `mapstructure:"description"`
	Artifacts   Artifacts              `mapstructure:"artifacts"`
	Profiles    map[string]RpmProfiles `mapstructure:"profiles"`
}

// RpmProfiles is a profile's rpm list.
type RpmProfiles struct {
	Rpms []string `mapstructure:"rpms"`
}

// Artifacts is a stream's artifacts.rpms list.
type Artifacts struct {
	Rpms []string `mapstructure:"rpms"`
}

// Document is a loosely decoded "modulemd" subdocument: the root
// document/version discriminator plus its data mapping.
type Document struct {
	DocType string `mapstructure:"document"`
	Version int    `mapstructure:"version"`
	Data    Stream `mapstructure:"data"`
}

// Streams reads every "modulemd" subdocument from r, ignoring
// modulemd-defaults, modulemd-translations, and any subdocument that
// fails to decode at this loose level. It never validates field
// presence or value ranges; use the yamlcodec package when that
// matters.
func Streams(r io.Reader) ([]Document, error) {
	var docs []Document

	decoder := yaml.NewDecoder(r)
	for {
		var raw map[string]interface{}
		if err := decoder.Decode(&raw); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}

		if raw["document"] != "modulemd" {
			continue
		}

		var doc Document
		decoderConfig := &mapstructure.DecoderConfig{
			WeaklyTypedInput: true,
			Result:           &doc,
		}
		mapDecoder, err := mapstructure.NewDecoder(decoderConfig)
		if err != nil {
			return docs, err
		}
		if err := mapDecoder.Decode(raw); err != nil {
			continue
		}
		docs = append(docs, doc)
	}
	return docs, nil
}
