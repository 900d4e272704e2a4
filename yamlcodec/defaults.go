package yamlcodec

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"modulemd/document"
	"modulemd/mderrors"
)

var defaultsKeys = map[string]bool{
	"module": true, "stream": true, "profiles": true, "intents": true, "modified": true,
}

// parseDefaults decodes a modulemd-defaults data mapping.
func parseDefaults(data *yaml.Node, version uint64, strict bool) (*document.Defaults, error) {
	if version != 1 {
		return nil, mderrors.Newf(mderrors.UnknownVersion, "modulemd-defaults: unsupported version %d", version)
	}
	if err := checkUnknownKeys(data, defaultsKeys, strict, "modulemd-defaults.data"); err != nil {
		return nil, err
	}

	var moduleName string
	if node, ok := mappingGet(data, "module"); ok {
		var err error
		if moduleName, err = scalarString(node, "modulemd-defaults.data.module"); err != nil {
			return nil, err
		}
	}
	d := document.NewDefaults(moduleName)

	if node, ok := mappingGet(data, "stream"); ok {
		var err error
		if d.DefaultStream, err = scalarString(node, "modulemd-defaults.data.stream"); err != nil {
			return nil, err
		}
	}
	if node, ok := mappingGet(data, "modified"); ok {
		var err error
		if d.Modified, err = scalarUint(node, "modulemd-defaults.data.modified"); err != nil {
			return nil, err
		}
	}
	if node, ok := mappingGet(data, "profiles"); ok {
		m, err := profileDefaultsMap(node, "modulemd-defaults.data.profiles")
		if err != nil {
			return nil, err
		}
		d.ProfileDefaults = m
	}
	if node, ok := mappingGet(data, "intents"); ok {
		if node.Kind != yaml.MappingNode {
			return nil, mderrors.New(mderrors.InvalidFieldValue, "modulemd-defaults.data.intents: expected a mapping")
		}
		for i := 0; i+1 < len(node.Content); i += 2 {
			intentName := node.Content[i].Value
			intentNode := node.Content[i+1]
			path := fmt.Sprintf("modulemd-defaults.data.intents[%s]", intentName)
			var intent document.Intent
			if v, ok := mappingGet(intentNode, "stream"); ok {
				var err error
				if intent.DefaultStream, err = scalarString(v, path+".stream"); err != nil {
					return nil, err
				}
			}
			if v, ok := mappingGet(intentNode, "profiles"); ok {
				m, err := profileDefaultsMap(v, path+".profiles")
				if err != nil {
					return nil, err
				}
				intent.ProfileDefaults = m
			} else {
				intent.ProfileDefaults = document.StringSetMap{}
			}
			d.Intents[intentName] = intent
		}
	}

	return d, nil
}

func profileDefaultsMap(node *yaml.Node, path string) (document.StringSetMap, error) {
	return stringSetMap(node, path)
}

// emitDefaults builds the "data" mapping node for a Defaults document.
func emitDefaults(d *document.Defaults) *yaml.Node {
	pairs := []*yaml.Node{scalarNode("module"), scalarNode(d.ModuleName)}
	if d.DefaultStream != "" {
		pairs = append(pairs, scalarNode("stream"), scalarNode(d.DefaultStream))
	}
	if len(d.ProfileDefaults) > 0 {
		pairs = append(pairs, scalarNode("profiles"), stringSetMapNode(d.ProfileDefaults))
	}
	if len(d.Intents) > 0 {
		keys := sortedStringKeys(d.Intents)
		intentPairs := make([]*yaml.Node, 0, len(keys)*2)
		for _, name := range keys {
			intent := d.Intents[name]
			body := []*yaml.Node{}
			if intent.DefaultStream != "" {
				body = append(body, scalarNode("stream"), scalarNode(intent.DefaultStream))
			}
			if len(intent.ProfileDefaults) > 0 {
				body = append(body, scalarNode("profiles"), stringSetMapNode(intent.ProfileDefaults))
			}
			intentPairs = append(intentPairs, scalarNode(name), mappingNode(body...))
		}
		pairs = append(pairs, scalarNode("intents"), mappingNode(intentPairs...))
	}
	pairs = append(pairs, scalarNode("modified"), uintNode(d.Modified))
	return mappingNode(pairs...)
}
