package yamlcodec

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"modulemd/document"
	"modulemd/mderrors"
)

var translationKeys = map[string]bool{
	"module": true, "stream": true, "modified": true, "translations": true,
}

// parseTranslation decodes a modulemd-translations data mapping.
func parseTranslation(data *yaml.Node, version uint64, strict bool) (*document.Translation, error) {
	if version != 1 {
		return nil, mderrors.Newf(mderrors.UnknownVersion, "modulemd-translations: unsupported version %d", version)
	}
	if err := checkUnknownKeys(data, translationKeys, strict, "modulemd-translations.data"); err != nil {
		return nil, err
	}

	var moduleName, streamName string
	if node, ok := mappingGet(data, "module"); ok {
		var err error
		if moduleName, err = scalarString(node, "modulemd-translations.data.module"); err != nil {
			return nil, err
		}
	}
	if node, ok := mappingGet(data, "stream"); ok {
		var err error
		if streamName, err = scalarString(node, "modulemd-translations.data.stream"); err != nil {
			return nil, err
		}
	}
	t := document.NewTranslation(moduleName, streamName)

	if node, ok := mappingGet(data, "modified"); ok {
		var err error
		if t.Modified, err = scalarUint(node, "modulemd-translations.data.modified"); err != nil {
			return nil, err
		}
	}
	if node, ok := mappingGet(data, "translations"); ok {
		if node.Kind != yaml.MappingNode {
			return nil, mderrors.New(mderrors.InvalidFieldValue, "modulemd-translations.data.translations: expected a mapping")
		}
		for i := 0; i+1 < len(node.Content); i += 2 {
			locale := node.Content[i].Value
			localeNode := node.Content[i+1]
			path := fmt.Sprintf("modulemd-translations.data.translations[%s]", locale)
			var entry document.TranslationEntry
			if v, ok := mappingGet(localeNode, "summary"); ok {
				var err error
				if entry.Summary, err = scalarString(v, path+".summary"); err != nil {
					return nil, err
				}
			}
			if v, ok := mappingGet(localeNode, "description"); ok {
				var err error
				if entry.Description, err = scalarString(v, path+".description"); err != nil {
					return nil, err
				}
			}
			if v, ok := mappingGet(localeNode, "profiles"); ok {
				if v.Kind != yaml.MappingNode {
					return nil, mderrors.Newf(mderrors.InvalidFieldValue, "%s.profiles: expected a mapping", path)
				}
				entry.Profiles = make(map[string]string, len(v.Content)/2)
				for j := 0; j+1 < len(v.Content); j += 2 {
					profName := v.Content[j].Value
					desc, err := scalarString(v.Content[j+1], fmt.Sprintf("%s.profiles[%s]", path, profName))
					if err != nil {
						return nil, err
					}
					entry.Profiles[profName] = desc
				}
			}
			t.Translations[locale] = entry
		}
	}

	return t, nil
}

// emitTranslation builds the "data" mapping node for a Translation document.
func emitTranslation(t *document.Translation) *yaml.Node {
	pairs := []*yaml.Node{
		scalarNode("module"), scalarNode(t.ModuleName),
		scalarNode("stream"), scalarNode(t.StreamName),
		scalarNode("modified"), uintNode(t.Modified),
	}
	if len(t.Translations) > 0 {
		keys := sortedStringKeys(t.Translations)
		localePairs := make([]*yaml.Node, 0, len(keys)*2)
		for _, locale := range keys {
			entry := t.Translations[locale]
			body := []*yaml.Node{}
			if entry.Summary != "" {
				body = append(body, scalarNode("summary"), scalarNode(entry.Summary))
			}
			if entry.Description != "" {
				body = append(body, scalarNode("description"), foldedScalarNode(entry.Description))
			}
			if len(entry.Profiles) > 0 {
				profKeys := sortedStringKeys(entry.Profiles)
				profPairs := make([]*yaml.Node, 0, len(profKeys)*2)
				for _, name := range profKeys {
					profPairs = append(profPairs, scalarNode(name), scalarNode(entry.Profiles[name]))
				}
				body = append(body, scalarNode("profiles"), mappingNode(profPairs...))
			}
			localePairs = append(localePairs, scalarNode(locale), mappingNode(body...))
		}
		pairs = append(pairs, scalarNode("translations"), mappingNode(localePairs...))
	}
	return mappingNode(pairs...)
}
