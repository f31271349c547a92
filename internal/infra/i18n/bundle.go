// Package i18n embeds the translation dictionaries and resolves dotted
// translation keys against them.
package i18n

import (
	"embed"
	"encoding/json"
	"strings"

	"agriproxy/internal/domain/entity"

	"github.com/pkg/errors"
)

//go:embed locales/*.json
var localeFS embed.FS

// Bundle holds the parsed translation tables for every supported language.
type Bundle struct {
	tables map[entity.Language]map[string]any
}

// NewBundle parses the embedded dictionaries. Every supported language
// must have a dictionary; a missing or malformed file is a build defect,
// not a runtime condition.
func NewBundle() (*Bundle, error) {
	tables := make(map[entity.Language]map[string]any)

	for _, language := range []entity.Language{entity.LanguageEnglish, entity.LanguageHindi} {
		raw, err := localeFS.ReadFile("locales/" + language.String() + ".json")
		if err != nil {
			return nil, errors.Wrapf(err, "missing dictionary for %s", language)
		}

		var table map[string]any
		if err := json.Unmarshal(raw, &table); err != nil {
			return nil, errors.Wrapf(err, "malformed dictionary for %s", language)
		}

		tables[language] = table
	}

	return &Bundle{tables: tables}, nil
}

// Lookup resolves a dotted key such as "soilTesting.status.completed"
// in the given language's table. The second return is false when the
// path is absent or does not end at a string.
func (b *Bundle) Lookup(language entity.Language, key string) (string, bool) {
	table, ok := b.tables[language]
	if !ok {
		return "", false
	}

	var current any = table
	for _, segment := range strings.Split(key, ".") {
		node, ok := current.(map[string]any)
		if !ok {
			return "", false
		}
		current, ok = node[segment]
		if !ok {
			return "", false
		}
	}

	text, ok := current.(string)

	return text, ok
}
