// Package i18n resolves the localization keys the HUD emits against the
// bundled language files.
package i18n

import (
	"embed"
	"encoding/json"
	"log/slog"
	"path"
	"strings"

	"golang.org/x/text/language"

	"github.com/KirkDiggler/token-action-hud-wng/internal/errors"
	"github.com/KirkDiggler/token-action-hud-wng/internal/host"
)

//go:embed lang/*.json
var langFS embed.FS

// supported lists bundled locales. The first entry is the fallback.
var supported = []language.Tag{
	language.English,
	language.German,
}

// Catalog is a flattened key to string table for one locale with English
// as fallback
type Catalog struct {
	tag      language.Tag
	messages map[string]string
	fallback map[string]string
}

var _ host.Localizer = (*Catalog)(nil)

// Load builds the catalog that best matches locale. Unknown or empty locales
// fall back to English.
func Load(locale string) (*Catalog, error) {
	tag := Match(locale)

	fallback, err := loadMessages(supported[0])
	if err != nil {
		return nil, err
	}

	messages := fallback
	if tag != supported[0] {
		messages, err = loadMessages(tag)
		if err != nil {
			return nil, err
		}
	}

	slog.Debug("loaded localization catalog", "locale", tag.String(), "keys", len(messages))

	return &Catalog{
		tag:      tag,
		messages: messages,
		fallback: fallback,
	}, nil
}

// Match returns the supported tag closest to locale
func Match(locale string) language.Tag {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return supported[0]
	}

	requested, err := language.Parse(locale)
	if err != nil {
		return supported[0]
	}

	matcher := language.NewMatcher(supported)
	_, index, confidence := matcher.Match(requested)
	if confidence == language.No {
		return supported[0]
	}
	return supported[index]
}

// Tag is the locale the catalog resolved to
func (c *Catalog) Tag() language.Tag {
	return c.tag
}

// Localize returns the string for key, or key itself when no bundled
// language defines it
func (c *Catalog) Localize(key string) string {
	if msg, ok := c.messages[key]; ok {
		return msg
	}
	if msg, ok := c.fallback[key]; ok {
		return msg
	}
	return key
}

func loadMessages(tag language.Tag) (map[string]string, error) {
	base, _ := tag.Base()
	file := path.Join("lang", base.String()+".json")

	data, err := langFS.ReadFile(file)
	if err != nil {
		return nil, errors.NotFoundf("no language file for %s", tag)
	}

	var tree map[string]any
	if err := json.Unmarshal(data, &tree); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to parse "+file)
	}

	messages := make(map[string]string)
	flatten("", tree, messages)
	return messages, nil
}

func flatten(prefix string, node map[string]any, out map[string]string) {
	for key, value := range node {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}
		switch v := value.(type) {
		case string:
			out[full] = v
		case map[string]any:
			flatten(full, v, out)
		}
	}
}
