package i18n

import (
	"encoding/json"
	"fmt"
	"regexp"
)

// Copy is the static localized-copy document: UI region -> language -> key -> template.
type Copy struct {
	UI     map[string]map[string]Block `json:"ui"`
	Labels Labels                      `json:"labels"`
}

type Labels struct {
	Badges map[string]Text `json:"badges"`
}

// Block holds the templates of one UI region in one language. Values are usually strings,
// some keys (option lists) hold arrays.
type Block map[string]json.RawMessage

// Block returns the region copy for lang, or nil when the document has none.
func (c *Copy) Block(region, lang string) Block {
	if c == nil || c.UI == nil {
		return nil
	}
	byLang, ok := c.UI[region]
	if !ok {
		return nil
	}
	return byLang[lang]
}

// Badge returns the localized badge label, falling back to the key itself.
func (c *Copy) Badge(key, lang string) string {
	if c != nil && c.Labels.Badges != nil {
		if label := c.Labels.Badges[key].Get(lang); label != "" {
			return label
		}
	}
	return key
}

// String returns the template stored under key or fallback when absent or not a string.
func (b Block) String(key, fallback string) string {
	raw, ok := b[key]
	if !ok {
		return fallback
	}
	var value string
	if err := json.Unmarshal(raw, &value); err != nil || value == "" {
		return fallback
	}
	return value
}

// Strings returns the list stored under key or fallback.
func (b Block) Strings(key string, fallback []string) []string {
	raw, ok := b[key]
	if !ok {
		return fallback
	}
	var values []string
	if err := json.Unmarshal(raw, &values); err != nil || len(values) == 0 {
		return fallback
	}
	return values
}

// Map returns the string map stored under key or fallback.
func (b Block) Map(key string, fallback map[string]string) map[string]string {
	raw, ok := b[key]
	if !ok {
		return fallback
	}
	var values map[string]string
	if err := json.Unmarshal(raw, &values); err != nil || len(values) == 0 {
		return fallback
	}
	return values
}

var placeholder = regexp.MustCompile(`\{(\w+)\}`)

// Interpolate substitutes {name} placeholders from params. Unknown names become "".
func Interpolate(template string, params map[string]any) string {
	if template == "" {
		return ""
	}
	return placeholder.ReplaceAllStringFunc(template, func(match string) string {
		key := match[1 : len(match)-1]
		value, ok := params[key]
		if !ok || value == nil {
			return ""
		}
		return fmt.Sprint(value)
	})
}
