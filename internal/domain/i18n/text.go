package i18n

import (
	"encoding/json"
	"strings"
)

const DefaultLang = "uk"

var (
	Supported = []string{"uk", "en", "ru"}

	locales = map[string]string{
		"en": "en-GB",
		"uk": "uk-UA",
		"ru": "ru-RU",
	}
)

// Locale maps a language code to its BCP 47 locale, defaulting to the site language.
func Locale(lang string) string {
	if locale, ok := locales[lang]; ok {
		return locale
	}
	return locales[DefaultLang]
}

// IsSupported reports whether the site ships copy for lang.
func IsSupported(lang string) bool {
	for _, l := range Supported {
		if l == lang {
			return true
		}
	}
	return false
}

// Normalize lowercases lang and falls back to DefaultLang for unsupported values.
func Normalize(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if IsSupported(lang) {
		return lang
	}
	return DefaultLang
}

// Text is a per-language string. A plain JSON string is accepted and used for every language.
type Text map[string]string

const anyLang = "*"

func (t *Text) UnmarshalJSON(data []byte) error {
	var plain string
	if err := json.Unmarshal(data, &plain); err == nil {
		*t = Text{anyLang: plain}
		return nil
	}
	var byLang map[string]string
	if err := json.Unmarshal(data, &byLang); err != nil {
		return err
	}
	*t = Text(byLang)
	return nil
}

// Get resolves the text for lang: lang, then DefaultLang, then en.
func (t Text) Get(lang string) string {
	if len(t) == 0 {
		return ""
	}
	if v, ok := t[anyLang]; ok {
		return v
	}
	for _, key := range []string{lang, DefaultLang, "en"} {
		if v := t[key]; v != "" {
			return v
		}
	}
	return ""
}

// List is a per-language list of strings (program items, inclusions).
type List map[string][]string

func (l List) Get(lang string) []string {
	for _, key := range []string{lang, DefaultLang, "en"} {
		if v := l[key]; len(v) > 0 {
			return v
		}
	}
	return nil
}
