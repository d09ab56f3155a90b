package preferences

import (
	"context"
	"errors"
	"strings"
	"time"

	"travelgo/internal/domain/i18n"
)

var (
	ErrNotFound     = errors.New("preferences: not found")
	ErrInvalidTheme = errors.New("preferences: unsupported theme")
	ErrInvalidLang  = errors.New("preferences: unsupported language")
)

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ParseTheme accepts "light" and "dark" only.
func ParseTheme(raw string) (Theme, error) {
	switch Theme(strings.ToLower(strings.TrimSpace(raw))) {
	case ThemeLight:
		return ThemeLight, nil
	case ThemeDark:
		return ThemeDark, nil
	default:
		return "", ErrInvalidTheme
	}
}

func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// Preferences is the per-client theme and language choice.
type Preferences struct {
	ClientID  string    `json:"clientId" bson:"_id"`
	Theme     Theme     `json:"theme" bson:"theme"`
	Lang      string    `json:"lang" bson:"lang"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updated_at"`
}

// Defaults are used for clients that never stored anything.
func Defaults(clientID string) Preferences {
	return Preferences{ClientID: clientID, Theme: ThemeLight, Lang: i18n.DefaultLang}
}

// Update applies optional theme and language changes and reports whether the language changed.
func (p *Preferences) Update(theme, lang string, now time.Time) (bool, error) {
	if theme != "" {
		parsed, err := ParseTheme(theme)
		if err != nil {
			return false, err
		}
		p.Theme = parsed
	}
	langChanged := false
	if lang != "" {
		if !i18n.IsSupported(lang) {
			return false, ErrInvalidLang
		}
		langChanged = lang != p.Lang
		p.Lang = lang
	}
	p.UpdatedAt = now.UTC()
	return langChanged, nil
}

type Store interface {
	Get(ctx context.Context, clientID string) (Preferences, error)
	Save(ctx context.Context, prefs Preferences) error
}

type LanguageChangedEvent struct {
	ClientID string    `json:"clientId"`
	Lang     string    `json:"lang"`
	At       time.Time `json:"at"`
}

func (e LanguageChangedEvent) EventName() string     { return "language.changed" }
func (e LanguageChangedEvent) AggregateID() string   { return e.ClientID }
func (e LanguageChangedEvent) OccurredAt() time.Time { return e.At }
