package dto

import (
	"time"

	"travelgo/internal/domain/preferences"
)

type Preferences struct {
	ClientID    string                  `json:"client_id"`
	Theme       string                  `json:"theme"`
	Lang        string                  `json:"lang"`
	LangIcon    string                  `json:"lang_icon"`
	ThemeToggle preferences.ThemeToggle `json:"theme_toggle"`
	UpdatedAt   *time.Time              `json:"updated_at,omitempty"`
}

func MapPreferences(p preferences.Preferences) Preferences {
	out := Preferences{
		ClientID:    p.ClientID,
		Theme:       string(p.Theme),
		Lang:        p.Lang,
		LangIcon:    preferences.LangIcon(p.Lang),
		ThemeToggle: preferences.ToggleFor(p.Theme, p.Lang),
	}
	if !p.UpdatedAt.IsZero() {
		updated := p.UpdatedAt
		out.UpdatedAt = &updated
	}
	return out
}
