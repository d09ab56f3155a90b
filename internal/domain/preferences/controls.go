package preferences

import "strings"

type themeCopy struct {
	light, dark, toLight, toDark string
}

var themeLabels = map[string]themeCopy{
	"en": {light: "Light", dark: "Dark", toLight: "Switch to light theme", toDark: "Switch to dark theme"},
	"uk": {light: "Світла", dark: "Темна", toLight: "Перемкнути на світлу тему", toDark: "Перемкнути на темну тему"},
	"ru": {light: "Светлая", dark: "Тёмная", toLight: "Переключить на светлую тему", toDark: "Переключить на тёмную тему"},
}

// ThemeToggle describes the theme switch button for the current theme.
type ThemeToggle struct {
	Pressed   bool   `json:"pressed"`
	Label     string `json:"label"`
	Icon      string `json:"icon"`
	AriaLabel string `json:"ariaLabel"`
}

func ToggleFor(theme Theme, lang string) ThemeToggle {
	labels, ok := themeLabels[lang]
	if !ok {
		labels = themeLabels["uk"]
	}
	if theme == ThemeDark {
		return ThemeToggle{Pressed: true, Label: labels.dark, Icon: "☾", AriaLabel: labels.toLight}
	}
	return ThemeToggle{Label: labels.light, Icon: "☀", AriaLabel: labels.toDark}
}

// LangIcon is the short code shown on the language switcher.
func LangIcon(lang string) string {
	switch lang {
	case "en", "uk", "ru":
		return strings.ToUpper(lang)
	default:
		return "UK"
	}
}
