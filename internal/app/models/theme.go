package models

import "cosmek-web/internal/pkg/constvars"

type Theme string

const (
	ThemeLight Theme = constvars.ThemeLight
	ThemeDark  Theme = constvars.ThemeDark
)

// ParseTheme maps raw into a known theme, ok is false for anything else.
func ParseTheme(raw string) (Theme, bool) {
	switch Theme(raw) {
	case ThemeLight:
		return ThemeLight, true
	case ThemeDark:
		return ThemeDark, true
	}
	return ThemeLight, false
}

func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

func (t Theme) IsDark() bool {
	return t == ThemeDark
}
