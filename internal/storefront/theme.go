package storefront

import (
	"fmt"
	"strings"

	apperrors "github.com/alexisbeaulieu97/atelier/pkg/errors"
)

// ThemeMode is the two-valued presentation switch.
type ThemeMode int

const (
	ThemeLight ThemeMode = iota
	ThemeDark
)

// Toggle returns the opposite mode.
func (m ThemeMode) Toggle() ThemeMode {
	if m == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// IsDark reports whether m is the dark mode.
func (m ThemeMode) IsDark() bool {
	return m == ThemeDark
}

func (m ThemeMode) String() string {
	if m == ThemeDark {
		return "dark"
	}
	return "light"
}

// ParseThemeMode accepts "light" or "dark" in any case.
func ParseThemeMode(s string) (ThemeMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "light", "":
		return ThemeLight, nil
	case "dark":
		return ThemeDark, nil
	default:
		return ThemeLight, apperrors.NewValidationError("theme", fmt.Sprintf("unknown theme %q", s), nil)
	}
}
