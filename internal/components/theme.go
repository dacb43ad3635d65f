package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/atelier/internal/storefront"
)

// ColourSet is a semantic colour slot: a fill, the text drawn on it and the
// border that outlines it.
type ColourSet struct {
	Base   lipgloss.AdaptiveColor
	OnBase lipgloss.AdaptiveColor
	Border lipgloss.AdaptiveColor
}

// Palette describes semantic colour slots used by components.
type Palette struct {
	Surface ColourSet // page background and body text
	Card    ColourSet // product cards
	Primary ColourSet // solid buttons, cart badge
	Stage   ColourSet // mannequin area
	Slot    ColourSet // worn garments on the mannequin
	Muted   ColourSet // secondary text, hints
	Danger  ColourSet // error banner, hotline icon
	Info    ColourSet
}

// BorderSet groups reusable border definitions.
type BorderSet struct {
	None    lipgloss.Border
	Normal  lipgloss.Border
	Rounded lipgloss.Border
	Thick   lipgloss.Border
	Dashed  lipgloss.Border
}

// TypographyScale contains semantic typography presets.
type TypographyScale struct {
	Base     lipgloss.Style
	Logo     lipgloss.Style
	Title    lipgloss.Style
	Body     lipgloss.Style
	Caption  lipgloss.Style
	Emphasis lipgloss.Style
}

// InputStyles describes default/focus styles for the search box.
type InputStyles struct {
	Default lipgloss.Style
	Focus   lipgloss.Style
}

// Theme represents the styling applied to every component of the store.
type Theme struct {
	Name       string
	Dark       bool
	Palette    Palette
	Borders    BorderSet
	Typography TypographyScale
	Input      InputStyles
}

type tone func(light, dark string) lipgloss.AdaptiveColor

// adaptive lets the terminal background decide.
func adaptive(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

func pinnedLight(light, _ string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: light}
}

func pinnedDark(_, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: dark, Dark: dark}
}

func newPalette(ac tone) Palette {
	return Palette{
		Surface: ColourSet{Base: ac("#ffffff", "#111827"), OnBase: ac("#000000", "#ffffff"), Border: ac("#e5e7eb", "#374151")},
		Card:    ColourSet{Base: ac("#ffffff", "#1f2937"), OnBase: ac("#000000", "#ffffff"), Border: ac("#e5e7eb", "#374151")},
		Primary: ColourSet{Base: ac("#000000", "#ffffff"), OnBase: ac("#ffffff", "#000000"), Border: ac("#1f2937", "#e5e7eb")},
		Stage:   ColourSet{Base: ac("#f9fafb", "#1f2937"), OnBase: ac("#9ca3af", "#6b7280"), Border: ac("#e5e7eb", "#4b5563")},
		Slot:    ColourSet{Base: ac("#bfdbfe", "#1d4ed8"), OnBase: ac("#1e3a8a", "#eff6ff"), Border: ac("#93c5fd", "#2563eb")},
		Muted:   ColourSet{Base: ac("#f3f4f6", "#374151"), OnBase: ac("#4b5563", "#d1d5db"), Border: ac("#d1d5db", "#4b5563")},
		Danger:  ColourSet{Base: ac("#fef2f2", "#450a0a"), OnBase: ac("#ef4444", "#f87171"), Border: ac("#ef4444", "#f87171")},
		Info:    ColourSet{Base: ac("#ecfeff", "#083344"), OnBase: ac("#0891b2", "#22d3ee"), Border: ac("#06b6d4", "#22d3ee")},
	}
}

func newTheme(name string, dark bool, ac tone) Theme {
	palette := newPalette(ac)

	borders := BorderSet{
		None:    lipgloss.Border{},
		Normal:  lipgloss.NormalBorder(),
		Rounded: lipgloss.RoundedBorder(),
		Thick:   lipgloss.ThickBorder(),
		Dashed: lipgloss.Border{
			Top: "╌", Bottom: "╌", Left: "╎", Right: "╎",
			TopLeft: "┌", TopRight: "┐", BottomLeft: "└", BottomRight: "┘",
		},
	}

	return Theme{
		Name:       name,
		Dark:       dark,
		Palette:    palette,
		Borders:    borders,
		Typography: newTypography(palette),
		Input: InputStyles{
			Default: lipgloss.NewStyle().
				BorderStyle(borders.Rounded).
				BorderForeground(palette.Surface.Border).
				Padding(0, 1).
				Foreground(palette.Surface.OnBase),
			Focus: lipgloss.NewStyle().
				BorderStyle(borders.Thick).
				BorderForeground(palette.Primary.Base).
				Padding(0, 1).
				Foreground(palette.Surface.OnBase),
		},
	}
}

func newTypography(p Palette) TypographyScale {
	base := lipgloss.NewStyle().Foreground(p.Surface.OnBase)

	return TypographyScale{
		Base:     base,
		Logo:     base.Faint(true).Bold(false),
		Title:    base.Bold(true),
		Body:     base,
		Caption:  base.Foreground(p.Muted.OnBase),
		Emphasis: base.Bold(true),
	}
}

// DefaultTheme follows the terminal background.
func DefaultTheme() Theme {
	return newTheme("auto", false, adaptive)
}

// LightTheme returns the light storefront regardless of terminal background.
func LightTheme() Theme {
	return newTheme("light", false, pinnedLight)
}

// DarkTheme returns the dark storefront regardless of terminal background.
func DarkTheme() Theme {
	return newTheme("dark", true, pinnedDark)
}

var (
	lightTheme = LightTheme()
	darkTheme  = DarkTheme()
)

// ThemeFor maps the store's theme flag to a theme.
func ThemeFor(mode storefront.ThemeMode) Theme {
	if mode.IsDark() {
		return darkTheme
	}
	return lightTheme
}

// InputStyle returns the search box style for the focus state.
func (t Theme) InputStyle(focused bool) lipgloss.Style {
	if focused {
		return t.Input.Focus
	}
	return t.Input.Default
}
