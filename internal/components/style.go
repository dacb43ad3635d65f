package components

import "github.com/charmbracelet/lipgloss"

// StyleApplier represents a function that can apply styling to a lipgloss.Style
type StyleApplier interface {
	Apply(base lipgloss.Style, theme Theme) lipgloss.Style
}

// StyleFunc implements StyleApplier for a function type
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

func (fn StyleFunc) Apply(base lipgloss.Style, theme Theme) lipgloss.Style {
	return fn(base, theme)
}

// Style applies a series of modifiers to create a final style
func (t Theme) Style(base lipgloss.Style, appliers ...StyleApplier) lipgloss.Style {
	for _, applier := range appliers {
		base = applier.Apply(base, t)
	}
	return base
}

// PaletteSlot provides access to a semantic colour slot.
type PaletteSlot func(Palette) ColourSet

var (
	PaletteSurface PaletteSlot = func(p Palette) ColourSet { return p.Surface }
	PaletteCard    PaletteSlot = func(p Palette) ColourSet { return p.Card }
	PalettePrimary PaletteSlot = func(p Palette) ColourSet { return p.Primary }
	PaletteStage   PaletteSlot = func(p Palette) ColourSet { return p.Stage }
	PaletteSlotted PaletteSlot = func(p Palette) ColourSet { return p.Slot }
	PaletteMuted   PaletteSlot = func(p Palette) ColourSet { return p.Muted }
	PaletteDanger  PaletteSlot = func(p Palette) ColourSet { return p.Danger }
	PaletteInfo    PaletteSlot = func(p Palette) ColourSet { return p.Info }
)

// Background applies a semantic background colour and matching foreground.
func Background(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Background(cs.Base).Foreground(cs.OnBase)
	}
}

// Foreground applies a semantic text colour.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(slot(theme.Palette).OnBase)
	}
}

// Outline draws border in the slot's border colour.
func Outline(border func(BorderSet) lipgloss.Border, slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Border(border(theme.Borders)).BorderForeground(slot(theme.Palette).Border)
	}
}

func Padding(vertical, horizontal int) StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		return base.Padding(vertical, horizontal)
	}
}

func Width(width int) StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		if width <= 0 {
			return base
		}
		return base.Width(width)
	}
}

func Rounded(b BorderSet) lipgloss.Border { return b.Rounded }
func Normal(b BorderSet) lipgloss.Border  { return b.Normal }
func Thick(b BorderSet) lipgloss.Border   { return b.Thick }
func Dashed(b BorderSet) lipgloss.Border  { return b.Dashed }
