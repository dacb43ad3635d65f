package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ButtonVariant selects a solid or an outlined button.
type ButtonVariant int

const (
	ButtonVariantOutline ButtonVariant = iota
	ButtonVariantPrimary
)

// Button is a labelled key hint drawn as a button.
type Button struct {
	label   string
	variant ButtonVariant
}

// NewButton creates a new button with the given label and variant
func NewButton(label string, variant ButtonVariant) *Button {
	return &Button{label: label, variant: variant}
}

// View renders the button
func (b *Button) View(theme Theme) string {
	var style lipgloss.Style
	switch b.variant {
	case ButtonVariantPrimary:
		style = theme.Style(lipgloss.NewStyle(), Background(PalettePrimary), Padding(0, 1)).Bold(true)
	default:
		style = theme.Style(lipgloss.NewStyle(), Foreground(PaletteSurface), Padding(0, 1)).
			Underline(true)
	}
	return style.Render(b.label)
}

// ButtonRow joins buttons horizontally with a gap.
func ButtonRow(theme Theme, gap int, buttons ...*Button) string {
	if len(buttons) == 0 {
		return ""
	}
	rendered := make([]string, 0, len(buttons))
	for _, button := range buttons {
		rendered = append(rendered, button.View(theme))
	}
	return strings.Join(rendered, strings.Repeat(" ", gap))
}
