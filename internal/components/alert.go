package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// AlertVariant selects the alert colouring.
type AlertVariant int

const (
	AlertVariantError AlertVariant = iota
	AlertVariantInfo
)

// AlertOptions defines the configuration options for an alert
type AlertOptions struct {
	Variant     AlertVariant
	Title       string
	Dismissible bool
	Width       int
}

// Alert represents a message banner.
type Alert struct {
	message string
	options AlertOptions
}

// NewAlert creates a new alert with the given message and options
func NewAlert(message string, opts AlertOptions) *Alert {
	return &Alert{message: message, options: opts}
}

// View renders the alert
func (a *Alert) View(theme Theme) string {
	slot := PaletteDanger
	if a.options.Variant == AlertVariantInfo {
		slot = PaletteInfo
	}
	style := theme.Style(lipgloss.NewStyle(), Background(slot), Outline(Normal, slot), Padding(0, 1), Width(a.options.Width))

	var content []string
	if a.options.Title != "" {
		content = append(content, theme.Style(lipgloss.NewStyle(), Foreground(slot)).Bold(true).Render(a.options.Title))
	}
	if a.message != "" {
		content = append(content, a.message)
	}
	if a.options.Dismissible {
		content = append(content, theme.Typography.Caption.Render("esc: dismiss"))
	}

	return style.Render(strings.Join(content, "\n"))
}
