package components

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

// Badge is the small counter drawn next to the cart icon. It renders nothing
// for a zero count.
func Badge(theme Theme, count int) string {
	if count <= 0 {
		return ""
	}
	style := theme.Style(lipgloss.NewStyle(), Background(PalettePrimary), Padding(0, 1)).Bold(true)
	return style.Render(strconv.Itoa(count))
}
