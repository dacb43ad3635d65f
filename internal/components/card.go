package components

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

// CardData is the content of a product card.
type CardData struct {
	// Icon is drawn on the image placeholder row
	Icon string
	// Title is the product name; it wraps to the card width
	Title string
	// Subtitle is the price line
	Subtitle string
	// Action is the hint for the primary key on this card
	Action string
}

// Card renders a catalog entry. A selected card is the one under the cursor
// and gets a heavier outline.
type Card struct {
	data     CardData
	width    int
	selected bool
}

// NewCard creates a new card with the given data.
func NewCard(data CardData) *Card {
	return &Card{data: data, width: 26}
}

// WithWidth sets the outer card width.
func (c *Card) WithWidth(width int) *Card {
	c.width = width
	return c
}

// WithSelected marks the card as hovered.
func (c *Card) WithSelected(selected bool) *Card {
	c.selected = selected
	return c
}

// View renders the card.
func (c *Card) View(theme Theme) string {
	border := Outline(Rounded, PaletteCard)
	if c.selected {
		border = Outline(Thick, PalettePrimary)
	}
	frame := theme.Style(lipgloss.NewStyle(), Background(PaletteCard), border, Padding(0, 1), Width(c.innerWidth()))

	var lines []string
	if c.data.Icon != "" {
		art := theme.Style(lipgloss.NewStyle(), Background(PaletteMuted), Width(c.textWidth())).
			Align(lipgloss.Center)
		lines = append(lines, art.Render(c.data.Icon))
	}
	if c.data.Title != "" {
		lines = append(lines, theme.Typography.Body.Render(wrapText(c.data.Title, c.textWidth())))
	}
	if c.data.Subtitle != "" {
		lines = append(lines, theme.Typography.Caption.Render(c.data.Subtitle))
	}
	if c.data.Action != "" {
		variant := ButtonVariantOutline
		if c.selected {
			variant = ButtonVariantPrimary
		}
		lines = append(lines, NewButton(c.data.Action, variant).View(theme))
	}

	return frame.Render(strings.Join(lines, "\n"))
}

// innerWidth is the lipgloss width: content plus padding, without border.
func (c *Card) innerWidth() int {
	if c.width <= 2 {
		return 0
	}
	return c.width - 2
}

func (c *Card) textWidth() int {
	w := c.innerWidth() - 2
	if w < 1 {
		return 0
	}
	return w
}

// wrapText wraps text to fit within maxWidth runes.
// It handles long words by breaking them across multiple lines.
func wrapText(text string, maxWidth int) string {
	if maxWidth <= 0 {
		return text
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return text
	}

	var lines []string
	currentLine := ""

	for _, word := range words {
		if utf8.RuneCountInString(word) > maxWidth {
			wordRunes := []rune(word)
			if currentLine != "" {
				lines = append(lines, currentLine)
				currentLine = ""
			}
			for len(wordRunes) > maxWidth {
				lines = append(lines, string(wordRunes[:maxWidth]))
				wordRunes = wordRunes[maxWidth:]
			}
			currentLine = string(wordRunes)
			continue
		}

		candidate := word
		if currentLine != "" {
			candidate = currentLine + " " + word
		}

		if utf8.RuneCountInString(candidate) <= maxWidth {
			currentLine = candidate
		} else {
			lines = append(lines, currentLine)
			currentLine = word
		}
	}

	if currentLine != "" {
		lines = append(lines, currentLine)
	}

	return strings.Join(lines, "\n")
}
