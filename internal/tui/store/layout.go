package store

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/atelier/internal/components"
	"github.com/alexisbeaulieu97/atelier/internal/storefront"
)

// slot says where a garment sits on the mannequin figure.
type slot struct {
	Row  int
	Icon string
}

// mannequinSlots places each category on a figure row. Shirts and dresses
// share a row; whichever was placed later is drawn on top.
var mannequinSlots = map[storefront.Category]slot{
	storefront.CategoryJacket: {Row: 3, Icon: "🧥"},
	storefront.CategoryShirt:  {Row: 5, Icon: "👕"},
	storefront.CategoryDress:  {Row: 5, Icon: "👗"},
	storefront.CategoryPants:  {Row: 10, Icon: "👖"},
}

const fallbackRow = 5

// mannequinFigure is drawn faintly behind the outfit.
var mannequinFigure = []string{
	"",
	".--.",
	"(    )",
	"'--'",
	"/|    |\\",
	"/ |    | \\",
	"|    |",
	"|    |",
	"|____|",
	"|    |",
	"|    |",
	"|    |",
	"|    |",
	"_|    |_",
	"",
	"/______\\",
	"",
}

const mannequinWidth = 28

func slotFor(category storefront.Category) slot {
	if s, ok := mannequinSlots[category]; ok {
		return s
	}
	return slot{Row: fallbackRow, Icon: "·"}
}

func categoryIcon(category storefront.Category) string {
	return slotFor(category).Icon
}

// renderMannequin draws the figure with placed garments in placement order and
// the hovered item as a ghost on top.
func renderMannequin(theme components.Theme, outfit []storefront.ClothingItem, ghost *storefront.ClothingItem) string {
	inner := mannequinWidth - 2
	figure := theme.Style(lipgloss.NewStyle(), components.Foreground(components.PaletteStage)).
		Width(inner).Align(lipgloss.Center)
	rows := make([]string, len(mannequinFigure))
	for i, line := range mannequinFigure {
		rows[i] = figure.Render(line)
	}

	placed := theme.Style(lipgloss.NewStyle(), components.Background(components.PaletteSlotted)).
		Width(inner - 4).Align(lipgloss.Center)
	for _, item := range outfit {
		s := slotFor(item.Category)
		rows[s.Row] = centre(inner, placed.Render(garmentLabel(item)))
	}
	if ghost != nil {
		s := slotFor(ghost.Category)
		faint := theme.Style(lipgloss.NewStyle(), components.Outline(components.Dashed, components.PaletteSlotted)).
			BorderTop(false).BorderBottom(false).Faint(true).Width(inner - 6).Align(lipgloss.Center)
		rows[s.Row] = centre(inner, faint.Render(garmentLabel(*ghost)))
	}

	stage := theme.Style(lipgloss.NewStyle(),
		components.Background(components.PaletteStage),
		components.Outline(components.Dashed, components.PaletteStage),
	)
	return stage.Render(strings.Join(rows, "\n"))
}

func garmentLabel(item storefront.ClothingItem) string {
	return categoryIcon(item.Category) + " " + item.Category.String()
}

func centre(width int, s string) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
}
