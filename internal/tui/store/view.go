package store

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/atelier/internal/components"
	"github.com/alexisbeaulieu97/atelier/internal/storefront"
	"github.com/alexisbeaulieu97/atelier/pkg/money"
)

const (
	logo        = "FASHION"
	hotline     = "+7 (999) 123-45-67"
	cardHeight  = 7
	chromeLines = 9
)

var navLabels = []string{"Главная", "Поиск"}

// View renders the current model state
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	var body string
	switch m.viewMode {
	case ViewCart:
		body = m.renderCartView()
	case ViewHelp:
		body = m.renderHelpView()
	default:
		body = m.renderShopView()
	}

	var content strings.Builder
	content.WriteString(m.renderHeader())
	content.WriteString("\n")
	content.WriteString(m.renderSearch())
	content.WriteString("\n")
	if m.showError {
		content.WriteString(m.renderErrorBanner())
		content.WriteString("\n")
	} else if m.notice != "" {
		content.WriteString(m.renderNotice())
		content.WriteString("\n")
	}
	content.WriteString(body)
	content.WriteString("\n")
	content.WriteString(m.renderFooter())

	return content.String()
}

// renderHeader renders the logo, navigation, cart badge and theme switch
func (m Model) renderHeader() string {
	theme := m.theme()

	brand := theme.Typography.Logo.Render(spaced(logo))

	nav := make([]string, 0, len(navLabels)+2)
	for _, label := range navLabels {
		nav = append(nav, theme.Typography.Body.Render(label))
	}
	cart := theme.Typography.Body.Render("🛍")
	if badge := components.Badge(theme, m.state.Cart.Size()); badge != "" {
		cart += " " + badge
	}
	nav = append(nav, cart, theme.Typography.Body.Render(themeIcon(m.state.Theme)))
	right := strings.Join(nav, "   ")

	gap := m.width - lipgloss.Width(brand) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	line := brand + strings.Repeat(" ", gap) + right

	return theme.Style(lipgloss.NewStyle(), components.Outline(components.Normal, components.PaletteSurface)).
		BorderTop(false).BorderLeft(false).BorderRight(false).
		Width(m.width).
		Render(line)
}

// themeIcon shows the mode a press of the switch leads to.
func themeIcon(mode storefront.ThemeMode) string {
	if mode.IsDark() {
		return "☀"
	}
	return "☾"
}

func spaced(s string) string {
	return strings.Join(strings.Split(s, ""), " ")
}

func (m Model) renderSearch() string {
	box := m.theme().InputStyle(m.searching).Render(m.search.View())
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, box)
}

// renderShopView renders the two product columns around the mannequin
func (m Model) renderShopView() string {
	theme := m.theme()
	visible := m.state.Visible()
	split := splitColumns(len(visible))
	width := m.cardWidth()
	capacity := m.columnCapacity()

	var left, right string
	if len(visible) == 0 {
		left = m.renderEmptyState(width)
	} else {
		left = m.renderColumn(visible[:split], 0, width, capacity)
		right = m.renderColumn(visible[split:], split, width, capacity)
	}

	centreColumn := lipgloss.JoinVertical(lipgloss.Center, m.renderStage(), m.renderOutfitActions())
	columns := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(width).Render(left),
		"  ",
		centreColumn,
		"  ",
		lipgloss.NewStyle().Width(width).Render(right),
	)
	return theme.Style(lipgloss.NewStyle()).Width(m.width).Align(lipgloss.Center).Render(columns)
}

// renderColumn renders the window of cards that keeps the cursor visible
func (m Model) renderColumn(items []storefront.ClothingItem, offset, width, capacity int) string {
	theme := m.theme()

	start := 0
	if row := m.cursor - offset; row >= 0 && row < len(items) && row >= capacity {
		start = row - capacity + 1
	}
	end := min(start+capacity, len(items))

	var cards []string
	if start > 0 {
		cards = append(cards, theme.Typography.Caption.Render(fmt.Sprintf("↑ ещё %d", start)))
	}
	for i := start; i < end; i++ {
		item := items[i]
		card := components.NewCard(components.CardData{
			Icon:     categoryIcon(item.Category),
			Title:    item.Name,
			Subtitle: money.Format(item.Price, m.currency),
			Action:   "+ На манекен",
		}).WithWidth(width).WithSelected(offset+i == m.cursor)
		cards = append(cards, card.View(theme))
	}
	if rest := len(items) - end; rest > 0 {
		cards = append(cards, theme.Typography.Caption.Render(fmt.Sprintf("↓ ещё %d", rest)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

func (m Model) renderEmptyState(width int) string {
	theme := m.theme()
	msg := fmt.Sprintf("Ничего не найдено по запросу %q", m.state.Query)
	return theme.Typography.Caption.Width(width).Render(msg)
}

func (m Model) renderStage() string {
	var ghost *storefront.ClothingItem
	if item, ok := m.state.Hovered(); ok {
		ghost = &item
	}
	return renderMannequin(m.theme(), m.state.Outfit.Slots(), ghost)
}

// renderOutfitActions lists the worn garments and the two outfit buttons.
// Nothing is drawn for an empty outfit.
func (m Model) renderOutfitActions() string {
	if m.state.Outfit.IsEmpty() {
		return ""
	}
	theme := m.theme()

	lines := make([]string, 0, m.state.Outfit.Len()+2)
	for _, item := range m.state.Outfit.Slots() {
		lines = append(lines, theme.Typography.Caption.Render(
			fmt.Sprintf("%s %s · %s", categoryIcon(item.Category), item.Name, money.Format(item.Price, m.currency))))
	}
	lines = append(lines, theme.Typography.Emphasis.Render("Образ: "+money.Format(m.state.Outfit.Total(), m.currency)))
	lines = append(lines, components.ButtonRow(theme, 2,
		components.NewButton("x Очистить", components.ButtonVariantOutline),
		components.NewButton("c В корзину", components.ButtonVariantPrimary),
	))
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

// renderCartView renders the cart panel
func (m Model) renderCartView() string {
	theme := m.theme()

	var content strings.Builder
	content.WriteString(theme.Typography.Title.Render("Корзина"))
	content.WriteString("\n\n")

	items := m.state.Cart.Items()
	if len(items) == 0 {
		content.WriteString(theme.Typography.Caption.Render("Корзина пуста"))
	} else {
		for i, item := range items {
			content.WriteString(fmt.Sprintf("%2d. %s %-28s %12s\n",
				i+1, categoryIcon(item.Category), item.Name, money.Format(item.Price, m.currency)))
		}
		content.WriteString("\n")
		content.WriteString(theme.Typography.Emphasis.Render(
			fmt.Sprintf("Итого: %s", money.Format(m.state.Cart.Total(), m.currency))))
	}
	content.WriteString("\n\n")
	content.WriteString(theme.Typography.Caption.Render("b/esc: back"))

	panel := theme.Style(lipgloss.NewStyle(),
		components.Background(components.PaletteCard),
		components.Outline(components.Rounded, components.PaletteCard),
		components.Padding(1, 2),
	)
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, panel.Render(content.String()))
}

// renderHelpView renders the key reference through glamour
func (m Model) renderHelpView() string {
	markdown := m.helpMarkdown()
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(m.glamourStyle()),
		glamour.WithWordWrap(max(m.width-4, 20)),
	)
	if err != nil {
		return markdown
	}
	rendered, err := renderer.Render(markdown)
	if err != nil {
		return markdown
	}
	return rendered
}

func (m Model) glamourStyle() string {
	switch {
	case m.plain:
		return "notty"
	case m.state.Theme.IsDark():
		return "dark"
	default:
		return "light"
	}
}

func (m Model) helpMarkdown() string {
	var b strings.Builder
	b.WriteString("# FASHION\n\n")
	b.WriteString("Наведите курсор на товар, чтобы примерить его на манекене. ")
	b.WriteString("На манекене помещается одна вещь каждой категории.\n\n")
	b.WriteString("## Keys\n\n")
	for _, group := range DefaultKeyMap().FullHelp() {
		for _, binding := range group {
			h := binding.Help()
			fmt.Fprintf(&b, "- **%s** %s\n", h.Key, h.Desc)
		}
	}
	b.WriteString("\n## Горячая линия\n\n")
	b.WriteString(hotline + "\n")
	return b.String()
}

func (m Model) renderErrorBanner() string {
	return components.NewAlert(m.errorMsg, components.AlertOptions{
		Variant:     components.AlertVariantError,
		Title:       "Error",
		Dismissible: true,
		Width:       m.width - 2,
	}).View(m.theme())
}

func (m Model) renderNotice() string {
	return components.NewAlert(m.notice, components.AlertOptions{
		Variant: components.AlertVariantInfo,
		Width:   m.width - 2,
	}).View(m.theme())
}

// renderFooter renders key hints on the left and the hotline on the right
func (m Model) renderFooter() string {
	theme := m.theme()

	hints := m.help.View(m.keys)
	phone := theme.Style(lipgloss.NewStyle(), components.Foreground(components.PaletteDanger)).Render("☎") +
		" " + theme.Typography.Body.Render(hotline)

	gap := m.width - lipgloss.Width(hints) - lipgloss.Width(phone)
	if gap < 2 {
		return lipgloss.JoinVertical(lipgloss.Left, hints, phone)
	}
	return hints + strings.Repeat(" ", gap) + phone
}

// cardWidth splits what the mannequin leaves between the two columns.
func (m Model) cardWidth() int {
	w := (m.width - mannequinWidth - 8) / 2
	return min(max(w, 22), 34)
}

// columnCapacity is how many cards fit above the footer.
func (m Model) columnCapacity() int {
	avail := m.height - chromeLines
	if m.showError || m.notice != "" {
		avail -= 3
	}
	return max(avail/cardHeight, 1)
}
