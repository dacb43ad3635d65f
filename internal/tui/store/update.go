package store

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/atelier/internal/storefront"
)

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.search.Width = searchWidth(msg.Width)

		if m.width < minWidth || m.height < minHeight {
			m.showError = true
			m.errorMsg = fmt.Sprintf("Terminal too small (%dx%d). Minimum size: %dx%d",
				m.width, m.height, minWidth, minHeight)
		} else if m.showError && strings.HasPrefix(m.errorMsg, "Terminal too small") {
			m.showError = false
			m.errorMsg = ""
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case ErrorMsg:
		m.showError = true
		m.errorMsg = msg.Message
		return m, nil

	case ClearErrorMsg:
		m.showError = false
		m.errorMsg = ""
		return m, nil

	case NoticeMsg:
		m.notice = msg.Message
		return m, nil
	}

	return m, nil
}

// handleKeyPress handles keyboard input based on current view mode
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searching {
		return m.handleSearchKeys(msg)
	}
	switch m.viewMode {
	case ViewShop:
		return m.handleShopKeys(msg)
	case ViewCart, ViewHelp:
		return m.handleOverlayKeys(msg)
	default:
		return m, nil
	}
}

// handleShopKeys handles keys on the main page
func (m Model) handleShopKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		if m.showError {
			return m, clearError
		}
		m.notice = ""
		m.state.Unhover()
		return m, nil

	case key.Matches(msg, m.keys.Up):
		return m, m.moveVertical(-1)
	case key.Matches(msg, m.keys.Down):
		return m, m.moveVertical(1)
	case key.Matches(msg, m.keys.Left):
		return m, m.moveColumn(false)
	case key.Matches(msg, m.keys.Right):
		return m, m.moveColumn(true)

	case key.Matches(msg, m.keys.Place):
		if item, ok := m.focused(); ok {
			return m, m.apply("placed item", item, m.state.Place)
		}
	case key.Matches(msg, m.keys.AddToCart):
		if item, ok := m.focused(); ok {
			return m, m.apply("added item to cart", item, m.state.AddToCart)
		}

	case key.Matches(msg, m.keys.Commit):
		if n := m.state.CommitOutfit(); n > 0 {
			m.log.WithFields(map[string]any{"items": n, "cart_size": m.state.Cart.Size()}).Info("committed outfit")
			return m, announce(fmt.Sprintf("Образ добавлен в корзину: %d шт.", n))
		}
	case key.Matches(msg, m.keys.Clear):
		if !m.state.Outfit.IsEmpty() {
			m.state.ClearOutfit()
			m.notice = ""
			m.log.Debug("cleared outfit")
		}

	case key.Matches(msg, m.keys.Theme):
		mode := m.state.ToggleTheme()
		m.applyTheme()
		m.log.With("theme", mode.String()).Debug("toggled theme")

	case key.Matches(msg, m.keys.Cart):
		m.viewMode = ViewCart
	case key.Matches(msg, m.keys.Help):
		m.viewMode = ViewHelp

	case key.Matches(msg, m.keys.Search):
		m.searching = true
		m.keys = searchKeyMap()
		return m, m.search.Focus()
	}

	return m, nil
}

// handleOverlayKeys handles keys on the cart and help screens
func (m Model) handleOverlayKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back),
		m.viewMode == ViewCart && key.Matches(msg, m.keys.Cart),
		m.viewMode == ViewHelp && key.Matches(msg, m.keys.Help):
		m.viewMode = ViewShop
	case key.Matches(msg, m.keys.Theme):
		m.state.ToggleTheme()
		m.applyTheme()
	}
	return m, nil
}

// handleSearchKeys feeds the search box and refilters on every keystroke
func (m Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		m.searching = false
		m.search.Blur()
		m.keys = DefaultKeyMap()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if query := m.search.Value(); query != m.state.Query {
		m.state.SetQuery(query)
		m.syncCursor()
		m.log.With("query", query).Debug("search changed")
	}
	return m, cmd
}

// apply runs a state transition on item. A rejection comes back as an
// ErrorMsg for the banner.
func (m *Model) apply(event string, item storefront.ClothingItem, transition func(storefront.ClothingItem) error) tea.Cmd {
	log := m.log.ForItem(item.ID, item.Category.String())
	if err := transition(item); err != nil {
		log.Error(err, "rejected item")
		return reportError(err)
	}
	m.notice = ""
	log.Debug(event)
	return nil
}

// moveVertical moves within the current column, clamping at its ends.
func (m *Model) moveVertical(delta int) tea.Cmd {
	n := len(m.state.Visible())
	if n == 0 {
		return nil
	}
	left := splitColumns(n)
	start, end := 0, left
	if m.cursor >= left {
		start, end = left, n
	}
	next := m.cursor + delta
	if next < start || next >= end {
		return m.hover()
	}
	m.cursor = next
	return m.hover()
}

// moveColumn jumps to the same row of the other column, or its last card
// when that column is shorter.
func (m *Model) moveColumn(right bool) tea.Cmd {
	n := len(m.state.Visible())
	if n == 0 {
		return nil
	}
	left := splitColumns(n)
	inLeft := m.cursor < left
	switch {
	case right && inLeft && n > left:
		m.cursor = min(left+m.cursor, n-1)
	case !right && !inLeft:
		m.cursor = min(m.cursor-left, left-1)
	}
	return m.hover()
}

// hover previews the focused card on the mannequin.
func (m *Model) hover() tea.Cmd {
	item, ok := m.focused()
	if !ok {
		return nil
	}
	if err := m.state.Hover(item); err != nil {
		return reportError(err)
	}
	return nil
}

func reportError(err error) tea.Cmd {
	return func() tea.Msg { return ErrorMsg{Message: err.Error()} }
}

func announce(text string) tea.Cmd {
	return func() tea.Msg { return NoticeMsg{Message: text} }
}

func clearError() tea.Msg { return ClearErrorMsg{} }

func searchWidth(width int) int {
	w := width / 3
	if w < 20 {
		return 20
	}
	if w > 48 {
		return 48
	}
	return w
}
