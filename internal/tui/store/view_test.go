package store

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestViewBeforeFirstResize(t *testing.T) {
	m := newTestModel(t)
	m.width, m.height = 0, 0

	assert.Equal(t, "Initializing...", m.View())
}

func TestShopViewShowsCatalogAndChrome(t *testing.T) {
	m := newTestModel(t)

	view := m.View()

	assert.Contains(t, view, "F A S H I O N")
	assert.Contains(t, view, "Главная")
	assert.Contains(t, view, "одежды...")
	assert.Contains(t, view, "Классическая рубашка")
	assert.Contains(t, view, "Бомбер")
	assert.Contains(t, view, "2 500 ₽")
	assert.Contains(t, view, "На манекен")
	assert.Contains(t, view, hotline)
	assert.Contains(t, view, "☾")
	assert.NotContains(t, view, "Очистить")
}

func TestShopViewShowsOutfitActionsWhenDressed(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "enter")

	view := m.View()

	assert.Contains(t, view, "Очистить")
	assert.Contains(t, view, "В корзину")
	assert.Contains(t, view, "👕 shirt")
}

func TestShopViewEmptySearch(t *testing.T) {
	m := newTestModel(t)
	m.state.SetQuery("шляпа")

	view := m.View()

	assert.Contains(t, view, "Ничего не найдено")
	assert.NotContains(t, view, "Бомбер")
}

func TestShopViewDarkThemeIcon(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "t")

	assert.Contains(t, m.View(), "☀")
}

func TestErrorBannerRendered(t *testing.T) {
	m := newTestModel(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})

	view := next.(Model).View()

	assert.Contains(t, view, "Terminal too small")
	assert.Contains(t, view, "esc: dismiss")
}

func TestCartView(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "b")
	assert.Contains(t, m.View(), "Корзина пуста")

	m = press(t, m, "b", "a", "down", "a", "b")
	view := m.View()

	assert.Contains(t, view, "Классическая рубашка")
	assert.Contains(t, view, "Прямые джинсы")
	assert.Contains(t, view, "Итого: 5 700 ₽")
}

func TestHelpViewRendersMarkdown(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "?")

	view := m.View()

	assert.Contains(t, view, "Keys")
	assert.Contains(t, view, "add to cart")
	assert.Contains(t, view, "Горячая")
}

func TestGlamourStyleFollowsTheme(t *testing.T) {
	m := newTestModel(t)
	assert.Equal(t, "notty", m.glamourStyle())

	m.plain = false
	assert.Equal(t, "light", m.glamourStyle())

	m.state.ToggleTheme()
	assert.Equal(t, "dark", m.glamourStyle())
}

func TestColumnWindowKeepsCursorVisible(t *testing.T) {
	m := newTestModel(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	m = next.(Model)
	assert.Equal(t, 3, m.columnCapacity())

	m = press(t, m, "down", "down", "down")
	view := m.View()

	assert.Contains(t, view, "↑ ещё 1")
	assert.Contains(t, view, "Пиджак slim")
}

func TestCardWidthBounds(t *testing.T) {
	m := newTestModel(t)

	m.width = 90
	assert.Equal(t, 27, m.cardWidth())

	m.width = 400
	assert.Equal(t, 34, m.cardWidth())

	m.width = 40
	assert.Equal(t, 22, m.cardWidth())
}
