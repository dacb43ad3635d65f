package store

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/atelier/internal/storefront"
)

func newTestModel(t *testing.T) Model {
	t.Helper()

	catalog, err := storefront.NewCatalog(storefront.MockItems())
	require.NoError(t, err)

	return NewModel(storefront.NewState(catalog, storefront.ThemeLight), Options{Plain: true})
}

// press feeds keys one at a time and returns the resulting model. Banner
// and notice messages produced outside the search box are fed back the way
// the program loop would.
func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()

	for _, k := range keys {
		wasSearching := m.Searching()
		next, cmd := m.Update(keyMsg(k))
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
		if cmd == nil || wasSearching || m.Searching() {
			continue
		}
		switch msg := cmd().(type) {
		case ErrorMsg, ClearErrorMsg, NoticeMsg:
			next, _ = m.Update(msg)
			m = next.(Model)
		}
	}
	return m
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

func TestNewModel(t *testing.T) {
	m := newTestModel(t)

	assert.Equal(t, ViewShop, m.Mode())
	assert.Equal(t, 0, m.Cursor())
	assert.False(t, m.Searching())
	assert.Equal(t, "₽", m.currency)
	assert.NotNil(t, m.log)
	assert.Nil(t, m.Init())

	_, hovered := m.State().Hovered()
	assert.False(t, hovered)
}

func TestNewModelKeepsCustomCurrency(t *testing.T) {
	catalog, err := storefront.NewCatalog(storefront.MockItems())
	require.NoError(t, err)

	m := NewModel(storefront.NewState(catalog, storefront.ThemeDark), Options{Currency: "$"})

	assert.Equal(t, "$", m.currency)
	assert.True(t, m.State().Theme.IsDark())
}

func TestSplitColumns(t *testing.T) {
	tests := []struct {
		n, left int
	}{
		{0, 0}, {1, 1}, {2, 1}, {3, 2}, {8, 4}, {9, 5},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.left, splitColumns(tt.n), "n=%d", tt.n)
	}
}

func TestSyncCursorFollowsHoveredItem(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "down", "down") // Летнее платье, id 3

	m.state.SetQuery("платье")
	m.syncCursor()

	assert.Equal(t, 0, m.Cursor())
	item, ok := m.focused()
	require.True(t, ok)
	assert.Equal(t, 3, item.ID)
}

func TestSyncCursorClampsToVisibleRange(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "right", "down", "down", "down") // cursor 7

	m.state.SetQuery("джинсы")
	m.syncCursor()

	assert.Equal(t, 0, m.Cursor())

	m.state.SetQuery("нет такого")
	m.syncCursor()

	assert.Equal(t, 0, m.Cursor())
	_, ok := m.focused()
	assert.False(t, ok)
}
