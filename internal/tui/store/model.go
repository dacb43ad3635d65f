package store

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/atelier/internal/components"
	"github.com/alexisbeaulieu97/atelier/internal/logger"
	"github.com/alexisbeaulieu97/atelier/internal/storefront"
	"github.com/alexisbeaulieu97/atelier/pkg/money"
)

const (
	minWidth  = 90
	minHeight = 28

	searchPlaceholder = "Поиск одежды..."
)

// Options tune the store view.
type Options struct {
	// Currency is the symbol printed after prices.
	Currency string
	// Plain renders the help page without colour.
	Plain  bool
	Logger *logger.Logger
}

// Model is the Bubble Tea model of the store page.
type Model struct {
	// Core data
	state *storefront.State

	// UI state
	viewMode  ViewMode
	cursor    int
	searching bool

	// Component state
	keys   KeyMap
	help   help.Model
	search textinput.Model

	// Banner state
	showError bool
	errorMsg  string
	notice    string

	// Dimensions
	width  int
	height int

	// Configuration
	currency string
	plain    bool
	log      *logger.Logger
}

// NewModel creates a store view over state.
func NewModel(state *storefront.State, opts Options) Model {
	currency := opts.Currency
	if currency == "" {
		currency = money.DefaultSymbol
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	input := textinput.New()
	input.Placeholder = searchPlaceholder
	input.Prompt = "⌕ "
	input.CharLimit = 64
	input.Width = searchWidth(120)
	input.SetValue(state.Query)

	m := Model{
		state:    state,
		viewMode: ViewShop,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		search:   input,
		width:    120,
		height:   40,
		currency: currency,
		plain:    opts.Plain,
		log:      log,
	}
	m.applyTheme()
	m.syncCursor()
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// State exposes the session the view renders.
func (m Model) State() *storefront.State {
	return m.state
}

// Cursor is the index of the focused card within the visible items.
func (m Model) Cursor() int {
	return m.cursor
}

// Searching reports whether the search box has focus.
func (m Model) Searching() bool {
	return m.searching
}

// Mode returns the current screen.
func (m Model) Mode() ViewMode {
	return m.viewMode
}

func (m Model) theme() components.Theme {
	return components.ThemeFor(m.state.Theme)
}

// applyTheme restyles the child components after a theme change.
func (m *Model) applyTheme() {
	theme := m.theme()
	m.search.TextStyle = theme.Typography.Body
	m.search.PlaceholderStyle = theme.Typography.Caption
	m.search.PromptStyle = theme.Typography.Caption
	m.help.Styles.ShortKey = theme.Typography.Emphasis
	m.help.Styles.ShortDesc = theme.Typography.Caption
	m.help.Styles.ShortSeparator = theme.Typography.Caption
	m.help.Styles.FullKey = theme.Typography.Emphasis
	m.help.Styles.FullDesc = theme.Typography.Caption
	m.help.Styles.FullSeparator = theme.Typography.Caption
}

// focused returns the card under the cursor.
func (m Model) focused() (storefront.ClothingItem, bool) {
	visible := m.state.Visible()
	if m.cursor < 0 || m.cursor >= len(visible) {
		return storefront.ClothingItem{}, false
	}
	return visible[m.cursor], true
}

// syncCursor keeps the cursor on the hovered item when it is still visible,
// and inside the visible range otherwise.
func (m *Model) syncCursor() {
	visible := m.state.Visible()
	if hovered, ok := m.state.Hovered(); ok {
		for i, item := range visible {
			if item == hovered {
				m.cursor = i
				return
			}
		}
	}
	if m.cursor >= len(visible) {
		m.cursor = len(visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// splitColumns returns the size of the left column: the first ceil(n/2)
// visible items.
func splitColumns(n int) int {
	return (n + 1) / 2
}
