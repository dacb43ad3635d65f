package store

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keybindings for the store view.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Place     key.Binding
	AddToCart key.Binding
	Commit    key.Binding
	Clear     key.Binding
	Theme     key.Binding
	Cart      key.Binding
	Search    key.Binding
	Back      key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns the default keybinding configuration.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left column"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right column"),
		),
		Place: key.NewBinding(
			key.WithKeys("enter", " ", "p"),
			key.WithHelp("enter", "на манекен"),
		),
		AddToCart: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add to cart"),
		),
		Commit: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "в корзину"),
		),
		Clear: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "очистить"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		Cart: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "cart"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp is the footer line.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Place, k.AddToCart, k.Commit, k.Clear, k.Search, k.Theme, k.Cart, k.Help, k.Quit}
}

// FullHelp groups every binding by concern.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Place, k.AddToCart, k.Commit, k.Clear},
		{k.Search, k.Theme, k.Cart, k.Back},
		{k.Help, k.Quit},
	}
}

// searchKeyMap is active while the search box has focus; only the keys that
// leave the box stay live so typing is not swallowed by shortcuts.
func searchKeyMap() KeyMap {
	km := DefaultKeyMap()
	km.Back = key.NewBinding(
		key.WithKeys("esc", "enter"),
		key.WithHelp("esc/enter", "done"),
	)
	km.Quit = key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	)
	for _, b := range []*key.Binding{&km.Up, &km.Down, &km.Left, &km.Right, &km.Place, &km.AddToCart,
		&km.Commit, &km.Clear, &km.Theme, &km.Cart, &km.Search, &km.Help} {
		b.SetEnabled(false)
	}
	return km
}
