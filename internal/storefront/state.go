package storefront

import (
	"fmt"

	apperrors "github.com/alexisbeaulieu97/atelier/pkg/errors"
)

// State is everything the store view renders from. It is owned by a single
// view and mutated only through its transition methods.
type State struct {
	catalog *Catalog

	Query  string
	Outfit Outfit
	Cart   Cart
	Theme  ThemeMode

	hover   ClothingItem
	hovered bool
}

// NewState starts an empty session over catalog.
func NewState(catalog *Catalog, theme ThemeMode) *State {
	return &State{catalog: catalog, Theme: theme}
}

// Catalog returns the catalog the state browses.
func (s *State) Catalog() *Catalog {
	return s.catalog
}

// Visible is the catalog filtered by the current query.
func (s *State) Visible() []ClothingItem {
	return s.catalog.Visible(s.Query)
}

// SetQuery replaces the search text. A hover preview whose item is no longer
// visible is dropped.
func (s *State) SetQuery(query string) {
	s.Query = query
	if !s.hovered {
		return
	}
	for _, item := range s.Visible() {
		if item == s.hover {
			return
		}
	}
	s.Unhover()
}

// Hover sets the ghost preview shown on the mannequin.
func (s *State) Hover(item ClothingItem) error {
	if err := s.admit(item); err != nil {
		return err
	}
	s.hover = item
	s.hovered = true
	return nil
}

// Unhover removes the ghost preview.
func (s *State) Unhover() {
	s.hover = ClothingItem{}
	s.hovered = false
}

// Hovered returns the item under the ghost preview, if any.
func (s *State) Hovered() (ClothingItem, bool) {
	return s.hover, s.hovered
}

// Place puts item on the mannequin.
func (s *State) Place(item ClothingItem) error {
	if err := s.admit(item); err != nil {
		return err
	}
	s.Outfit.Place(item)
	return nil
}

// AddToCart adds item straight to the cart, bypassing the mannequin.
func (s *State) AddToCart(item ClothingItem) error {
	if err := s.admit(item); err != nil {
		return err
	}
	s.Cart.Add(item)
	return nil
}

// ClearOutfit empties the mannequin.
func (s *State) ClearOutfit() {
	s.Outfit.Clear()
}

// CommitOutfit moves the outfit into the cart and reports how many items moved.
func (s *State) CommitOutfit() int {
	return s.Outfit.Commit(&s.Cart)
}

// ToggleTheme flips the theme and returns the new mode.
func (s *State) ToggleTheme() ThemeMode {
	s.Theme = s.Theme.Toggle()
	return s.Theme
}

// admit is the boundary check for items entering the outfit, cart or preview.
func (s *State) admit(item ClothingItem) error {
	if !item.Category.Valid() {
		return apperrors.NewValidationError("category", fmt.Sprintf("unknown category %q", item.Category), nil)
	}
	if s.catalog != nil && !s.catalog.Contains(item) {
		return apperrors.NewValidationError("item", fmt.Sprintf("item %d is not in the catalog", item.ID), nil)
	}
	return nil
}
