package storefront

import (
	"fmt"
	"strings"

	apperrors "github.com/alexisbeaulieu97/atelier/pkg/errors"
)

// Catalog is the fixed list of items offered by the store.
type Catalog struct {
	items []ClothingItem
	index map[int]int
}

// NewCatalog validates items and builds an immutable catalog preserving their
// order. Item ids must be unique.
func NewCatalog(items []ClothingItem) (*Catalog, error) {
	c := &Catalog{
		items: make([]ClothingItem, len(items)),
		index: make(map[int]int, len(items)),
	}
	copy(c.items, items)

	for i, item := range c.items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
		if prev, exists := c.index[item.ID]; exists {
			return nil, apperrors.NewValidationError(
				fmt.Sprintf("items[%d].id", i),
				fmt.Sprintf("duplicate item id %d (first used at items[%d])", item.ID, prev),
				nil,
			)
		}
		c.index[item.ID] = i
	}

	return c, nil
}

// Items returns a copy of every item in catalog order.
func (c *Catalog) Items() []ClothingItem {
	out := make([]ClothingItem, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of items in the catalog.
func (c *Catalog) Len() int {
	return len(c.items)
}

// ByID looks up an item by its identity.
func (c *Catalog) ByID(id int) (ClothingItem, error) {
	i, ok := c.index[id]
	if !ok {
		return ClothingItem{}, apperrors.NewNotFoundError("item", id)
	}
	return c.items[i], nil
}

// Contains reports whether item is part of the catalog.
func (c *Catalog) Contains(item ClothingItem) bool {
	i, ok := c.index[item.ID]
	return ok && c.items[i] == item
}

// ByCategory returns the items of one category in catalog order.
func (c *Catalog) ByCategory(category Category) []ClothingItem {
	out := make([]ClothingItem, 0)
	for _, item := range c.items {
		if item.Category == category {
			out = append(out, item)
		}
	}
	return out
}

// Visible derives the visible set for a search query.
func (c *Catalog) Visible(query string) []ClothingItem {
	return Filter(c.items, query)
}

// Filter returns the items whose name contains query, ignoring case. An empty
// query keeps every item; the relative order of items is always preserved.
func Filter(items []ClothingItem, query string) []ClothingItem {
	out := make([]ClothingItem, 0, len(items))
	if query == "" {
		return append(out, items...)
	}

	needle := strings.ToLower(query)
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Name), needle) {
			out = append(out, item)
		}
	}
	return out
}
