package storefront

import (
	"fmt"
	"strings"

	apperrors "github.com/alexisbeaulieu97/atelier/pkg/errors"
)

// Category partitions both the catalog and the mannequin slots.
type Category string

const (
	CategoryShirt  Category = "shirt"
	CategoryPants  Category = "pants"
	CategoryDress  Category = "dress"
	CategoryJacket Category = "jacket"
)

var categories = []Category{CategoryShirt, CategoryPants, CategoryDress, CategoryJacket}

// Categories returns the known categories in display order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// Valid reports whether c is one of the four known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryShirt, CategoryPants, CategoryDress, CategoryJacket:
		return true
	default:
		return false
	}
}

func (c Category) String() string {
	return string(c)
}

// ParseCategory normalises s and rejects anything outside the enumeration.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", apperrors.NewValidationError("category", fmt.Sprintf("unknown category %q", s), nil)
	}
	return c, nil
}

// ClothingItem is a catalog entry. Items are values and are never mutated
// after the catalog is built.
type ClothingItem struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Price    int      `json:"price"`
	Category Category `json:"category"`
	Color    string   `json:"color"`
	Image    string   `json:"image"`
}

// Validate checks the invariants every item entering the store must hold.
func (i ClothingItem) Validate() error {
	if !i.Category.Valid() {
		return apperrors.NewValidationError("category", fmt.Sprintf("unknown category %q for item %d", i.Category, i.ID), nil)
	}
	if i.Price < 0 {
		return apperrors.NewValidationError("price", fmt.Sprintf("negative price for item %d", i.ID), nil)
	}
	if strings.TrimSpace(i.Name) == "" {
		return apperrors.NewValidationError("name", fmt.Sprintf("item %d has no name", i.ID), nil)
	}
	return nil
}
