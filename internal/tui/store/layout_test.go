package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alexisbeaulieu97/atelier/internal/components"
	"github.com/alexisbeaulieu97/atelier/internal/storefront"
)

func TestEveryCategoryHasASlot(t *testing.T) {
	for _, category := range storefront.Categories() {
		s, ok := mannequinSlots[category]
		assert.True(t, ok, "missing slot for %s", category)
		assert.Less(t, s.Row, len(mannequinFigure))
		assert.NotEmpty(t, s.Icon)
	}
}

func TestSlotRowsFollowBodyOrder(t *testing.T) {
	jacket := slotFor(storefront.CategoryJacket).Row
	shirt := slotFor(storefront.CategoryShirt).Row
	dress := slotFor(storefront.CategoryDress).Row
	pants := slotFor(storefront.CategoryPants).Row

	assert.Less(t, jacket, shirt)
	assert.Equal(t, shirt, dress)
	assert.Less(t, shirt, pants)
	assert.Equal(t, fallbackRow, slotFor(storefront.Category("hat")).Row)
}

func TestRenderMannequinDrawsOutfitAndGhost(t *testing.T) {
	theme := components.LightTheme()
	outfit := []storefront.ClothingItem{
		{ID: 2, Name: "Прямые джинсы", Price: 3200, Category: storefront.CategoryPants},
	}
	ghost := storefront.ClothingItem{ID: 4, Name: "Пиджак slim", Price: 5800, Category: storefront.CategoryJacket}

	view := renderMannequin(theme, outfit, &ghost)

	assert.Contains(t, view, "👖 pants")
	assert.Contains(t, view, "🧥 jacket")
	assert.NotContains(t, view, "👕 shirt")
}

func TestRenderMannequinLaterPlacementWinsSharedRow(t *testing.T) {
	theme := components.LightTheme()
	outfit := []storefront.ClothingItem{
		{ID: 1, Name: "Классическая рубашка", Price: 2500, Category: storefront.CategoryShirt},
		{ID: 3, Name: "Летнее платье", Price: 4100, Category: storefront.CategoryDress},
	}

	view := renderMannequin(theme, outfit, nil)

	assert.Contains(t, view, "👗 dress")
	assert.NotContains(t, view, "👕 shirt")
}
