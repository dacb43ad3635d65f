package storefront

// Cart is an append-only list of items; duplicates are kept.
type Cart struct {
	items []ClothingItem
}

// Add appends item unconditionally.
func (c *Cart) Add(item ClothingItem) {
	c.add(item)
}

func (c *Cart) add(items ...ClothingItem) {
	c.items = append(c.items, items...)
}

// Size returns the number of items in the cart.
func (c *Cart) Size() int {
	return len(c.items)
}

// Items returns a copy of the cart contents in insertion order.
func (c *Cart) Items() []ClothingItem {
	out := make([]ClothingItem, len(c.items))
	copy(out, c.items)
	return out
}

// Total is the price of everything in the cart.
func (c *Cart) Total() int {
	return sumPrices(c.items)
}

func sumPrices(items []ClothingItem) int {
	total := 0
	for _, item := range items {
		total += item.Price
	}
	return total
}
