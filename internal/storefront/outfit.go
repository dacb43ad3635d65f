package storefront

// Outfit is what the mannequin currently wears: at most one item per
// category. Slots are kept in the order their current occupants were placed.
type Outfit struct {
	slots []ClothingItem
}

// Place puts item on the mannequin, evicting the previous occupant of its
// category. Placing the current occupant again changes nothing.
//
// Callers must validate the item's category first; State.Place does.
func (o *Outfit) Place(item ClothingItem) {
	kept := make([]ClothingItem, 0, len(o.slots)+1)
	for _, slot := range o.slots {
		if slot.Category != item.Category {
			kept = append(kept, slot)
			continue
		}
		if slot == item {
			return
		}
	}
	o.slots = append(kept, item)
}

// Clear empties the mannequin.
func (o *Outfit) Clear() {
	o.slots = nil
}

// Commit appends every worn item to cart in placement order and clears the
// outfit. It returns the number of items transferred; an empty outfit is a
// no-op.
func (o *Outfit) Commit(cart *Cart) int {
	if len(o.slots) == 0 {
		return 0
	}
	transferred := o.Slots()
	cart.add(transferred...)
	o.Clear()
	return len(transferred)
}

// Slots returns a copy of the worn items in placement order.
func (o *Outfit) Slots() []ClothingItem {
	out := make([]ClothingItem, len(o.slots))
	copy(out, o.slots)
	return out
}

// Item returns the occupant of category, if any.
func (o *Outfit) Item(category Category) (ClothingItem, bool) {
	for _, slot := range o.slots {
		if slot.Category == category {
			return slot, true
		}
	}
	return ClothingItem{}, false
}

// Len returns the number of occupied slots.
func (o *Outfit) Len() int {
	return len(o.slots)
}

// IsEmpty reports whether nothing is worn.
func (o *Outfit) IsEmpty() bool {
	return len(o.slots) == 0
}

// Total is the price of everything worn.
func (o *Outfit) Total() int {
	return sumPrices(o.slots)
}
