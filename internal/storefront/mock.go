package storefront

const placeholderImage = "/placeholder.svg"

// MockItems returns the built-in catalog table used when no catalog file is
// configured.
func MockItems() []ClothingItem {
	return []ClothingItem{
		{ID: 1, Name: "Классическая рубашка", Price: 2500, Category: CategoryShirt, Color: "white", Image: placeholderImage},
		{ID: 2, Name: "Прямые джинсы", Price: 3200, Category: CategoryPants, Color: "blue", Image: placeholderImage},
		{ID: 3, Name: "Летнее платье", Price: 4100, Category: CategoryDress, Color: "pink", Image: placeholderImage},
		{ID: 4, Name: "Пиджак slim", Price: 5800, Category: CategoryJacket, Color: "black", Image: placeholderImage},
		{ID: 5, Name: "Поло базовое", Price: 1900, Category: CategoryShirt, Color: "gray", Image: placeholderImage},
		{ID: 6, Name: "Чиносы", Price: 2800, Category: CategoryPants, Color: "beige", Image: placeholderImage},
		{ID: 7, Name: "Макси платье", Price: 4700, Category: CategoryDress, Color: "red", Image: placeholderImage},
		{ID: 8, Name: "Бомбер", Price: 4200, Category: CategoryJacket, Color: "green", Image: placeholderImage},
	}
}
