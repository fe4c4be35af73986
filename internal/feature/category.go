package feature

// Category is one of the ten fixed feature kinds.
type Category string

const (
	Mountains Category = "Mountains"
	Rivers    Category = "Rivers"
	Lakes     Category = "Lakes"
	Glaciers  Category = "Glaciers"
	Deserts   Category = "Deserts"
	Plateaus  Category = "Plateaus"
	Dams      Category = "Dams"
	Passes    Category = "Passes"
	Wetlands  Category = "Wetlands"
	Forests   Category = "Forests"
)

// Categories lists every category in display order.
var Categories = []Category{Mountains, Rivers, Lakes, Glaciers, Deserts, Plateaus, Dams, Passes, Wetlands, Forests}

// Valid reports whether c is one of the ten categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}
