package models

// IngredientUnit represents the unit of measurement for an ingredient.
// Units are a suggestion set, not validated; free text is accepted.
type IngredientUnit string

const (
	// Weight units
	UnitKilogram IngredientUnit = "kg"
	UnitGram     IngredientUnit = "g"
	UnitPound    IngredientUnit = "lb"
	UnitOunce    IngredientUnit = "oz"

	// Volume units
	UnitCup        IngredientUnit = "cup"
	UnitTablespoon IngredientUnit = "tbsp"
	UnitTeaspoon   IngredientUnit = "tsp"
	UnitMilliliter IngredientUnit = "ml"
	UnitLiter      IngredientUnit = "l"

	// Count units
	UnitPiece IngredientUnit = "piece"
	UnitDozen IngredientUnit = "dozen"
)

// SuggestedUnits lists the units offered to the editor form, in display order.
func SuggestedUnits() []IngredientUnit {
	return []IngredientUnit{
		UnitKilogram, UnitGram, UnitPound, UnitOunce,
		UnitCup, UnitTablespoon, UnitTeaspoon, UnitMilliliter, UnitLiter,
		UnitPiece, UnitDozen,
	}
}

// SuggestedIngredients lists the common ingredient names offered to the
// editor form as completions.
func SuggestedIngredients() []string {
	return []string{
		"Flour", "Sugar", "Butter", "Eggs", "Milk", "Salt",
		"Baking Powder", "Vanilla Extract", "Chocolate Chips", "Olive Oil",
		"Onions", "Garlic", "Tomatoes", "Chicken Breast", "Ground Beef",
		"Rice", "Pasta", "Cheese", "Lettuce", "Carrots",
	}
}
