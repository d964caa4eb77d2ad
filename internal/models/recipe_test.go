package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateRecipe(t *testing.T) {
	valid := Recipe{
		Name:         "Adobo",
		Servings:     4,
		SellingPrice: 10,
		Ingredients:  []Ingredient{{Name: "pork", Quantity: 2, Cost: 1.5}},
	}
	assert.NoError(t, ValidateRecipe(&valid))

	cases := []struct {
		name   string
		mutate func(*Recipe)
	}{
		{"empty name", func(r *Recipe) { r.Name = "" }},
		{"whitespace name", func(r *Recipe) { r.Name = "   " }},
		{"zero servings", func(r *Recipe) { r.Servings = 0 }},
		{"negative servings", func(r *Recipe) { r.Servings = -1 }},
		{"negative price", func(r *Recipe) { r.SellingPrice = -1 }},
		{"negative labor", func(r *Recipe) { r.LaborCost = -1 }},
		{"negative quantity", func(r *Recipe) { r.Ingredients[0].Quantity = -1 }},
		{"negative cost", func(r *Recipe) { r.Ingredients[0].Cost = -1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := valid
			r.Ingredients = append([]Ingredient(nil), valid.Ingredients...)
			tc.mutate(&r)
			assert.Error(t, ValidateRecipe(&r))
		})
	}
}

func TestLineTotal(t *testing.T) {
	assert.InDelta(t, 3.0, Ingredient{Quantity: 2, Cost: 1.5}.LineTotal(), 1e-9)
	assert.Equal(t, 0.0, Ingredient{}.LineTotal())
}

func TestNewRecipe(t *testing.T) {
	r := NewRecipe()
	assert.Equal(t, 1, r.Servings)
	assert.Empty(t, r.Name)
}

func TestSuggestedUnits(t *testing.T) {
	units := SuggestedUnits()
	assert.Contains(t, units, UnitKilogram)
	assert.Contains(t, units, UnitDozen)
	assert.Len(t, units, 11)
}
