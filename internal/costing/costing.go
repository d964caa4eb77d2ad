// Package costing implements the pure cost and profitability model for a
// recipe. All functions are side-effect free and may be called repeatedly
// on every input change without accumulating state.
package costing

import (
	"errors"
	"strings"

	"foodcost/internal/models"
)

// ErrInvalidServings is returned when a recipe's serving count is zero or
// negative. Cost per serving is undefined in that case; the model rejects
// the input rather than propagating infinity.
var ErrInvalidServings = errors.New("invalid servings: must be greater than 0")

// Metrics holds the derived cost metrics for one recipe. Percentages are in
// the 0..100 range. When the selling price is zero or negative both
// percentage metrics are clamped to 0 rather than reported as undefined.
type Metrics struct {
	TotalCost      float64 `json:"totalCost"`
	CostPerServing float64 `json:"costPerServing"`
	Profit         float64 `json:"profit"`
	ProfitMargin   float64 `json:"profitMargin"`
	FoodCostPct    float64 `json:"foodCostPct"`
}

// Compute derives the cost metrics for a recipe. It is the strict path used
// whenever the result will be persisted or displayed as authoritative:
// servings must be at least 1.
func Compute(ingredients []models.Ingredient, servings int, sellingPrice, laborCost float64) (Metrics, error) {
	if servings <= 0 {
		return Metrics{}, ErrInvalidServings
	}
	return compute(ingredients, servings, sellingPrice, laborCost), nil
}

// ComputeLive derives cost metrics for an in-progress form. Partially filled
// rows are tolerated; missing numeric fields contribute zero. A missing or
// invalid serving count is treated as 1 so the editor can keep displaying a
// running total while the user types.
func ComputeLive(ingredients []models.Ingredient, servings int, sellingPrice, laborCost float64) Metrics {
	if servings <= 0 {
		servings = 1
	}
	return compute(ingredients, servings, sellingPrice, laborCost)
}

func compute(ingredients []models.Ingredient, servings int, sellingPrice, laborCost float64) Metrics {
	totalCost := laborCost
	for _, ing := range ingredients {
		totalCost += ing.LineTotal()
	}

	costPerServing := totalCost / float64(servings)

	m := Metrics{
		TotalCost:      totalCost,
		CostPerServing: costPerServing,
	}

	if sellingPrice > 0 {
		m.Profit = sellingPrice - costPerServing
		m.ProfitMargin = m.Profit / sellingPrice * 100
		m.FoodCostPct = costPerServing / sellingPrice * 100
	}

	return m
}

// ComputeRecipe derives the cost metrics from a recipe's current field values.
func ComputeRecipe(r models.Recipe) (Metrics, error) {
	return Compute(r.Ingredients, r.Servings, r.SellingPrice, r.LaborCost)
}

// FilterIngredients returns only the rows that qualify for persistence:
// a non-empty name and a positive quantity. Row order is preserved.
func FilterIngredients(rows []models.Ingredient) []models.Ingredient {
	kept := make([]models.Ingredient, 0, len(rows))
	for _, row := range rows {
		if strings.TrimSpace(row.Name) == "" || row.Quantity <= 0 {
			continue
		}
		kept = append(kept, row)
	}
	return kept
}
