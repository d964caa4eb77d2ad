package models

import (
	"fmt"
	"strings"
	"time"
)

// Ingredient represents one costed line item in a recipe. Cost is the cost
// for the given quantity, not a per-unit cost.
type Ingredient struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Cost     float64 `json:"cost"`
}

// LineTotal returns the cost contribution of this line item.
func (i Ingredient) LineTotal() float64 {
	return i.Quantity * i.Cost
}

// Recipe represents a named, priced menu item with an ingredient list.
// Name acts as the primary key in the recipe store; renaming creates a new
// entry rather than renaming in place. TotalCost is carried as a plain
// number and formatted only at presentation time.
type Recipe struct {
	Name         string       `json:"name"`
	Servings     int          `json:"servings"`
	SellingPrice float64      `json:"sellingPrice"`
	LaborCost    float64      `json:"laborCost"`
	Ingredients  []Ingredient `json:"ingredients"`
	TotalCost    float64      `json:"totalCost"`
	LastModified time.Time    `json:"lastModified"`
}

// NewRecipe returns a blank recipe with the default serving count.
func NewRecipe() Recipe {
	return Recipe{Servings: 1}
}

// ValidateRecipe validates a recipe before it is persisted
func ValidateRecipe(r *Recipe) error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("recipe name is required")
	}
	if r.Servings <= 0 {
		return fmt.Errorf("recipe servings must be greater than 0")
	}
	if r.SellingPrice < 0 {
		return fmt.Errorf("recipe selling price cannot be negative")
	}
	if r.LaborCost < 0 {
		return fmt.Errorf("recipe labor cost cannot be negative")
	}
	for _, ing := range r.Ingredients {
		if ing.Quantity < 0 {
			return fmt.Errorf("ingredient %q quantity cannot be negative", ing.Name)
		}
		if ing.Cost < 0 {
			return fmt.Errorf("ingredient %q cost cannot be negative", ing.Name)
		}
	}
	return nil
}
